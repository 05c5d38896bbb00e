// Package minimizer implements the minimize/restore state machine over the
// window-manager, capture, and picker collaborators.
package minimizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hyprveil/hyprveil/internal/errlog"
	"github.com/hyprveil/hyprveil/internal/hypr"
	"github.com/hyprveil/hyprveil/internal/icons"
	"github.com/hyprveil/hyprveil/internal/model"
	"github.com/hyprveil/hyprveil/internal/picker"
	"github.com/hyprveil/hyprveil/internal/preview"
	"github.com/hyprveil/hyprveil/internal/store"
)

// HoldingWorkspace is the special workspace minimized windows are parked in.
const HoldingWorkspace = "special:minimum"

// Engine ties the collaborators together. External failures are logged and
// degrade the affected operation; only state-file I/O errors are returned to
// the caller.
type Engine struct {
	Hypr    hypr.Client
	Capture preview.Capturer
	Picker  picker.Picker
	Store   *store.Store
	Log     *errlog.Logger
}

// Minimize captures the focused window, hides it in the holding workspace,
// and appends its record to the store. It returns the appended record, or nil
// when the operation was skipped or the hide failed. The record is only
// appended after the hide dispatch succeeds; a failed hide leaves the store
// untouched.
func (e *Engine) Minimize() (*model.MinimizedWindow, error) {
	win, err := e.Hypr.ActiveWindow()
	if err != nil {
		e.Log.Errorf("minimize: activewindow query failed — %v", err)
		return nil, nil
	}

	// Never minimize the picker itself.
	if strings.EqualFold(win.Class, picker.SelfClass) {
		return nil, nil
	}

	icon := icons.For(win.Class)
	rec := model.MinimizedWindow{
		Address:       win.Address,
		DisplayTitle:  fmt.Sprintf("%s %s - %s [%s]", icon, win.Class, win.Title, model.ShortAddress(win.Address)),
		Class:         win.Class,
		OriginalTitle: win.Title,
		Icon:          icon,
	}

	// A missing thumbnail degrades the picker, it does not block minimizing.
	if path, err := e.Capture.Capture(win.Address, win.Geometry()); err != nil {
		e.Log.Errorf("minimize: preview capture failed for address=%s — %v", win.Address, err)
	} else {
		rec.Preview = path
	}

	if err := e.Hypr.Dispatch("movetoworkspacesilent", HoldingWorkspace+",address:"+win.Address); err != nil {
		e.Log.Errorf("minimize: movetoworkspacesilent failed for class=%s address=%s — %v", win.Class, win.Address, err)
		return nil, nil
	}

	if err := e.Store.Append(rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Restore brings the window with the given address back onto the active
// workspace, focuses it, and removes its record. Move and focus are attempted
// independently; a failure of either is logged and the record is removed
// anyway, so the window is never counted as minimized twice. Only a failed
// active-workspace query aborts with the store untouched, since restoring
// onto an unknown workspace is unsafe.
func (e *Engine) Restore(address string) error {
	ws, err := e.Hypr.ActiveWorkspace()
	if err != nil {
		e.Log.Errorf("restore: activeworkspace query failed for address=%s — %v", address, err)
		return nil
	}

	if err := e.Hypr.Dispatch("movetoworkspace", fmt.Sprintf("%d,address:%s", ws.ID, address)); err != nil {
		e.Log.Errorf("restore: movetoworkspace failed for address=%s — %v", address, err)
	}
	if err := e.Hypr.Dispatch("focuswindow", "address:"+address); err != nil {
		e.Log.Errorf("restore: focuswindow failed for address=%s — %v", address, err)
	}

	return e.Store.RemoveByAddress(address)
}

// RestoreLast restores the most recently minimized window and returns its
// address, or "" when the store is empty.
func (e *Engine) RestoreLast() (string, error) {
	records, err := e.Store.Load()
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", nil
	}
	address := records[len(records)-1].Address
	return address, e.Restore(address)
}

// RestoreAll restores every minimized window, oldest first, and returns how
// many restores were issued. Each Restore re-reads and rewrites the store;
// quadratic I/O is fine at the human scale the store holds.
func (e *Engine) RestoreAll() (int, error) {
	records, err := e.Store.Load()
	if err != nil {
		return 0, err
	}
	for i, rec := range records {
		if err := e.Restore(rec.Address); err != nil {
			return i, err
		}
	}
	return len(records), nil
}

// SelectAndRestore opens the picker over the current records and restores the
// chosen one, returning its address. Cancellation returns "" silently; any
// output that is not an in-range index is logged and ignored.
func (e *Engine) SelectAndRestore() (string, error) {
	records, err := e.Store.Load()
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", nil
	}

	// Plain "class - title" labels: the richer display title carries icon
	// glyphs some picker surfaces mangle, and selection comes back by index
	// anyway.
	labels := make([]string, len(records))
	for i, rec := range records {
		labels[i] = rec.Class + " - " + rec.OriginalTitle
	}

	raw, err := e.Picker.Choose("Restore window:", labels)
	if err != nil {
		e.Log.Errorf("restore: picker failed — %v", err)
		return "", nil
	}
	if raw == "" {
		return "", nil
	}

	idx, err := strconv.Atoi(raw)
	if err != nil {
		e.Log.Errorf("restore: could not parse picker output %q as index — %v", raw, err)
		return "", nil
	}
	if idx < 0 || idx >= len(records) {
		e.Log.Errorf("restore: picker returned index %d but only %d windows are minimized", idx, len(records))
		return "", nil
	}

	address := records[idx].Address
	return address, e.Restore(address)
}

// List returns the current records, oldest first.
func (e *Engine) List() ([]model.MinimizedWindow, error) {
	return e.Store.Load()
}
