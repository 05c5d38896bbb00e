// Package hypr talks to the Hyprland compositor through the hyprctl binary.
// The engine depends only on the Client interface so tests can substitute a
// fake compositor.
package hypr

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Window is the subset of `hyprctl activewindow -j` the minimizer needs.
type Window struct {
	Address string `json:"address"`
	Class   string `json:"class"`
	Title   string `json:"title"`
	At      [2]int `json:"at"`
	Size    [2]int `json:"size"`
}

// Geometry renders the window rectangle in the "x,y wxh" form grim accepts.
func (w Window) Geometry() string {
	return fmt.Sprintf("%d,%d %dx%d", w.At[0], w.At[1], w.Size[0], w.Size[1])
}

// Workspace is the subset of `hyprctl activeworkspace -j` the minimizer needs.
type Workspace struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Client is the narrow window-manager capability the engine depends on.
type Client interface {
	// ActiveWindow returns the currently focused window.
	ActiveWindow() (*Window, error)
	// ActiveWorkspace returns the workspace currently shown.
	ActiveWorkspace() (*Workspace, error)
	// Dispatch issues a hyprctl dispatcher, e.g.
	// Dispatch("movetoworkspace", "3,address:0x...").
	Dispatch(args ...string) error
}

// Hyprctl is the production Client, shelling out to hyprctl. Queries use the
// -j flag and parse the JSON output.
type Hyprctl struct{}

var _ Client = Hyprctl{}

func (Hyprctl) ActiveWindow() (*Window, error) {
	out, err := runHyprctl("activewindow", "-j")
	if err != nil {
		return nil, err
	}
	var w Window
	if err := json.Unmarshal(out, &w); err != nil {
		return nil, fmt.Errorf("parse activewindow output: %w", err)
	}
	return &w, nil
}

func (Hyprctl) ActiveWorkspace() (*Workspace, error) {
	out, err := runHyprctl("activeworkspace", "-j")
	if err != nil {
		return nil, err
	}
	var ws Workspace
	if err := json.Unmarshal(out, &ws); err != nil {
		return nil, fmt.Errorf("parse activeworkspace output: %w", err)
	}
	return &ws, nil
}

func (Hyprctl) Dispatch(args ...string) error {
	_, err := runHyprctl(append([]string{"dispatch"}, args...)...)
	return err
}

func runHyprctl(args ...string) ([]byte, error) {
	cmd := exec.Command("hyprctl", args...)
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("hyprctl %s: %s", strings.Join(args, " "),
				strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("hyprctl %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}
