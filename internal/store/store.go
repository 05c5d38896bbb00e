// Package store persists the minimized-window list as a JSON array in a
// single state file. Every mutation is a full load-rewrite cycle; there is no
// append-only log and no partial update.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hyprveil/hyprveil/internal/model"
)

// Encode serializes records as a compact JSON array. An empty or nil slice
// encodes as "[]" so the file is always a valid array.
func Encode(records []model.MinimizedWindow) ([]byte, error) {
	if len(records) == 0 {
		return []byte("[]"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a JSON array of records. It is best-effort: empty input or an
// unparsable top level yields an empty list, an unparsable element is skipped,
// and a missing field within an element defaults to the empty string. Decode
// never returns an error; a state file damaged beyond recognition simply
// reads as empty.
func Decode(data []byte) []model.MinimizedWindow {
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	var records []model.MinimizedWindow
	for _, entry := range raw {
		var rec model.MinimizedWindow
		if err := json.Unmarshal(entry, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// Store owns the state file holding the ordered minimized-window list.
// Insertion order is minimization order, oldest first.
type Store struct {
	path string
}

// New returns a Store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Ensure creates the state file holding an empty array if it does not exist.
func (s *Store) Ensure() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat state file: %w", err)
	}
	if err := os.WriteFile(s.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("create state file: %w", err)
	}
	return nil
}

// Load reads all records. A missing file is created empty first; any other
// read failure is returned, since without the state file no operation can
// proceed safely.
func (s *Store) Load() ([]model.MinimizedWindow, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return Decode(data), nil
}

// Persist rewrites the whole state file with the given records.
//
// Known limitation: the write is neither locked nor staged through a rename,
// so two invocations racing on the file resolve as last-writer-wins and an
// intervening mutation can be lost. A single interactive user triggering one
// keybinding at a time does not hit this; advisory locking would be the
// hardening if that assumption changes.
func (s *Store) Persist(records []model.MinimizedWindow) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// Append loads the current records and persists them with rec added at the
// end.
func (s *Store) Append(rec model.MinimizedWindow) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	return s.Persist(append(records, rec))
}

// RemoveByAddress persists the store without any record matching address.
// Removing an address with no match rewrites the same content; restore stays
// idempotent at this layer.
func (s *Store) RemoveByAddress(address string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.Address != address {
			kept = append(kept, rec)
		}
	}
	return s.Persist(kept)
}
