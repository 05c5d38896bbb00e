// Package model defines the persisted minimized-window record.
package model

// MinimizedWindow is one entry in the state file, describing a window
// currently parked in the special:minimum workspace. The JSON field names are
// the on-disk schema; status-bar consumers read the same file, so they must
// not change.
type MinimizedWindow struct {
	Address       string `json:"address"        yaml:"address"`
	DisplayTitle  string `json:"display_title"  yaml:"display_title"`
	Class         string `json:"class"          yaml:"class"`
	OriginalTitle string `json:"original_title" yaml:"original_title"`
	// Preview is the thumbnail path; empty when capture failed or was skipped.
	Preview string `json:"preview" yaml:"preview"`
	Icon    string `json:"icon"    yaml:"icon"`
}

// ShortAddress returns the last four characters of a window address, used to
// disambiguate windows of the same class and title in picker labels.
func ShortAddress(address string) string {
	r := []rune(address)
	if len(r) <= 4 {
		return address
	}
	return string(r[len(r)-4:])
}
