package minimizer

import "fmt"

// statusGlyph is the icon shown in the status bar module.
const statusGlyph = "\U000f0638"

// Status is the waybar custom-module payload emitted by `show`.
type Status struct {
	Text    string `json:"text"`
	Class   string `json:"class"`
	Tooltip string `json:"tooltip"`
}

// Status reports the current minimized-window count without mutating
// anything.
func (e *Engine) Status() (Status, error) {
	records, err := e.Store.Load()
	if err != nil {
		return Status{}, err
	}
	if len(records) == 0 {
		return Status{
			Text:    statusGlyph,
			Class:   "empty",
			Tooltip: "No minimized windows",
		}, nil
	}
	return Status{
		Text:    fmt.Sprintf("%s %d", statusGlyph, len(records)),
		Class:   "has-windows",
		Tooltip: fmt.Sprintf("%d minimized windows", len(records)),
	}, nil
}
