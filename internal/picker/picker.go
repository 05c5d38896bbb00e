// Package picker runs the interactive chooser for restoring windows.
package picker

import (
	"fmt"
	"os/exec"
	"strings"
)

// SelfClass is the window class of the picker application. The minimizer must
// never minimize its own picker, so captures of this class are skipped.
const SelfClass = "walker"

// Picker presents labels to the user and returns the raw selection output.
// An empty string means the user cancelled. Interpreting the output as an
// index is the caller's job; the picker surface may hand back anything.
type Picker interface {
	Choose(prompt string, labels []string) (string, error)
}

// Walker drives walker in dmenu mode. Index mode (-i) makes walker print the
// zero-based position of the selection instead of its text, which sidesteps
// any mangling walker applies to the labels themselves.
type Walker struct{}

var _ Picker = Walker{}

func (Walker) Choose(prompt string, labels []string) (string, error) {
	cmd := exec.Command("walker", "-d", "-i", "-p", prompt)
	cmd.Stdin = strings.NewReader(strings.Join(labels, "\n"))
	out, err := cmd.Output()
	if err != nil {
		// Walker exits non-zero on dismiss in some configurations; only a
		// spawn failure is worth reporting, dismissal with empty output is a
		// plain cancel.
		if _, ok := err.(*exec.ExitError); ok && len(strings.TrimSpace(string(out))) == 0 {
			return "", nil
		}
		return "", fmt.Errorf("walker: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
