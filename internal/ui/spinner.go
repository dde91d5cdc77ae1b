package ui

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress on a terminal writer and does nothing elsewhere,
// so piped stderr stays clean.
type Spinner struct {
	s       *spinner.Spinner
	enabled bool
}

// NewSpinner creates a spinner writing to w.
func NewSpinner(w io.Writer, message string) *Spinner {
	if !IsTerminal(w) {
		return &Spinner{enabled: false}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	return &Spinner{s: s, enabled: true}
}

func (sp *Spinner) Start() {
	if sp.enabled && sp.s != nil {
		sp.s.Start()
	}
}

func (sp *Spinner) Stop() {
	if sp.enabled && sp.s != nil {
		sp.s.Stop()
	}
}

// Enabled reports whether the spinner renders anything.
func (sp *Spinner) Enabled() bool {
	return sp.enabled
}
