// SPDX-License-Identifier: Unlicense OR MIT

// Package clipboard provides the clipboard handed to widgets while
// they process events.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
)

// Clipboard reads and writes text.
type Clipboard interface {
	// Read returns the clipboard content, and false if there is none.
	Read() (string, bool)
	// Write replaces the clipboard content.
	Write(s string)
}

// Null is a Clipboard that is always empty and discards writes.
type Null struct{}

func (Null) Read() (string, bool) { return "", false }
func (Null) Write(string)         {}

// Memory is a Clipboard private to the process.
type Memory struct {
	text  string
	valid bool
}

func (m *Memory) Read() (string, bool) {
	return m.text, m.valid
}

func (m *Memory) Write(s string) {
	m.text = s
	m.valid = true
}

// System is the clipboard of the operating system. Failures are
// logged and reported as an empty clipboard.
type System struct {
	log *logrus.Entry
}

// NewSystem returns the system clipboard. If the platform has no
// clipboard, the returned clipboard behaves like Null.
func NewSystem() *System {
	return &System{log: logrus.WithField("component", "clipboard")}
}

func (s *System) Read() (string, bool) {
	if clipboard.Unsupported {
		return "", false
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		s.log.WithError(err).Warn("clipboard: read failed")
		return "", false
	}
	return text, true
}

func (s *System) Write(text string) {
	if clipboard.Unsupported {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		s.log.WithError(err).Warn("clipboard: write failed")
	}
}
