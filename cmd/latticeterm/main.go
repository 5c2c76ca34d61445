// SPDX-License-Identifier: Unlicense OR MIT

// Command latticeterm runs the demo application in a terminal. Use
// the mouse to interact with it and q to quit.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"latticeui.org/io/clipboard"
)

func main() {
	_ = godotenv.Load()
	// The terminal belongs to the program; log to a file or nowhere.
	logrus.SetOutput(io.Discard)
	if path := os.Getenv("LATTICE_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "latticeterm: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logrus.SetOutput(f)
		logrus.SetLevel(logrus.DebugLevel)
	}

	m := newModel(clipboard.NewSystem())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "latticeterm: %v\n", err)
		os.Exit(1)
	}
}
