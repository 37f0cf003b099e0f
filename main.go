package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"focusdash/internal/clock"
	"focusdash/internal/store"
	"focusdash/internal/tui"
)

func main() {
	path, err := store.DefaultDataPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.Load(path)
	notice := ""
	if err != nil {
		if !errors.Is(err, store.ErrCorruptData) {
			fmt.Fprintf(os.Stderr, "error loading data: %v\n", err)
			os.Exit(1)
		}
		// Corrupt file: run with defaults, warn, and leave the file alone
		// until the first successful save.
		notice = "Data file unreadable, starting with defaults (file kept until next save)"
	}

	c, err := clock.New(s.Settings().Timezone)
	if err != nil {
		// Bad persisted zone name: fall back to the host zone and say so.
		c, _ = clock.New("")
		notice = fmt.Sprintf("Invalid timezone in settings, using host zone (%v)", err)
	}

	app := tui.NewApp(s, c, notice)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
