package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/felt/internal/randutil"
	"github.com/lox/felt/internal/tui"
	"github.com/lox/felt/table"
)

// PlayCmd deals one hand with no automations and hands every decision to
// the terminal. One keyboard drives all seats.
type PlayCmd struct {
	gameFlags
	Names []string `kong:"help='Seat names in order'"`
	Pace  int      `kong:"default='600',help='Milliseconds between dealer operations'"`
	Debug bool     `kong:"help='Write debug logs to felt-debug.log'"`
}

func (c *PlayCmd) Run() error {
	seed := c.resolveSeed()
	opts, v, err := c.tableOptions(randutil.New(seed))
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if c.Debug {
		file, err := os.OpenFile("felt-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("create debug log: %w", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Error("closing debug log", "error", err)
			}
		}()
		logger = log.NewWithOptions(file, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Level:           log.DebugLevel,
		})
	}
	logger.Info("dealing hand", "variant", v.Name, "seats", c.Seats, "seed", seed)

	st, err := table.New(v, opts...)
	if err != nil {
		return err
	}

	model := tui.New(st,
		tui.WithPlayerNames(c.Names),
		tui.WithPace(time.Duration(c.Pace)*time.Millisecond),
		tui.WithLogger(logger),
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
