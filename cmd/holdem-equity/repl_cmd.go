package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/holdem-equity/internal/display"
)

// ReplCmd starts the interactive prompt.
type ReplCmd struct {
	Games   int `short:"g" default:"1000000" help:"Default games per go command"`
	Threads int `short:"t" default:"1" help:"Default worker threads"`
}

func (c *ReplCmd) Run(app *Context) error {
	p := tea.NewProgram(display.NewRepl(c.Games, c.Threads), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
