package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/lox/holdem-equity/internal/config"
	"github.com/lox/holdem-equity/internal/server"
)

// ServeCmd runs the WebSocket equity service until interrupted.
type ServeCmd struct {
	Address string `help:"Override the configured listen address"`
}

func (c *ServeCmd) Run(app *Context) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if c.Address != "" {
		cfg.Server.Address = c.Address
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Server, app.Logger).ListenAndServe(ctx)
}
