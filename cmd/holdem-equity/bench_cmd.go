package main

import (
	"fmt"

	"github.com/lox/holdem-equity/internal/bench"
	"github.com/lox/holdem-equity/internal/config"
	"github.com/lox/holdem-equity/internal/display"
)

// BenchCmd runs the benchmark suite and checks the signature. The spot list,
// game count and expected signature come from the configuration file when
// one is present, and so does the thread count when none is given; a
// mismatching signature is a failure.
type BenchCmd struct {
	Threads int `arg:"" optional:"" default:"0" help:"Worker threads (0: from configuration)"`
}

func (c *BenchCmd) Run(app *Context) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}

	threads := c.Threads
	if threads <= 0 {
		threads = cfg.Bench.Threads
	}

	stats, err := bench.Run(bench.Options{
		Spots:     cfg.Bench.Spots,
		Games:     cfg.Bench.Games,
		Threads:   threads,
		Signature: cfg.Bench.Signature,
		OnSpot: func(i int, r bench.SpotResult) {
			app.Logger.Info("position played", "n", i+1, "spot", r.Spot)
			fmt.Print(display.ResultTable(r.Results, r.Games))
			fmt.Println()
		},
	})
	if err != nil {
		return err
	}

	verdict := "FAIL"
	if stats.OK {
		verdict = "OK"
	}
	fmt.Printf("===========================\n")
	fmt.Printf("Total time  (ms): %d\n", stats.Elapsed.Milliseconds())
	fmt.Printf("Spots played (M): %d\n", stats.Spots/1_000_000)
	fmt.Printf("Cards/second    : %d\n", stats.CardsPerSecond())
	fmt.Printf("Spots/second    : %d\n", stats.SpotsPerSecond())
	fmt.Printf("Signature       : %d (%s)\n", stats.Signature, verdict)

	if !stats.OK {
		return fmt.Errorf("signature %d does not match expected %d", stats.Signature, cfg.Bench.Signature)
	}
	return nil
}
