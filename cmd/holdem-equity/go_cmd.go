package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/holdem-equity/internal/display"
	"github.com/lox/holdem-equity/poker"
)

// GoCmd simulates one spot. The spot tokens are taken verbatim, and like the
// interactive prompt the command accepts up to two trailing integers as the
// game and thread counts: holdem-equity go 2P AhAd KsKd 200000 4.
type GoCmd struct {
	Spot    []string `arg:"" passthrough:"" help:"Spot tokens, e.g. 2P AhAd KsKd - 2c 3c 4c"`
	Games   int      `short:"g" default:"1000000" help:"Number of games to simulate"`
	Threads int      `short:"t" default:"1" help:"Worker threads"`
}

func (c *GoCmd) Run(app *Context) error {
	spotFields, nums := display.SplitTrailingInts(c.Spot)
	games, threads := c.Games, c.Threads
	if len(nums) > 0 {
		games = nums[0]
	}
	if len(nums) > 1 {
		threads = nums[1]
	}
	games = (&poker.Pool{Threads: threads}).Games(games)

	spot, err := poker.NewSpot(strings.Join(spotFields, " "))
	if err != nil {
		return err
	}
	app.Logger.Debug("spot parsed", "players", spot.Players(), "missing", spot.Missing())

	start := time.Now()
	results := poker.Run(spot, games, threads)
	elapsed := time.Since(start).Truncate(time.Millisecond)

	fmt.Print(display.ResultTable(results, games))
	fmt.Printf("\n%d games in %v on %d threads\n", games, elapsed, threads)
	return nil
}
