package poker

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// TieUnit is the integer quantum a tied pot is split in. Every possible
// number of way-ties at a nine-handed table divides it exactly, so tie
// accounting never rounds.
const TieUnit uint64 = 2520

// Result tallies one player's outcomes over a batch of simulations. Ties is
// counted in TieUnit fractions: a k-way tie adds TieUnit/k.
type Result struct {
	Wins uint64
	Ties uint64
}

// Equity returns the player's pot share over games simulations.
func (r Result) Equity(games int) float64 {
	return float64(TieUnit*r.Wins+r.Ties) / float64(TieUnit) / float64(games)
}

// Pool fans a batch of simulations out over parallel workers. Worker i seeds
// its own PRNG from i, so a (spot, games, threads) run is reproducible
// bit-for-bit. Progress, when set, is advanced as iterations complete; it is
// the only cross-thread state a run touches before the final reduction.
type Pool struct {
	Threads  int
	Progress *atomic.Int64
}

// Run plays games simulations of s and returns the summed per-player
// tallies. Each worker keeps a private Result slice; the reduction happens
// once, after all workers have joined.
func (p *Pool) Run(s *Spot, games int) []Result {
	threads := max(p.Threads, 1)
	per := games / threads
	if games < threads {
		per = 1
	}

	locals := make([][]Result, threads)
	var g errgroup.Group
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			rng := NewPRNG(uint64(i))
			res := make([]Result, s.Players())
			for n := 0; n < per; n++ {
				s.Run(res, rng)
				if p.Progress != nil && n&0x3FF == 0x3FF {
					p.Progress.Add(0x400)
				}
			}
			locals[i] = res
			return nil
		})
	}
	_ = g.Wait() // workers are infallible; a panic propagates

	out := make([]Result, s.Players())
	for _, res := range locals {
		for i, r := range res {
			out[i].Wins += r.Wins
			out[i].Ties += r.Ties
		}
	}
	return out
}

// Games returns the number of simulations a Run with these settings
// actually plays, which differs from the request when it does not divide
// evenly among the workers.
func (p *Pool) Games(games int) int {
	threads := max(p.Threads, 1)
	per := games / threads
	if games < threads {
		per = 1
	}
	return per * threads
}

// Run plays games simulations of s across threads workers.
func Run(s *Spot, games, threads int) []Result {
	return (&Pool{Threads: threads}).Run(s, games)
}
