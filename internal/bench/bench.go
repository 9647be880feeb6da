// Package bench runs the fixed spot list the engine is benchmarked and
// checksummed with.
package bench

import (
	"fmt"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/holdem-equity/poker"
)

// DefaultSpots is the benchmark spot list. The published signature is
// computed over exactly these spots in this order.
var DefaultSpots = []string{
	"2P 3d",
	"3P KhKs - Ac Ad 7c Ts Qs",
	"4P AcTc TdTh - 5h 6h 9c",
	"5P 2c3d KsTc AhTd - 4d 5d 9c 9d",
	"6P Ac Ad KsKd 3c - 2c 2h 7c 7h 8c",
	"7P Ad Kc QhJh 3s4s - 2c 2h 7c 5h 8c",
	"8P - Ac Ah 3d 7h 8c",
	"9P",
	"4P AhAd AcTh 7c6s 2h3h - 2c 3c 4c",
	"4P AhAd AcTh 7c6s 2h3h",
}

const (
	// GamesPerSpot is the per-spot game count of a full benchmark run.
	GamesPerSpot = 1500 * 1000

	// GoodSignature is the published checksum for DefaultSpots at
	// GamesPerSpot games with workers seeded by index. It pins scoring and
	// the RNG stream together; a different generator yields a different
	// signature.
	GoodSignature uint64 = 11714201772365687243
)

// SpotResult is one benchmarked spot's outcome.
type SpotResult struct {
	Spot    string
	Players int
	Games   int
	Results []poker.Result
}

// Stats aggregates a benchmark run.
type Stats struct {
	Elapsed   time.Duration
	Spots     uint64
	Cards     uint64
	Signature uint64
	OK        bool
	PerSpot   []SpotResult
}

// CardsPerSecond returns the evaluated-card throughput.
func (s *Stats) CardsPerSecond() uint64 {
	return uint64(time.Second) * s.Cards / uint64(s.Elapsed)
}

// SpotsPerSecond returns the simulated-game throughput.
func (s *Stats) SpotsPerSecond() uint64 {
	return uint64(time.Second) * s.Spots / uint64(s.Elapsed)
}

// Options configures a run. Zero values fall back to the reference
// constants; Clock falls back to the real clock.
type Options struct {
	Spots     []string
	Games     int
	Threads   int
	Signature uint64
	Clock     quartz.Clock

	// OnSpot, when set, streams each spot's outcome as it completes.
	OnSpot func(i int, r SpotResult)
}

// Run benchmarks every spot and returns the aggregate stats. All spots are
// validated up front, before any simulation starts.
func Run(opts Options) (*Stats, error) {
	spots := opts.Spots
	if len(spots) == 0 {
		spots = DefaultSpots
	}
	games := opts.Games
	if games <= 0 {
		games = GamesPerSpot
	}
	threads := max(opts.Threads, 1)
	games = (&poker.Pool{Threads: threads}).Games(games)
	wantSig := opts.Signature
	if wantSig == 0 {
		wantSig = GoodSignature
	}
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	parsed := make([]*poker.Spot, len(spots))
	for i, pos := range spots {
		s, err := poker.NewSpot(pos)
		if err != nil {
			return nil, fmt.Errorf("spot %d %q: %w", i+1, pos, err)
		}
		parsed[i] = s
	}

	stats := &Stats{PerSpot: make([]SpotResult, 0, len(parsed))}
	sig := NewHash()
	start := clock.Now()

	for i, s := range parsed {
		results := poker.Run(s, games, threads)
		for p := 0; p < s.Players(); p++ {
			sig.Add(results[p].Wins + results[p].Ties)
		}

		r := SpotResult{Spot: spots[i], Players: s.Players(), Games: games, Results: results}
		stats.PerSpot = append(stats.PerSpot, r)
		if opts.OnSpot != nil {
			opts.OnSpot(i, r)
		}

		stats.Cards += uint64(games) * uint64(s.Players()*2+5)
		stats.Spots += uint64(games)
	}

	// Keep the elapsed time positive so the rate divisions stay defined on
	// very fast runs.
	stats.Elapsed = clock.Now().Sub(start) + time.Millisecond
	stats.Signature = sig.Sum()
	stats.OK = stats.Signature == wantSig
	return stats, nil
}
