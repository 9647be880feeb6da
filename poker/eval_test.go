package poker

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refEval5 scores five cards categorically: category in the top nibbles,
// then the tiebreak ranks in order of significance. Deliberately naive, so
// it can arbitrate the bit-twiddled evaluator.
func refEval5(five []Card) uint64 {
	var cnt [13]int
	flush := true
	for _, c := range five {
		cnt[c.Rank()]++
		if c.Suit() != five[0].Suit() {
			flush = false
		}
	}

	type group struct{ rank, n int }
	var groups []group
	for r := 12; r >= 0; r-- {
		if cnt[r] > 0 {
			groups = append(groups, group{r, cnt[r]})
		}
	}
	// Bigger groups first, equal sizes stay in descending rank order.
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].n > groups[j].n })

	straightHigh := -1
	if len(groups) == 5 {
		if groups[0].rank-groups[4].rank == 4 {
			straightHigh = groups[0].rank
		} else if groups[0].rank == 12 && groups[1].rank == 3 && groups[4].rank == 0 {
			straightHigh = 3 // wheel plays five high
		}
	}

	var cat int
	var tb []int
	switch {
	case flush && straightHigh >= 0:
		cat, tb = 8, []int{straightHigh}
	case groups[0].n == 4:
		cat, tb = 7, []int{groups[0].rank, groups[1].rank}
	case groups[0].n == 3 && groups[1].n == 2:
		cat, tb = 6, []int{groups[0].rank, groups[1].rank}
	case flush:
		cat = 5
		for _, g := range groups {
			tb = append(tb, g.rank)
		}
	case straightHigh >= 0:
		cat, tb = 4, []int{straightHigh}
	case groups[0].n == 3:
		cat, tb = 3, []int{groups[0].rank, groups[1].rank, groups[2].rank}
	case groups[0].n == 2 && groups[1].n == 2:
		cat, tb = 2, []int{groups[0].rank, groups[1].rank, groups[2].rank}
	case groups[0].n == 2:
		cat, tb = 1, []int{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank}
	default:
		cat = 0
		for _, g := range groups {
			tb = append(tb, g.rank)
		}
	}

	s := uint64(cat)
	for _, r := range tb {
		s = s<<4 | uint64(r)
	}
	for i := len(tb); i < 5; i++ {
		s <<= 4
	}
	return s
}

// refEval7 takes the best five of seven.
func refEval7(cards []Card) uint64 {
	best := uint64(0)
	for i := 0; i < 7; i++ {
		for j := i + 1; j < 7; j++ {
			five := make([]Card, 0, 5)
			for k := 0; k < 7; k++ {
				if k != i && k != j {
					five = append(five, cards[k])
				}
			}
			if s := refEval5(five); s > best {
				best = s
			}
		}
	}
	return best
}

func refCategory(cards []Card) int { return int(refEval7(cards) >> 20) }

func evalOf(t *testing.T, tokens string) uint64 {
	t.Helper()
	return handOf(t, tokens).Eval()
}

func TestEvalCategoryOrdering(t *testing.T) {
	// One hand per category, weakest first.
	ladder := []string{
		"Ah Kd Qc Js 9h 7c 2d", // high card
		"Ah Ad Qc Js 9h 7c 2d", // pair
		"Ah Ad Qc Qs 9h 7c 2d", // two pair
		"Ah Ad Ac Qs 9h 7c 2d", // set
		"Ah 2c 3d 4s 5h 9c Td", // straight (wheel)
		"Ah Kh Qh 9h 3h 7c 2d", // flush
		"Ah Ad Ac Qs Qh 7c 2d", // full house
		"Ah Ad Ac As 9h 7c 2d", // quads
		"Ah Kh Qh Jh Th 2c 3d", // straight flush
	}

	prev := uint64(0)
	for i, tokens := range ladder {
		score := evalOf(t, tokens)
		if score <= prev {
			t.Errorf("ladder[%d] %q scored %#x, not above %#x", i, tokens, score, prev)
		}
		prev = score
	}
}

func TestEvalBoundaryCases(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		cmp  int // -1: a<b, 0: a==b, 1: a>b
	}{
		{"royal beats quad aces",
			"Ah Kh Qh Jh Th 2c 3d", "Ad Ah Ac As Kd 2c 3d", 1},
		{"wheel below six-high straight",
			"Ah 2c 3d 4s 5h 9c Td", "2h 3c 4d 5s 6h 9c Td", -1},
		{"overpair loses to two small pairs",
			"Ah Ad Qh Jc 9d 5s 3c", "Kh Kd Qh Qc 9d 5s 2c", -1},
		{"three pairs: top card of the dropped pair kicks",
			"Ah Ad Kh Kd Qh Qd 2c", "Ah Ad Kh Kd Qh 2d 2c", 0},
		{"three pairs beat the same two with a lower kicker",
			"Ah Ad Kh Kd Qh Qd 2c", "Ah Ad Kh Kd Jh Td 2c", 1},
		{"trips plus two pair is a full house",
			"Ah Ad Ac Kh Kd Qh Qd", "Ah Ad Ac Kh Kd 2h 3c", 0},
		{"quads absorb a side set as a kicker",
			"Ah Ad Ac As Kh Kd Kc", "Ah Ad Ac As Kh 2d 3c", 0},
		{"double set plays as the same full house",
			"Ah Ad Ac Kh Kd Kc 2s", "Ah Ad Ac Kh Kd Qh Qd", 0},
		{"full house beats a flush",
			"Ah Ad Ac Kh Kd 2s 3s", "Ah Kh Qh 9h 3h 2c 2d", 1},
		{"six-card flush trims to its best five",
			"Ah Kh Qh Jh 9h 8h 2c", "Ah Kh Qh Jh 9h 2d 3d", 0},
		{"equal-high straights tie regardless of run length",
			"2c 3d 4h 5s 6c 7d 9h", "3c 4d 5h 6s 7c 9d Th", 0},
		{"straight outranks trips inside the same hand",
			"2c 3d 4h 5s 6c 6d 6h", "Ah Ad Ac Qs 9h 7c 2d", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := evalOf(t, tt.a), evalOf(t, tt.b)
			switch tt.cmp {
			case -1:
				assert.Less(t, a, b)
			case 0:
				assert.Equal(t, a, b)
			case 1:
				assert.Greater(t, a, b)
			}
		})
	}
}

func TestEvalFlushDominance(t *testing.T) {
	h := handOf(t, "Ah Kh Qh 9h 3h 2c 2d")
	score := h.Eval()
	require.GreaterOrEqual(t, score, ScoreFlush)
	require.Zero(t, h.Flags&FlagPair, "a flush hand must hide its pairs")
}

func TestEvalFlagCoherence(t *testing.T) {
	hands := []string{
		"Ah Kh Qh Jh Th 2c 3d",
		"Ah Ad Ac Qs Qh 7c 2d",
		"Ah Ad Qc Qs 9h 7c 2d",
		"Ah 2c 3d 4s 5h 9c Td",
		"Ah Ad Ac As Kh Kd Kc",
	}
	for _, tokens := range hands {
		h := handOf(t, tokens)
		h.Eval()
		f := h.Flags
		if f&FlagStraightFlush != 0 {
			assert.NotZero(t, f&FlagStraight, "%s: straight flush implies straight", tokens)
			assert.NotZero(t, f&FlagFlush, "%s: straight flush implies flush", tokens)
		}
		if f&FlagFullHouse != 0 {
			assert.NotZero(t, f&FlagSet, "%s: full house implies a set", tokens)
			assert.NotZero(t, f&FlagPair, "%s: full house implies a pair", tokens)
		}
		if f&FlagDoublePair != 0 {
			assert.NotZero(t, f&FlagPair, "%s: double pair implies a pair", tokens)
		}
	}
}

// randomSeven draws seven distinct cards from a fresh deck.
func randomSeven(rng *PRNG) (Hand, []Card) {
	var h Hand
	var all Card64
	cards := make([]Card, 0, 7)
	for len(cards) < 7 {
		c := Card(rng.Uint64() & 0x3F)
		if h.Add(c, all) {
			all |= c.Bit()
			cards = append(cards, c)
		}
	}
	return h, cards
}

// TestEvalAgainstReference cross-checks the mask evaluator against the naive
// best-five-of-seven scorer on randomized pairs of hands: the relative order
// must agree, and equality must coincide.
func TestEvalAgainstReference(t *testing.T) {
	rng := NewPRNG(7)
	for i := 0; i < 5000; i++ {
		h1, c1 := randomSeven(rng)
		h2, c2 := randomSeven(rng)

		s1, s2 := h1.Eval(), h2.Eval()
		r1, r2 := refEval7(c1), refEval7(c2)

		switch {
		case r1 < r2:
			require.Less(t, s1, s2, "hands %v vs %v", c1, c2)
		case r1 > r2:
			require.Greater(t, s1, s2, "hands %v vs %v", c1, c2)
		default:
			require.Equal(t, s1, s2, "hands %v vs %v", c1, c2)
		}
	}
}

// TestEvalCategoryAgainstReference checks that the dedicated score bits land
// on the categories the reference assigns.
func TestEvalCategoryAgainstReference(t *testing.T) {
	rng := NewPRNG(11)
	for i := 0; i < 5000; i++ {
		h, cards := randomSeven(rng)
		score := h.Eval()

		switch refCategory(cards) {
		case 8:
			require.NotZero(t, score&ScoreStraightFlush, "straight flush: %v", cards)
		case 7:
			require.NotZero(t, score&quadRanks, "quads: %v", cards)
			require.Zero(t, score&ScoreStraightFlush)
		case 6:
			require.NotZero(t, score&ScoreFullHouse, "full house: %v", cards)
			require.Zero(t, score&quadRanks)
		case 5:
			require.NotZero(t, score&ScoreFlush, "flush: %v", cards)
			require.Zero(t, score&(ScoreFullHouse|quadRanks|ScoreStraight))
		case 4:
			require.NotZero(t, score&ScoreStraight, "straight: %v", cards)
			require.Zero(t, score&(ScoreFlush|ScoreFullHouse|quadRanks))
		case 3:
			require.NotZero(t, score&setRanks, "set: %v", cards)
			require.Zero(t, score&(ScoreStraight|ScoreFlush|ScoreFullHouse|quadRanks|ScoreDoublePair))
		case 2:
			require.NotZero(t, score&ScoreDoublePair, "two pair: %v", cards)
			require.Zero(t, score&setRanks)
		case 1:
			require.NotZero(t, score&pairRanks, "pair: %v", cards)
			require.Zero(t, score&(ScoreDoublePair|setRanks))
		case 0:
			require.Zero(t, score&^rank1BB, "high card: %v", cards)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	rng := NewPRNG(1)
	hands := make([]Hand, 1024)
	for i := range hands {
		hands[i], _ = randomSeven(rng)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := hands[i&1023]
		h.Eval()
	}
}
