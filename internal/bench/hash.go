package bench

// Hash is the 64-bit mix the benchmark signature is built from. One value is
// folded in per (spot, player) tally, in spot-list order.
type Hash struct {
	mix uint64
}

const (
	hashMulp uint64 = 2654435789
	hashInit uint64 = 104395301
)

// NewHash returns a hash in its initial state.
func NewHash() *Hash { return &Hash{mix: hashInit} }

// Add folds one tally into the mix.
func (h *Hash) Add(v uint64) {
	h.mix += (v * hashMulp) ^ (h.mix >> 23)
}

// Sum finalizes the mix. Further Adds remain valid; Sum does not mutate.
func (h *Hash) Sum() uint64 { return h.mix ^ (h.mix << 37) }
