package tictactoe

import "math/rand/v2"

// Strategy chooses the computer's reply from the free cells.
type Strategy interface {
	// Pick returns one of free. free is never empty.
	Pick(free []Coord) Coord
}

// RandomOpponent picks uniformly among the free cells.
// The zero value uses the global generator.
type RandomOpponent struct {
	intN func(n int) int
}

// NewRandomOpponent returns an opponent backed by the global generator,
// which is safe for concurrent use.
func NewRandomOpponent() *RandomOpponent {
	return &RandomOpponent{intN: rand.IntN}
}

// NewSeededOpponent returns an opponent with a deterministic generator.
// It is not safe for concurrent use.
func NewSeededOpponent(seed1, seed2 uint64) *RandomOpponent {
	r := rand.New(rand.NewPCG(seed1, seed2))
	return &RandomOpponent{intN: r.IntN}
}

// Pick returns a uniformly chosen free cell.
func (o *RandomOpponent) Pick(free []Coord) Coord {
	intN := o.intN
	if intN == nil {
		intN = rand.IntN
	}
	return free[intN(len(free))]
}
