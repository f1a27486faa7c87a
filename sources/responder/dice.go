package responder

import "math/rand/v2"

// Dice is the randomness behind every reply decision.
type Dice interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// IntN returns a uniform draw in [0, n).
	IntN(n int) int
}

type globalDice struct{}

func NewDice() Dice {
	return globalDice{}
}

func (globalDice) Float64() float64 {
	return rand.Float64()
}

func (globalDice) IntN(n int) int {
	return rand.IntN(n)
}
