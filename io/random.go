package io

import (
	"fmt"
	"iter"
	"maps"
	"math/rand/v2"
)

var _random_defines = map[string]string{
	"RANDOM": fmt.Sprintf("$%02x", REG_RANDOM),
}

// Random is a seeded source of random bytes.
type Random struct {
	Seed uint64 // Seed the sequence restarts from on rewind.

	rng *rand.Rand
}

var _ Register = (*Random)(nil)

// NewRandom creates a random byte source.
func NewRandom(seed uint64) (rnd *Random) {
	rnd = &Random{Seed: seed}
	rnd.Rewind()
	return
}

// Defines returns the random register symbol.
func (rnd *Random) Defines() iter.Seq2[string, string] {
	return maps.All(_random_defines)
}

// Peek returns the next random byte.
func (rnd *Random) Peek() uint8 {
	if rnd.rng == nil {
		rnd.Rewind()
	}
	return uint8(rnd.rng.Uint32())
}

// Rewind restarts the sequence from the seed.
func (rnd *Random) Rewind() {
	rnd.rng = rand.New(rand.NewPCG(rnd.Seed, rnd.Seed^0x6502))
}

// Rand returns the underlying generator.
func (rnd *Random) Rand() *rand.Rand {
	if rnd.rng == nil {
		rnd.Rewind()
	}
	return rnd.rng
}
