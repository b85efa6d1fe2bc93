// Package combat provides the turn-based encounter engine: dice, the
// stat-driven damage model, the resolution pipeline and scripted enemy
// policies.
package combat

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Roller is the single source of randomness for combat. Every draw is
// independent; tests substitute a scripted implementation.
type Roller interface {
	// Roll returns an integer uniformly drawn from 1..sides.
	Roll(sides int) int
	// Chance reports true with probability p. p <= 0 is never, p >= 1 always.
	Chance(p float64) bool
}

// NewRoller returns the process-wide roller, seeded from crypto/rand.
func NewRoller() Roller {
	return &randRoller{rng: rand.New(rand.NewSource(newSeed()))}
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

type randRoller struct {
	rng *rand.Rand
}

func (r *randRoller) Roll(sides int) int {
	if sides < 1 {
		return 1
	}
	return r.rng.Intn(sides) + 1
}

func (r *randRoller) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.rng.Float64() < p
}
