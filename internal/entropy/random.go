// Package entropy provides the injectable random source every AI decision
// draws from. A seeded source replays the same game from the same seed.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	mrand "math/rand/v2"
	"sync"
)

// Source yields random numbers for AI decisions.
type Source interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
	// Float returns a uniform float64 in [0, 1).
	Float() float64
}

// Chance reports whether a percent roll in [0, 100) lands under pct.
func Chance(src Source, pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return src.IntN(100) < pct
}

// Seeded is a deterministic PCG-backed Source safe for concurrent use.
type Seeded struct {
	seed uint64

	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeeded creates a deterministic source.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewRandom creates a source seeded from crypto/rand. The seed is logged so a
// game can be replayed.
func NewRandom() *Seeded {
	seed := cryptoSeed()
	slog.Debug("entropy seeded", "seed", seed)
	return NewSeeded(seed)
}

// Seed returns the seed the source was created with.
func (s *Seeded) Seed() uint64 {
	return s.seed
}

func (s *Seeded) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func (s *Seeded) Float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// cryptoSeed reads 64 bits from crypto/rand.
func cryptoSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand does not fail on supported platforms.
		return 0x5eed
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Scripted replays a fixed list of draws and then repeats the last one.
// Each IntN result is reduced modulo n. Used to force outcomes in tests.
type Scripted struct {
	Draws []int
	next  int
}

func (s *Scripted) draw() int {
	if len(s.Draws) == 0 {
		return 0
	}
	v := s.Draws[min(s.next, len(s.Draws)-1)]
	s.next++
	return v
}

func (s *Scripted) IntN(n int) int {
	v := s.draw() % n
	if v < 0 {
		v += n
	}
	return v
}

func (s *Scripted) Float() float64 {
	return float64(s.draw()%100) / 100
}
