// Package delivery simulates message delivery outcomes. The Simulator
// interface is the seam where a real delivery integration would plug in
// without touching the campaign lifecycle engine.
package delivery

import (
	"math/rand"
	"sync"
	"time"
)

// Simulator derives sent/failed counts for an audience.
type Simulator interface {
	Simulate(audienceSize int) (sent int, failed int)
}

// RandomSimulator samples a success ratio uniformly from [MinRate, MaxRate].
type RandomSimulator struct {
	MinRate float64
	MaxRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSimulator creates a RandomSimulator with the given success-rate
// band. Out-of-range or inverted bands are clamped to [0, 1].
func NewRandomSimulator(minRate, maxRate float64) *RandomSimulator {
	if minRate < 0 {
		minRate = 0
	}
	if maxRate > 1 {
		maxRate = 1
	}
	if maxRate < minRate {
		minRate, maxRate = maxRate, minRate
	}
	return &RandomSimulator{
		MinRate: minRate,
		MaxRate: maxRate,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Simulate derives sent and failed counts. sent + failed always equals
// audienceSize; a zero audience yields zero counts.
func (s *RandomSimulator) Simulate(audienceSize int) (int, int) {
	if audienceSize <= 0 {
		return 0, 0
	}
	s.mu.Lock()
	ratio := s.MinRate + s.rng.Float64()*(s.MaxRate-s.MinRate)
	s.mu.Unlock()
	sent := int(float64(audienceSize) * ratio)
	return sent, audienceSize - sent
}

// FixedSimulator always applies the same success ratio. Used in tests.
type FixedSimulator struct {
	Rate float64
}

// Simulate derives counts from the fixed ratio.
func (s FixedSimulator) Simulate(audienceSize int) (int, int) {
	if audienceSize <= 0 {
		return 0, 0
	}
	sent := int(float64(audienceSize) * s.Rate)
	return sent, audienceSize - sent
}
