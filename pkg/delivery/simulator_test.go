package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomSimulatorSumsToAudience(t *testing.T) {
	sim := NewRandomSimulator(0.75, 0.95)

	for i := 0; i < 100; i++ {
		sent, failed := sim.Simulate(500)
		assert.Equal(t, 500, sent+failed)
		assert.GreaterOrEqual(t, sent, 375) // 0.75 * 500
		assert.LessOrEqual(t, sent, 475)    // 0.95 * 500
	}
}

func TestRandomSimulatorZeroAudience(t *testing.T) {
	sim := NewRandomSimulator(0.75, 0.95)
	sent, failed := sim.Simulate(0)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)

	sent, failed = sim.Simulate(-5)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
}

func TestNewRandomSimulatorClampsBand(t *testing.T) {
	sim := NewRandomSimulator(-0.5, 1.5)
	assert.Equal(t, 0.0, sim.MinRate)
	assert.Equal(t, 1.0, sim.MaxRate)

	sim = NewRandomSimulator(0.9, 0.2)
	assert.Equal(t, 0.2, sim.MinRate)
	assert.Equal(t, 0.9, sim.MaxRate)
}

func TestFixedSimulator(t *testing.T) {
	sim := FixedSimulator{Rate: 0.8}

	sent, failed := sim.Simulate(100)
	assert.Equal(t, 80, sent)
	assert.Equal(t, 20, failed)

	sent, failed = sim.Simulate(0)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
}
