package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistributeSplitsEvenlyWhenRoomAllows(t *testing.T) {
	available := AvailableCapacity{"t1": 600, "t2": 600}
	assigned := distribute(1000, []string{"t1", "t2"}, available)
	assert.InDelta(t, 500.0, assigned["t1"], 1e-9)
	assert.InDelta(t, 500.0, assigned["t2"], 1e-9)
}

func TestDistributeRedistributesOverflowToHeadroomTanks(t *testing.T) {
	available := AvailableCapacity{"t1": 100, "t2": 900}
	assigned := distribute(1000, []string{"t1", "t2"}, available)
	assert.InDelta(t, 100.0, assigned["t1"], 1e-9)
	assert.InDelta(t, 900.0, assigned["t2"], 1e-9)
}

func TestDistributeNeverExceedsAvailableCapacity(t *testing.T) {
	available := AvailableCapacity{"t1": 50, "t2": 50, "t3": 1000}
	assigned := distribute(900, []string{"t1", "t2", "t3"}, available)
	for id, q := range assigned {
		assert.LessOrEqualf(t, q, available[id], "tank %s overfilled", id)
	}
	var total float64
	for _, q := range assigned {
		total += q
	}
	assert.InDelta(t, 900.0, total, 1e-6)
}
