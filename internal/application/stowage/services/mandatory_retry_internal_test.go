package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// singleTankEstimatedForTwo builds a one-tank ship whose sole tank is
// just close enough to the mandatory cargo's remaining volume to pass
// phase1 untouched, while the cargo's estimated tank count comes out
// to 2 (the ratio of remaining to that tank's capacity sits just
// above 1). A one-tank ship can never produce a phase2 pair, so the
// estimated phase is guaranteed to fail regardless of tolerance.
func singleTankEstimatedForTwo() (*stowage.Ship, *stowage.Cargo, float64) {
	ship := &stowage.Ship{ID: "ship-1", Tanks: []stowage.Tank{{ID: "t1", Name: "t1", Volume: 1000}}}
	cargo := stowage.NewCargo("crude", 1040, 0, 0, nil, true)
	return ship, cargo, 1040
}

func TestEstimatedTankCountMatchesFixture(t *testing.T) {
	ship, _, remaining := singleTankEstimatedForTwo()
	available := NewAvailableCapacity(ship, nil)

	assert.Equal(t, 2, estimatedTankCount(remaining, available))
}

func TestStage1TriesOnlyTheEstimatedPhaseEvenWhenAnEarlierPhaseWouldSucceed(t *testing.T) {
	ship, cargo, remaining := singleTankEstimatedForTwo()
	available := NewAvailableCapacity(ship, nil)
	plan := stowage.NewPlan("", ship.ID, SystemClock.Now())
	settings := stowage.DefaultSettings()

	placed := placeMandatoryAtEstimatedPhase(ship, plan, available, cargo, remaining, settings)

	assert.False(t, placed, "a one-tank ship can never satisfy the two-tank phase, even across the full tolerance ladder")
	assert.Empty(t, plan.Assignments, "stage 1 must not fall through to phase1 just because it could have placed the cargo")
	assert.Equal(t, 1000.0, available["t1"], "stage 1 must not touch capacity it never actually assigned")
}

func TestStage2PlacesTheCargoOnlyAfterStage1IsExhausted(t *testing.T) {
	ship, cargo, remaining := singleTankEstimatedForTwo()
	available := NewAvailableCapacity(ship, nil)
	plan := stowage.NewPlan("", ship.ID, SystemClock.Now())
	settings := stowage.DefaultSettings()

	assert.False(t, placeMandatoryAtEstimatedPhase(ship, plan, available, cargo, remaining, settings))

	placed := placeMandatoryAcrossAllPhases(ship, plan, available, cargo, remaining, settings)

	assert.True(t, placed)
	a, ok := plan.Assignments["t1"]
	assert.True(t, ok)
	assert.Equal(t, cargo.ID, a.CargoID)
}

func TestPlaceMandatoryWithRetryEndToEndFallsThroughBothStages(t *testing.T) {
	ship, cargo, _ := singleTankEstimatedForTwo()
	available := NewAvailableCapacity(ship, nil)
	plan := stowage.NewPlan("", ship.ID, SystemClock.Now())
	settings := stowage.DefaultSettings()

	placeMandatoryWithRetry(ship, plan, available, cargo, settings)

	a, ok := plan.Assignments["t1"]
	assert.True(t, ok)
	assert.Equal(t, cargo.ID, a.CargoID)
}
