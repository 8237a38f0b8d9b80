package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

func TestSimpleScoreMatchesTheCompletionAndUtilizationBlend(t *testing.T) {
	ship := &stowage.Ship{ID: "s", Tanks: []stowage.Tank{
		{ID: "t1", Name: "t1", Volume: 500},
		{ID: "t2", Name: "t2", Volume: 500},
	}}
	cargo := stowage.NewCargo("crude", 800, 0, 0, nil, false)
	cargoes := []*stowage.Cargo{cargo}

	plan := stowage.NewPlan("", ship.ID, SystemClock.Now())
	plan.Place(stowage.Assignment{TankID: "t1", CargoID: cargo.ID, QuantityLoaded: 500})
	plan.Place(stowage.Assignment{TankID: "t2", CargoID: cargo.ID, QuantityLoaded: 100})

	// loaded = 600, requested = 800, capacity = 1000.
	// completion = 600/800*100*0.6 = 45, utilization = 600/1000*100*0.4 = 24.
	want := 45.0 + 24.0
	assert.InDelta(t, want, simpleScore(plan, ship, cargoes), 1e-9)
}

func TestSimpleScoreIsCappedAtOneHundred(t *testing.T) {
	ship := &stowage.Ship{ID: "s", Tanks: []stowage.Tank{{ID: "t1", Name: "t1", Volume: 1000}}}
	cargo := stowage.NewCargo("crude", 500, 0, 0, nil, false)
	cargoes := []*stowage.Cargo{cargo}

	plan := stowage.NewPlan("", ship.ID, SystemClock.Now())
	plan.Place(stowage.Assignment{TankID: "t1", CargoID: cargo.ID, QuantityLoaded: 1000})

	assert.Equal(t, 100.0, simpleScore(plan, ship, cargoes))
}

func TestSimpleScoreDiffersFromThePublicCompositeScore(t *testing.T) {
	ship := &stowage.Ship{ID: "s", Tanks: []stowage.Tank{
		{ID: "t1", Name: "t1", Volume: 500},
		{ID: "t2", Name: "t2", Volume: 500},
	}}
	cargo := stowage.NewCargo("crude", 800, 0, 0, nil, false)
	cargoes := []*stowage.Cargo{cargo}

	plan := stowage.NewPlan("", ship.ID, SystemClock.Now())
	plan.Place(stowage.Assignment{TankID: "t1", CargoID: cargo.ID, QuantityLoaded: 500})

	assert.NotEqual(t, Score(plan, ship, cargoes), simpleScore(plan, ship, cargoes))
}
