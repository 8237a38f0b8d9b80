package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

func TestRepairIsIdempotent(t *testing.T) {
	ship := &stowage.Ship{ID: "s", Tanks: []stowage.Tank{
		{ID: "t1", Name: "t1", Volume: 500},
		{ID: "t2", Name: "t2", Volume: 500},
	}}
	cargo := stowage.NewCargo("crude", 600, 0, 0, nil, false)
	available := NewAvailableCapacity(ship, nil)
	gs := newGeneticSolver(ship, []*stowage.Cargo{cargo}, available, stowage.DefaultSettings().GA, rand.New(rand.NewSource(3)))

	once := gs.repair(gs.randomChromosome())
	twice := gs.repair(once)

	assert.Equal(t, once.genes, twice.genes)
}

func TestRepairNeverLeavesATankOverCapacity(t *testing.T) {
	ship := &stowage.Ship{ID: "s", Tanks: []stowage.Tank{
		{ID: "t1", Name: "t1", Volume: 300},
		{ID: "t2", Name: "t2", Volume: 300},
	}}
	cargo := stowage.NewCargo("crude", 500, 0, 0, nil, false)
	available := NewAvailableCapacity(ship, nil)
	gs := newGeneticSolver(ship, []*stowage.Cargo{cargo}, available, stowage.DefaultSettings().GA, rand.New(rand.NewSource(11)))

	overflowing := chromosome{genes: []gene{{cargoID: cargo.ID, quantity: 900}, {cargoID: "", quantity: 0}}}
	repaired := gs.repair(overflowing)

	for i, id := range gs.tankIDs {
		assert.LessOrEqual(t, repaired.genes[i].quantity, gs.tankCapacity[id]+1e-9)
	}
}

func TestRepairPullsUnderfilledCargoUpToRequestedVolume(t *testing.T) {
	ship := &stowage.Ship{ID: "s", Tanks: []stowage.Tank{
		{ID: "t1", Name: "t1", Volume: 1000},
	}}
	cargo := stowage.NewCargo("crude", 500, 0, 0, nil, false)
	available := NewAvailableCapacity(ship, nil)
	settings := stowage.DefaultSettings().GA
	settings.ReceiverTolerance = 0.05
	gs := newGeneticSolver(ship, []*stowage.Cargo{cargo}, available, settings, rand.New(rand.NewSource(5)))

	empty := chromosome{genes: []gene{{cargoID: "", quantity: 0}}}
	repaired := gs.repair(empty)

	assert.InDelta(t, 500.0, gs.totalFor(repaired, cargo.ID), 1e-6)
}

func TestRouletteSelectAlwaysPicksTheSoleFitIndividualWhenOthersAreZero(t *testing.T) {
	ship := &stowage.Ship{ID: "s", Tanks: []stowage.Tank{{ID: "t1", Name: "t1", Volume: 500}}}
	cargo := stowage.NewCargo("crude", 400, 0, 0, nil, false)
	available := NewAvailableCapacity(ship, nil)
	gs := newGeneticSolver(ship, []*stowage.Cargo{cargo}, available, stowage.DefaultSettings().GA, rand.New(rand.NewSource(7)))

	population := []chromosome{{genes: []gene{{cargoID: cargo.ID, quantity: 400}}}, {genes: []gene{{cargoID: "", quantity: 0}}}, {genes: []gene{{cargoID: "", quantity: 0}}}}
	fitnesses := []float64{1000, 0, 0}

	for i := 0; i < 20; i++ {
		picked := gs.rouletteSelect(population, fitnesses)
		assert.Equal(t, cargo.ID, picked.genes[0].cargoID)
	}
}

func TestRouletteSelectHandlesAnAllNegativeFitnessPopulation(t *testing.T) {
	ship := &stowage.Ship{ID: "s", Tanks: []stowage.Tank{{ID: "t1", Name: "t1", Volume: 500}}}
	cargo := stowage.NewCargo("crude", 400, 0, 0, nil, false)
	available := NewAvailableCapacity(ship, nil)
	gs := newGeneticSolver(ship, []*stowage.Cargo{cargo}, available, stowage.DefaultSettings().GA, rand.New(rand.NewSource(9)))

	population := []chromosome{{genes: []gene{{cargoID: cargo.ID, quantity: 400}}}, {genes: []gene{{cargoID: "", quantity: 0}}}}
	fitnesses := []float64{-5, -500}

	picked := gs.rouletteSelect(population, fitnesses)
	assert.NotNil(t, picked.genes)
}

func TestSelectParentUsesRouletteWhenConfigured(t *testing.T) {
	ship := &stowage.Ship{ID: "s", Tanks: []stowage.Tank{{ID: "t1", Name: "t1", Volume: 500}}}
	cargo := stowage.NewCargo("crude", 400, 0, 0, nil, false)
	available := NewAvailableCapacity(ship, nil)
	settings := stowage.DefaultSettings().GA
	settings.Selection = stowage.SelectionRoulette
	gs := newGeneticSolver(ship, []*stowage.Cargo{cargo}, available, settings, rand.New(rand.NewSource(13)))

	population := []chromosome{{genes: []gene{{cargoID: cargo.ID, quantity: 400}}}, {genes: []gene{{cargoID: "", quantity: 0}}}}
	fitnesses := []float64{1000, 0}

	picked := gs.selectParent(population, fitnesses)
	assert.Equal(t, cargo.ID, picked.genes[0].cargoID)
}
