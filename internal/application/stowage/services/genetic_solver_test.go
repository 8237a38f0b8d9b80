package services_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/application/stowage/services"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
	"github.com/akinaridici/stowagemaster/test/helpers"
)

// S6: the same seed against the same inputs must reproduce the same plan.
func TestOptimizeGeneticIsDeterministicForAFixedSeed(t *testing.T) {
	ship := helpers.NewTestShip(6, 500)
	cargoes := []*stowage.Cargo{
		helpers.NewTestCargo("crude", 1400),
		helpers.NewTestCargo("fuel", 600),
	}
	settings := stowage.DefaultSettings()
	settings.GA.MaxGenerations = 25
	settings.GA.PopulationSize = 20

	planA := services.OptimizeGenetic(ship, cargoes, nil, nil, settings, rand.New(rand.NewSource(42)))
	planB := services.OptimizeGenetic(ship, cargoes, nil, nil, settings, rand.New(rand.NewSource(42)))

	assert.Equal(t, planA.Assignments, planB.Assignments)
}

func TestOptimizeGeneticRespectsTankCapacity(t *testing.T) {
	ship := helpers.NewTestShip(6, 500)
	cargoes := []*stowage.Cargo{
		helpers.NewTestCargo("crude", 1400),
		helpers.NewTestCargo("fuel", 900),
	}
	settings := stowage.DefaultSettings()
	settings.GA.MaxGenerations = 25
	settings.GA.PopulationSize = 20

	plan := services.OptimizeGenetic(ship, cargoes, nil, nil, settings, rand.New(rand.NewSource(7)))

	for tankID, a := range plan.Assignments {
		tank := ship.TankByID(tankID)
		assert.LessOrEqual(t, a.QuantityLoaded, tank.Volume+1e-6)
	}
}

func TestOptimizeGeneticPlacesMandatoryCargoBeforeTheGARuns(t *testing.T) {
	ship := helpers.NewTestShip(4, 500)
	cargoes := []*stowage.Cargo{
		helpers.NewTestMandatoryCargo("crude", 700),
		helpers.NewTestCargo("fuel", 600),
	}
	settings := stowage.DefaultSettings()
	settings.GA.MaxGenerations = 15
	settings.GA.PopulationSize = 16

	plan := services.OptimizeGenetic(ship, cargoes, nil, nil, settings, rand.New(rand.NewSource(1)))

	assert.InDelta(t, 700.0, plan.LoadedVolumeForCargo(cargoes[0].ID), 1e-6)
}
