package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/application/stowage/services"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
	"github.com/akinaridici/stowagemaster/test/helpers"
)

func TestOptimizeWithRetriesPicksHighestScoringOrdering(t *testing.T) {
	ship := helpers.NewTestShip(8, 500)
	cargoes := []*stowage.Cargo{
		helpers.NewTestCargo("crude", 1300),
		helpers.NewTestCargo("fuel", 900),
		helpers.NewTestCargo("oil", 400),
	}
	settings := stowage.DefaultSettings()

	plan := services.OptimizeWithRetries(ship, cargoes, nil, nil, 5, settings)
	single := services.OptimizePhase(ship, cargoes, nil, nil, settings)

	assert.GreaterOrEqual(t, services.Score(plan, ship, cargoes), services.Score(single, ship, cargoes))
}

func TestOptimizeWithRetriesClampsToAvailableOrderingCount(t *testing.T) {
	ship := helpers.NewTestShip(4, 500)
	cargoes := []*stowage.Cargo{helpers.NewTestCargo("crude", 1000)}
	settings := stowage.DefaultSettings()

	// num_retries far larger than the number of canonical orderings
	// must not panic and must still return a usable plan.
	plan := services.OptimizeWithRetries(ship, cargoes, nil, nil, 1000, settings)
	assert.NotNil(t, plan)
}

func TestOptimizeWithRetriesZeroRetriesTriesEveryOrdering(t *testing.T) {
	ship := helpers.NewTestShip(6, 500)
	cargoes := []*stowage.Cargo{
		helpers.NewTestMandatoryCargo("crude", 700),
		helpers.NewTestCargo("fuel", 1000),
	}
	settings := stowage.DefaultSettings()

	plan := services.OptimizeWithRetries(ship, cargoes, nil, nil, 0, settings)
	assert.NotNil(t, plan)
	assert.InDelta(t, 700.0, plan.LoadedVolumeForCargo(cargoes[0].ID), 1e-6)
}
