package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/application/stowage/services"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
	"github.com/akinaridici/stowagemaster/test/helpers"
)

func TestOptimizeLegacyExactFitTankPreferred(t *testing.T) {
	ship := helpers.NewTestShipWithVolumes([]float64{300, 1000})
	cargo := helpers.NewTestCargo("crude", 300)
	settings := stowage.DefaultSettings()

	plan := services.OptimizeLegacy(ship, []*stowage.Cargo{cargo}, nil, nil, settings)

	a, ok := plan.Assignments[ship.Tanks[0].ID]
	assert.True(t, ok)
	assert.InDelta(t, 300.0, a.QuantityLoaded, 1e-9)
}

func TestOptimizeLegacyOrdersCargoesByQuantityDescending(t *testing.T) {
	ship := helpers.NewTestShipWithVolumes([]float64{1000, 1000})
	small := helpers.NewTestCargo("small", 150)
	large := helpers.NewTestCargo("large", 900)
	settings := stowage.DefaultSettings()

	// sorted descending by quantity before either is placed: the 900
	// cargo claims the first tank outright, leaving it for the 150
	// cargo to fall back to the second.
	plan := services.OptimizeLegacy(ship, []*stowage.Cargo{small, large}, nil, nil, settings)

	assert.Equal(t, large.ID, plan.Assignments[ship.Tanks[0].ID].CargoID)
	assert.Equal(t, small.ID, plan.Assignments[ship.Tanks[1].ID].CargoID)
}

func TestOptimizeLegacyRelaxesUtilizationFloorOnceWhenNoTankQualifies(t *testing.T) {
	ship := helpers.NewTestShipWithVolumes([]float64{1000})
	cargo := helpers.NewTestCargo("crude", 100) // 10% fill, below any realistic floor
	settings := stowage.DefaultSettings()
	settings.MinUtilization = 0.65

	plan := services.OptimizeLegacy(ship, []*stowage.Cargo{cargo}, nil, nil, settings)

	a, ok := plan.Assignments[ship.Tanks[0].ID]
	assert.True(t, ok)
	assert.InDelta(t, 100.0, a.QuantityLoaded, 1e-9)
}
