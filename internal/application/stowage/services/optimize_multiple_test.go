package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/application/stowage/services"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
	"github.com/akinaridici/stowagemaster/test/helpers"
)

func TestOptimizeMultipleReturnsOneSolutionPerRequestedStrategy(t *testing.T) {
	ship := helpers.NewTestShipWithVolumes([]float64{1000, 1000})
	small := helpers.NewTestCargo("small", 150)
	large := helpers.NewTestCargo("large", 900)
	settings := stowage.DefaultSettings()

	solutions := services.OptimizeMultiple(ship, []*stowage.Cargo{small, large}, nil, nil, settings, 3)

	assert.LessOrEqual(t, len(solutions), 3)
	assert.NotEmpty(t, solutions)
}

func TestOptimizeMultipleSortsSolutionsBestScoreFirst(t *testing.T) {
	ship := helpers.NewTestShipWithVolumes([]float64{1000, 1000})
	small := helpers.NewTestCargo("small", 150)
	large := helpers.NewTestCargo("large", 900)
	settings := stowage.DefaultSettings()

	solutions := services.OptimizeMultiple(ship, []*stowage.Cargo{small, large}, nil, nil, settings, 5)

	for i := 1; i < len(solutions); i++ {
		assert.GreaterOrEqual(t, solutions[i-1].Score, solutions[i].Score)
	}
}

func TestOptimizeMultipleDropsDuplicateAssignmentsAcrossStrategies(t *testing.T) {
	// A single cargo has nowhere else to go regardless of how the
	// (trivial, one-element) ordering is permuted, so every strategy
	// collapses onto the same assignment signature.
	ship := helpers.NewTestShipWithVolumes([]float64{1000})
	cargo := helpers.NewTestCargo("crude", 900)
	settings := stowage.DefaultSettings()

	solutions := services.OptimizeMultiple(ship, []*stowage.Cargo{cargo}, nil, nil, settings, 5)

	assert.Len(t, solutions, 1)
}
