package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	engine "github.com/akinaridici/stowagemaster/internal/application/stowage"
	"github.com/akinaridici/stowagemaster/internal/application/common"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
	"github.com/akinaridici/stowagemaster/test/helpers"
)

func phaseSettings() stowage.Settings {
	s := stowage.DefaultSettings()
	s.OptimizationAlgorithm = stowage.AlgorithmPhase
	return s
}

func TestLocalClientOptimizeRoundTripsThroughTheMediator(t *testing.T) {
	client := engine.NewLocalClient()
	ship := helpers.NewTestShip(1, 1000)
	cargo := helpers.NewTestCargo("crude", 800)

	plan, err := client.Optimize(context.Background(), engine.OptimizeArgs{
		Ship:     ship,
		Cargoes:  []*stowage.Cargo{cargo},
		Settings: phaseSettings(),
	})
	assert.NoError(t, err)
	assert.InDelta(t, 800.0, plan.LoadedVolumeForCargo(cargo.ID), 1e-6)
}

func TestLocalClientOptimizeRejectsStructurallyInvalidInput(t *testing.T) {
	client := engine.NewLocalClient()
	ship := &stowage.Ship{ID: "s", Tanks: nil}

	_, err := client.Optimize(context.Background(), engine.OptimizeArgs{
		Ship:     ship,
		Cargoes:  []*stowage.Cargo{helpers.NewTestCargo("crude", 100)},
		Settings: phaseSettings(),
	})
	assert.Error(t, err)
}

func TestLocalClientOptimizeWithRetriesUsesTheRetryOrchestrator(t *testing.T) {
	client := engine.NewLocalClient()
	ship := helpers.NewTestShip(8, 500)
	cargoes := []*stowage.Cargo{
		helpers.NewTestCargo("crude", 1300),
		helpers.NewTestCargo("fuel", 900),
	}

	plan, err := client.OptimizeWithRetries(context.Background(), engine.OptimizeArgs{
		Ship:     ship,
		Cargoes:  cargoes,
		Settings: phaseSettings(),
	}, 5)
	assert.NoError(t, err)
	assert.NotNil(t, plan)
}

func TestLocalClientScoreAndValidate(t *testing.T) {
	client := engine.NewLocalClient()
	ship := helpers.NewTestShip(1, 1000)
	cargo := helpers.NewTestCargo("crude", 800)

	plan, err := client.Optimize(context.Background(), engine.OptimizeArgs{
		Ship:     ship,
		Cargoes:  []*stowage.Cargo{cargo},
		Settings: phaseSettings(),
	})
	assert.NoError(t, err)

	score, err := client.Score(context.Background(), plan, ship, []*stowage.Cargo{cargo})
	assert.NoError(t, err)
	assert.Greater(t, score, 0.0)

	ok, _, err := client.Validate(context.Background(), ship, []*stowage.Cargo{cargo})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalClientUnfulfilledReportsShortfallWithoutAMediatorHandler(t *testing.T) {
	client := engine.NewLocalClient()
	ship := helpers.NewTestShip(1, 500)
	cargo := helpers.NewTestCargo("crude", 800)

	plan, err := client.Optimize(context.Background(), engine.OptimizeArgs{
		Ship:     ship,
		Cargoes:  []*stowage.Cargo{cargo},
		Settings: phaseSettings(),
	})
	assert.NoError(t, err)

	shortfalls, err := client.Unfulfilled(context.Background(), plan, []*stowage.Cargo{cargo})
	assert.NoError(t, err)
	assert.Len(t, shortfalls, 1)
	assert.Equal(t, cargo.ID, shortfalls[0].CargoID)
	assert.InDelta(t, 300.0, shortfalls[0].RemainingVolume, 1e-6)
}

func TestLocalClientRegistersMiddlewareOnTheUnderlyingMediator(t *testing.T) {
	var called bool
	client := engine.NewLocalClient(func(ctx context.Context, req common.Request, next common.HandlerFunc) (common.Response, error) {
		called = true
		return next(ctx, req)
	})

	ship := helpers.NewTestShip(1, 1000)
	cargo := helpers.NewTestCargo("crude", 800)
	_, err := client.Optimize(context.Background(), engine.OptimizeArgs{
		Ship:     ship,
		Cargoes:  []*stowage.Cargo{cargo},
		Settings: phaseSettings(),
	})
	assert.NoError(t, err)
	assert.True(t, called)
}
