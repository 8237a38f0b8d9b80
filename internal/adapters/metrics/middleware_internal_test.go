package metrics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/application/common"
	"github.com/akinaridici/stowagemaster/internal/application/stowage/types"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
	"github.com/akinaridici/stowagemaster/test/helpers"
)

func noopNext(resp common.Response, err error) common.HandlerFunc {
	return func(ctx context.Context, request common.Request) (common.Response, error) {
		return resp, err
	}
}

func TestSolverMiddlewareIsANoOpWhenCollectorIsNil(t *testing.T) {
	mw := SolverMiddleware(nil)
	called := false
	next := func(ctx context.Context, request common.Request) (common.Response, error) {
		called = true
		return nil, nil
	}
	_, err := mw(context.Background(), types.OptimizeRequest{}, next)
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestSolverMiddlewareRecordsASuccessfulOptimizeRun(t *testing.T) {
	collector := NewSolverMetricsCollector()
	mw := SolverMiddleware(collector)

	ship := helpers.NewTestShip(1, 1000)
	cargo := helpers.NewTestCargo("crude", 800)
	plan := stowage.NewPlan("", ship.ID, time.Now())
	plan.Place(stowage.Assignment{TankID: ship.Tanks[0].ID, CargoID: cargo.ID, QuantityLoaded: 800})

	req := types.OptimizeRequest{
		Ship:     ship,
		Cargoes:  []*stowage.Cargo{cargo},
		Settings: stowage.Settings{OptimizationAlgorithm: stowage.AlgorithmPhase},
	}
	resp := types.OptimizeResponse{Plan: plan}

	_, err := mw(context.Background(), req, noopNext(resp, nil))
	assert.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.runsTotal.WithLabelValues("phase", "ok")))
}

func TestSolverMiddlewareRecordsAFailedOptimizeRunWithoutAScore(t *testing.T) {
	collector := NewSolverMetricsCollector()
	mw := SolverMiddleware(collector)

	req := types.OptimizeRequest{Settings: stowage.Settings{OptimizationAlgorithm: stowage.AlgorithmGenetic}}

	_, err := mw(context.Background(), req, noopNext(nil, fmt.Errorf("boom")))
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.runsTotal.WithLabelValues("genetic", "error")))
}

func TestSolverMiddlewareLeavesNonOptimizeRequestsUninstrumented(t *testing.T) {
	collector := NewSolverMetricsCollector()
	mw := SolverMiddleware(collector)

	req := types.ScoreRequest{}
	resp := types.ScoreResponse{Score: 42}

	out, err := mw(context.Background(), req, noopNext(resp, nil))
	assert.NoError(t, err)
	assert.Equal(t, resp, out)
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.runsTotal.WithLabelValues("", "ok")))
}

func TestSolverMiddlewareRecordsRetryCountForOptimizeWithRetries(t *testing.T) {
	collector := NewSolverMetricsCollector()
	mw := SolverMiddleware(collector)

	req := types.OptimizeWithRetriesRequest{
		OptimizeRequest: types.OptimizeRequest{Settings: stowage.Settings{OptimizationAlgorithm: stowage.AlgorithmPhase}},
		NumRetries:      5,
	}
	resp := types.OptimizeResponse{Plan: stowage.NewPlan("", "s", time.Now())}

	_, err := mw(context.Background(), req, noopNext(resp, nil))
	assert.NoError(t, err)
	assert.Equal(t, 5.0, testutil.ToFloat64(collector.retriesPerRun))
}
