package commands

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/akinaridici/stowagemaster/internal/application/common"
	"github.com/akinaridici/stowagemaster/internal/application/logging"
	"github.com/akinaridici/stowagemaster/internal/application/stowage/services"
	"github.com/akinaridici/stowagemaster/internal/application/stowage/types"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// OptimizeCommand is the mediator-dispatched request for a single
// Optimize call, routed to the algorithm the settings bag names.
type OptimizeCommand = types.OptimizeRequest

// OptimizeHandler dispatches to C4 (phase), C5 (genetic) or the
// supplemented legacy optimizer, matching the teacher's
// handler-struct-with-dependencies pattern.
type OptimizeHandler struct {
	// RandSource seeds the genetic solver's RNG; nil uses a
	// time-seeded source (non-deterministic, the common case).
	// Tests inject a fixed seed to pin S6's reproducibility property.
	RandSource func() *rand.Rand
}

func NewOptimizeHandler() *OptimizeHandler {
	return &OptimizeHandler{}
}

func (h *OptimizeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	req, ok := request.(OptimizeCommand)
	if !ok {
		return nil, fmt.Errorf("optimize handler: unexpected request type %T", request)
	}

	logger := logging.LoggerFromContext(ctx)
	logger.Log("info", "running optimize", map[string]interface{}{
		"algorithm":   string(req.Settings.OptimizationAlgorithm),
		"cargo_count": len(req.Cargoes),
	})

	if ok, msg := stowage.ValidateStructure(req.Ship, req.Cargoes); !ok {
		return nil, stowage.NewInvalidInputError("cargoes", msg)
	}

	plan := h.dispatch(req)
	return types.OptimizeResponse{Plan: plan}, nil
}

func (h *OptimizeHandler) dispatch(req OptimizeCommand) *stowage.Plan {
	switch req.Settings.OptimizationAlgorithm {
	case stowage.AlgorithmLegacy:
		return services.OptimizeLegacy(req.Ship, req.Cargoes, req.ExcludedTanks, req.FixedAssignments, req.Settings)
	case stowage.AlgorithmPhase:
		return services.OptimizePhase(req.Ship, req.Cargoes, req.ExcludedTanks, req.FixedAssignments, req.Settings)
	default:
		rng := h.rng()
		return services.OptimizeGenetic(req.Ship, req.Cargoes, req.ExcludedTanks, req.FixedAssignments, req.Settings, rng)
	}
}

func (h *OptimizeHandler) rng() *rand.Rand {
	if h.RandSource != nil {
		return h.RandSource()
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// OptimizeWithRetriesCommand is the phase-solver-only retry orchestrator request.
type OptimizeWithRetriesCommand = types.OptimizeWithRetriesRequest

// OptimizeWithRetriesHandler runs the retry orchestrator over the
// canonical cargo orderings, scoring each attempt and keeping the best.
type OptimizeWithRetriesHandler struct{}

func NewOptimizeWithRetriesHandler() *OptimizeWithRetriesHandler {
	return &OptimizeWithRetriesHandler{}
}

func (h *OptimizeWithRetriesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	req, ok := request.(OptimizeWithRetriesCommand)
	if !ok {
		return nil, fmt.Errorf("optimize-with-retries handler: unexpected request type %T", request)
	}

	logger := logging.LoggerFromContext(ctx)
	logger.Log("info", "running optimize with retries", map[string]interface{}{
		"num_retries": req.NumRetries,
	})

	if ok, msg := stowage.ValidateStructure(req.Ship, req.Cargoes); !ok {
		return nil, stowage.NewInvalidInputError("cargoes", msg)
	}

	plan := services.OptimizeWithRetries(req.Ship, req.Cargoes, req.ExcludedTanks, req.FixedAssignments, req.NumRetries, req.Settings)
	return types.OptimizeResponse{Plan: plan}, nil
}
