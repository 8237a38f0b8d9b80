package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/akinaridici/stowagemaster/internal/application/common"
	"github.com/akinaridici/stowagemaster/internal/application/stowage/services"
	"github.com/akinaridici/stowagemaster/internal/application/stowage/types"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// SolverMiddleware wraps mediator dispatch for the engine's four command
// types and records duration, outcome, and plan score with the process-wide
// SolverMetricsCollector. It is a no-op when that collector is nil.
func SolverMiddleware(collector *SolverMetricsCollector) common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		name := requestName(request)
		if _, isRetry := request.(types.OptimizeWithRetriesRequest); isRetry {
			collector.RecordRetries(request.(types.OptimizeWithRetriesRequest).NumRetries)
		}

		start := time.Now()
		response, err := next(ctx, request)
		duration := time.Since(start).Seconds()

		if !isOptimizeRequest(name) {
			return response, err
		}

		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		score := 0.0
		if out, ok := response.(types.OptimizeResponse); ok && out.Plan != nil {
			ship, cargoes := optimizeInputs(request)
			score = services.Score(out.Plan, ship, cargoes)
			collector.RecordShortfall(algorithmLabel(request), len(services.Unfulfilled(out.Plan, cargoes)))
		}
		collector.RecordRun(algorithmLabel(request), outcome, duration, score)

		return response, err
	}
}

func isOptimizeRequest(name string) bool {
	return name == "OptimizeRequest" || name == "OptimizeWithRetriesRequest"
}

func optimizeInputs(request common.Request) (*stowage.Ship, []*stowage.Cargo) {
	switch r := request.(type) {
	case types.OptimizeRequest:
		return r.Ship, r.Cargoes
	case types.OptimizeWithRetriesRequest:
		return r.Ship, r.Cargoes
	default:
		return nil, nil
	}
}

func algorithmLabel(request common.Request) string {
	switch r := request.(type) {
	case types.OptimizeRequest:
		return string(r.Settings.OptimizationAlgorithm)
	case types.OptimizeWithRetriesRequest:
		return string(r.Settings.OptimizationAlgorithm)
	default:
		return "unknown"
	}
}

func requestName(request common.Request) string {
	if request == nil {
		return "nil"
	}
	full := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	parts := strings.Split(full, ".")
	return parts[len(parts)-1]
}
