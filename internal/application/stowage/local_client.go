package engine

import (
	"context"
	"fmt"

	"github.com/akinaridici/stowagemaster/internal/application/common"
	"github.com/akinaridici/stowagemaster/internal/application/stowage/commands"
	"github.com/akinaridici/stowagemaster/internal/application/stowage/services"
	"github.com/akinaridici/stowagemaster/internal/application/stowage/types"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// Middleware lets callers (the daemon, mainly) attach cross-cutting
// mediator behavior such as metrics recording before any handler runs.
type Middleware = common.Middleware

// LocalClient dispatches through an in-process mediator. Both the CLI
// (when no daemon is reachable) and the daemon's own gRPC handlers
// hold one of these; it is the single place command handlers actually
// get invoked.
type LocalClient struct {
	mediator common.Mediator
}

// NewLocalClient wires the mediator and registers every engine handler.
func NewLocalClient(middlewares ...Middleware) *LocalClient {
	m := common.NewMediator()
	for _, mw := range middlewares {
		m.RegisterMiddleware(mw)
	}
	_ = common.RegisterHandler[commands.OptimizeCommand](m, commands.NewOptimizeHandler())
	_ = common.RegisterHandler[commands.OptimizeWithRetriesCommand](m, commands.NewOptimizeWithRetriesHandler())
	_ = common.RegisterHandler[commands.ScoreCommand](m, commands.NewScoreHandler())
	_ = common.RegisterHandler[commands.ValidateCommand](m, commands.NewValidateHandler())
	return &LocalClient{mediator: m}
}

func (c *LocalClient) Optimize(ctx context.Context, req OptimizeArgs) (*stowage.Plan, error) {
	resp, err := c.mediator.Send(ctx, toOptimizeRequest(req))
	if err != nil {
		return nil, err
	}
	out, ok := resp.(types.OptimizeResponse)
	if !ok {
		return nil, fmt.Errorf("optimize: unexpected response type %T", resp)
	}
	return out.Plan, nil
}

func (c *LocalClient) OptimizeWithRetries(ctx context.Context, req OptimizeArgs, numRetries int) (*stowage.Plan, error) {
	resp, err := c.mediator.Send(ctx, types.OptimizeWithRetriesRequest{
		OptimizeRequest: toOptimizeRequest(req),
		NumRetries:      numRetries,
	})
	if err != nil {
		return nil, err
	}
	out, ok := resp.(types.OptimizeResponse)
	if !ok {
		return nil, fmt.Errorf("optimize-with-retries: unexpected response type %T", resp)
	}
	return out.Plan, nil
}

func (c *LocalClient) Score(ctx context.Context, plan *stowage.Plan, ship *stowage.Ship, cargoes []*stowage.Cargo) (float64, error) {
	resp, err := c.mediator.Send(ctx, types.ScoreRequest{Plan: plan, Ship: ship, Cargoes: cargoes})
	if err != nil {
		return 0, err
	}
	out, ok := resp.(types.ScoreResponse)
	if !ok {
		return 0, fmt.Errorf("score: unexpected response type %T", resp)
	}
	return out.Score, nil
}

func (c *LocalClient) Validate(ctx context.Context, ship *stowage.Ship, cargoes []*stowage.Cargo) (bool, string, error) {
	resp, err := c.mediator.Send(ctx, types.ValidateRequest{Ship: ship, Cargoes: cargoes})
	if err != nil {
		return false, "", err
	}
	out, ok := resp.(types.ValidateResponse)
	if !ok {
		return false, "", fmt.Errorf("validate: unexpected response type %T", resp)
	}
	return out.OK, out.Message, nil
}

// Unfulfilled has no mediator handler of its own; it's a pure query
// over an already-computed plan, so it calls the scorer service directly.
func (c *LocalClient) Unfulfilled(ctx context.Context, plan *stowage.Plan, cargoes []*stowage.Cargo) ([]ShortfallEntry, error) {
	entries := services.Unfulfilled(plan, cargoes)
	out := make([]ShortfallEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, ShortfallEntry{CargoID: e.CargoID, RemainingVolume: e.RemainingVolume})
	}
	return out, nil
}

func toOptimizeRequest(req OptimizeArgs) types.OptimizeRequest {
	return types.OptimizeRequest{
		Ship:             req.Ship,
		Cargoes:          req.Cargoes,
		ExcludedTanks:    req.ExcludedTanks,
		FixedAssignments: req.FixedAssignments,
		Settings:         req.Settings,
	}
}

var _ Client = (*LocalClient)(nil)
