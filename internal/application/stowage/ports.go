package engine

import (
	"context"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// Client is the port every CLI command and daemon handler talks to.
// Two implementations exist: one calls the mediator in-process (used
// by the CLI when no daemon is running, and by the daemon for its own
// handlers), the other talks to a remote daemon over gRPC. Both honor
// the identical contract so callers never know which one they hold.
type Client interface {
	Optimize(ctx context.Context, req OptimizeArgs) (*stowage.Plan, error)
	OptimizeWithRetries(ctx context.Context, req OptimizeArgs, numRetries int) (*stowage.Plan, error)
	Score(ctx context.Context, plan *stowage.Plan, ship *stowage.Ship, cargoes []*stowage.Cargo) (float64, error)
	Validate(ctx context.Context, ship *stowage.Ship, cargoes []*stowage.Cargo) (bool, string, error)
	Unfulfilled(ctx context.Context, plan *stowage.Plan, cargoes []*stowage.Cargo) ([]ShortfallEntry, error)
}

// OptimizeArgs bundles an Optimize call's inputs — kept distinct from
// the command-layer DTO so this port has no dependency on the
// application layer's command package.
type OptimizeArgs struct {
	Ship             *stowage.Ship
	Cargoes          []*stowage.Cargo
	ExcludedTanks    []string
	FixedAssignments []stowage.FixedAssignment
	Settings         stowage.Settings
}

// ShortfallEntry is one cargo's outstanding unfulfilled volume. Named
// distinctly from an error type — per the engine's error taxonomy,
// shortfall is a query result, never an exception.
type ShortfallEntry struct {
	CargoID         string
	RemainingVolume float64
}
