package grpc

import (
	engine "github.com/akinaridici/stowagemaster/internal/application/stowage"
	domain "github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// optimizeWire is the JSON shape of engine.OptimizeArgs carried over
// the wire; it is a plain mirror of that struct, kept as its own type
// so an envelope decode never accidentally aliases the engine port's
// Go-side type across the process boundary.
type optimizeWire struct {
	Ship             *domain.Ship              `json:"ship"`
	Cargoes          []*domain.Cargo           `json:"cargoes"`
	ExcludedTanks    []string                  `json:"excludedTanks"`
	FixedAssignments []domain.FixedAssignment  `json:"fixedAssignments"`
	Settings         domain.Settings           `json:"settings"`
}

func toOptimizeWire(args engine.OptimizeArgs) optimizeWire {
	return optimizeWire{
		Ship:             args.Ship,
		Cargoes:          args.Cargoes,
		ExcludedTanks:    args.ExcludedTanks,
		FixedAssignments: args.FixedAssignments,
		Settings:         args.Settings,
	}
}

func (w optimizeWire) toArgs() engine.OptimizeArgs {
	return engine.OptimizeArgs{
		Ship:             w.Ship,
		Cargoes:          w.Cargoes,
		ExcludedTanks:    w.ExcludedTanks,
		FixedAssignments: w.FixedAssignments,
		Settings:         w.Settings,
	}
}

type optimizeWithRetriesWire struct {
	optimizeWire
	NumRetries int `json:"numRetries"`
}

type planWire struct {
	Plan *domain.Plan `json:"plan"`
}

type scoreWire struct {
	Plan    *domain.Plan    `json:"plan"`
	Ship    *domain.Ship    `json:"ship"`
	Cargoes []*domain.Cargo `json:"cargoes"`
}

type scoreResultWire struct {
	Score float64 `json:"score"`
}

type validateWire struct {
	Ship    *domain.Ship    `json:"ship"`
	Cargoes []*domain.Cargo `json:"cargoes"`
}

type validateResultWire struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type unfulfilledWire struct {
	Plan    *domain.Plan    `json:"plan"`
	Cargoes []*domain.Cargo `json:"cargoes"`
}

type unfulfilledResultWire struct {
	Entries []engine.ShortfallEntry `json:"entries"`
}
