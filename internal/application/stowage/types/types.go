package types

import "github.com/akinaridici/stowagemaster/internal/domain/stowage"

// OptimizeRequest is the Optimize command's input DTO.
type OptimizeRequest struct {
	Ship             *stowage.Ship
	Cargoes          []*stowage.Cargo
	ExcludedTanks    []string
	FixedAssignments []stowage.FixedAssignment
	Settings         stowage.Settings
}

// OptimizeResponse wraps the resulting plan.
type OptimizeResponse struct {
	Plan *stowage.Plan
}

// OptimizeWithRetriesRequest additionally carries the retry budget;
// phase-solver only.
type OptimizeWithRetriesRequest struct {
	OptimizeRequest
	NumRetries int
}

// ScoreRequest asks for a plan's composite score against a ship and
// the cargo requests it was built from.
type ScoreRequest struct {
	Plan    *stowage.Plan
	Ship    *stowage.Ship
	Cargoes []*stowage.Cargo
}

// ScoreResponse carries the 0..100 composite score.
type ScoreResponse struct {
	Score float64
}

// UnfulfilledEntry is one cargo's shortfall: requested minus loaded.
type UnfulfilledEntry struct {
	CargoID         string
	RemainingVolume float64
}

// ValidateRequest asks whether a ship/cargo combination is structurally sound.
type ValidateRequest struct {
	Ship    *stowage.Ship
	Cargoes []*stowage.Cargo
}

// ValidateResponse carries the validation verdict.
type ValidateResponse struct {
	OK      bool
	Message string
}
