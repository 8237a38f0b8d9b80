package stowage

import (
	"time"

	"github.com/google/uuid"
)

// Plan is the engine's output: assignments it placed itself. Fixed
// assignments supplied by the caller are never re-emitted here — the
// type itself enforces the "fixed assignments live outside the
// engine" convention; MergeFixed is the only place the two meet.
type Plan struct {
	ID            string
	Name          string
	ShipRef       string
	CargoRequests []string // cargo ids considered for this plan
	Assignments   map[string]Assignment // tank id -> Assignment, at most one per tank
	ExcludedTanks map[string]bool
	CreatedAt     time.Time
	Notes         string
}

// NewPlan creates an empty plan ready to receive assignments.
func NewPlan(name, shipRef string, now time.Time) *Plan {
	return &Plan{
		ID:            uuid.New().String(),
		Name:          name,
		ShipRef:       shipRef,
		Assignments:   make(map[string]Assignment),
		ExcludedTanks: make(map[string]bool),
		CreatedAt:     now,
	}
}

// Place records an assignment, overwriting any prior assignment for
// the same tank (callers are expected to never attempt that; solvers
// never do).
func (p *Plan) Place(a Assignment) {
	p.Assignments[a.TankID] = a
}

// LoadedVolume sums QuantityLoaded across every assignment.
func (p *Plan) LoadedVolume() float64 {
	var total float64
	for _, a := range p.Assignments {
		total += a.QuantityLoaded
	}
	return total
}

// LoadedVolumeForCargo sums QuantityLoaded for a single cargo id
// across every tank it was split into.
func (p *Plan) LoadedVolumeForCargo(cargoID string) float64 {
	var total float64
	for _, a := range p.Assignments {
		if a.CargoID == cargoID {
			total += a.QuantityLoaded
		}
	}
	return total
}

// TanksForCargo returns the tank ids a cargo was placed into.
func (p *Plan) TanksForCargo(cargoID string) []string {
	var ids []string
	for tankID, a := range p.Assignments {
		if a.CargoID == cargoID {
			ids = append(ids, tankID)
		}
	}
	return ids
}

// FixedAssignment is a caller-committed (tank, cargo, quantity) tuple
// the engine must treat as unavailable and must not re-emit.
type FixedAssignment struct {
	TankID         string
	CargoID        string
	QuantityLoaded float64
}

// MergeFixed composes an engine-produced plan with the caller's fixed
// assignments into the final, complete assignment map. The engine
// plan itself is never mutated to include these — this is the
// "trivial merge function" the design calls for.
func MergeFixed(plan *Plan, fixed []FixedAssignment) map[string]Assignment {
	merged := make(map[string]Assignment, len(plan.Assignments)+len(fixed))
	for tankID, a := range plan.Assignments {
		merged[tankID] = a
	}
	for _, f := range fixed {
		merged[f.TankID] = Assignment{TankID: f.TankID, CargoID: f.CargoID, QuantityLoaded: f.QuantityLoaded}
	}
	return merged
}

// ExcludedOrFixed returns the union of excluded tank ids and fixed
// assignment tank ids — the set both solvers must never touch.
func ExcludedOrFixed(excludedTanks []string, fixed []FixedAssignment) map[string]bool {
	unavailable := make(map[string]bool, len(excludedTanks)+len(fixed))
	for _, id := range excludedTanks {
		unavailable[id] = true
	}
	for _, f := range fixed {
		unavailable[f.TankID] = true
	}
	return unavailable
}
