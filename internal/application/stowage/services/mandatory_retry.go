package services

import (
	"math"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

type phaseFunc func(ship *stowage.Ship, cargo *stowage.Cargo, remaining float64, available AvailableCapacity, settings stowage.Settings) (map[string]float64, bool)

// phaseDispatchTable holds every phase entry already bound to the
// parameters it needs (ship, cargo, remaining, available, settings
// are all passed uniformly; no entry needs a signature any other
// entry doesn't declare).
var phaseDispatchTable = [7]phaseFunc{phase1, phase2, phase3, phase4, phase5, phase6, phase7}

// PlaceMandatoryWithRetry is the phase-solver's mandatory pre-placer.
// For each mandatory cargo it estimates the tank count k from the
// largest available tank and tries only phase k, relaxing tolerance
// by mandatory_retry_increment up to mandatory_max_relaxation between
// attempts. Only if that entire tolerance ladder fails does it fall
// back to a single pass across all 7 phases at maximum relaxation,
// and finally to the plain greedy placer.
func PlaceMandatoryWithRetry(ship *stowage.Ship, plan *stowage.Plan, available AvailableCapacity, mandatory []*stowage.Cargo, settings stowage.Settings) {
	for _, cargo := range mandatory {
		placeMandatoryWithRetry(ship, plan, available, cargo, settings)
	}
}

func placeMandatoryWithRetry(ship *stowage.Ship, plan *stowage.Plan, available AvailableCapacity, cargo *stowage.Cargo, settings stowage.Settings) {
	remaining := cargo.RequestedVolume - plan.LoadedVolumeForCargo(cargo.ID)
	if remaining <= 1e-9 {
		return
	}

	if placeMandatoryAtEstimatedPhase(ship, plan, available, cargo, remaining, settings) {
		return
	}

	if placeMandatoryAcrossAllPhases(ship, plan, available, cargo, remaining, settings) {
		return
	}

	// Every phase sweep failed to fully place the cargo at any
	// relaxation: fall back to the plain greedy placer so the cargo
	// is still placed as far as capacity allows.
	placeOneMandatory(ship, plan, available, cargo, settings.MinUtilization)
}

// placeMandatoryAtEstimatedPhase is stage 1: only the phase matching
// the estimated tank count k is tried, across an increasing tolerance
// ladder from exact fit up to mandatory_max_relaxation. No other
// phase is attempted here.
func placeMandatoryAtEstimatedPhase(ship *stowage.Ship, plan *stowage.Plan, available AvailableCapacity, cargo *stowage.Cargo, remaining float64, settings stowage.Settings) bool {
	k := estimatedTankCount(remaining, available)

	for relax := 0.0; relax <= settings.MandatoryMaxRelaxation+1e-9; relax += settings.MandatoryRetryIncrement {
		relaxed := relaxTolerances(settings, relax)
		if placeMandatoryPhase(ship, plan, available, cargo, remaining, k, relaxed) {
			return true
		}
		if settings.MandatoryRetryIncrement <= 0 {
			break
		}
	}
	return false
}

// placeMandatoryAcrossAllPhases is stage 2: reached only when stage 1
// never placed the cargo. It tries all 7 phases in order, once, at
// maximum relaxation.
func placeMandatoryAcrossAllPhases(ship *stowage.Ship, plan *stowage.Plan, available AvailableCapacity, cargo *stowage.Cargo, remaining float64, settings stowage.Settings) bool {
	relaxed := relaxTolerances(settings, settings.MandatoryMaxRelaxation)
	for idx := 1; idx <= 7; idx++ {
		if placeMandatoryPhase(ship, plan, available, cargo, remaining, idx, relaxed) {
			return true
		}
	}
	return false
}

// placeMandatoryPhase tries a single phase for a single mandatory
// cargo, enforcing the 4-tank bow/stern clustering prohibition even
// under relaxation, and commits the assignments on success.
func placeMandatoryPhase(ship *stowage.Ship, plan *stowage.Plan, available AvailableCapacity, cargo *stowage.Cargo, remaining float64, idx int, settings stowage.Settings) bool {
	assigned, ok := phaseDispatchTable[idx-1](ship, cargo, remaining, available, settings)
	if !ok {
		return false
	}
	if idx == 4 {
		ids := make([]string, 0, len(assigned))
		for id := range assigned {
			ids = append(ids, id)
		}
		if stowage.BowOrSternCluster(ship, ids) {
			return false
		}
	}
	for tankID, q := range assigned {
		if q <= 1e-9 {
			continue
		}
		plan.Place(stowage.Assignment{TankID: tankID, CargoID: cargo.ID, QuantityLoaded: q})
		available[tankID] -= q
	}
	return true
}

// estimatedTankCount estimates how many tanks a mandatory cargo needs
// from the largest available tank's capacity, clamped to the 1..7
// phases the solver knows how to run.
func estimatedTankCount(remaining float64, available AvailableCapacity) int {
	maxAvail := 0.0
	for _, q := range available {
		if q > maxAvail {
			maxAvail = q
		}
	}
	k := 1
	if maxAvail > 0 {
		k = int(math.Ceil(remaining / maxAvail))
	}
	if k < 1 {
		k = 1
	}
	if k > 7 {
		k = 7
	}
	return k
}

// relaxTolerances returns a copy of settings with every phase
// tolerance raised to at least `relax`, used by the mandatory retry
// sweep. Phases 1-6 all read their own tolerance field; phase 7 has
// none to relax.
func relaxTolerances(settings stowage.Settings, relax float64) stowage.Settings {
	out := settings
	out.Faz1SingleTankTolerance = math.Max(out.Faz1SingleTankTolerance, relax)
	out.Faz2TwoTankTolerance = math.Max(out.Faz2TwoTankTolerance, relax)
	out.Faz3ThreeTankTolerance = math.Max(out.Faz3ThreeTankTolerance, relax)
	out.Faz4FourTankTolerance = math.Max(out.Faz4FourTankTolerance, relax)
	out.Faz5FiveTankTolerance = math.Max(out.Faz5FiveTankTolerance, relax)
	out.Faz6SixTankTolerance = math.Max(out.Faz6SixTankTolerance, relax)
	return out
}
