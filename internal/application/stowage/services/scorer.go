package services

import (
	"github.com/akinaridici/stowagemaster/internal/application/stowage/types"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// Score computes the composite plan score (0..100) the retry
// orchestrator uses to pick among cargo orderings:
//
//	0.4*completion% + 0.3*ship_utilization% + 0.2*avg_fill_of_loaded_tanks% + (10 - 10*fraction_empty)
//
// capped at 100.
func Score(plan *stowage.Plan, ship *stowage.Ship, cargoes []*stowage.Cargo) float64 {
	if ship == nil || len(ship.Tanks) == 0 {
		return 0
	}

	var requested float64
	for _, c := range cargoes {
		requested += c.RequestedVolume
	}
	loaded := plan.LoadedVolume()

	completion := 0.0
	if requested > 0 {
		completion = loaded / requested
		if completion > 1 {
			completion = 1
		}
	}

	capacity := ship.TotalCapacity()
	utilization := 0.0
	if capacity > 0 {
		utilization = loaded / capacity
	}

	loadedTanks := 0
	var fillSum float64
	for _, t := range ship.Tanks {
		if a, ok := plan.Assignments[t.ID]; ok && t.Volume > 0 {
			fillSum += a.QuantityLoaded / t.Volume
			loadedTanks++
		}
	}
	avgFill := 0.0
	if loadedTanks > 0 {
		avgFill = fillSum / float64(loadedTanks)
	}

	fractionEmpty := 0.0
	if len(ship.Tanks) > 0 {
		fractionEmpty = 1 - float64(loadedTanks)/float64(len(ship.Tanks))
	}

	score := 0.4*completion*100 + 0.3*utilization*100 + 0.2*avgFill*100 + (10 - 10*fractionEmpty)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Unfulfilled reports, for every cargo with an outstanding balance,
// the remaining requested volume not covered by the plan.
func Unfulfilled(plan *stowage.Plan, cargoes []*stowage.Cargo) []types.UnfulfilledEntry {
	var out []types.UnfulfilledEntry
	for _, c := range cargoes {
		loaded := plan.LoadedVolumeForCargo(c.ID)
		remaining := c.RequestedVolume - loaded
		if remaining > 1e-9 {
			out = append(out, types.UnfulfilledEntry{CargoID: c.ID, RemainingVolume: remaining})
		}
	}
	return out
}

// ValidatePhase is the phase-solver validator: total requested must
// not exceed ship capacity.
func ValidatePhase(ship *stowage.Ship, cargoes []*stowage.Cargo) (bool, string) {
	return validateWithSlack(ship, cargoes, 1.0)
}

// ValidateGA is the GA validator: total requested may exceed ship
// capacity by up to 10%, since the GA may legitimately over-place a
// cargo within its receiver tolerance.
func ValidateGA(ship *stowage.Ship, cargoes []*stowage.Cargo) (bool, string) {
	return validateWithSlack(ship, cargoes, 1.10)
}

func validateWithSlack(ship *stowage.Ship, cargoes []*stowage.Cargo, slack float64) (bool, string) {
	if ok, msg := stowage.ValidateStructure(ship, cargoes); !ok {
		return ok, msg
	}
	var requested float64
	for _, c := range cargoes {
		requested += c.RequestedVolume
	}
	if requested > ship.TotalCapacity()*slack {
		return false, "total requested volume exceeds ship capacity"
	}
	return true, ""
}
