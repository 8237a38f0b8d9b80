package services

import (
	"sort"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
	"github.com/akinaridici/stowagemaster/pkg/utils"
)

// cargoOrdering is one of the retry orchestrator's canonical
// strategies for ordering cargoes before a phase-solver attempt.
type cargoOrdering func(cargoes []*stowage.Cargo) []*stowage.Cargo

var cargoOrderings = []cargoOrdering{
	orderByQuantityDescending,
	orderByReceiverCountDescending,
	orderMandatoryFirstThenQuantityDescending,
	orderByQuantityAscending,
	orderMixed,
}

// OptimizeWithRetries runs the phase solver under up to numRetries of
// the canonical cargo orderings and keeps the highest-scoring plan. A
// strategy that panics is treated the same as one that returns a
// plan: its result is simply skipped. If every strategy fails, it
// falls back to a single plain OptimizePhase call.
func OptimizeWithRetries(ship *stowage.Ship, cargoes []*stowage.Cargo, excludedTanks []string, fixed []stowage.FixedAssignment, numRetries int, settings stowage.Settings) *stowage.Plan {
	if numRetries <= 0 {
		numRetries = len(cargoOrderings)
	}
	numRetries = utils.Min(numRetries, len(cargoOrderings))

	var bestPlan *stowage.Plan
	bestScore := -1.0

	for i := 0; i < numRetries; i++ {
		plan := attemptOrdering(cargoOrderings[i], ship, cargoes, excludedTanks, fixed, settings)
		if plan == nil {
			continue
		}
		score := simpleScore(plan, ship, cargoes)
		if score > bestScore {
			bestScore = score
			bestPlan = plan
		}
	}

	if bestPlan == nil {
		return OptimizePhase(ship, cargoes, excludedTanks, fixed, settings)
	}
	return bestPlan
}

// simpleScore is the retry orchestrator's own ranking score, distinct
// from the public composite Score: completion rate against total
// requested volume weighted 60%, ship-wide utilization weighted 40%,
// capped at 100.
func simpleScore(plan *stowage.Plan, ship *stowage.Ship, cargoes []*stowage.Cargo) float64 {
	if plan == nil || ship == nil {
		return 0
	}

	var requested float64
	for _, c := range cargoes {
		requested += c.RequestedVolume
	}
	loaded := plan.LoadedVolume()

	completionScore := 0.0
	if requested > 0 {
		completionScore = (loaded / requested * 100) * 0.6
	}

	utilizationScore := 0.0
	if capacity := ship.TotalCapacity(); capacity > 0 {
		utilizationScore = (loaded / capacity * 100) * 0.4
	}

	score := completionScore + utilizationScore
	if score > 100 {
		score = 100
	}
	return score
}

func attemptOrdering(ordering cargoOrdering, ship *stowage.Ship, cargoes []*stowage.Cargo, excludedTanks []string, fixed []stowage.FixedAssignment, settings stowage.Settings) (plan *stowage.Plan) {
	defer func() {
		if recover() != nil {
			plan = nil
		}
	}()
	ordered := ordering(cargoes)
	return OptimizePhase(ship, ordered, excludedTanks, fixed, settings)
}

func cloneCargoes(cargoes []*stowage.Cargo) []*stowage.Cargo {
	out := make([]*stowage.Cargo, len(cargoes))
	copy(out, cargoes)
	return out
}

func orderByQuantityDescending(cargoes []*stowage.Cargo) []*stowage.Cargo {
	out := cloneCargoes(cargoes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RequestedVolume > out[j].RequestedVolume })
	return out
}

func orderByQuantityAscending(cargoes []*stowage.Cargo) []*stowage.Cargo {
	out := cloneCargoes(cargoes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RequestedVolume < out[j].RequestedVolume })
	return out
}

func orderByReceiverCountDescending(cargoes []*stowage.Cargo) []*stowage.Cargo {
	out := cloneCargoes(cargoes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ReceiverCount() > out[j].ReceiverCount() })
	return out
}

func orderMandatoryFirstThenQuantityDescending(cargoes []*stowage.Cargo) []*stowage.Cargo {
	out := cloneCargoes(cargoes)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsMandatory != out[j].IsMandatory {
			return out[i].IsMandatory
		}
		return out[i].RequestedVolume > out[j].RequestedVolume
	})
	return out
}

// orderMixed alternates the quantity-descending and receiver-count-
// descending orderings, interleaving their top picks; this is the
// catch-all "mixed" strategy that tends to do well when neither pure
// ordering dominates.
func orderMixed(cargoes []*stowage.Cargo) []*stowage.Cargo {
	byQuantity := orderByQuantityDescending(cargoes)
	byReceivers := orderByReceiverCountDescending(cargoes)

	seen := make(map[string]bool, len(cargoes))
	out := make([]*stowage.Cargo, 0, len(cargoes))
	for i := 0; i < len(cargoes); i++ {
		if i < len(byQuantity) && !seen[byQuantity[i].ID] {
			out = append(out, byQuantity[i])
			seen[byQuantity[i].ID] = true
		}
		if i < len(byReceivers) && !seen[byReceivers[i].ID] {
			out = append(out, byReceivers[i])
			seen[byReceivers[i].ID] = true
		}
	}
	return out
}
