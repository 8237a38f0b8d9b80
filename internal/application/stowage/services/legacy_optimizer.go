package services

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// OptimizeLegacy is the supplemented single-pass optimizer: cargoes
// are sorted by quantity descending (ties broken by receiver count
// descending), then each is placed into an exact-fit tank if one
// exists, else the best-fit tank by the waste/utilization blend, else
// the largest remaining tank, subject to a minimum utilization floor.
// If a cargo can't clear that floor anywhere, the floor is dropped
// once and the pass is retried for that cargo only.
func OptimizeLegacy(ship *stowage.Ship, cargoes []*stowage.Cargo, excludedTanks []string, fixed []stowage.FixedAssignment, settings stowage.Settings) *stowage.Plan {
	unavailable := stowage.ExcludedOrFixed(excludedTanks, fixed)
	available := NewAvailableCapacity(ship, unavailable)
	plan := stowage.NewPlan("", ship.ID, SystemClock.Now())

	mandatory, regular := SplitMandatory(cargoes)
	PlaceMandatory(ship, plan, available, mandatory, settings.MinUtilization)

	ordered := make([]*stowage.Cargo, len(regular))
	copy(ordered, regular)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].RequestedVolume != ordered[j].RequestedVolume {
			return ordered[i].RequestedVolume > ordered[j].RequestedVolume
		}
		return ordered[i].ReceiverCount() > ordered[j].ReceiverCount()
	})

	for _, cargo := range ordered {
		placeLegacyCargo(ship, plan, available, cargo, settings)
	}

	return plan
}

func placeLegacyCargo(ship *stowage.Ship, plan *stowage.Plan, available AvailableCapacity, cargo *stowage.Cargo, settings stowage.Settings) {
	remaining := cargo.RequestedVolume
	floor := settings.MinUtilization

	for attempt := 0; attempt < 2 && remaining > 1e-9; attempt++ {
		tankID, ok := chooseLegacyTank(ship, available, remaining, settings, floor)
		if !ok {
			if attempt == 0 {
				floor = 0 // relax the utilization floor once, then give up.
				continue
			}
			return
		}

		tank := ship.TankByID(tankID)
		q := remaining
		if available[tankID] < q {
			q = available[tankID]
		}
		if tank.Volume < q {
			q = tank.Volume
		}

		plan.Place(stowage.Assignment{TankID: tankID, CargoID: cargo.ID, QuantityLoaded: q})
		available[tankID] -= q
		remaining -= q
	}
}

// LegacySolution is one candidate plan produced by OptimizeMultiple,
// tagged with the sort strategy that produced it and its legacy score.
type LegacySolution struct {
	Plan     *stowage.Plan
	Score    float64
	Strategy string
}

// legacySortStrategy is one of OptimizeMultiple's named cargo
// orderings, applied ahead of a full re-run of the single-pass legacy
// placer.
type legacySortStrategy struct {
	name  string
	order func(cargoes []*stowage.Cargo) []*stowage.Cargo
}

// legacySortStrategies returns up to num named cargo orderings: five
// fixed strategies, a sixth pure-ascending-quantity strategy once more
// than five solutions are requested, and up to four further
// deterministic pseudo-random variations beyond that.
func legacySortStrategies(num int) []legacySortStrategy {
	strategies := []legacySortStrategy{
		{"quantity-desc-receivers-desc", func(c []*stowage.Cargo) []*stowage.Cargo {
			return sortCargoesBy(c, func(a, b *stowage.Cargo) bool {
				if a.RequestedVolume != b.RequestedVolume {
					return a.RequestedVolume > b.RequestedVolume
				}
				return a.ReceiverCount() > b.ReceiverCount()
			})
		}},
		{"quantity-asc-receivers-desc", func(c []*stowage.Cargo) []*stowage.Cargo {
			return sortCargoesBy(c, func(a, b *stowage.Cargo) bool {
				if a.RequestedVolume != b.RequestedVolume {
					return a.RequestedVolume < b.RequestedVolume
				}
				return a.ReceiverCount() > b.ReceiverCount()
			})
		}},
		{"receivers-asc-quantity-desc", func(c []*stowage.Cargo) []*stowage.Cargo {
			return sortCargoesBy(c, func(a, b *stowage.Cargo) bool {
				if a.ReceiverCount() != b.ReceiverCount() {
					return a.ReceiverCount() < b.ReceiverCount()
				}
				return a.RequestedVolume > b.RequestedVolume
			})
		}},
		{"receivers-desc-quantity-desc", func(c []*stowage.Cargo) []*stowage.Cargo {
			return sortCargoesBy(c, func(a, b *stowage.Cargo) bool {
				if a.ReceiverCount() != b.ReceiverCount() {
					return a.ReceiverCount() > b.ReceiverCount()
				}
				return a.RequestedVolume > b.RequestedVolume
			})
		}},
		{"quantity-desc", func(c []*stowage.Cargo) []*stowage.Cargo {
			return sortCargoesBy(c, func(a, b *stowage.Cargo) bool { return a.RequestedVolume > b.RequestedVolume })
		}},
	}

	if num > 5 {
		strategies = append(strategies, legacySortStrategy{"quantity-asc", func(c []*stowage.Cargo) []*stowage.Cargo {
			return sortCargoesBy(c, func(a, b *stowage.Cargo) bool { return a.RequestedVolume < b.RequestedVolume })
		}})
	}

	for i := 0; i < num-6; i++ {
		seed := int64(i + 1000)
		strategies = append(strategies, legacySortStrategy{
			name: "random-variation",
			order: func(c []*stowage.Cargo) []*stowage.Cargo {
				keys := make(map[string]float64, len(c))
				for _, cargo := range c {
					keys[cargo.ID] = pseudoRandomCargoKey(cargo.KindLabel, seed)
				}
				return sortCargoesBy(c, func(a, b *stowage.Cargo) bool { return keys[a.ID] < keys[b.ID] })
			},
		})
	}

	if num < len(strategies) {
		strategies = strategies[:num]
	}
	return strategies
}

func sortCargoesBy(cargoes []*stowage.Cargo, less func(a, b *stowage.Cargo) bool) []*stowage.Cargo {
	out := make([]*stowage.Cargo, len(cargoes))
	copy(out, cargoes)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// pseudoRandomCargoKey derives a deterministic pseudo-random ordering
// key from a cargo's kind label and a strategy seed, so repeated runs
// of the "random variation" strategies are reproducible.
func pseudoRandomCargoKey(kind string, seed int64) float64 {
	h := fnv.New64a()
	h.Write([]byte(kind))
	src := rand.NewSource(int64(h.Sum64()) + seed)
	return rand.New(src).Float64()
}

// OptimizeMultiple runs the single-pass legacy placer under every
// requested cargo sort strategy, scores each resulting plan, removes
// duplicate plans (same tank/cargo/quantity assignments regardless of
// which strategy produced them), and returns the unique solutions
// sorted best score first.
func OptimizeMultiple(ship *stowage.Ship, cargoes []*stowage.Cargo, excludedTanks []string, fixed []stowage.FixedAssignment, settings stowage.Settings, numSolutions int) []LegacySolution {
	cargoByID := make(map[string]*stowage.Cargo, len(cargoes))
	for _, c := range cargoes {
		cargoByID[c.ID] = c
	}

	strategies := legacySortStrategies(numSolutions)
	solutions := make([]LegacySolution, 0, len(strategies))

	for _, strat := range strategies {
		plan := optimizeLegacyOrdered(ship, strat.order(cargoes), excludedTanks, fixed, settings)
		solutions = append(solutions, LegacySolution{
			Plan:     plan,
			Score:    Score(plan, ship, cargoes),
			Strategy: strat.name,
		})
	}

	unique := removeDuplicateLegacyPlans(solutions, cargoByID)
	sort.SliceStable(unique, func(i, j int) bool { return unique[i].Score > unique[j].Score })
	return unique
}

// optimizeLegacyOrdered places every cargo, in the order given, via
// the single-pass best-fit placer, without the mandatory/regular
// split OptimizeLegacy applies — matching a plain re-run of the
// legacy placer under an arbitrary cargo ordering.
func optimizeLegacyOrdered(ship *stowage.Ship, ordered []*stowage.Cargo, excludedTanks []string, fixed []stowage.FixedAssignment, settings stowage.Settings) *stowage.Plan {
	unavailable := stowage.ExcludedOrFixed(excludedTanks, fixed)
	available := NewAvailableCapacity(ship, unavailable)
	plan := stowage.NewPlan("", ship.ID, SystemClock.Now())

	for _, cargo := range ordered {
		placeLegacyCargo(ship, plan, available, cargo, settings)
	}
	return plan
}

// legacyAssignmentSignature is the dedup key for a plan: every
// (tank, cargo kind, quantity-rounded-to-2-decimals) triple it
// contains, independent of which strategy produced it.
func legacyAssignmentSignature(plan *stowage.Plan, cargoByID map[string]*stowage.Cargo) string {
	type entry struct {
		tankID string
		kind   string
		qty    float64
	}
	entries := make([]entry, 0, len(plan.Assignments))
	for tankID, a := range plan.Assignments {
		kind := cargoByID[a.CargoID].KindLabel
		entries = append(entries, entry{tankID, kind, math.Round(a.QuantityLoaded*100) / 100})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].tankID != entries[j].tankID {
			return entries[i].tankID < entries[j].tankID
		}
		if entries[i].kind != entries[j].kind {
			return entries[i].kind < entries[j].kind
		}
		return entries[i].qty < entries[j].qty
	})

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s|%s|%.2f", e.tankID, e.kind, e.qty))
	}
	return strings.Join(parts, ";")
}

// removeDuplicateLegacyPlans keeps, for each distinct assignment
// signature, only the best-scoring solution that produced it.
func removeDuplicateLegacyPlans(solutions []LegacySolution, cargoByID map[string]*stowage.Cargo) []LegacySolution {
	best := make(map[string]int, len(solutions))
	out := make([]LegacySolution, 0, len(solutions))

	for _, sol := range solutions {
		sig := legacyAssignmentSignature(sol.Plan, cargoByID)
		if idx, ok := best[sig]; ok {
			if sol.Score > out[idx].Score {
				out[idx] = sol
			}
			continue
		}
		best[sig] = len(out)
		out = append(out, sol)
	}
	return out
}

// chooseLegacyTank tries an exact fit first (within exact_fit_threshold
// relative deviation), then the best-fit tank by the waste/utilization
// blend, then the single largest remaining tank.
func chooseLegacyTank(ship *stowage.Ship, available AvailableCapacity, remaining float64, settings stowage.Settings, floor float64) (string, bool) {
	ids := available.RemainingTankIDs()

	for _, id := range ids {
		if available[id] <= 0 {
			continue
		}
		if stowage.ToleranceDeviation(remaining, available[id]) <= settings.ExactFitThreshold {
			return id, true
		}
	}

	bestID := ""
	bestScore := math.MaxFloat64
	for _, id := range ids {
		cap := available[id]
		if cap <= 0 {
			continue
		}
		tank := ship.TankByID(id)
		q := remaining
		if cap < q {
			q = cap
		}
		if tank.Volume < q {
			q = tank.Volume
		}
		if !stowage.MeetsMinUtilization(q, tank.Volume, floor) {
			continue
		}
		waste := (tank.Volume - q) / tank.Volume
		utilization := q / tank.Volume
		score := settings.WasteUtilizationWeights.Waste*waste - settings.WasteUtilizationWeights.Utilization*utilization
		if score < bestScore {
			bestScore = score
			bestID = id
		}
	}
	if bestID != "" {
		return bestID, true
	}

	// largest available tank, regardless of fit quality, as the last resort.
	if len(ids) > 0 && available[ids[0]] > 0 {
		return ids[0], true
	}
	return "", false
}
