package services

import (
	"sort"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// candidateSet is a tank grouping considered for a single phase,
// already scored by how far its total capacity deviates from the
// cargo's remaining quantity.
type candidateSet struct {
	tankIDs   []string
	deviation float64
}

// OptimizePhase runs the deterministic 8-phase cascade: mandatory
// cargoes first (with retry/relaxation), then regular cargoes through
// phases 1..7 in order, removing fully-placed cargoes between phases.
func OptimizePhase(ship *stowage.Ship, cargoes []*stowage.Cargo, excludedTanks []string, fixed []stowage.FixedAssignment, settings stowage.Settings) *stowage.Plan {
	unavailable := stowage.ExcludedOrFixed(excludedTanks, fixed)
	available := NewAvailableCapacity(ship, unavailable)
	plan := stowage.NewPlan("", ship.ID, SystemClock.Now())

	mandatory, regular := SplitMandatory(cargoes)
	PlaceMandatoryWithRetry(ship, plan, available, mandatory, settings)

	pending := make([]*stowage.Cargo, len(regular))
	copy(pending, regular)

	phases := [7]func(ship *stowage.Ship, cargo *stowage.Cargo, remaining float64, available AvailableCapacity, settings stowage.Settings) (map[string]float64, bool){
		phase1, phase2, phase3, phase4, phase5, phase6, phase7,
	}

	for _, phaseFn := range phases {
		var stillPending []*stowage.Cargo
		for _, cargo := range pending {
			remaining := cargo.RequestedVolume - plan.LoadedVolumeForCargo(cargo.ID)
			if remaining <= 1e-9 {
				continue
			}
			if assigned, ok := phaseFn(ship, cargo, remaining, available, settings); ok {
				for tankID, q := range assigned {
					if q <= 1e-9 {
						continue
					}
					plan.Place(stowage.Assignment{TankID: tankID, CargoID: cargo.ID, QuantityLoaded: q})
					available[tankID] -= q
				}
				remaining = cargo.RequestedVolume - plan.LoadedVolumeForCargo(cargo.ID)
			}
			if remaining > 1e-9 {
				stillPending = append(stillPending, cargo)
			}
		}
		pending = stillPending
		if len(pending) == 0 {
			break
		}
	}

	return plan
}

// --- phase shape rules -----------------------------------------------------

func phase1(ship *stowage.Ship, cargo *stowage.Cargo, remaining float64, available AvailableCapacity, settings stowage.Settings) (map[string]float64, bool) {
	var best *candidateSet
	for _, id := range available.RemainingTankIDs() {
		if available[id] <= 0 {
			continue
		}
		dev := stowage.ToleranceDeviation(remaining, available[id])
		if dev > settings.Faz1SingleTankTolerance {
			continue
		}
		if best == nil || dev < best.deviation {
			best = &candidateSet{tankIDs: []string{id}, deviation: dev}
		}
	}
	return acceptIfMinUtil(ship, best, remaining, available, settings.MinUtilization)
}

func phase2(ship *stowage.Ship, cargo *stowage.Cargo, remaining float64, available AvailableCapacity, settings stowage.Settings) (map[string]float64, bool) {
	pairs := stowage.TankPairs(ship)
	var best *candidateSet

	consider := func(ids []string, tolerance float64) {
		if available[ids[0]] <= 0 || available[ids[1]] <= 0 {
			return
		}
		cap := sumCapacities(ids, available)
		dev := stowage.ToleranceDeviation(remaining, cap)
		if dev > tolerance {
			return
		}
		if best == nil || dev < best.deviation {
			best = &candidateSet{tankIDs: ids, deviation: dev}
		}
	}

	// 2A: full-symmetric, same row pair.
	for _, p := range pairs {
		consider([]string{p.Port.ID, p.Starboard.ID}, settings.Faz2TwoTankTolerance)
	}

	// 2B: partial-symmetric, cross-row opposite sides only —
	// (port_i, starboard_j) and (starboard_i, port_j), never two of
	// the same side. Normative per the original's enumeration.
	for i, pi := range pairs {
		for j, pj := range pairs {
			if i == j {
				continue
			}
			consider([]string{pi.Port.ID, pj.Starboard.ID}, settings.Faz2TwoTankTolerance)
		}
	}

	// 2C: asymmetric, same side, at the reduced tolerance.
	reduced := settings.Faz2TwoTankTolerance * settings.Faz2AsymmetricToleranceFactor
	ports, starboards := sidesOf(ship, available)
	considerSameSide := func(list []string) {
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				consider([]string{list[i], list[j]}, reduced)
			}
		}
	}
	considerSameSide(ports)
	considerSameSide(starboards)

	return acceptIfMinUtil(ship, best, remaining, available, settings.MinUtilization)
}

func phase3(ship *stowage.Ship, cargo *stowage.Cargo, remaining float64, available AvailableCapacity, settings stowage.Settings) (map[string]float64, bool) {
	ids := idsWithCapacity(available)
	var best *candidateSet
	forEachTriple(ids, func(triple []string) {
		if stowage.SameSide(ship, triple) {
			return
		}
		cap := sumCapacities(triple, available)
		dev := stowage.ToleranceDeviation(remaining, cap)
		if dev > settings.Faz3ThreeTankTolerance {
			return
		}
		if best == nil || dev < best.deviation {
			best = &candidateSet{tankIDs: append([]string{}, triple...), deviation: dev}
		}
	})
	return acceptIfMinUtil(ship, best, remaining, available, settings.MinUtilization)
}

func phase4(ship *stowage.Ship, cargo *stowage.Cargo, remaining float64, available AvailableCapacity, settings stowage.Settings) (map[string]float64, bool) {
	candidatePairs := portStarboardPairCandidates(ship, available)
	var best *candidateSet

	for i := 0; i < len(candidatePairs); i++ {
		for j := i + 1; j < len(candidatePairs); j++ {
			a, b := candidatePairs[i], candidatePairs[j]
			if shareTank(a, b) {
				continue
			}
			tanks := append(append([]string{}, a...), b...)
			if stowage.BowOrSternCluster(ship, tanks) {
				continue
			}
			cap := sumCapacities(tanks, available)
			dev := stowage.ToleranceDeviation(remaining, cap)
			if dev > settings.Faz4FourTankTolerance {
				continue
			}
			if best == nil || dev < best.deviation {
				best = &candidateSet{tankIDs: tanks, deviation: dev}
			}
		}
	}
	return acceptIfMinUtil(ship, best, remaining, available, settings.MinUtilization)
}

func phase5(ship *stowage.Ship, cargo *stowage.Cargo, remaining float64, available AvailableCapacity, settings stowage.Settings) (map[string]float64, bool) {
	ids := idsWithCapacity(available)
	candidatePairs := portStarboardPairCandidates(ship, available)
	var best *candidateSet

	forEachTriple(ids, func(triple []string) {
		tripleSameSide := stowage.SameSide(ship, triple)
		for _, pair := range candidatePairs {
			if shareAny(triple, pair) {
				continue
			}
			if tripleSameSide {
				// the pair must sit on the opposite side from the triple.
				tripleSide := sideOf(ship, triple[0])
				if !pairOnOppositeSide(ship, pair, tripleSide) {
					continue
				}
			}
			combo := append(append([]string{}, triple...), pair...)
			cap := sumCapacities(combo, available)
			dev := stowage.ToleranceDeviation(remaining, cap)
			if dev > settings.Faz5FiveTankTolerance {
				continue
			}
			if best == nil || dev < best.deviation {
				best = &candidateSet{tankIDs: combo, deviation: dev}
			}
		}
	})
	return acceptIfMinUtil(ship, best, remaining, available, settings.MinUtilization)
}

func phase6(ship *stowage.Ship, cargo *stowage.Cargo, remaining float64, available AvailableCapacity, settings stowage.Settings) (map[string]float64, bool) {
	candidatePairs := portStarboardPairCandidates(ship, available)
	var best *candidateSet

	for i := 0; i < len(candidatePairs); i++ {
		for j := i + 1; j < len(candidatePairs); j++ {
			if shareTank(candidatePairs[i], candidatePairs[j]) {
				continue
			}
			for k := j + 1; k < len(candidatePairs); k++ {
				if shareTank(candidatePairs[i], candidatePairs[k]) || shareTank(candidatePairs[j], candidatePairs[k]) {
					continue
				}
				combo := append(append(append([]string{}, candidatePairs[i]...), candidatePairs[j]...), candidatePairs[k]...)
				cap := sumCapacities(combo, available)
				dev := stowage.ToleranceDeviation(remaining, cap)
				if dev > settings.Faz6SixTankTolerance {
					continue
				}
				if best == nil || dev < best.deviation {
					best = &candidateSet{tankIDs: combo, deviation: dev}
				}
			}
		}
	}
	return acceptIfMinUtil(ship, best, remaining, available, settings.MinUtilization)
}

// phase7 is the multi-tank fallback: sort available tanks by
// remaining capacity descending and fill while each placement still
// meets min_utilization. Unlike phases 1-6 it does not target an
// exact tank count.
func phase7(ship *stowage.Ship, cargo *stowage.Cargo, remaining float64, available AvailableCapacity, settings stowage.Settings) (map[string]float64, bool) {
	assigned := make(map[string]float64)
	left := remaining
	for _, id := range available.RemainingTankIDs() {
		if left <= 1e-9 {
			break
		}
		tank := ship.TankByID(id)
		if tank == nil || available[id] <= 0 {
			continue
		}
		q := left
		if available[id] < q {
			q = available[id]
		}
		if tank.Volume < q {
			q = tank.Volume
		}
		if !stowage.MeetsMinUtilization(q, tank.Volume, settings.MinUtilization) {
			continue
		}
		assigned[id] = q
		left -= q
	}
	if len(assigned) == 0 {
		return nil, false
	}
	return assigned, true
}

// --- shared helpers ----------------------------------------------------

func acceptIfMinUtil(ship *stowage.Ship, best *candidateSet, remaining float64, available AvailableCapacity, minUtil float64) (map[string]float64, bool) {
	if best == nil {
		return nil, false
	}
	assigned := distribute(remaining, best.tankIDs, available)
	for _, id := range best.tankIDs {
		tank := ship.TankByID(id)
		if tank == nil || !stowage.MeetsMinUtilization(assigned[id], tank.Volume, minUtil) {
			return nil, false
		}
	}
	return assigned, true
}

func idsWithCapacity(available AvailableCapacity) []string {
	ids := make([]string, 0, len(available))
	for id, cap := range available {
		if cap > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func forEachTriple(ids []string, fn func(triple []string)) {
	n := len(ids)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				fn([]string{ids[i], ids[j], ids[k]})
			}
		}
	}
}

func sidesOf(ship *stowage.Ship, available AvailableCapacity) (ports, starboards []string) {
	totalRows := ship.TotalRows()
	for i, t := range ship.Tanks {
		if available[t.ID] <= 0 {
			continue
		}
		pos := stowage.PositionOf(i, totalRows)
		if pos.Side == stowage.Port {
			ports = append(ports, t.ID)
		} else {
			starboards = append(starboards, t.ID)
		}
	}
	return ports, starboards
}

func sideOf(ship *stowage.Ship, tankID string) stowage.Side {
	totalRows := ship.TotalRows()
	for i, t := range ship.Tanks {
		if t.ID == tankID {
			return stowage.PositionOf(i, totalRows).Side
		}
	}
	return stowage.Port
}

func pairOnOppositeSide(ship *stowage.Ship, pair []string, side stowage.Side) bool {
	for _, id := range pair {
		if sideOf(ship, id) == side {
			return false
		}
	}
	return true
}

// portStarboardPairCandidates builds every valid port+starboard pair:
// same-row pairs only when the row is in the mid-section, plus every
// cross-row port/starboard combination.
func portStarboardPairCandidates(ship *stowage.Ship, available AvailableCapacity) [][]string {
	ports, starboards := sidesOf(ship, available)
	mid := stowage.MidSectionRows(ship.TotalRows())
	totalRows := ship.TotalRows()

	var out [][]string
	for _, p := range ports {
		for _, s := range starboards {
			if p == s {
				continue
			}
			sameRow := rowOf(ship, totalRows, p) == rowOf(ship, totalRows, s)
			if sameRow && !mid[rowOf(ship, totalRows, p)] {
				continue
			}
			out = append(out, []string{p, s})
		}
	}
	return out
}

func rowOf(ship *stowage.Ship, totalRows int, tankID string) int {
	for i, t := range ship.Tanks {
		if t.ID == tankID {
			return stowage.PositionOf(i, totalRows).Row
		}
	}
	return 0
}

func shareTank(a, b []string) bool {
	return shareAny(a, b)
}

func shareAny(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
