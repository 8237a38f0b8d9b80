package services

import (
	"sort"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// AvailableCapacity is the mutable owned map threaded through every
// placement step: tank id -> remaining capacity. It starts as a copy
// of each tank's full volume minus whatever fixed/excluded tanks have
// already removed, and is decremented in place as cargoes are placed.
type AvailableCapacity map[string]float64

// NewAvailableCapacity seeds the capacity table from the ship,
// omitting any tank id present in unavailable.
func NewAvailableCapacity(ship *stowage.Ship, unavailable map[string]bool) AvailableCapacity {
	cap := make(AvailableCapacity, len(ship.Tanks))
	for _, t := range ship.Tanks {
		if unavailable[t.ID] {
			continue
		}
		cap[t.ID] = t.Volume
	}
	return cap
}

// RemainingTankIDs returns the ids still present in the capacity
// table, sorted by remaining capacity descending.
func (a AvailableCapacity) RemainingTankIDs() []string {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if a[ids[i]] != a[ids[j]] {
			return a[ids[i]] > a[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}

// PlaceMandatory runs the C3 pre-placement pass: for each mandatory
// cargo in input order, greedily peel from the tanks with the most
// remaining capacity, accepting a tank only when the resulting fill
// meets minUtilization, until the cargo is satisfied or tanks are
// exhausted.
func PlaceMandatory(ship *stowage.Ship, plan *stowage.Plan, available AvailableCapacity, mandatory []*stowage.Cargo, minUtilization float64) {
	for _, cargo := range mandatory {
		placeOneMandatory(ship, plan, available, cargo, minUtilization)
	}
}

func placeOneMandatory(ship *stowage.Ship, plan *stowage.Plan, available AvailableCapacity, cargo *stowage.Cargo, minUtilization float64) {
	remaining := cargo.RequestedVolume - plan.LoadedVolumeForCargo(cargo.ID)
	if remaining <= 0 {
		return
	}

	for _, tankID := range available.RemainingTankIDs() {
		if remaining <= 0 {
			break
		}
		tank := ship.TankByID(tankID)
		if tank == nil {
			continue
		}
		tankRemaining := available[tankID]
		if tankRemaining <= 0 {
			continue
		}

		q := remaining
		if tankRemaining < q {
			q = tankRemaining
		}
		if tank.Volume < q {
			q = tank.Volume
		}
		if !stowage.MeetsMinUtilization(q, tank.Volume, minUtilization) {
			continue
		}

		plan.Place(stowage.Assignment{TankID: tankID, CargoID: cargo.ID, QuantityLoaded: q})
		available[tankID] -= q
		remaining -= q
	}
}

// SplitMandatory separates mandatory cargoes from regular ones,
// preserving input order in both slices.
func SplitMandatory(cargoes []*stowage.Cargo) (mandatory, regular []*stowage.Cargo) {
	for _, c := range cargoes {
		if c.IsMandatory {
			mandatory = append(mandatory, c)
		} else {
			regular = append(regular, c)
		}
	}
	return mandatory, regular
}
