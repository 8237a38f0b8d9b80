package stowage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

func TestPlanLoadedVolumeSumsAssignments(t *testing.T) {
	plan := stowage.NewPlan("p1", "ship-1", time.Unix(0, 0))
	plan.Place(stowage.Assignment{TankID: "t1", CargoID: "c1", QuantityLoaded: 100})
	plan.Place(stowage.Assignment{TankID: "t2", CargoID: "c1", QuantityLoaded: 50})
	assert.InDelta(t, 150.0, plan.LoadedVolume(), 1e-9)
	assert.InDelta(t, 150.0, plan.LoadedVolumeForCargo("c1"), 1e-9)
}

func TestPlanTanksForCargo(t *testing.T) {
	plan := stowage.NewPlan("p1", "ship-1", time.Unix(0, 0))
	plan.Place(stowage.Assignment{TankID: "t1", CargoID: "c1", QuantityLoaded: 100})
	plan.Place(stowage.Assignment{TankID: "t2", CargoID: "c2", QuantityLoaded: 50})
	assert.ElementsMatch(t, []string{"t1"}, plan.TanksForCargo("c1"))
}

func TestMergeFixedNeverMutatesEnginePlan(t *testing.T) {
	plan := stowage.NewPlan("p1", "ship-1", time.Unix(0, 0))
	plan.Place(stowage.Assignment{TankID: "t2", CargoID: "c1", QuantityLoaded: 100})
	fixed := []stowage.FixedAssignment{{TankID: "t1", CargoID: "cFixed", QuantityLoaded: 40}}

	merged := stowage.MergeFixed(plan, fixed)

	assert.Len(t, merged, 2)
	assert.Equal(t, "cFixed", merged["t1"].CargoID)
	assert.NotContains(t, plan.Assignments, "t1")
}

func TestExcludedOrFixedUnion(t *testing.T) {
	fixed := []stowage.FixedAssignment{{TankID: "t1", CargoID: "c1", QuantityLoaded: 10}}
	unavailable := stowage.ExcludedOrFixed([]string{"t2"}, fixed)
	assert.True(t, unavailable["t1"])
	assert.True(t, unavailable["t2"])
	assert.False(t, unavailable["t3"])
}
