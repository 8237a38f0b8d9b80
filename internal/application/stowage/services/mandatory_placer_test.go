package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/application/stowage/services"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
	"github.com/akinaridici/stowagemaster/test/helpers"
)

func TestSplitMandatoryPreservesOrder(t *testing.T) {
	m := helpers.NewTestMandatoryCargo("crude", 100)
	r1 := helpers.NewTestCargo("fuel", 50)
	r2 := helpers.NewTestCargo("oil", 60)

	mandatory, regular := services.SplitMandatory([]*stowage.Cargo{r1, m, r2})
	assert.Equal(t, []*stowage.Cargo{m}, mandatory)
	assert.Equal(t, []*stowage.Cargo{r1, r2}, regular)
}

func TestPlaceMandatorySpreadsAcrossMultipleTanks(t *testing.T) {
	ship := helpers.NewTestShip(4, 500)
	cargo := helpers.NewTestMandatoryCargo("crude", 2000)
	plan := stowage.NewPlan("", ship.ID, fixedNow())
	available := services.NewAvailableCapacity(ship, nil)

	services.PlaceMandatory(ship, plan, available, []*stowage.Cargo{cargo}, 0.65)

	assert.InDelta(t, 2000.0, plan.LoadedVolumeForCargo(cargo.ID), 1e-6)
	assert.Len(t, plan.Assignments, 4)
}

func TestPlaceMandatorySkipsExcludedTanks(t *testing.T) {
	ship := helpers.NewTestShip(2, 500)
	cargo := helpers.NewTestMandatoryCargo("crude", 300)
	plan := stowage.NewPlan("", ship.ID, fixedNow())
	unavailable := map[string]bool{ship.Tanks[0].ID: true}
	available := services.NewAvailableCapacity(ship, unavailable)

	services.PlaceMandatory(ship, plan, available, []*stowage.Cargo{cargo}, 0.5)

	assert.NotContains(t, plan.Assignments, ship.Tanks[0].ID)
	assert.Contains(t, plan.Assignments, ship.Tanks[1].ID)
}
