package stowage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

func TestValidateStructureRejectsEmptyShip(t *testing.T) {
	ok, msg := stowage.ValidateStructure(&stowage.Ship{}, nil)
	assert.False(t, ok)
	assert.Contains(t, msg, "at least one tank")
}

func TestValidateStructureRejectsNonPositiveTankVolume(t *testing.T) {
	ship := &stowage.Ship{Tanks: []stowage.Tank{{ID: "t1", Name: "t1", Volume: 0}}}
	ok, _ := stowage.ValidateStructure(ship, nil)
	assert.False(t, ok)
}

func TestValidateStructureRejectsNonPositiveCargoVolume(t *testing.T) {
	ship := &stowage.Ship{Tanks: []stowage.Tank{{ID: "t1", Name: "t1", Volume: 100}}}
	cargo := stowage.NewCargo("crude", -1, 0, 0, nil, false)
	ok, _ := stowage.ValidateStructure(ship, []*stowage.Cargo{cargo})
	assert.False(t, ok)
}

func TestValidateReportsInfeasibleWhenOverCapacity(t *testing.T) {
	ship := &stowage.Ship{Tanks: []stowage.Tank{{ID: "t1", Name: "t1", Volume: 100}}}
	cargo := stowage.NewCargo("crude", 200, 0, 0, nil, false)
	ok, msg := stowage.Validate(ship, []*stowage.Cargo{cargo})
	assert.False(t, ok)
	assert.Contains(t, msg, "exceeds ship capacity")
}

func TestValidateCargoQuantityAcceptsTonDensityPair(t *testing.T) {
	assert.NoError(t, stowage.ValidateCargoQuantity(0, 800, 0.8))
	assert.Error(t, stowage.ValidateCargoQuantity(0, 0, 0))
}

func TestValidateTankNameRejectsDuplicates(t *testing.T) {
	existing := []stowage.Tank{{ID: "t1", Name: "center"}}
	assert.Error(t, stowage.ValidateTankName("center", existing))
	assert.NoError(t, stowage.ValidateTankName("port", existing))
}
