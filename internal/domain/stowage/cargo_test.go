package stowage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

func TestNewCargoVolumeDerivedFromTonDensity(t *testing.T) {
	c := stowage.NewCargo("crude", 0, 800, 0.8, nil, false)
	assert.InDelta(t, 1000.0, c.RequestedVolume, 1e-9)
}

func TestNewCargoExplicitVolumeWinsOverTonDensity(t *testing.T) {
	c := stowage.NewCargo("crude", 500, 800, 0.8, nil, false)
	assert.InDelta(t, 500.0, c.RequestedVolume, 1e-9)
}

func TestNewCargoFromPersistedVolumeWinsOverDerivation(t *testing.T) {
	c := stowage.NewCargoFromPersisted("id-1", "crude", 750, 800, 0.8, nil, false)
	assert.Equal(t, "id-1", c.ID)
	assert.InDelta(t, 750.0, c.RequestedVolume, 1e-9)
}

func TestCargoReceiverCount(t *testing.T) {
	c := stowage.NewCargo("crude", 100, 0, 0, []string{"acme", "globex"}, false)
	assert.Equal(t, 2, c.ReceiverCount())
}
