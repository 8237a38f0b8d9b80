package helpers

import "github.com/akinaridici/stowagemaster/internal/domain/stowage"

// NewTestCargo builds a regular (non-mandatory) cargo with an explicit
// requested volume and no receivers.
func NewTestCargo(kind string, volume float64) *stowage.Cargo {
	return stowage.NewCargo(kind, volume, 0, 0, nil, false)
}

// NewTestMandatoryCargo builds a mandatory cargo with an explicit
// requested volume.
func NewTestMandatoryCargo(kind string, volume float64) *stowage.Cargo {
	return stowage.NewCargo(kind, volume, 0, 0, nil, true)
}

// NewTestCargoWithReceivers builds a regular cargo with the given receivers.
func NewTestCargoWithReceivers(kind string, volume float64, receivers ...string) *stowage.Cargo {
	return stowage.NewCargo(kind, volume, 0, 0, receivers, false)
}
