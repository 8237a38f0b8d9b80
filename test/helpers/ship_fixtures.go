package helpers

import (
	"fmt"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// NewTestShip builds a ship with n tanks, each of the given volume,
// ids "t1".."tn", alternating port/starboard by index per the
// domain's own row-from-index convention.
func NewTestShip(n int, volume float64) *stowage.Ship {
	tanks := make([]stowage.Tank, n)
	for i := 0; i < n; i++ {
		tanks[i] = stowage.Tank{
			ID:     tankID(i + 1),
			Name:   tankID(i + 1),
			Volume: volume,
		}
	}
	return &stowage.Ship{ID: "test-ship", Name: "Test Tanker", Tanks: tanks}
}

// NewTestShipWithVolumes builds a ship with one tank per entry in volumes.
func NewTestShipWithVolumes(volumes []float64) *stowage.Ship {
	tanks := make([]stowage.Tank, len(volumes))
	for i, v := range volumes {
		tanks[i] = stowage.Tank{ID: tankID(i + 1), Name: tankID(i + 1), Volume: v}
	}
	return &stowage.Ship{ID: "test-ship", Name: "Test Tanker", Tanks: tanks}
}

func tankID(n int) string {
	return fmt.Sprintf("t%d", n)
}
