package stowage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

func shipOfRows(rows int, volume float64) *stowage.Ship {
	tanks := make([]stowage.Tank, rows*2)
	for i := range tanks {
		tanks[i] = stowage.Tank{ID: idOf(i), Name: idOf(i), Volume: volume}
	}
	return &stowage.Ship{ID: "s", Tanks: tanks}
}

func idOf(i int) string {
	return string(rune('a' + i))
}

func TestPositionOfAlternatesSideByParity(t *testing.T) {
	pos0 := stowage.PositionOf(0, 3)
	pos1 := stowage.PositionOf(1, 3)
	assert.Equal(t, stowage.Port, pos0.Side)
	assert.Equal(t, stowage.Starboard, pos1.Side)
	assert.Equal(t, 1, pos0.Row)
	assert.Equal(t, 1, pos1.Row)
}

func TestTankPairsSkipsUnpairedTrailingTank(t *testing.T) {
	ship := &stowage.Ship{ID: "s", Tanks: []stowage.Tank{
		{ID: "a", Volume: 100}, {ID: "b", Volume: 100}, {ID: "c", Volume: 100},
	}}
	pairs := stowage.TankPairs(ship)
	assert.Len(t, pairs, 1)
	assert.Equal(t, "a", pairs[0].Port.ID)
	assert.Equal(t, "b", pairs[0].Starboard.ID)
}

func TestBowOrSternClusterDetectsAllBow(t *testing.T) {
	ship := shipOfRows(6, 100) // 6 rows, 12 tanks
	bowTanks := []string{ship.Tanks[0].ID, ship.Tanks[1].ID, ship.Tanks[2].ID, ship.Tanks[3].ID}
	assert.True(t, stowage.BowOrSternCluster(ship, bowTanks))
}

func TestBowOrSternClusterFalseWhenSpreadAcrossMid(t *testing.T) {
	ship := shipOfRows(6, 100)
	// rows 1,2,3,4 span bow-3 (rows 1-3) and mid (row 4) -> neither all-bow nor all-stern.
	spread := []string{ship.Tanks[0].ID, ship.Tanks[2].ID, ship.Tanks[4].ID, ship.Tanks[6].ID}
	assert.False(t, stowage.BowOrSternCluster(ship, spread))
}

func TestMidSectionRowsSmallShipTreatsEveryRowAsMid(t *testing.T) {
	rows := stowage.MidSectionRows(2)
	assert.True(t, rows[1])
	assert.True(t, rows[2])
}

func TestMidSectionRowsExcludesOutermostRows(t *testing.T) {
	rows := stowage.MidSectionRows(6)
	assert.False(t, rows[1])
	assert.False(t, rows[6])
}

func TestToleranceDeviation(t *testing.T) {
	assert.InDelta(t, 0.1, stowage.ToleranceDeviation(110, 100), 1e-9)
	assert.Equal(t, 1.0, stowage.ToleranceDeviation(5, 0))
}

func TestMeetsMinUtilization(t *testing.T) {
	assert.True(t, stowage.MeetsMinUtilization(70, 100, 0.65))
	assert.False(t, stowage.MeetsMinUtilization(60, 100, 0.65))
	assert.False(t, stowage.MeetsMinUtilization(10, 0, 0.65))
}
