package stowage

// Side is port or starboard, derived from a tank's index parity.
type Side string

const (
	Port       Side = "port"
	Starboard  Side = "starboard"
)

// Section is the longitudinal third of the hull a row sits in.
type Section string

const (
	Bow  Section = "bow"
	Mid  Section = "mid"
	Stern Section = "stern"
)

// TankPosition is the geometry derived for a single tank from its
// index in Ship.Tanks. Nothing here is stored on Tank itself — it is
// always recomputed from index, never persisted.
type TankPosition struct {
	Row     int
	Side    Side
	Section Section
}

// PositionOf derives the row/side/section of the tank at index i on
// a ship with totalRows rows. Section uses the loose bow/mid/stern
// split (row 1 is bow, the last row is stern, everything else mid);
// the stricter bow-3/stern-3 split used by the 4-tank prohibition is
// computed separately by BowOrSternCluster.
func PositionOf(i, totalRows int) TankPosition {
	row := i/2 + 1
	side := Port
	if i%2 == 1 {
		side = Starboard
	}
	section := Mid
	switch {
	case row == 1:
		section = Bow
	case row == totalRows:
		section = Stern
	}
	return TankPosition{Row: row, Side: side, Section: section}
}

// TankPair is a port/starboard pair of tanks sharing a row.
type TankPair struct {
	Port       Tank
	Starboard  Tank
	Row        int
}

// TankPairs returns the ordered sequence of (port, starboard) tanks
// at matching rows, skipping any row missing one side (a trailing
// unpaired tank, for instance).
func TankPairs(ship *Ship) []TankPair {
	totalRows := ship.TotalRows()
	byRow := make(map[int][2]*Tank)
	for i := range ship.Tanks {
		pos := PositionOf(i, totalRows)
		entry := byRow[pos.Row]
		if pos.Side == Port {
			entry[0] = &ship.Tanks[i]
		} else {
			entry[1] = &ship.Tanks[i]
		}
		byRow[pos.Row] = entry
	}
	pairs := make([]TankPair, 0, totalRows)
	for row := 1; row <= totalRows; row++ {
		entry := byRow[row]
		if entry[0] != nil && entry[1] != nil {
			pairs = append(pairs, TankPair{Port: *entry[0], Starboard: *entry[1], Row: row})
		}
	}
	return pairs
}

// positionIndex maps tank id to its derived TankPosition for a ship.
func positionIndex(ship *Ship) map[string]TankPosition {
	totalRows := ship.TotalRows()
	idx := make(map[string]TankPosition, len(ship.Tanks))
	for i, t := range ship.Tanks {
		idx[t.ID] = PositionOf(i, totalRows)
	}
	return idx
}

// SameSide reports whether every listed tank shares a side. An empty
// or single-element set is trivially true.
func SameSide(ship *Ship, tankIDs []string) bool {
	idx := positionIndex(ship)
	var side Side
	for i, id := range tankIDs {
		pos, ok := idx[id]
		if !ok {
			continue
		}
		if i == 0 {
			side = pos.Side
			continue
		}
		if pos.Side != side {
			return false
		}
	}
	return true
}

// bowThreeRows and sternThreeRows are the strict "first/last three
// rows" used by the 4-tank clustering prohibition. They are
// deliberately distinct from PositionOf's loose bow/mid/stern split —
// a row can be in both the bow-3 and stern-3 bands at once on a
// four-row ship, and the prohibition must see that overlap.
func bowThreeRows(totalRows int) map[int]bool {
	rows := make(map[int]bool)
	for r := 1; r <= 3 && r <= totalRows; r++ {
		rows[r] = true
	}
	return rows
}

func sternThreeRows(totalRows int) map[int]bool {
	rows := make(map[int]bool)
	for r := totalRows - 2; r <= totalRows; r++ {
		if r >= 1 {
			rows[r] = true
		}
	}
	return rows
}

// BowOrSternCluster reports whether every listed tank sits in the
// bow-3 rows, or every listed tank sits in the stern-3 rows. This is
// the predicate the mandatory-placer retry path and phase 4's
// clustering check both must honor, kept separate on purpose (see
// DESIGN.md on the asymmetric bow/stern coding in the original).
func BowOrSternCluster(ship *Ship, tankIDs []string) bool {
	idx := positionIndex(ship)
	totalRows := ship.TotalRows()
	bow := bowThreeRows(totalRows)
	stern := sternThreeRows(totalRows)

	allBow, allStern := true, true
	for _, id := range tankIDs {
		pos, ok := idx[id]
		if !ok {
			continue
		}
		if !bow[pos.Row] {
			allBow = false
		}
		if !stern[pos.Row] {
			allStern = false
		}
	}
	return allBow || allStern
}

// MidSectionRows returns the set of rows phase 4's "same row in
// mid-section" exception applies to. For totalRows <= 2 every row
// qualifies; otherwise it is approximately the central third,
// intersected with [2, totalRows-1] so the outermost rows are never
// treated as mid-section regardless of the fraction computed.
func MidSectionRows(totalRows int) map[int]bool {
	rows := make(map[int]bool)
	if totalRows <= 2 {
		for r := 1; r <= totalRows; r++ {
			rows[r] = true
		}
		return rows
	}
	lo := totalRows/3 + 1
	hi := (2 * totalRows) / 3 + 1
	if lo < 2 {
		lo = 2
	}
	if hi > totalRows-1 {
		hi = totalRows - 1
	}
	for r := lo; r <= hi; r++ {
		rows[r] = true
	}
	return rows
}

// ToleranceDeviation is the relative deviation of a candidate
// quantity q against a capacity c: |q-c|/c. Every phase's acceptance
// test reduces to comparing this against the phase's tolerance.
func ToleranceDeviation(q, c float64) float64 {
	if c == 0 {
		return 1
	}
	d := q - c
	if d < 0 {
		d = -d
	}
	return d / c
}

// MeetsMinUtilization reports whether loading q into a tank of the
// given volume respects the minimum per-tank fill fraction.
func MeetsMinUtilization(q, volume, minUtilization float64) bool {
	if volume <= 0 {
		return false
	}
	return q/volume >= minUtilization
}
