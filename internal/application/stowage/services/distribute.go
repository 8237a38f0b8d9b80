package services

// distribute implements "equal split then cap-aware repair": assign
// remaining/k to each tank, then for any tank that would overflow,
// cap it and redistribute the excess to tanks with remaining
// headroom. Every value in the result is already clamped to the
// tank's available capacity — callers never need a further safety
// clamp.
func distribute(remaining float64, tankIDs []string, available AvailableCapacity) map[string]float64 {
	k := len(tankIDs)
	if k == 0 {
		return map[string]float64{}
	}
	assigned := make(map[string]float64, k)
	share := remaining / float64(k)

	var overflow float64
	var headroom []string
	for _, id := range tankIDs {
		room := available[id]
		if share > room {
			assigned[id] = room
			overflow += share - room
		} else {
			assigned[id] = share
			headroom = append(headroom, id)
		}
	}

	for overflow > 1e-9 && len(headroom) > 0 {
		per := overflow / float64(len(headroom))
		overflow = 0
		var next []string
		for _, id := range headroom {
			room := available[id] - assigned[id]
			if room <= 0 {
				continue
			}
			add := per
			if add >= room {
				add = room
				overflow += per - room
			} else {
				next = append(next, id)
			}
			assigned[id] += add
		}
		headroom = next
	}

	return assigned
}

func sumCapacities(tankIDs []string, available AvailableCapacity) float64 {
	var total float64
	for _, id := range tankIDs {
		total += available[id]
	}
	return total
}
