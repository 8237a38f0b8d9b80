package stowage

// Tank is a single storage container. It has no intrinsic side or
// row; its position within the hull is derived from its index in the
// owning Ship's Tanks slice (see geometry.go).
type Tank struct {
	ID     string
	Name   string
	Volume float64
}

// Ship is an ordered sequence of tanks. The order encodes geometry:
// the tank at index i has row = i/2+1, side = port if i is even,
// starboard otherwise. A row is a port/starboard pair; a trailing
// unpaired tank is allowed.
type Ship struct {
	ID    string
	Name  string
	Tanks []Tank
}

// TankByID returns the tank with the given id, or nil if absent.
func (s *Ship) TankByID(id string) *Tank {
	for i := range s.Tanks {
		if s.Tanks[i].ID == id {
			return &s.Tanks[i]
		}
	}
	return nil
}

// TotalCapacity sums the volume of every tank on the ship.
func (s *Ship) TotalCapacity() float64 {
	var total float64
	for _, t := range s.Tanks {
		total += t.Volume
	}
	return total
}

// TotalRows returns the number of rows implied by the tank count.
func (s *Ship) TotalRows() int {
	return (len(s.Tanks) + 1) / 2
}
