package stowage

import "github.com/google/uuid"

// Receiver is a single named consignee. Immutable once created.
type Receiver struct {
	Name string
}

// Cargo is a single cargo order. RequestedVolume is derived from
// Ton/Density exactly once, at construction, and is never silently
// recomputed afterward — a persisted RequestedVolume always wins on
// reload (see NewCargoFromPersisted).
type Cargo struct {
	ID              string
	KindLabel       string
	RequestedVolume float64
	Ton             float64
	Density         float64
	Receivers       []Receiver
	IsMandatory     bool
}

// NewCargo constructs a cargo order. requestedVolume, when > 0, wins
// outright. Otherwise, when ton > 0 and density > 0, the volume is
// derived as ton/density. It is an error (caught by Validate) for
// both to be absent.
func NewCargo(kindLabel string, requestedVolume, ton, density float64, receivers []string, mandatory bool) *Cargo {
	vol := requestedVolume
	if vol <= 0 && ton > 0 && density > 0 {
		vol = ton / density
	}
	rs := make([]Receiver, 0, len(receivers))
	for _, name := range receivers {
		rs = append(rs, Receiver{Name: name})
	}
	return &Cargo{
		ID:              uuid.New().String(),
		KindLabel:       kindLabel,
		RequestedVolume: vol,
		Ton:             ton,
		Density:         density,
		Receivers:       rs,
		IsMandatory:     mandatory,
	}
}

// NewCargoFromPersisted reconstructs a cargo from a stored record. A
// positive persistedVolume always wins over a ton/density derivation,
// matching the "loading must not recompute" persistence rule.
func NewCargoFromPersisted(id, kindLabel string, persistedVolume, ton, density float64, receivers []string, mandatory bool) *Cargo {
	c := NewCargo(kindLabel, persistedVolume, ton, density, receivers, mandatory)
	c.ID = id
	if persistedVolume > 0 {
		c.RequestedVolume = persistedVolume
	}
	return c
}

// ReceiverCount returns the number of receivers attached to the cargo,
// used by several of the phase solver's retry cargo orderings.
func (c *Cargo) ReceiverCount() int {
	return len(c.Receivers)
}
