package stowage

// Assignment binds a tank to a cargo and the quantity loaded into it.
// 0 < QuantityLoaded <= the tank's volume always holds for any
// Assignment surfaced by the engine.
type Assignment struct {
	TankID         string
	CargoID        string
	QuantityLoaded float64
}
