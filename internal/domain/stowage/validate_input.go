package stowage

import "strings"

// ValidatePositiveNumber reports an error if value is not strictly positive.
func ValidatePositiveNumber(field string, value float64) error {
	if value <= 0 {
		return NewInvalidInputError(field, field+" must be a positive number")
	}
	return nil
}

// ValidateNonEmptyString reports an error if value is blank after trimming.
func ValidateNonEmptyString(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewInvalidInputError(field, field+" must not be empty")
	}
	return nil
}

// ValidateTankName reports an error if name is blank or already used
// by another tank on the ship (tank names must be unique within a ship).
func ValidateTankName(name string, existing []Tank) error {
	if err := ValidateNonEmptyString("name", name); err != nil {
		return err
	}
	for _, t := range existing {
		if t.Name == name {
			return NewInvalidInputError("name", "tank name \""+name+"\" is already in use")
		}
	}
	return nil
}

// ValidateCargoQuantity reports an error if a cargo's requested
// volume, or its ton/density pair, cannot yield a positive volume.
func ValidateCargoQuantity(requestedVolume, ton, density float64) error {
	if requestedVolume > 0 {
		return nil
	}
	if ton > 0 && density > 0 {
		return nil
	}
	return NewInvalidInputError("requested_volume", "cargo must have a positive requested_volume, or both ton and density")
}

// ValidateStructure checks a ship and its cargo requests for
// structural validity only: InvalidInput conditions such as an empty
// ship, a non-positive tank volume, or a non-positive cargo volume.
// It does not check capacity — callers needing the capacity check
// choose their own slack (the phase solver allows none, the GA 10%).
func ValidateStructure(ship *Ship, cargoes []*Cargo) (bool, string) {
	if ship == nil || len(ship.Tanks) == 0 {
		return false, "ship must have at least one tank"
	}
	for _, t := range ship.Tanks {
		if t.Volume <= 0 {
			return false, "tank \"" + t.Name + "\" has non-positive volume"
		}
	}
	for _, c := range cargoes {
		if c.RequestedVolume <= 0 {
			return false, "cargo \"" + c.KindLabel + "\" has non-positive requested volume"
		}
	}
	return true, ""
}

// Validate checks structural validity and reports infeasibility
// (requested volume exceeding capacity) without treating it as an
// error — Shortfall is discovered through Unfulfilled, not through
// Validate's return.
func Validate(ship *Ship, cargoes []*Cargo) (bool, string) {
	if ok, msg := ValidateStructure(ship, cargoes); !ok {
		return ok, msg
	}
	var requested float64
	for _, c := range cargoes {
		requested += c.RequestedVolume
	}
	if requested > ship.TotalCapacity() {
		return false, "total requested volume exceeds ship capacity"
	}
	return true, ""
}
