package stowage

import (
	"fmt"

	"github.com/akinaridici/stowagemaster/internal/domain/shared"
)

// SolverError is the base type for every error the engine raises.
type SolverError struct {
	*shared.DomainError
}

func NewSolverError(message string) *SolverError {
	return &SolverError{DomainError: shared.NewDomainError(message)}
}

// InvalidInputError reports a structurally invalid ship, cargo or
// settings value: non-positive quantity, non-positive tank volume, an
// empty ship. Raised by Validate; Optimize may refuse to start.
type InvalidInputError struct {
	*SolverError
	Field string
}

func NewInvalidInputError(field, message string) *InvalidInputError {
	return &InvalidInputError{
		SolverError: NewSolverError(message),
		Field:       field,
	}
}

// InfeasibleError reports that total requested volume exceeds the
// ship's capacity (plus the GA's slack). It is informational: hosts
// may still call Optimize and accept a best-effort partial plan.
type InfeasibleError struct {
	*SolverError
	Requested float64
	Capacity  float64
}

func NewInfeasibleError(requested, capacity float64) *InfeasibleError {
	return &InfeasibleError{
		SolverError: NewSolverError(fmt.Sprintf("requested volume %.2f exceeds capacity %.2f", requested, capacity)),
		Requested:   requested,
		Capacity:    capacity,
	}
}
