package types

import (
	"errors"
	"fmt"
)

// Error sentinels for the engine's failure classes. The typed errors below
// unwrap to these so callers can classify failures with errors.Is.
var (
	ErrValidation  = errors.New("invalid catalog input")
	ErrModel       = errors.New("model cannot be built")
	ErrInfeasible  = errors.New("no feasible complete assignment")
	ErrConsistency = errors.New("objective cross-check failed")
)

// ValidationError reports malformed catalog input: a non-positive numeric
// field, a duplicate identifier, or an unknown category or slot type.
type ValidationError struct {
	EntityID string // offending item, slot, or rule identifier; may be empty
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.EntityID == "" {
		return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("validation: %s: %s: %s", e.EntityID, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ModelError reports a model that is infeasible by construction, before any
// solver runs: an empty catalog, or an item with zero compatible slots
// under a no-unassigned policy.
type ModelError struct {
	ItemID string // offending item; empty for catalog-level failures
	Reason string
}

func (e *ModelError) Error() string {
	if e.ItemID == "" {
		return "model: " + e.Reason
	}
	return fmt.Sprintf("model: item %s: %s", e.ItemID, e.Reason)
}

func (e *ModelError) Unwrap() error { return ErrModel }

// InfeasibleError reports a proven absence of any complete assignment under
// capacity and compatibility constraints with AllowUnassigned disabled. A
// solver that merely gave up returns a Solution with status "unsolved" or
// "feasible" instead.
type InfeasibleError struct {
	Reason string
}

func (e *InfeasibleError) Error() string {
	return "infeasible: " + e.Reason
}

func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }

// ConsistencyError reports a solver objective that disagrees with the
// reporter's independent recomputation beyond tolerance. It indicates an
// internal bug and is always fatal.
type ConsistencyError struct {
	Reported   float64
	Recomputed float64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency: solver reported objective %g but recomputation yields %g", e.Reported, e.Recomputed)
}

func (e *ConsistencyError) Unwrap() error { return ErrConsistency }
