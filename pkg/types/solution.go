package types

// Solve statuses, shared by Solution and AssignmentReport. Solvers produce
// the first, second, and last; "infeasible" appears only on reports, since
// a proven-infeasible solve yields an error rather than a solution.
const (
	StatusOptimal    = "optimal"    // proven globally optimal
	StatusFeasible   = "feasible"   // valid but not proven optimal
	StatusInfeasible = "infeasible" // proven to have no complete assignment
	StatusUnsolved   = "unsolved"   // solver gave up without an incumbent
)

// Solution is the raw solver output: a partial or total mapping from item
// identifier to slot identifier, the objective value over assigned items,
// and a solve status. A Solution is immutable; every solve produces a new
// one.
type Solution struct {
	Assignments map[string]string `json:"assignments"` // item ID -> slot ID; absent means unassigned
	Objective   float64           `json:"objective"`
	Status      string            `json:"status"`
}

// Assigned returns the slot the item was placed in, or false when the item
// is unassigned.
func (s Solution) Assigned(itemID string) (string, bool) {
	slotID, ok := s.Assignments[itemID]
	return slotID, ok
}
