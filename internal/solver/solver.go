// Package solver computes assignments for an optimization model. Two
// strategies implement the same interface: an exact branch-and-bound search
// and a greedy heuristic with relocation repair.
package solver

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/stowage/internal/model"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

// costEps is the tolerance for comparing objective values and capacity
// headroom, which are sums of float64 products.
const costEps = 1e-9

// Solver produces a Solution for an optimization model. Implementations
// must be deterministic: identical model and config yield an identical
// Solution. The context carries cooperative cancellation; a solver checks
// it at search boundaries and returns its best incumbent when cancelled.
type Solver interface {
	Solve(ctx context.Context, m *model.Model, cfg types.Config) (types.Solution, error)
}

// New is a factory that creates a Solver for the given strategy.
func New(strategy string) (Solver, error) {
	switch strategy {
	case types.StrategyExact:
		return &Exact{}, nil
	case types.StrategyHeuristic:
		return &Heuristic{}, nil
	default:
		return nil, fmt.Errorf("unsupported solver strategy: %q", strategy)
	}
}

// Solve validates the config, creates the configured solver, and runs it.
func Solve(ctx context.Context, m *model.Model, cfg types.Config) (types.Solution, error) {
	if err := cfg.Validate(); err != nil {
		return types.Solution{}, err
	}
	s, err := New(cfg.Strategy)
	if err != nil {
		return types.Solution{}, err
	}
	return s.Solve(ctx, m, cfg)
}

// preflight proves cheap infeasibility before searching: when assignment is
// required and some item does not fit into any of its compatible slots even
// with the slot empty, no complete assignment can exist.
func preflight(m *model.Model) error {
	if !m.RequireAssignment {
		return nil
	}
	for _, iv := range m.Items {
		fits := false
		for _, vi := range iv.Vars {
			v := m.Vars[vi]
			if v.Size <= m.Capacity[v.SlotID]+costEps {
				fits = true
				break
			}
		}
		if !fits {
			return &types.InfeasibleError{
				Reason: fmt.Sprintf("item %s does not fit into any compatible slot", iv.ItemID),
			}
		}
	}
	return nil
}

// incumbent is a complete candidate assignment under evaluation. choices is
// aligned with Model.Items; an empty slot identifier means unassigned.
type incumbent struct {
	choices    []string
	cost       float64
	unassigned int
}

func newIncumbent(src []string, cost float64, unassigned int) *incumbent {
	cp := make([]string, len(src))
	copy(cp, src)
	return &incumbent{choices: cp, cost: cost, unassigned: unassigned}
}

// better reports whether a beats b under the deterministic ordering: lower
// objective first, then fewer unassigned items, then the lexicographically
// smallest (item, slot) pairing. Items in choices are already in ascending
// identifier order, so the pairing comparison walks the vectors; an
// unassigned item sorts after any slot.
func (a *incumbent) better(b *incumbent) bool {
	if b == nil {
		return true
	}
	if a.cost < b.cost-costEps {
		return true
	}
	if a.cost > b.cost+costEps {
		return false
	}
	if a.unassigned != b.unassigned {
		return a.unassigned < b.unassigned
	}
	for i := range a.choices {
		if a.choices[i] == b.choices[i] {
			continue
		}
		if a.choices[i] == "" {
			return false
		}
		if b.choices[i] == "" {
			return true
		}
		return a.choices[i] < b.choices[i]
	}
	return false
}

// toSolution maps an incumbent back to item identifiers.
func (a *incumbent) toSolution(m *model.Model, status string) types.Solution {
	assignments := make(map[string]string, len(a.choices))
	for i, slotID := range a.choices {
		if slotID != "" {
			assignments[m.Items[i].ItemID] = slotID
		}
	}
	return types.Solution{Assignments: assignments, Objective: a.cost, Status: status}
}
