package solver

import (
	"context"

	"github.com/mesh-intelligence/stowage/internal/model"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

// Exact solves the 0/1 assignment model with depth-first branch and bound.
// When the search exhausts within the time limit the result is globally
// optimal; on limit exhaustion the best incumbent is returned with status
// "feasible", never "optimal". Cancellation is cooperative: the deadline is
// checked at node boundaries, so the returned incumbent is always
// well-formed.
type Exact struct{}

// exactSearch carries the mutable search state of one Solve call.
type exactSearch struct {
	m         *model.Model
	ctx       context.Context
	remaining map[string]float64 // capacity headroom per slot
	choices   []string           // per item, aligned with m.Items; "" = unassigned
	suffixMin []float64          // admissible bound: cheapest cost of items i..n-1
	best      *incumbent
	stopped   bool // deadline or cancellation hit; incumbent stays valid
}

// Solve runs the branch-and-bound search.
func (s *Exact) Solve(ctx context.Context, m *model.Model, cfg types.Config) (types.Solution, error) {
	if err := preflight(m); err != nil {
		return types.Solution{}, err
	}

	if limit := cfg.TimeLimit(); limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}

	search := &exactSearch{
		m:         m,
		ctx:       ctx,
		remaining: make(map[string]float64, len(m.Capacity)),
		choices:   make([]string, len(m.Items)),
		suffixMin: make([]float64, len(m.Items)+1),
	}
	for slotID, capacity := range m.Capacity {
		search.remaining[slotID] = capacity
	}
	// The bound prices every remaining item at its cheapest compatible
	// slot with capacity relaxed. With unassigned items permitted an item
	// may contribute zero, so the bound only applies to required coverage.
	if m.RequireAssignment {
		for i := len(m.Items) - 1; i >= 0; i-- {
			search.suffixMin[i] = search.suffixMin[i+1] + m.Items[i].MinCost(m)
		}
	}

	search.branch(0, 0, 0)

	switch {
	case search.best == nil && search.stopped:
		// Gave up before finding any incumbent: not proven infeasible.
		return types.Solution{Assignments: map[string]string{}, Status: types.StatusUnsolved}, nil
	case search.best == nil:
		// Exhausted the tree without a complete assignment. Only reachable
		// with required coverage; otherwise all-unassigned always exists.
		return types.Solution{}, &types.InfeasibleError{
			Reason: "no complete assignment satisfies capacity and compatibility constraints",
		}
	case search.stopped:
		return search.best.toSolution(m, types.StatusFeasible), nil
	default:
		return search.best.toSolution(m, types.StatusOptimal), nil
	}
}

// branch explores item i with the given accumulated cost and unassigned
// count. Candidate slots are tried cheapest first; the unassigned branch,
// when permitted, comes last so good incumbents appear early.
func (s *exactSearch) branch(i int, cost float64, unassigned int) {
	if s.stopped {
		return
	}
	if s.ctx.Err() != nil {
		s.stopped = true
		return
	}

	if i == len(s.m.Items) {
		candidate := newIncumbent(s.choices, cost, unassigned)
		if candidate.better(s.best) {
			s.best = candidate
		}
		return
	}

	// Prune strictly worse subtrees only. Equal-cost subtrees must be
	// explored: they can still win on the unassigned-count and
	// lexicographic tie-breaks.
	if s.best != nil && cost+s.suffixMin[i] > s.best.cost+costEps {
		return
	}

	iv := s.m.Items[i]
	for _, vi := range iv.Vars {
		v := s.m.Vars[vi]
		if v.Size > s.remaining[v.SlotID]+costEps {
			continue
		}
		s.remaining[v.SlotID] -= v.Size
		s.choices[i] = v.SlotID
		s.branch(i+1, cost+v.Cost, unassigned)
		s.choices[i] = ""
		s.remaining[v.SlotID] += v.Size
		if s.stopped {
			return
		}
	}

	if !s.m.RequireAssignment {
		s.choices[i] = ""
		s.branch(i+1, cost, unassigned+1)
	}
}
