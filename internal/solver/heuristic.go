package solver

import (
	"context"
	"sort"

	"github.com/mesh-intelligence/stowage/internal/model"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

// Heuristic solves the model greedily: items by frequency descending, each
// placed into its cheapest compatible slot with remaining capacity, with a
// single-level relocation repair on dead ends. The result is reported as
// "feasible", never "optimal". The heuristic proves nothing: when it fails
// to place a required item it returns status "unsolved" with the partial
// assignment rather than claiming infeasibility. No randomness is used, so
// identical inputs produce identical solutions.
type Heuristic struct{}

// Solve runs the greedy assignment.
func (s *Heuristic) Solve(ctx context.Context, m *model.Model, cfg types.Config) (types.Solution, error) {
	if err := preflight(m); err != nil {
		return types.Solution{}, err
	}

	remaining := make(map[string]float64, len(m.Capacity))
	for slotID, capacity := range m.Capacity {
		remaining[slotID] = capacity
	}

	// chosen[i] is the variable index placed for m.Items[i], or -1.
	chosen := make([]int, len(m.Items))
	for i := range chosen {
		chosen[i] = -1
	}

	// Greedy order: most urgent first, identifier ascending on ties.
	order := make([]int, len(m.Items))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := m.Items[order[a]], m.Items[order[b]]
		if ia.Frequency != ib.Frequency {
			return ia.Frequency > ib.Frequency
		}
		return ia.ItemID < ib.ItemID
	})

	for _, i := range order {
		if ctx.Err() != nil {
			break
		}
		if !s.place(m, i, chosen, remaining) {
			s.repair(m, i, chosen, remaining)
		}
	}

	var (
		cost       float64
		unassigned int
		choices    = make([]string, len(m.Items))
	)
	for i, vi := range chosen {
		if vi < 0 {
			unassigned++
			continue
		}
		choices[i] = m.Vars[vi].SlotID
		cost += m.Vars[vi].Cost
	}

	status := types.StatusFeasible
	if m.RequireAssignment && unassigned > 0 {
		status = types.StatusUnsolved
	}
	return newIncumbent(choices, cost, unassigned).toSolution(m, status), nil
}

// place puts item i into its cheapest candidate slot with headroom.
// Candidates are pre-sorted by cost then slot identifier.
func (s *Heuristic) place(m *model.Model, i int, chosen []int, remaining map[string]float64) bool {
	for _, vi := range m.Items[i].Vars {
		v := m.Vars[vi]
		if v.Size <= remaining[v.SlotID]+costEps {
			remaining[v.SlotID] -= v.Size
			chosen[i] = vi
			return true
		}
	}
	return false
}

// repair attempts a single relocation to open room for item i: for each
// candidate slot, move one already-placed item to an alternative slot of
// its own and retry. The first workable relocation in deterministic order
// is taken; if none exists the item stays unassigned.
func (s *Heuristic) repair(m *model.Model, i int, chosen []int, remaining map[string]float64) bool {
	for _, vi := range m.Items[i].Vars {
		v := m.Vars[vi]
		// Items are scanned in ascending identifier order.
		for j := range m.Items {
			pv := chosen[j]
			if pv < 0 || m.Vars[pv].SlotID != v.SlotID {
				continue
			}
			if remaining[v.SlotID]+m.Vars[pv].Size+costEps < v.Size {
				continue // evicting j still would not make room
			}
			alt := s.alternative(m, j, v.SlotID, remaining)
			if alt < 0 {
				continue
			}
			// Relocate j, then place i in the freed slot.
			remaining[v.SlotID] += m.Vars[pv].Size
			remaining[m.Vars[alt].SlotID] -= m.Vars[alt].Size
			chosen[j] = alt

			remaining[v.SlotID] -= v.Size
			chosen[i] = vi
			return true
		}
	}
	return false
}

// alternative finds the cheapest candidate of item j in a slot other than
// exclude with enough headroom, or -1.
func (s *Heuristic) alternative(m *model.Model, j int, exclude string, remaining map[string]float64) int {
	for _, vi := range m.Items[j].Vars {
		v := m.Vars[vi]
		if v.SlotID == exclude {
			continue
		}
		if v.Size <= remaining[v.SlotID]+costEps {
			return vi
		}
	}
	return -1
}
