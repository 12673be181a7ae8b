// Package model turns a catalog and compatibility matrix into the
// optimization model the solvers consume: boolean placement variables, a
// linear minimize objective, and coverage and capacity constraints.
package model

import (
	"sort"

	"github.com/mesh-intelligence/stowage/internal/catalog"
	"github.com/mesh-intelligence/stowage/internal/compat"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

// Variable is one boolean decision: place ItemID into SlotID. Cost is the
// objective coefficient (item frequency × slot cost) and Size the capacity
// coefficient (item size). Variables exist only for compatible pairs;
// incompatible pairs are zero by construction, not by constraint.
type Variable struct {
	ItemID string
	SlotID string
	Cost   float64
	Size   float64
}

// ItemVars lists the candidate variables of one item, ordered by cost
// ascending and slot identifier ascending on ties. An empty list means the
// item has no compatible slot and can only stay unassigned.
type ItemVars struct {
	ItemID    string
	Frequency int
	Size      float64
	Vars      []int // indexes into Model.Vars
}

// Model is the formal optimization model for one solve request. It is
// immutable once built.
//
// Objective: minimize the cost sum over chosen variables. Coverage: each
// item chooses exactly one variable when RequireAssignment is set, at most
// one otherwise. Capacity: per slot, the size sum of chosen variables must
// not exceed Capacity[slot].
type Model struct {
	Vars     []Variable
	Items    []ItemVars // sorted by item identifier ascending
	Capacity map[string]float64

	// RequireAssignment selects the coverage constraint form: equality
	// (every item placed) when true, at-most-one when false.
	RequireAssignment bool
}

// Build constructs the model. It returns a *types.ModelError before any
// solver runs when the catalog holds no items, or when RequireAssignment
// would be structurally infeasible because an item has zero compatible
// slots.
func Build(cat *catalog.Catalog, matrix *compat.Matrix, cfg types.Config) (*Model, error) {
	if cat.NumItems() == 0 {
		return nil, &types.ModelError{Reason: "catalog has no items"}
	}

	slots := cat.Slots()
	m := &Model{
		Capacity:          make(map[string]float64, len(slots)),
		RequireAssignment: !cfg.AllowUnassigned,
	}
	for _, slot := range slots {
		m.Capacity[slot.SlotID] = slot.Capacity
	}

	items := cat.Items()
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })

	for _, item := range items {
		iv := ItemVars{ItemID: item.ItemID, Frequency: item.Frequency, Size: item.Size}
		for _, slot := range slots {
			if !matrix.Compatible(item.ItemID, slot.SlotID) {
				continue
			}
			m.Vars = append(m.Vars, Variable{
				ItemID: item.ItemID,
				SlotID: slot.SlotID,
				Cost:   float64(item.Frequency) * slot.Cost,
				Size:   item.Size,
			})
			iv.Vars = append(iv.Vars, len(m.Vars)-1)
		}
		if m.RequireAssignment && len(iv.Vars) == 0 {
			return nil, &types.ModelError{ItemID: item.ItemID, Reason: "no compatible slots"}
		}
		sort.Slice(iv.Vars, func(a, b int) bool {
			va, vb := m.Vars[iv.Vars[a]], m.Vars[iv.Vars[b]]
			if va.Cost != vb.Cost {
				return va.Cost < vb.Cost
			}
			return va.SlotID < vb.SlotID
		})
		m.Items = append(m.Items, iv)
	}

	return m, nil
}

// NumVariables returns the number of decision variables in the model.
func (m *Model) NumVariables() int { return len(m.Vars) }

// MinCost returns the cheapest objective contribution the item can have
// when assigned, or zero when it has no candidates. Used by the exact
// solver as an admissible bound on remaining items.
func (iv ItemVars) MinCost(m *Model) float64 {
	if len(iv.Vars) == 0 {
		return 0
	}
	return m.Vars[iv.Vars[0]].Cost
}
