// Package report maps raw solver output back to item assignments and
// cross-checks the objective against an independent recomputation.
package report

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/mesh-intelligence/stowage/internal/catalog"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

// objectiveTol is the tolerance for the solver-versus-recomputation
// objective cross-check.
const objectiveTol = 1e-6

// Build produces the AssignmentReport for a solution: one placement per
// catalog item in identifier-independent load order, with an explicit
// unassigned marker where the solution left an item out.
//
// The objective is recomputed from the catalog rather than trusted from the
// solver; a disagreement beyond tolerance returns a *types.ConsistencyError
// since it indicates an internal bug. A solution referencing an unknown
// item or slot identifier is rejected the same way validation failures are.
func Build(sol types.Solution, cat *catalog.Catalog) (types.AssignmentReport, error) {
	for itemID := range sol.Assignments {
		if _, ok := cat.Item(itemID); !ok {
			return types.AssignmentReport{}, &types.ValidationError{
				EntityID: itemID, Field: "item_id", Reason: "solution references unknown item",
			}
		}
	}

	rep := types.AssignmentReport{
		Status:    sol.Status,
		CreatedAt: time.Now().UTC(),
	}

	var recomputed float64
	for _, item := range cat.Items() {
		slotID, assigned := sol.Assigned(item.ItemID)
		if !assigned {
			rep.Placements = append(rep.Placements, types.Placement{ItemID: item.ItemID})
			rep.Unassigned = append(rep.Unassigned, item.ItemID)
			continue
		}
		slot, ok := cat.Slot(slotID)
		if !ok {
			return types.AssignmentReport{}, &types.ValidationError{
				EntityID: slotID, Field: "slot_id", Reason: fmt.Sprintf("solution assigns item %s to unknown slot", item.ItemID),
			}
		}
		contribution := float64(item.Frequency) * slot.Cost
		recomputed += contribution
		rep.Placements = append(rep.Placements, types.Placement{
			ItemID:   item.ItemID,
			SlotID:   slotID,
			Assigned: true,
			Cost:     contribution,
		})
	}

	if !scalar.EqualWithinAbs(recomputed, sol.Objective, objectiveTol) {
		return types.AssignmentReport{}, &types.ConsistencyError{
			Reported:   sol.Objective,
			Recomputed: recomputed,
		}
	}
	rep.Objective = recomputed

	return rep, nil
}

// Infeasible produces the report for a proven-infeasible instance: every
// catalog item is listed unassigned and the status carries the proof, so
// the outcome can be persisted and inspected like any other run.
func Infeasible(cat *catalog.Catalog) types.AssignmentReport {
	rep := types.AssignmentReport{
		Status:    types.StatusInfeasible,
		CreatedAt: time.Now().UTC(),
	}
	for _, item := range cat.Items() {
		rep.Placements = append(rep.Placements, types.Placement{ItemID: item.ItemID})
		rep.Unassigned = append(rep.Unassigned, item.ItemID)
	}
	return rep
}
