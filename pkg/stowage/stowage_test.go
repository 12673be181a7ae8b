package stowage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stowage/pkg/types"
)

func warehouseItems() []types.Item {
	return []types.Item{
		{ItemID: "M1", Frequency: 3, Size: 5, Category: types.CategoryFragile},
		{ItemID: "M2", Frequency: 2, Size: 4, Category: types.CategoryHazardous},
		{ItemID: "M3", Frequency: 1, Size: 2, Category: types.CategoryRegular},
	}
}

func warehouseSlots() []types.Slot {
	return []types.Slot{
		{SlotID: "B1", Capacity: 15, Cost: 1, SlotType: types.SlotTypeSafe},
		{SlotID: "B2", Capacity: 20, Cost: 2, SlotType: types.SlotTypeRegular},
		{SlotID: "B3", Capacity: 10, Cost: 3, SlotType: types.SlotTypeSpecial},
	}
}

func TestPlanEndToEnd(t *testing.T) {
	rep, err := Plan(context.Background(), warehouseItems(), warehouseSlots(),
		types.DefaultRules(), types.Taxonomy{}, types.Config{Strategy: types.StrategyExact})
	require.NoError(t, err)

	assert.Equal(t, types.StatusOptimal, rep.Status)
	assert.Empty(t, rep.Unassigned)
	require.Len(t, rep.Placements, 3)

	byItem := make(map[string]types.Placement, len(rep.Placements))
	for _, p := range rep.Placements {
		byItem[p.ItemID] = p
	}
	// M1 fragile -> B1, M2 hazardous -> B3, M3 regular -> cheapest B1.
	assert.Equal(t, "B1", byItem["M1"].SlotID)
	assert.Equal(t, "B3", byItem["M2"].SlotID)
	assert.Equal(t, "B1", byItem["M3"].SlotID)
	assert.InDelta(t, 3*1+2*3+1*1, rep.Objective, 1e-9)
}

func TestPlanDefaultsStrategy(t *testing.T) {
	rep, err := Plan(context.Background(), warehouseItems(), warehouseSlots(),
		types.DefaultRules(), types.Taxonomy{}, types.Config{})
	require.NoError(t, err)
	assert.Equal(t, types.StatusOptimal, rep.Status)
}

func TestPlanBothStrategiesAgreeOnEasyInstance(t *testing.T) {
	exact, err := Plan(context.Background(), warehouseItems(), warehouseSlots(),
		types.DefaultRules(), types.Taxonomy{}, types.Config{Strategy: types.StrategyExact})
	require.NoError(t, err)

	heuristic, err := Plan(context.Background(), warehouseItems(), warehouseSlots(),
		types.DefaultRules(), types.Taxonomy{}, types.Config{Strategy: types.StrategyHeuristic})
	require.NoError(t, err)

	assert.Equal(t, types.StatusFeasible, heuristic.Status)
	assert.InDelta(t, exact.Objective, heuristic.Objective, 1e-9)
	assert.Equal(t, exact.Placements, heuristic.Placements)
}

func TestPlanErrorTaxonomy(t *testing.T) {
	ctx := context.Background()

	// Malformed input.
	bad := warehouseItems()
	bad[0].Frequency = 0
	_, err := Plan(ctx, bad, warehouseSlots(), types.DefaultRules(), types.Taxonomy{}, types.Config{})
	assert.ErrorIs(t, err, types.ErrValidation)

	// Hazardous item with no special slot: structural, pre-solver.
	slots := warehouseSlots()[:2]
	_, err = Plan(ctx, warehouseItems(), slots, types.DefaultRules(), types.Taxonomy{}, types.Config{})
	assert.ErrorIs(t, err, types.ErrModel)

	// Demand above capacity with assignment required: proven infeasible.
	tight := []types.Slot{{SlotID: "B1", Capacity: 6, Cost: 1, SlotType: types.SlotTypeRegular}}
	crowd := []types.Item{
		{ItemID: "M1", Frequency: 1, Size: 4, Category: types.CategoryRegular},
		{ItemID: "M2", Frequency: 1, Size: 4, Category: types.CategoryRegular},
	}
	_, err = Plan(ctx, crowd, tight, nil, types.Taxonomy{}, types.Config{})
	assert.ErrorIs(t, err, types.ErrInfeasible)
}

func TestPlanInfeasibleStillReportsOutcome(t *testing.T) {
	// Proven infeasibility returns the error together with a report marked
	// infeasible, so the outcome can be persisted like any other run.
	tight := []types.Slot{{SlotID: "B1", Capacity: 6, Cost: 1, SlotType: types.SlotTypeRegular}}
	crowd := []types.Item{
		{ItemID: "M1", Frequency: 1, Size: 4, Category: types.CategoryRegular},
		{ItemID: "M2", Frequency: 1, Size: 4, Category: types.CategoryRegular},
	}

	rep, err := Plan(context.Background(), crowd, tight, nil, types.Taxonomy{}, types.Config{})
	require.ErrorIs(t, err, types.ErrInfeasible)

	assert.Equal(t, types.StatusInfeasible, rep.Status)
	assert.Equal(t, []string{"M1", "M2"}, rep.Unassigned)
	assert.InDelta(t, 0.0, rep.Objective, 1e-9)
	require.Len(t, rep.Placements, 2)
	assert.False(t, rep.Placements[0].Assigned)
	assert.False(t, rep.Placements[1].Assigned)
}

func TestCheckCoverage(t *testing.T) {
	coverage, err := Check(warehouseItems(), warehouseSlots(), types.DefaultRules(), types.Taxonomy{}, false)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"M1": 1, "M2": 1, "M3": 3}, coverage)

	// Default-deny strips the uncovered regular item down to zero.
	coverage, err = Check(warehouseItems(), warehouseSlots(), types.DefaultRules(), types.Taxonomy{}, true)
	require.NoError(t, err)
	assert.Equal(t, 0, coverage["M3"])
}
