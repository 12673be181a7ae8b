package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stowage/internal/catalog"
	"github.com/mesh-intelligence/stowage/internal/compat"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

func buildFixture(t *testing.T, items []types.Item, slots []types.Slot, cfg types.Config) (*Model, error) {
	t.Helper()
	cat, err := catalog.Load(items, slots, types.Taxonomy{})
	require.NoError(t, err)
	matrix, err := compat.Resolve(cat, types.DefaultRules(), cfg.DefaultDeny)
	require.NoError(t, err)
	return Build(cat, matrix, cfg)
}

func TestBuildOmitsIncompatiblePairs(t *testing.T) {
	items := []types.Item{
		{ItemID: "M1", Frequency: 3, Size: 5, Category: types.CategoryFragile},
		{ItemID: "M2", Frequency: 1, Size: 2, Category: types.CategoryRegular},
	}
	slots := []types.Slot{
		{SlotID: "B1", Capacity: 15, Cost: 1, SlotType: types.SlotTypeSafe},
		{SlotID: "B2", Capacity: 20, Cost: 2, SlotType: types.SlotTypeRegular},
	}

	m, err := buildFixture(t, items, slots, types.Config{Strategy: types.StrategyExact})
	require.NoError(t, err)

	// M1 is fragile: only B1. M2 is regular: both slots. Three variables,
	// never four; incompatible pairs are not represented at all.
	assert.Equal(t, 3, m.NumVariables())
	assert.True(t, m.RequireAssignment)
	assert.Equal(t, 15.0, m.Capacity["B1"])

	require.Len(t, m.Items, 2)
	assert.Equal(t, "M1", m.Items[0].ItemID)
	require.Len(t, m.Items[0].Vars, 1)
	v := m.Vars[m.Items[0].Vars[0]]
	assert.Equal(t, "B1", v.SlotID)
	assert.Equal(t, 3.0, v.Cost) // frequency 3 × cost 1
	assert.Equal(t, 5.0, v.Size)
}

func TestBuildOrdersCandidatesByCost(t *testing.T) {
	items := []types.Item{{ItemID: "M1", Frequency: 2, Size: 1, Category: types.CategoryRegular}}
	slots := []types.Slot{
		{SlotID: "B3", Capacity: 10, Cost: 3, SlotType: types.SlotTypeRegular},
		{SlotID: "B2", Capacity: 10, Cost: 1, SlotType: types.SlotTypeRegular},
		{SlotID: "B1", Capacity: 10, Cost: 1, SlotType: types.SlotTypeRegular},
	}

	m, err := buildFixture(t, items, slots, types.Config{Strategy: types.StrategyExact})
	require.NoError(t, err)

	require.Len(t, m.Items, 1)
	got := make([]string, 0, 3)
	for _, idx := range m.Items[0].Vars {
		got = append(got, m.Vars[idx].SlotID)
	}
	// Cost ascending, slot identifier breaking the B1/B2 tie.
	assert.Equal(t, []string{"B1", "B2", "B3"}, got)
	assert.Equal(t, 2.0, m.Items[0].MinCost(m))
}

func TestBuildEmptyCatalog(t *testing.T) {
	_, err := buildFixture(t, nil, []types.Slot{{SlotID: "B1", Capacity: 1, Cost: 0, SlotType: types.SlotTypeSafe}},
		types.Config{Strategy: types.StrategyExact})
	assert.ErrorIs(t, err, types.ErrModel)
}

func TestBuildZeroCompatibleSlotsRequired(t *testing.T) {
	// A hazardous item with no special slot present must fail before any
	// solver call when assignment is required.
	items := []types.Item{{ItemID: "M9", Frequency: 1, Size: 1, Category: types.CategoryHazardous}}
	slots := []types.Slot{{SlotID: "B1", Capacity: 10, Cost: 1, SlotType: types.SlotTypeSafe}}

	_, err := buildFixture(t, items, slots, types.Config{Strategy: types.StrategyExact})
	require.ErrorIs(t, err, types.ErrModel)

	var merr *types.ModelError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "M9", merr.ItemID)
}

func TestBuildZeroCompatibleSlotsAllowedWhenUnassignedPermitted(t *testing.T) {
	items := []types.Item{{ItemID: "M9", Frequency: 1, Size: 1, Category: types.CategoryHazardous}}
	slots := []types.Slot{{SlotID: "B1", Capacity: 10, Cost: 1, SlotType: types.SlotTypeSafe}}

	m, err := buildFixture(t, items, slots, types.Config{Strategy: types.StrategyExact, AllowUnassigned: true})
	require.NoError(t, err)
	assert.Equal(t, 0, m.NumVariables())
	assert.False(t, m.RequireAssignment)
}
