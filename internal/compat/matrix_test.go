package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stowage/internal/catalog"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

func warehouseCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	items := []types.Item{
		{ItemID: "M1", Frequency: 3, Size: 5, Category: types.CategoryFragile},
		{ItemID: "M2", Frequency: 2, Size: 4, Category: types.CategoryHazardous},
		{ItemID: "M3", Frequency: 1, Size: 2, Category: types.CategoryRegular},
	}
	slots := []types.Slot{
		{SlotID: "B1", Capacity: 15, Cost: 1, SlotType: types.SlotTypeSafe},
		{SlotID: "B2", Capacity: 20, Cost: 2, SlotType: types.SlotTypeRegular},
		{SlotID: "B3", Capacity: 10, Cost: 3, SlotType: types.SlotTypeSpecial},
	}
	c, err := catalog.Load(items, slots, types.Taxonomy{})
	require.NoError(t, err)
	return c
}

func TestResolveWarehouseRules(t *testing.T) {
	c := warehouseCatalog(t)
	m, err := Resolve(c, types.DefaultRules(), false)
	require.NoError(t, err)

	// Fragile items go only to safe slots.
	assert.True(t, m.Compatible("M1", "B1"))
	assert.False(t, m.Compatible("M1", "B2"))
	assert.False(t, m.Compatible("M1", "B3"))

	// Hazardous items go only to special slots.
	assert.False(t, m.Compatible("M2", "B1"))
	assert.False(t, m.Compatible("M2", "B2"))
	assert.True(t, m.Compatible("M2", "B3"))

	// Regular items match no rule and fall through to default-allow.
	assert.True(t, m.Compatible("M3", "B1"))
	assert.True(t, m.Compatible("M3", "B2"))
	assert.True(t, m.Compatible("M3", "B3"))

	assert.Equal(t, 1, m.CompatibleCount("M1"))
	assert.Equal(t, 3, m.CompatibleCount("M3"))
}

func TestResolveDefaultDeny(t *testing.T) {
	c := warehouseCatalog(t)
	m, err := Resolve(c, types.DefaultRules(), true)
	require.NoError(t, err)

	// Rule-covered pairs are unaffected.
	assert.True(t, m.Compatible("M1", "B1"))
	assert.True(t, m.Compatible("M2", "B3"))

	// Uncovered pairs flip to deny.
	assert.False(t, m.Compatible("M3", "B1"))
	assert.False(t, m.Compatible("M3", "B2"))
	assert.Equal(t, 0, m.CompatibleCount("M3"))
}

func TestResolveOrderIndependence(t *testing.T) {
	c := warehouseCatalog(t)
	rules := []types.Rule{
		{Name: "fragile-wide", Category: types.CategoryFragile, SlotTypes: []string{types.SlotTypeSafe, types.SlotTypeRegular}},
		{Name: "fragile-narrow", Category: types.CategoryFragile, SlotTypes: []string{types.SlotTypeSafe}},
	}
	reversed := []types.Rule{rules[1], rules[0]}

	forward, err := Resolve(c, rules, false)
	require.NoError(t, err)
	backward, err := Resolve(c, reversed, false)
	require.NoError(t, err)

	for _, slotID := range []string{"B1", "B2", "B3"} {
		assert.Equal(t, forward.Compatible("M1", slotID), backward.Compatible("M1", slotID), slotID)
	}
	// The narrow rule wins regardless of order: deny is conjunctive.
	assert.True(t, forward.Compatible("M1", "B1"))
	assert.False(t, forward.Compatible("M1", "B2"))
}

func TestResolveRejectsInvalidRule(t *testing.T) {
	c := warehouseCatalog(t)
	_, err := Resolve(c, []types.Rule{{Name: "bad", Category: "liquid", SlotTypes: []string{types.SlotTypeSafe}}}, false)
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestCompatibleUnknownIdentifiers(t *testing.T) {
	c := warehouseCatalog(t)
	m, err := Resolve(c, nil, false)
	require.NoError(t, err)

	assert.False(t, m.Compatible("missing", "B1"))
	assert.False(t, m.Compatible("M1", "missing"))
	assert.Equal(t, 0, m.CompatibleCount("missing"))
}
