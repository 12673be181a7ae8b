package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stowage/pkg/types"
)

func testItems() []types.Item {
	return []types.Item{
		{ItemID: "M1", Frequency: 3, Size: 5, Category: types.CategoryFragile},
		{ItemID: "M2", Frequency: 1, Size: 2, Category: types.CategoryRegular},
	}
}

func testSlots() []types.Slot {
	return []types.Slot{
		{SlotID: "B1", Capacity: 15, Cost: 1, SlotType: types.SlotTypeSafe},
		{SlotID: "B3", Capacity: 10, Cost: 3, SlotType: types.SlotTypeSpecial},
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(testItems(), testSlots(), types.Taxonomy{})
	require.NoError(t, err)

	assert.Equal(t, 2, c.NumItems())
	assert.Equal(t, 2, c.NumSlots())

	item, ok := c.Item("M1")
	require.True(t, ok)
	assert.Equal(t, types.CategoryFragile, item.Category)

	slot, ok := c.Slot("B3")
	require.True(t, ok)
	assert.Equal(t, 3.0, slot.Cost)

	_, ok = c.Item("missing")
	assert.False(t, ok)
	_, ok = c.Slot("missing")
	assert.False(t, ok)
}

func TestLoadDefaultsTaxonomy(t *testing.T) {
	c, err := Load(testItems(), testSlots(), types.Taxonomy{})
	require.NoError(t, err)
	assert.Equal(t, types.DefaultTaxonomy(), c.Taxonomy())
}

func TestLoadRejectsDuplicates(t *testing.T) {
	items := append(testItems(), types.Item{ItemID: "M1", Frequency: 1, Size: 1, Category: types.CategoryRegular})
	_, err := Load(items, testSlots(), types.Taxonomy{})
	assert.ErrorIs(t, err, types.ErrValidation)

	slots := append(testSlots(), types.Slot{SlotID: "B1", Capacity: 5, Cost: 2, SlotType: types.SlotTypeRegular})
	_, err = Load(testItems(), slots, types.Taxonomy{})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestLoadRejectsInvalidEntities(t *testing.T) {
	items := []types.Item{{ItemID: "M1", Frequency: 0, Size: 1, Category: types.CategoryRegular}}
	_, err := Load(items, testSlots(), types.Taxonomy{})
	assert.ErrorIs(t, err, types.ErrValidation)

	slots := []types.Slot{{SlotID: "B1", Capacity: -1, Cost: 1, SlotType: types.SlotTypeSafe}}
	_, err = Load(testItems(), slots, types.Taxonomy{})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestCatalogIsIsolatedFromCallerSlices(t *testing.T) {
	items := testItems()
	slots := testSlots()
	c, err := Load(items, slots, types.Taxonomy{})
	require.NoError(t, err)

	// Mutating the caller's slices must not leak into the catalog.
	items[0].Frequency = 99
	slots[0].Capacity = 0.1

	item, _ := c.Item("M1")
	assert.Equal(t, 3, item.Frequency)
	slot, _ := c.Slot("B1")
	assert.Equal(t, 15.0, slot.Capacity)

	// Mutating returned copies must not leak either.
	got := c.Items()
	got[0].Size = 1000
	item, _ = c.Item("M1")
	assert.Equal(t, 5.0, item.Size)
}
