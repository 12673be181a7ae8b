// Package catalog holds the immutable entity records for a solve request:
// the items to place and the slots available to hold them.
package catalog

import (
	"github.com/mesh-intelligence/stowage/pkg/types"
)

// Catalog is the validated, read-only collection of items and slots for one
// solve request. Build it once with Load; it never changes afterwards.
type Catalog struct {
	items     []types.Item
	slots     []types.Slot
	itemIndex map[string]int
	slotIndex map[string]int
	taxonomy  types.Taxonomy
}

// Load validates the items and slots against the taxonomy and returns a
// Catalog. A zero taxonomy selects types.DefaultTaxonomy. Load returns a
// *types.ValidationError naming the offending entity on duplicate
// identifiers, non-positive numeric fields, or categories and slot types
// outside the taxonomy.
func Load(items []types.Item, slots []types.Slot, tax types.Taxonomy) (*Catalog, error) {
	if tax.IsZero() {
		tax = types.DefaultTaxonomy()
	}

	c := &Catalog{
		items:     make([]types.Item, len(items)),
		slots:     make([]types.Slot, len(slots)),
		itemIndex: make(map[string]int, len(items)),
		slotIndex: make(map[string]int, len(slots)),
		taxonomy:  tax,
	}
	copy(c.items, items)
	copy(c.slots, slots)

	for i, item := range c.items {
		if err := item.Validate(tax); err != nil {
			return nil, err
		}
		if _, dup := c.itemIndex[item.ItemID]; dup {
			return nil, &types.ValidationError{EntityID: item.ItemID, Field: "item_id", Reason: "duplicate identifier"}
		}
		c.itemIndex[item.ItemID] = i
	}

	for i, slot := range c.slots {
		if err := slot.Validate(tax); err != nil {
			return nil, err
		}
		if _, dup := c.slotIndex[slot.SlotID]; dup {
			return nil, &types.ValidationError{EntityID: slot.SlotID, Field: "slot_id", Reason: "duplicate identifier"}
		}
		c.slotIndex[slot.SlotID] = i
	}

	return c, nil
}

// Items returns a copy of the item records in load order.
func (c *Catalog) Items() []types.Item {
	out := make([]types.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Slots returns a copy of the slot records in load order.
func (c *Catalog) Slots() []types.Slot {
	out := make([]types.Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

// Item looks up an item by identifier in O(1).
func (c *Catalog) Item(itemID string) (types.Item, bool) {
	i, ok := c.itemIndex[itemID]
	if !ok {
		return types.Item{}, false
	}
	return c.items[i], true
}

// Slot looks up a slot by identifier in O(1).
func (c *Catalog) Slot(slotID string) (types.Slot, bool) {
	i, ok := c.slotIndex[slotID]
	if !ok {
		return types.Slot{}, false
	}
	return c.slots[i], true
}

// NumItems returns the number of items in the catalog.
func (c *Catalog) NumItems() int { return len(c.items) }

// NumSlots returns the number of slots in the catalog.
func (c *Catalog) NumSlots() int { return len(c.slots) }

// Taxonomy returns the taxonomy the catalog was validated against.
func (c *Catalog) Taxonomy() types.Taxonomy { return c.taxonomy }
