// Package compat derives the compatibility matrix: for every (item, slot)
// pair in a catalog, whether placement is permitted under the rule set.
package compat

import (
	"github.com/mesh-intelligence/stowage/internal/catalog"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

// Matrix is the immutable |items|×|slots| boolean compatibility matrix.
// Resolve builds it once; every downstream stage shares the same value.
type Matrix struct {
	itemIndex map[string]int
	slotIndex map[string]int
	numSlots  int
	allowed   []bool // row-major, item-major
}

// Resolve evaluates the rule set for every (item, slot) pair and records
// the outcome. Rules are pure predicates and evaluation order does not
// matter: a pair is compatible only if every rule applying to the item's
// category allows the slot's type. A pair no rule applies to follows the
// default policy, compatible unless defaultDeny is set.
//
// Rules are validated against the catalog's taxonomy; a rule naming an
// unknown category or slot type yields a *types.ValidationError.
func Resolve(cat *catalog.Catalog, rules []types.Rule, defaultDeny bool) (*Matrix, error) {
	tax := cat.Taxonomy()
	for _, rule := range rules {
		if err := rule.Validate(tax); err != nil {
			return nil, err
		}
	}

	items := cat.Items()
	slots := cat.Slots()

	m := &Matrix{
		itemIndex: make(map[string]int, len(items)),
		slotIndex: make(map[string]int, len(slots)),
		numSlots:  len(slots),
		allowed:   make([]bool, len(items)*len(slots)),
	}

	for i, item := range items {
		m.itemIndex[item.ItemID] = i
		for j, slot := range slots {
			m.allowed[i*m.numSlots+j] = pairAllowed(item.Category, slot.SlotType, rules, defaultDeny)
		}
	}
	for j, slot := range slots {
		m.slotIndex[slot.SlotID] = j
	}

	return m, nil
}

// pairAllowed applies the deny-wins conjunction over all applicable rules.
func pairAllowed(category, slotType string, rules []types.Rule, defaultDeny bool) bool {
	applied := false
	for _, rule := range rules {
		if !rule.AppliesTo(category) {
			continue
		}
		applied = true
		if !rule.Allows(slotType) {
			return false
		}
	}
	if applied {
		return true
	}
	return !defaultDeny
}

// Compatible reports whether the item may be placed in the slot. Unknown
// identifiers are never compatible.
func (m *Matrix) Compatible(itemID, slotID string) bool {
	i, ok := m.itemIndex[itemID]
	if !ok {
		return false
	}
	j, ok := m.slotIndex[slotID]
	if !ok {
		return false
	}
	return m.allowed[i*m.numSlots+j]
}

// CompatibleCount returns the number of slots the item may be placed in.
func (m *Matrix) CompatibleCount(itemID string) int {
	i, ok := m.itemIndex[itemID]
	if !ok {
		return 0
	}
	n := 0
	for j := 0; j < m.numSlots; j++ {
		if m.allowed[i*m.numSlots+j] {
			n++
		}
	}
	return n
}
