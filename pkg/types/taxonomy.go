package types

// Taxonomy fixes the allowed item categories and slot types for a catalog.
// Categories and slot types outside the taxonomy are rejected at load time.
type Taxonomy struct {
	Categories []string `json:"categories" yaml:"categories"`
	SlotTypes  []string `json:"slot_types" yaml:"slot_types"`
}

// DefaultTaxonomy returns the warehouse taxonomy used when the caller does
// not configure one: fragile/hazardous/regular categories and
// safe/special/regular slot types.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Categories: []string{CategoryFragile, CategoryHazardous, CategoryRegular},
		SlotTypes:  []string{SlotTypeSafe, SlotTypeSpecial, SlotTypeRegular},
	}
}

// IsZero reports whether the taxonomy has no categories and no slot types.
func (t Taxonomy) IsZero() bool {
	return len(t.Categories) == 0 && len(t.SlotTypes) == 0
}

// HasCategory reports whether the category is part of the taxonomy.
func (t Taxonomy) HasCategory(category string) bool {
	for _, c := range t.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// HasSlotType reports whether the slot type is part of the taxonomy.
func (t Taxonomy) HasSlotType(slotType string) bool {
	for _, s := range t.SlotTypes {
		if s == slotType {
			return true
		}
	}
	return false
}
