package types

// Item categories. The set is extensible through the Taxonomy; these are
// the categories of the default warehouse taxonomy.
const (
	CategoryFragile   = "fragile"
	CategoryHazardous = "hazardous"
	CategoryRegular   = "regular"
)

// Item represents a unit of cargo to be placed into at most one slot.
// Items are immutable once loaded into a Catalog.
type Item struct {
	ItemID    string  `json:"item_id"`   // Unique identifier (required, non-empty).
	Frequency int     `json:"frequency"` // Positive urgency weight; higher is more urgent.
	Size      float64 `json:"size"`      // Positive volume requirement.
	Category  string  `json:"category"`  // One of the taxonomy's categories.
}

// Validate checks the item against the given taxonomy. It returns a
// *ValidationError carrying the offending identifier and field on failure.
func (i Item) Validate(tax Taxonomy) error {
	if i.ItemID == "" {
		return &ValidationError{Field: "item_id", Reason: "must not be empty"}
	}
	if i.Frequency <= 0 {
		return &ValidationError{EntityID: i.ItemID, Field: "frequency", Reason: "must be positive"}
	}
	if i.Size <= 0 {
		return &ValidationError{EntityID: i.ItemID, Field: "size", Reason: "must be positive"}
	}
	if !tax.HasCategory(i.Category) {
		return &ValidationError{EntityID: i.ItemID, Field: "category", Reason: "unknown category " + i.Category}
	}
	return nil
}
