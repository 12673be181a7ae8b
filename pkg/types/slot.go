package types

// Slot types of the default warehouse taxonomy. The set is extensible
// through the Taxonomy.
const (
	SlotTypeSafe    = "safe"
	SlotTypeSpecial = "special"
	SlotTypeRegular = "regular"
)

// Slot represents a storage bin with finite capacity and a placement cost.
// Slots are immutable once loaded into a Catalog.
type Slot struct {
	SlotID   string  `json:"slot_id"`   // Unique identifier (required, non-empty).
	Capacity float64 `json:"capacity"`  // Positive volume limit.
	Cost     float64 `json:"cost"`      // Non-negative placement cost; lower is preferred.
	SlotType string  `json:"slot_type"` // One of the taxonomy's slot types.
}

// Validate checks the slot against the given taxonomy. It returns a
// *ValidationError carrying the offending identifier and field on failure.
func (s Slot) Validate(tax Taxonomy) error {
	if s.SlotID == "" {
		return &ValidationError{Field: "slot_id", Reason: "must not be empty"}
	}
	if s.Capacity <= 0 {
		return &ValidationError{EntityID: s.SlotID, Field: "capacity", Reason: "must be positive"}
	}
	if s.Cost < 0 {
		return &ValidationError{EntityID: s.SlotID, Field: "cost", Reason: "must not be negative"}
	}
	if !tax.HasSlotType(s.SlotType) {
		return &ValidationError{EntityID: s.SlotID, Field: "slot_type", Reason: "unknown slot type " + s.SlotType}
	}
	return nil
}
