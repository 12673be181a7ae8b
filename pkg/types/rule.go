package types

// Rule restricts which slot types may hold items of a category. A rule
// applies to every item whose category equals Category and allows a slot
// only when its type is listed in SlotTypes.
//
// Rules are pure predicates, not a priority chain: when several rules apply
// to the same category, a pair is compatible only if every applicable rule
// allows the slot type (deny wins). Evaluation order never matters. A pair
// no rule applies to falls back to the configured default policy
// (Config.DefaultDeny).
type Rule struct {
	Name      string   `json:"name" yaml:"name"`
	Category  string   `json:"category" yaml:"category"`
	SlotTypes []string `json:"slot_types" yaml:"slot_types"`
}

// AppliesTo reports whether the rule applies to items of the category.
func (r Rule) AppliesTo(category string) bool {
	return r.Category == category
}

// Allows reports whether the rule permits the slot type.
func (r Rule) Allows(slotType string) bool {
	for _, s := range r.SlotTypes {
		if s == slotType {
			return true
		}
	}
	return false
}

// Validate checks the rule against the given taxonomy.
func (r Rule) Validate(tax Taxonomy) error {
	if r.Category == "" {
		return &ValidationError{EntityID: r.Name, Field: "category", Reason: "must not be empty"}
	}
	if !tax.HasCategory(r.Category) {
		return &ValidationError{EntityID: r.Name, Field: "category", Reason: "unknown category " + r.Category}
	}
	if len(r.SlotTypes) == 0 {
		return &ValidationError{EntityID: r.Name, Field: "slot_types", Reason: "must not be empty"}
	}
	for _, s := range r.SlotTypes {
		if !tax.HasSlotType(s) {
			return &ValidationError{EntityID: r.Name, Field: "slot_types", Reason: "unknown slot type " + s}
		}
	}
	return nil
}

// DefaultRules returns the warehouse rule set: fragile items go only to
// safe slots and hazardous items only to special slots. Regular items match
// no rule and fall through to the default policy.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "fragile-safe-only", Category: CategoryFragile, SlotTypes: []string{SlotTypeSafe}},
		{Name: "hazardous-special-only", Category: CategoryHazardous, SlotTypes: []string{SlotTypeSpecial}},
	}
}
