package types

import "time"

// Placement records the outcome for a single item: the slot it was placed
// in and its objective contribution, or an explicit unassigned marker.
type Placement struct {
	ItemID   string  `json:"item_id"`
	SlotID   string  `json:"slot_id,omitempty"` // empty when unassigned
	Assigned bool    `json:"assigned"`
	Cost     float64 `json:"cost"` // frequency × slot cost; zero when unassigned
}

// AssignmentReport is the final result handed back to the caller: one
// placement per catalog item, the independently recomputed objective, and
// the solve status. RunID is assigned by the run store on save and is empty
// until then.
type AssignmentReport struct {
	RunID      string      `json:"run_id,omitempty"`
	Status     string      `json:"status"`
	Objective  float64     `json:"objective"`
	Placements []Placement `json:"placements"`
	Unassigned []string    `json:"unassigned,omitempty"` // item IDs without a slot
	CreatedAt  time.Time   `json:"created_at"`
}
