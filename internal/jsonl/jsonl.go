// Package jsonl reads catalog input files: one JSON object per line for
// items, slots, and compatibility rules.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/stowage/pkg/types"
)

// readLines reads a JSONL file and returns each non-empty, valid line.
// Malformed lines are skipped so a partially hand-edited file still loads;
// entity validation happens later at catalog load.
func readLines(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// ReadItems loads items from a JSONL file.
func ReadItems(path string) ([]types.Item, error) {
	records, err := readLines(path)
	if err != nil {
		return nil, err
	}
	items := make([]types.Item, 0, len(records))
	for _, rec := range records {
		var item types.Item
		if err := json.Unmarshal(rec, &item); err != nil {
			return nil, fmt.Errorf("decoding item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ReadSlots loads slots from a JSONL file.
func ReadSlots(path string) ([]types.Slot, error) {
	records, err := readLines(path)
	if err != nil {
		return nil, err
	}
	slots := make([]types.Slot, 0, len(records))
	for _, rec := range records {
		var slot types.Slot
		if err := json.Unmarshal(rec, &slot); err != nil {
			return nil, fmt.Errorf("decoding slot: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// ReadRules loads compatibility rules from a JSONL file.
func ReadRules(path string) ([]types.Rule, error) {
	records, err := readLines(path)
	if err != nil {
		return nil, err
	}
	rules := make([]types.Rule, 0, len(records))
	for _, rec := range records {
		var rule types.Rule
		if err := json.Unmarshal(rec, &rule); err != nil {
			return nil, fmt.Errorf("decoding rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
