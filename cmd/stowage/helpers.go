// Shared helpers for stowage CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/stowage/internal/jsonl"
	"github.com/mesh-intelligence/stowage/internal/sqlite"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

// attachStore resolves the data directory, creates a run store, and
// attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore()
	if err := store.Attach(types.StoreConfig{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}

// loadInputs reads items, slots, and optional rules from JSONL files. An
// empty rules path selects the default warehouse rule set.
func loadInputs(itemsPath, slotsPath, rulesPath string) ([]types.Item, []types.Slot, []types.Rule, error) {
	items, err := jsonl.ReadItems(itemsPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read items: %w", err)
	}
	slots, err := jsonl.ReadSlots(slotsPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read slots: %w", err)
	}
	rules := types.DefaultRules()
	if rulesPath != "" {
		rules, err = jsonl.ReadRules(rulesPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("read rules: %w", err)
		}
	}
	return items, slots, rules, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// fail prints the error and exits with the given code.
func fail(code int, context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", context, err)
	os.Exit(code)
}

// exitCodeFor maps an engine error to a process exit code. Anything the
// user can correct in their input or configuration exits 1; everything
// else indicates an internal failure and exits 2.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrModel),
		errors.Is(err, types.ErrInfeasible),
		errors.Is(err, types.ErrStrategyEmpty),
		errors.Is(err, types.ErrStrategyUnknown),
		errors.Is(err, types.ErrTimeLimitInvalid):
		return exitUserError
	default:
		return exitSysError
	}
}
