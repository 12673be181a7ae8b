// Package stowage provides the public API for the assignment engine. It
// runs the full pipeline behind one call while keeping the individual
// stages internal.
//
// Example:
//
//	report, err := stowage.Plan(ctx, items, slots,
//	    types.DefaultRules(), types.Taxonomy{}, types.DefaultConfig())
package stowage

import (
	"context"
	"errors"

	"github.com/mesh-intelligence/stowage/internal/catalog"
	"github.com/mesh-intelligence/stowage/internal/compat"
	"github.com/mesh-intelligence/stowage/internal/model"
	"github.com/mesh-intelligence/stowage/internal/report"
	"github.com/mesh-intelligence/stowage/internal/solver"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

// Version is the stowage release version.
const Version = "v0.1.0"

// Plan computes an assignment of items to slots: it loads and validates the
// catalog, resolves the compatibility matrix, builds the optimization
// model, solves it with the configured strategy, and returns the
// cross-checked report. A zero taxonomy selects the default warehouse
// taxonomy; an empty strategy selects exact solving.
//
// Failures surface as the engine's typed errors: *types.ValidationError for
// malformed input, *types.ModelError for structurally infeasible models,
// and *types.InfeasibleError when no complete assignment is possible and
// the config requires one. A proven-infeasible instance additionally
// returns a populated report with status "infeasible" alongside the error,
// so callers can record the outcome.
func Plan(ctx context.Context, items []types.Item, slots []types.Slot, rules []types.Rule, tax types.Taxonomy, cfg types.Config) (types.AssignmentReport, error) {
	if cfg.Strategy == "" {
		cfg.Strategy = types.StrategyExact
	}
	if err := cfg.Validate(); err != nil {
		return types.AssignmentReport{}, err
	}

	cat, err := catalog.Load(items, slots, tax)
	if err != nil {
		return types.AssignmentReport{}, err
	}

	matrix, err := compat.Resolve(cat, rules, cfg.DefaultDeny)
	if err != nil {
		return types.AssignmentReport{}, err
	}

	m, err := model.Build(cat, matrix, cfg)
	if err != nil {
		return types.AssignmentReport{}, err
	}

	sol, err := solver.Solve(ctx, m, cfg)
	if err != nil {
		if errors.Is(err, types.ErrInfeasible) {
			return report.Infeasible(cat), err
		}
		return types.AssignmentReport{}, err
	}

	return report.Build(sol, cat)
}

// Check validates items, slots, and rules without solving. It returns the
// number of compatible slots per item, keyed by item identifier, so callers
// can inspect coverage before committing to a solve.
func Check(items []types.Item, slots []types.Slot, rules []types.Rule, tax types.Taxonomy, defaultDeny bool) (map[string]int, error) {
	cat, err := catalog.Load(items, slots, tax)
	if err != nil {
		return nil, err
	}
	matrix, err := compat.Resolve(cat, rules, defaultDeny)
	if err != nil {
		return nil, err
	}

	coverage := make(map[string]int, cat.NumItems())
	for _, item := range cat.Items() {
		coverage[item.ItemID] = matrix.CompatibleCount(item.ItemID)
	}
	return coverage, nil
}
