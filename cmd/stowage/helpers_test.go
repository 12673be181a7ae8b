package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/stowage/pkg/types"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation error", &types.ValidationError{EntityID: "M1", Field: "size", Reason: "must be positive"}, exitUserError},
		{"model error", &types.ModelError{ItemID: "M1", Reason: "no compatible slot"}, exitUserError},
		{"infeasible", &types.InfeasibleError{Reason: "capacity exhausted"}, exitUserError},
		{"unknown strategy from config", fmt.Errorf("strategy %q: %w", "annealing", types.ErrStrategyUnknown), exitUserError},
		{"empty strategy", types.ErrStrategyEmpty, exitUserError},
		{"negative time limit", types.ErrTimeLimitInvalid, exitUserError},
		{"anything else", errors.New("database locked"), exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, exitCodeFor(tt.err))
		})
	}
}
