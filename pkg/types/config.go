package types

import (
	"errors"
	"time"
)

// Supported solver strategies.
const (
	StrategyExact     = "exact"
	StrategyHeuristic = "heuristic"
)

// Config validation errors.
var (
	ErrStrategyEmpty    = errors.New("strategy must not be empty")
	ErrStrategyUnknown  = errors.New("unknown strategy")
	ErrTimeLimitInvalid = errors.New("time limit must not be negative")
)

// knownStrategies lists the strategies that Validate accepts.
var knownStrategies = map[string]bool{
	StrategyExact:     true,
	StrategyHeuristic: true,
}

// Config holds the solve policy for a single request.
type Config struct {
	// Strategy selects the solver: "exact" (branch and bound, globally
	// optimal when it terminates within the time limit) or "heuristic"
	// (greedy with relocation repair, never reported as optimal).
	Strategy string `json:"strategy" yaml:"strategy"`

	// AllowUnassigned permits leaving items unplaced. When false, every
	// item must be assigned and proven infeasibility is an error.
	AllowUnassigned bool `json:"allow_unassigned" yaml:"allow_unassigned"`

	// DefaultDeny flips the compatibility fallback for category/slot-type
	// pairs no rule applies to. The default policy is allow; a stricter
	// deployment sets DefaultDeny to reject anything not explicitly
	// permitted by a rule.
	DefaultDeny bool `json:"default_deny" yaml:"default_deny"`

	// TimeLimitSeconds bounds exact-solver wall-clock time. Zero means no
	// limit. On exhaustion the best incumbent is returned with status
	// "feasible", never "optimal".
	TimeLimitSeconds float64 `json:"time_limit_seconds" yaml:"time_limit_seconds"`
}

// DefaultConfig returns the config used when the caller does not provide
// one: exact solving, complete assignment required, default-allow
// compatibility, no time limit.
func DefaultConfig() Config {
	return Config{Strategy: StrategyExact}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Strategy == "" {
		return ErrStrategyEmpty
	}
	if !knownStrategies[c.Strategy] {
		return ErrStrategyUnknown
	}
	if c.TimeLimitSeconds < 0 {
		return ErrTimeLimitInvalid
	}
	return nil
}

// TimeLimit returns TimeLimitSeconds as a duration. Zero means no limit.
func (c Config) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitSeconds * float64(time.Second))
}
