// Solve command: run the assignment pipeline and persist the result.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stowage/pkg/stowage"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

var (
	solveItemsPath       string
	solveSlotsPath       string
	solveRulesPath       string
	solveStrategy        string
	solveAllowUnassigned bool
	solveDefaultDeny     bool
	solveTimeLimit       float64
	solveNoSave          bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute a cost-minimal item-to-slot assignment",
	Long: `Solve loads items and slots from JSONL files, computes a feasible,
cost-minimal assignment under capacity and compatibility constraints, and
persists the run to the data directory.

Without --rules the default warehouse rule set applies: fragile items go
only to safe slots and hazardous items only to special slots.

Example:
  stowage solve --items items.jsonl --slots slots.jsonl
  stowage solve --items items.jsonl --slots slots.jsonl --strategy heuristic
  stowage solve --items items.jsonl --slots slots.jsonl --allow-unassigned`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveItemsPath, "items", "", "items JSONL file (required)")
	solveCmd.Flags().StringVar(&solveSlotsPath, "slots", "", "slots JSONL file (required)")
	solveCmd.Flags().StringVar(&solveRulesPath, "rules", "", "compatibility rules JSONL file (default: built-in warehouse rules)")
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "", "solver strategy: exact | heuristic (default: config.yaml)")
	solveCmd.Flags().BoolVar(&solveAllowUnassigned, "allow-unassigned", false, "permit leaving items unassigned")
	solveCmd.Flags().BoolVar(&solveDefaultDeny, "default-deny", false, "reject pairs not covered by any rule")
	solveCmd.Flags().Float64Var(&solveTimeLimit, "time-limit", 0, "exact-solver wall-clock limit in seconds")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "do not persist the run")
	_ = solveCmd.MarkFlagRequired("items")
	_ = solveCmd.MarkFlagRequired("slots")
}

// solveConfig merges config.yaml defaults with explicitly set flags.
func solveConfig(cmd *cobra.Command) types.Config {
	cfg := configDefaults
	if cfg.Strategy == "" {
		cfg.Strategy = types.StrategyExact
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = solveStrategy
	}
	if cmd.Flags().Changed("allow-unassigned") {
		cfg.AllowUnassigned = solveAllowUnassigned
	}
	if cmd.Flags().Changed("default-deny") {
		cfg.DefaultDeny = solveDefaultDeny
	}
	if cmd.Flags().Changed("time-limit") {
		cfg.TimeLimitSeconds = solveTimeLimit
	}
	return cfg
}

func runSolve(cmd *cobra.Command, args []string) error {
	items, slots, rules, err := loadInputs(solveItemsPath, solveSlotsPath, solveRulesPath)
	if err != nil {
		fail(exitUserError, "solve", err)
	}

	cfg := solveConfig(cmd)
	rep, err := stowage.Plan(cmd.Context(), items, slots, rules, types.Taxonomy{}, cfg)
	if err != nil {
		// A proven-infeasible instance still yields a populated report;
		// show the outcome before exiting.
		if rep.Status == types.StatusInfeasible {
			printReport(rep)
		}
		fail(exitCodeFor(err), "solve", err)
	}

	if !solveNoSave {
		store, err := attachStore()
		if err != nil {
			fail(exitSysError, "solve", err)
		}
		defer store.Detach()

		rep, err = store.SaveRun(rep, cfg)
		if err != nil {
			fail(exitSysError, "save run", err)
		}
	}

	if flagJSON {
		return printJSON(rep)
	}
	printReport(rep)
	return nil
}

// printReport writes the human-readable placement table.
func printReport(rep types.AssignmentReport) {
	if rep.RunID != "" {
		fmt.Println("run:", rep.RunID)
	}
	fmt.Println("status:", rep.Status)
	fmt.Printf("objective: %g\n", rep.Objective)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tSLOT\tCOST")
	for _, p := range rep.Placements {
		if !p.Assigned {
			fmt.Fprintf(w, "%s\t(unassigned)\t-\n", p.ItemID)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%g\n", p.ItemID, p.SlotID, p.Cost)
	}
	w.Flush()
}
