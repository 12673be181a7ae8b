// Runs commands: list, show, and delete persisted solve runs.
package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stowage/pkg/types"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect persisted solve runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted runs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fail(exitSysError, "runs list", err)
		}
		defer store.Detach()

		runs, err := store.ListRuns()
		if err != nil {
			fail(exitSysError, "runs list", err)
		}

		if flagJSON {
			return printJSON(runs)
		}

		if len(runs) == 0 {
			fmt.Println("no runs")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RUN\tSTRATEGY\tSTATUS\tOBJECTIVE\tITEMS\tUNASSIGNED\tCREATED")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%d\t%d\t%s\n",
				r.RunID, r.Strategy, r.Status, r.Objective, r.Items, r.Unassigned,
				r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		w.Flush()
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Display a persisted run with full placements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fail(exitSysError, "runs show", err)
		}
		defer store.Detach()

		rep, err := store.GetRun(args[0])
		if err != nil {
			if errors.Is(err, types.ErrRunNotFound) {
				fmt.Fprintf(os.Stderr, "run %q not found\n", args[0])
				os.Exit(exitUserError)
			}
			fail(exitSysError, "runs show", err)
		}

		if flagJSON {
			return printJSON(rep)
		}
		printReport(rep)
		return nil
	},
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a persisted run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fail(exitSysError, "runs delete", err)
		}
		defer store.Detach()

		if err := store.DeleteRun(args[0]); err != nil {
			if errors.Is(err, types.ErrRunNotFound) {
				fmt.Fprintf(os.Stderr, "run %q not found\n", args[0])
				os.Exit(exitUserError)
			}
			fail(exitSysError, "runs delete", err)
		}

		fmt.Println("deleted", args[0])
		return nil
	},
}

func init() {
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsDeleteCmd)
}
