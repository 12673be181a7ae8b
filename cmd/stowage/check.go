// Check command: validate inputs and report compatibility coverage without
// solving.
package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stowage/pkg/stowage"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

var (
	checkItemsPath   string
	checkSlotsPath   string
	checkRulesPath   string
	checkDefaultDeny bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate inputs and report compatible slots per item",
	Long: `Check validates items, slots, and rules and reports how many slots each
item may be placed in, without running a solve. Items with zero compatible
slots can never be placed and make a complete assignment impossible.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkItemsPath, "items", "", "items JSONL file (required)")
	checkCmd.Flags().StringVar(&checkSlotsPath, "slots", "", "slots JSONL file (required)")
	checkCmd.Flags().StringVar(&checkRulesPath, "rules", "", "compatibility rules JSONL file (default: built-in warehouse rules)")
	checkCmd.Flags().BoolVar(&checkDefaultDeny, "default-deny", false, "reject pairs not covered by any rule")
	_ = checkCmd.MarkFlagRequired("items")
	_ = checkCmd.MarkFlagRequired("slots")
}

func runCheck(cmd *cobra.Command, args []string) error {
	items, slots, rules, err := loadInputs(checkItemsPath, checkSlotsPath, checkRulesPath)
	if err != nil {
		fail(exitUserError, "check", err)
	}

	coverage, err := stowage.Check(items, slots, rules, types.Taxonomy{}, checkDefaultDeny)
	if err != nil {
		fail(exitUserError, "check", err)
	}

	if flagJSON {
		return printJSON(coverage)
	}

	itemIDs := make([]string, 0, len(coverage))
	for itemID := range coverage {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Strings(itemIDs)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tCOMPATIBLE SLOTS")
	uncovered := 0
	for _, itemID := range itemIDs {
		fmt.Fprintf(w, "%s\t%d\n", itemID, coverage[itemID])
		if coverage[itemID] == 0 {
			uncovered++
		}
	}
	w.Flush()

	if uncovered > 0 {
		fmt.Printf("%d item(s) have no compatible slot\n", uncovered)
	}
	return nil
}
