// Version command for the stowage CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stowage/pkg/stowage"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the stowage version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stowage", stowage.Version)
	},
}
