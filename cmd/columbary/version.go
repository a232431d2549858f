// Version command for the columbary CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/universal-funeral/columbary/pkg/columbary"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the columbary version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("columbary", columbary.Version)
	},
}
