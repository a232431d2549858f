// Parent command for location subcommands.
package main

import "github.com/spf13/cobra"

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Manage columbarium locations",
}

func init() {
	locationsCmd.AddCommand(locationListCmd)
	locationsCmd.AddCommand(locationCreateCmd)
	locationsCmd.AddCommand(locationUpdateCmd)
	locationsCmd.AddCommand(locationDeleteCmd)
}
