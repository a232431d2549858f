// Location delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var locationDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a location",
	Long: `Delete removes a location. Records referring to the location keep
their stored location name.

Example:
  columbary locations delete 3`,
	Args: cobra.ExactArgs(1),
	RunE: runLocationDelete,
}

func runLocationDelete(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	origin := svc.Locations.Delete(cmd.Context(), args[0])
	fmt.Printf("Deleted location %s%s\n", args[0], originNote(origin))
	return nil
}
