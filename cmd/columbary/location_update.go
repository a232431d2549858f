// Location update command.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/universal-funeral/columbary/pkg/types"
)

var (
	locationUpdateName        string
	locationUpdateDescription string
)

var locationUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a location",
	Long: `Update overwrites the named fields of an existing location. Fields
whose flags are not given keep their current values.

Example:
  columbary locations update 2 --description "Renovated wing"`,
	Args: cobra.ExactArgs(1),
	RunE: runLocationUpdate,
}

func init() {
	locationUpdateCmd.Flags().StringVar(&locationUpdateName, "name", "", "location name")
	locationUpdateCmd.Flags().StringVar(&locationUpdateDescription, "description", "", "location description")
}

func runLocationUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	svc, closeFn, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	existing, ok := svc.Locations.Get(id)
	if !ok {
		return fmt.Errorf("location %s: %w", id, types.ErrNotFound)
	}

	if cmd.Flags().Changed("name") {
		existing.Name = locationUpdateName
	}
	if cmd.Flags().Changed("description") {
		existing.Description = locationUpdateDescription
	}

	outcome, err := svc.Locations.Update(cmd.Context(), id, existing)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("location %s: %w", id, err)
		}
		return fmt.Errorf("update location: %w", err)
	}

	if flagJSON {
		return printJSON(outcome.Entity)
	}
	fmt.Printf("Updated location %s%s\n", outcome.Entity.ID, originNote(outcome.Origin))
	return nil
}
