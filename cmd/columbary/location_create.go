// Location create command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/universal-funeral/columbary/pkg/types"
)

var (
	locationCreateName        string
	locationCreateDescription string
)

var locationCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a location",
	Long: `Create adds a new columbarium location. The name is required.

Example:
  columbary locations create --name "Section D" --description "New annex"`,
	Args: cobra.NoArgs,
	RunE: runLocationCreate,
}

func init() {
	locationCreateCmd.Flags().StringVar(&locationCreateName, "name", "", "location name (required)")
	locationCreateCmd.Flags().StringVar(&locationCreateDescription, "description", "", "location description")
	_ = locationCreateCmd.MarkFlagRequired("name")
}

func runLocationCreate(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	outcome, err := svc.Locations.Create(cmd.Context(), types.Location{
		Name:        locationCreateName,
		Description: locationCreateDescription,
	})
	if err != nil {
		return fmt.Errorf("create location: %w", err)
	}

	if flagJSON {
		return printJSON(outcome.Entity)
	}
	fmt.Printf("Created location %s%s\n", outcome.Entity.ID, originNote(outcome.Origin))
	return nil
}
