// Record update command.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/universal-funeral/columbary/pkg/types"
)

var recordUpdateFlags recordFlags

var recordUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a storage record",
	Long: `Update overwrites the named fields of an existing record. Fields
whose flags are not given keep their current values.

Example:
  columbary records update 42 --renter "Kun"
  columbary records update 42 --location "Section B" --retrieval-date 1990-01-15`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordUpdate,
}

func init() {
	recordUpdateFlags.register(recordUpdateCmd)
}

func runRecordUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	svc, closeFn, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	existing, ok := svc.Records.Get(id)
	if !ok {
		return fmt.Errorf("record %s: %w", id, types.ErrNotFound)
	}

	updated := recordUpdateFlags.merge(cmd, existing)
	outcome, err := svc.Records.Update(cmd.Context(), id, updated)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("record %s: %w", id, err)
		}
		return fmt.Errorf("update record: %w", err)
	}

	if flagJSON {
		return printJSON(outcome.Entity)
	}
	fmt.Printf("Updated record %s%s\n", outcome.Entity.ID, originNote(outcome.Origin))
	return nil
}
