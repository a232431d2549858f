// Record delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recordDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a storage record",
	Long: `Delete removes a storage record. The record disappears from the
local collection even when the gateway cannot be reached.

Example:
  columbary records delete 42`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordDelete,
}

func runRecordDelete(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	origin := svc.Records.Delete(cmd.Context(), args[0])
	fmt.Printf("Deleted record %s%s\n", args[0], originNote(origin))
	return nil
}
