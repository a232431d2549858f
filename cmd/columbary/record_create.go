// Record create command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recordCreateFlags recordFlags

var recordCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a storage record",
	Long: `Create adds a new storage record. Storage number and deceased name
are required; the other fields are optional.

When the gateway is unreachable the record is kept locally with a
synthetic id so the session can continue.

Example:
  columbary records create --storage-number A1234/80 --deceased-name "陳大文" \
    --location "Section A" --start-date 1980-03-24`,
	Args: cobra.NoArgs,
	RunE: runRecordCreate,
}

func init() {
	recordCreateFlags.register(recordCreateCmd)
	_ = recordCreateCmd.MarkFlagRequired("storage-number")
	_ = recordCreateCmd.MarkFlagRequired("deceased-name")
}

func runRecordCreate(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	outcome, err := svc.Records.Create(cmd.Context(), recordCreateFlags.record())
	if err != nil {
		return fmt.Errorf("create record: %w", err)
	}

	if flagJSON {
		return printJSON(outcome.Entity)
	}
	fmt.Printf("Created record %s%s\n", outcome.Entity.ID, originNote(outcome.Origin))
	return nil
}
