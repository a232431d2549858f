// Record import command reads storage records from a CSV file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/universal-funeral/columbary/pkg/csvcodec"
)

var recordImportFile string

var recordImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import storage records from a CSV file",
	Long: `Import reads records from a CSV file and batch-inserts them through
the gateway. Rows missing the Storage Number or Deceased Name column are
skipped; the import fails when no row survives. Unlike single-record
commands there is no local fallback for a failed batch insert.

The expected header matches the export format:
  Storage Number, Location, Deceased Name, Burial Register Number,
  Renter Name, Storage Start Date, Retrieval Date, Cremation Date

Example:
  columbary records import --file records.csv`,
	Args: cobra.NoArgs,
	RunE: runRecordImport,
}

func init() {
	recordImportCmd.Flags().StringVar(&recordImportFile, "file", "", "CSV file to import (required)")
	_ = recordImportCmd.MarkFlagRequired("file")
}

func runRecordImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(recordImportFile)
	if err != nil {
		return fmt.Errorf("open CSV file: %w", err)
	}
	defer f.Close()

	records, err := csvcodec.ReadRecords(f)
	if err != nil {
		return err
	}

	svc, closeFn, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	imported, err := svc.ImportRecords(cmd.Context(), records)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(imported)
	}
	fmt.Printf("Imported %d record(s)\n", len(imported))
	return nil
}
