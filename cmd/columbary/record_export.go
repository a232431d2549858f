// Record export command writes storage records to a CSV file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/universal-funeral/columbary/pkg/csvcodec"
	"github.com/universal-funeral/columbary/pkg/query"
	"github.com/universal-funeral/columbary/pkg/types"
)

var (
	recordExportOutput   string
	recordExportSearch   string
	recordExportLocation string
	recordExportDate     string
	recordExportSort     string
	recordExportDesc     bool
)

var recordExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export storage records to a CSV file",
	Long: `Export writes the filtered, sorted record set to a CSV file. All
matching rows are exported, not just one page. The filter flags behave
exactly as in the list command.

The default file name is ashes_records_<timestamp>.csv in the current
directory.

Example:
  columbary records export
  columbary records export --location "Section A" --output section-a.csv`,
	Args: cobra.NoArgs,
	RunE: runRecordExport,
}

func init() {
	recordExportCmd.Flags().StringVar(&recordExportOutput, "output", "", "output file (default: ashes_records_<timestamp>.csv)")
	recordExportCmd.Flags().StringVar(&recordExportSearch, "search", "", "search deceased name, storage number, and renter name")
	recordExportCmd.Flags().StringVar(&recordExportLocation, "location", "", "filter by exact location name")
	recordExportCmd.Flags().StringVar(&recordExportDate, "date", "", "filter by storage start date substring")
	recordExportCmd.Flags().StringVar(&recordExportSort, "sort", "", "sort column")
	recordExportCmd.Flags().BoolVar(&recordExportDesc, "desc", false, "sort descending")
}

func runRecordExport(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	view := query.NewView[types.StorageRecord]()
	filter := query.RecordFilter{
		Text:     recordExportSearch,
		Location: recordExportLocation,
		Date:     recordExportDate,
	}
	view.SetFilter(filter.Match)
	if recordExportSort != "" {
		view.SetSort(query.Sort{Key: recordExportSort, Descending: recordExportDesc})
	}

	records := view.Filtered(svc.Records.Items())

	outPath := recordExportOutput
	if outPath == "" {
		outPath = csvcodec.ExportFileName(time.Now())
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer f.Close()

	if err := csvcodec.WriteRecords(f, records); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close CSV file: %w", err)
	}

	fmt.Printf("Exported %d record(s) to %s\n", len(records), outPath)
	return nil
}
