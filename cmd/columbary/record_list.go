// Record list command with the filter, sort, and pagination controls.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/universal-funeral/columbary/pkg/query"
	"github.com/universal-funeral/columbary/pkg/types"
)

var (
	recordListSearch   string
	recordListLocation string
	recordListDate     string
	recordListSort     string
	recordListDesc     bool
	recordListPage     int
)

var recordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List storage records",
	Long: `List fetches the storage records and displays one page of them.

The search filter matches the deceased name, storage number, and renter
name case-insensitively. The location filter is an exact match. The date
filter matches any part of the storage start date, so a year or a
year-month prefix works.

Sortable columns: storage_number, location, deceased_name,
burial_register_number, renter_name, storage_start_date, retrieval_date,
cremation_date, created_at.

Example:
  columbary records list
  columbary records list --search 李 --page 2
  columbary records list --location "Section A" --date 1980
  columbary records list --sort deceased_name --desc --json`,
	Args: cobra.NoArgs,
	RunE: runRecordList,
}

func init() {
	recordListCmd.Flags().StringVar(&recordListSearch, "search", "", "search deceased name, storage number, and renter name")
	recordListCmd.Flags().StringVar(&recordListLocation, "location", "", "filter by exact location name")
	recordListCmd.Flags().StringVar(&recordListDate, "date", "", "filter by storage start date substring")
	recordListCmd.Flags().StringVar(&recordListSort, "sort", "", "sort column")
	recordListCmd.Flags().BoolVar(&recordListDesc, "desc", false, "sort descending")
	recordListCmd.Flags().IntVar(&recordListPage, "page", 1, "page number")
}

func runRecordList(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	view := query.NewView[types.StorageRecord]()
	filter := query.RecordFilter{
		Text:     recordListSearch,
		Location: recordListLocation,
		Date:     recordListDate,
	}
	view.SetFilter(filter.Match)
	if recordListSort != "" {
		view.SetSort(query.Sort{Key: recordListSort, Descending: recordListDesc})
	}
	view.SetPage(recordListPage)

	page, totalPages := view.Visible(svc.Records.Items())

	if flagJSON {
		return printJSON(page)
	}
	printRecordTable(page, view.Page(), totalPages)
	return nil
}

// printRecordTable prints one page of records in a human-readable table.
func printRecordTable(records []types.StorageRecord, page, totalPages int) {
	if len(records) == 0 {
		fmt.Println("No records found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "STORAGE NO.\tDECEASED\tLOCATION\tRENTER\tSTART DATE\tID")
	fmt.Fprintln(w, "-----------\t--------\t--------\t------\t----------\t--")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.StorageNumber,
			r.DeceasedName,
			r.Location,
			r.RenterName,
			r.StorageStartDate,
			shortID(r.ID),
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Page %d of %d, %d record(s) shown\n", page, totalPages, len(records))
}

// shortID truncates gateway UUIDs for readability; seed ids stay as-is.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
