// Location list command.
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
	locationListSearch string
	locationListSort   string
	locationListDesc   bool
	locationListPage   int
)

var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List locations",
	Long: `List fetches the locations and displays one page of them. The search
filter matches the location name case-insensitively.

Sortable columns: name, description, created_at.

Example:
  columbary locations list
  columbary locations list --search section --sort name --desc`,
	Args: cobra.NoArgs,
	RunE: runLocationList,
}

func init() {
	locationListCmd.Flags().StringVar(&locationListSearch, "search", "", "search location name")
	locationListCmd.Flags().StringVar(&locationListSort, "sort", "", "sort column")
	locationListCmd.Flags().BoolVar(&locationListDesc, "desc", false, "sort descending")
	locationListCmd.Flags().IntVar(&locationListPage, "page", 1, "page number")
}

func runLocationList(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	view := query.NewView[types.Location]()
	filter := query.LocationFilter{Name: locationListSearch}
	view.SetFilter(filter.Match)
	if locationListSort != "" {
		view.SetSort(query.Sort{Key: locationListSort, Descending: locationListDesc})
	}
	view.SetPage(locationListPage)

	page, totalPages := view.Visible(svc.Locations.Items())

	if flagJSON {
		return printJSON(page)
	}
	printLocationTable(page, view.Page(), totalPages)
	return nil
}

// printLocationTable prints one page of locations in a human-readable table.
func printLocationTable(locations []types.Location, page, totalPages int) {
	if len(locations) == 0 {
		fmt.Println("No locations found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tDESCRIPTION\tID")
	fmt.Fprintln(w, "----\t-----------\t--")
	for _, l := range locations {
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.Name, l.Description, shortID(l.ID))
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Page %d of %d, %d location(s) shown\n", page, totalPages, len(locations))
}
