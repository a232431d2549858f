// Parent command and shared flags for record subcommands.
package main

import (
	"github.com/spf13/cobra"

	"github.com/universal-funeral/columbary/pkg/types"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage ashes storage records",
}

func init() {
	recordsCmd.AddCommand(recordListCmd)
	recordsCmd.AddCommand(recordCreateCmd)
	recordsCmd.AddCommand(recordUpdateCmd)
	recordsCmd.AddCommand(recordDeleteCmd)
	recordsCmd.AddCommand(recordImportCmd)
	recordsCmd.AddCommand(recordExportCmd)
}

// recordFlags holds the editable record fields as flag targets, shared by
// the create and update commands.
type recordFlags struct {
	storageNumber  string
	location       string
	deceasedName   string
	burialRegister string
	renterName     string
	startDate      string
	retrievalDate  string
	cremationDate  string
}

// register binds the field flags onto the command.
func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.storageNumber, "storage-number", "", "storage number")
	cmd.Flags().StringVar(&f.location, "location", "", "location name")
	cmd.Flags().StringVar(&f.deceasedName, "deceased-name", "", "name of the deceased")
	cmd.Flags().StringVar(&f.burialRegister, "burial-register", "", "burial register number")
	cmd.Flags().StringVar(&f.renterName, "renter", "", "renter name")
	cmd.Flags().StringVar(&f.startDate, "start-date", "", "storage start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.retrievalDate, "retrieval-date", "", "retrieval date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.cremationDate, "cremation-date", "", "cremation date (YYYY-MM-DD)")
}

// record assembles a StorageRecord from the flag values.
func (f *recordFlags) record() types.StorageRecord {
	return types.StorageRecord{
		StorageNumber:        f.storageNumber,
		Location:             f.location,
		DeceasedName:         f.deceasedName,
		BurialRegisterNumber: f.burialRegister,
		RenterName:           f.renterName,
		StorageStartDate:     f.startDate,
		RetrievalDate:        f.retrievalDate,
		CremationDate:        f.cremationDate,
	}
}

// merge overwrites base with the fields whose flags were set on cmd, so an
// update only touches the columns the user named.
func (f *recordFlags) merge(cmd *cobra.Command, base types.StorageRecord) types.StorageRecord {
	if cmd.Flags().Changed("storage-number") {
		base.StorageNumber = f.storageNumber
	}
	if cmd.Flags().Changed("location") {
		base.Location = f.location
	}
	if cmd.Flags().Changed("deceased-name") {
		base.DeceasedName = f.deceasedName
	}
	if cmd.Flags().Changed("burial-register") {
		base.BurialRegisterNumber = f.burialRegister
	}
	if cmd.Flags().Changed("renter") {
		base.RenterName = f.renterName
	}
	if cmd.Flags().Changed("start-date") {
		base.StorageStartDate = f.startDate
	}
	if cmd.Flags().Changed("retrieval-date") {
		base.RetrievalDate = f.retrievalDate
	}
	if cmd.Flags().Changed("cremation-date") {
		base.CremationDate = f.cremationDate
	}
	return base
}
