package cli

import (
	"fmt"
	"io"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/dto/responses"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	bannerColor = color.New(color.FgHiWhite, color.BgRed, color.Bold)
	mutedColor  = color.New(color.Faint)
)

func printBanner(w io.Writer, message string) {
	bannerColor.Fprintf(w, " %s ", message)
	fmt.Fprintln(w)
}

func printFallback(w io.Writer, message string) {
	mutedColor.Fprintln(w, message)
}

func renderPatientList(w io.Writer, view responses.PatientListView) {
	if view.Empty {
		printFallback(w, constvars.ViewNoPatientsFound)
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Gender", "DOB", "ID"})
	table.SetAutoWrapText(false)
	for _, row := range view.Rows {
		table.Append([]string{row.Name, row.Gender, row.BirthDate, row.ID})
	}
	table.Render()

	fmt.Fprintf(w, "%d patients | Showing %d per page | Page %d of %d\n",
		view.FilteredCount, view.PageSize, view.Page, view.TotalPages)
}

func renderPatientRecord(w io.Writer, record *responses.PatientRecord) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	table.Append([]string{"Name", record.Name})
	table.Append([]string{"ID", record.ID})
	table.Append([]string{"Gender", record.Gender})
	table.Append([]string{"Birth Date", record.BirthDate})
	if record.Active != nil {
		table.Append([]string{"Active", strconv.FormatBool(*record.Active)})
	}
	for i, address := range record.Addresses {
		label := ""
		if i == 0 {
			label = "Addresses"
		}
		table.Append([]string{label, address})
	}
	table.Render()
}
