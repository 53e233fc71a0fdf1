package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"alumni/internal/alumni"
	"alumni/views/components"
)

var (
	listCategory string
	listPages    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the showcase for a category, newest passing year first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(os.Stderr)
		if err != nil {
			return err
		}

		svc := newAlumniService(cfg, logger)
		ds := svc.Load(context.Background())
		out := cmd.OutOrStdout()
		if ds.Failed() {
			color.New(color.FgRed).Fprintln(out, components.LoadErrorMessage)
			return nil
		}

		ctrl := alumni.NewController(svc.PageSize())
		printShowcase(out, ctrl, listCategory, alumni.Filter(ds.Records, listCategory), listPages)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the category codes and the departments they group",
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Code", "Departments"})
		table.SetAutoWrapText(false)
		for _, c := range alumni.Categories() {
			table.Append([]string{c.Code, strings.Join(c.Subcategories, ", ")})
		}
		table.Render()
	},
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", alumni.AllCategory, "category code or department name")
	listCmd.Flags().IntVarP(&listPages, "pages", "n", 1, "number of pages to reveal")
	rootCmd.AddCommand(listCmd, categoriesCmd)
}

// printShowcase resets ctrl to the filtered view, reveals up to pages pages
// and prints them as one table.
func printShowcase(out io.Writer, ctrl *alumni.Controller, category string, filtered []alumni.Record, pages int) {
	page := ctrl.Reset(category, filtered)
	if page.Empty {
		color.New(color.FgYellow).Fprintln(out, components.NoResultsMessage)
		return
	}

	rows := page.Records
	for i := 1; i < pages && page.ShowMore; i++ {
		page = ctrl.RevealNext()
		rows = append(rows[:len(rows):len(rows)], page.Records...)
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Department", "Year", "Designation", "Company"})
	for _, r := range rows {
		table.Append([]string{r.Name, r.Department, r.PassingYear, r.Designation, r.Company})
	}
	table.Render()

	state := ctrl.State()
	if state.HasMore() {
		color.New(color.FgCyan).Fprintf(out, "%d more alumni (use --pages to reveal more)\n", state.Remaining())
	} else {
		color.New(color.FgGreen).Fprintf(out, "showing all %d alumni\n", state.Total())
	}
}
