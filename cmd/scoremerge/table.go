package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"scoremerge/internal/history"
)

// renderRunsTable lays out the run journal, count columns right-aligned.
func renderRunsTable(runs []history.Run) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Started", "Workbook", "Sources", "Matched", "Unmatched", "Orphans", "Review"})

	for _, run := range runs {
		tw.AppendRow(table.Row{
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			run.Workbook,
			run.Sources,
			run.Matched,
			run.Unmatched,
			run.Orphans,
			yesNo(run.NeedsReview),
		})
	}

	configs := make([]table.ColumnConfig, 0, 4)
	for _, number := range []int{3, 4, 5, 6} {
		configs = append(configs, table.ColumnConfig{
			Number:      number,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
