package view

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/worklife_dashboard/domain/models"
)

// Summarize groups rows by col and reports hours statistics per category,
// categories in order of first appearance.
func Summarize(rows []models.Record, col models.Column) []models.GroupStat {
	var stats []models.GroupStat
	position := map[string]int{}
	sums := []float64{}

	for _, r := range rows {
		category := r.Category(col)
		hours := r.HoursWorkedPerWeek
		i, ok := position[category]
		if !ok {
			position[category] = len(stats)
			stats = append(stats, models.GroupStat{Category: category, Min: hours, Max: hours})
			sums = append(sums, 0)
			i = len(stats) - 1
		}
		stats[i].Count++
		sums[i] += hours
		if hours < stats[i].Min {
			stats[i].Min = hours
		}
		if hours > stats[i].Max {
			stats[i].Max = hours
		}
	}
	for i := range stats {
		stats[i].Mean = sums[i] / float64(stats[i].Count)
	}
	return stats
}

// SummaryTable renders one table per chart with category count and hours.
func SummaryTable(rows []models.Record) string {
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "Rows: %d\n", len(rows))

	for _, spec := range models.Charts {
		t := table.NewWriter()
		t.SetTitle(spec.Title)
		t.AppendHeader(table.Row{spec.XAxis, "Count", "Mean Hours", "Min Hours", "Max Hours"})
		for _, s := range Summarize(rows, spec.Column) {
			t.AppendRow(table.Row{
				s.Category,
				s.Count,
				fmt.Sprintf("%.2f", s.Mean),
				fmt.Sprintf("%.1f", s.Min),
				fmt.Sprintf("%.1f", s.Max),
			})
		}
		t.SetStyle(table.StyleDefault)
		buf.WriteString("\n")
		buf.WriteString(t.Render())
		buf.WriteString("\n")
	}
	return buf.String()
}
