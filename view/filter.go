// Package view turns a filter selection into the rows and chart series the
// dashboard shows. Everything here is a pure function of its arguments.
package view

import (
	"github.com/pivolan/worklife_dashboard/dataset"
	"github.com/pivolan/worklife_dashboard/domain/models"
)

// AgeRange is inclusive on both ends.
type AgeRange struct {
	Min int
	Max int
}

// Contains reports whether age lies within the range.
func (a AgeRange) Contains(age int) bool {
	return age >= a.Min && age <= a.Max
}

// Selection is what the user currently has picked. A nil Age or an empty
// category list leaves that attribute unrestricted.
type Selection struct {
	Age        *AgeRange
	Categories map[models.Column][]string
}

// Filter returns the records of ds matching every predicate of sel, in load
// order. The result is a new slice on every call.
func Filter(ds *dataset.Dataset, sel Selection) []models.Record {
	allowed := make(map[models.Column]map[string]bool)
	for _, col := range models.FilterColumns {
		values := sel.Categories[col]
		if len(values) == 0 {
			continue
		}
		set := make(map[string]bool, len(values))
		for _, v := range values {
			set[v] = true
		}
		allowed[col] = set
	}

	rows := make([]models.Record, 0)
	ds.Each(func(r models.Record) bool {
		if sel.Age != nil && !sel.Age.Contains(r.Age) {
			return true
		}
		for col, set := range allowed {
			if !set[r.Category(col)] {
				return true
			}
		}
		rows = append(rows, r)
		return true
	})
	return rows
}

// Render is the dashboard callback: selection in, four series out.
func Render(ds *dataset.Dataset, sel Selection) []models.Series {
	return BuildCharts(Filter(ds, sel))
}
