// Package dataset loads the survey table once and serves it read-only.
package dataset

import (
	"github.com/pivolan/worklife_dashboard/domain/models"
)

// Dataset is an immutable set of records. It has no mutation API and is
// safe for concurrent readers.
type Dataset struct {
	records  []models.Record
	distinct map[models.Column][]string
	ageMin   int
	ageMax   int
}

// New builds a Dataset from a copy of records.
func New(records []models.Record) *Dataset {
	ds := &Dataset{
		records:  make([]models.Record, len(records)),
		distinct: make(map[models.Column][]string),
	}
	copy(ds.records, records)

	categorical := append([]models.Column{}, models.FilterColumns...)
	for _, chart := range models.Charts {
		categorical = append(categorical, chart.Column)
	}
	seen := make(map[models.Column]map[string]bool, len(categorical))
	for _, col := range categorical {
		seen[col] = map[string]bool{}
	}

	for i, r := range ds.records {
		if i == 0 || r.Age < ds.ageMin {
			ds.ageMin = r.Age
		}
		if i == 0 || r.Age > ds.ageMax {
			ds.ageMax = r.Age
		}
		for _, col := range categorical {
			v := r.Category(col)
			if !seen[col][v] {
				seen[col][v] = true
				ds.distinct[col] = append(ds.distinct[col], v)
			}
		}
	}
	return ds
}

// Len is the number of loaded records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Each calls fn for every record in load order until fn returns false.
func (d *Dataset) Each(fn func(models.Record) bool) {
	for _, r := range d.records {
		if !fn(r) {
			return
		}
	}
}

// AgeDomain returns the smallest and largest observed Age. Both are zero
// for an empty dataset.
func (d *Dataset) AgeDomain() (min, max int) {
	return d.ageMin, d.ageMax
}

// Distinct returns the values observed in col, in order of first appearance.
func (d *Dataset) Distinct(col models.Column) []string {
	values := d.distinct[col]
	out := make([]string, len(values))
	copy(out, values)
	return out
}
