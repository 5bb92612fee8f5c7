package view

import (
	"github.com/pivolan/worklife_dashboard/domain/models"
)

// BuildCharts pairs each target column of rows with the hours worked, one
// point per row. No grouping is applied.
func BuildCharts(rows []models.Record) []models.Series {
	series := make([]models.Series, len(models.Charts))
	for i, spec := range models.Charts {
		s := models.Series{
			Spec: spec,
			X:    make([]string, len(rows)),
			Y:    make([]float64, len(rows)),
		}
		for j, r := range rows {
			s.X[j] = r.Category(spec.Column)
			s.Y[j] = r.HoursWorkedPerWeek
		}
		series[i] = s
	}
	return series
}
