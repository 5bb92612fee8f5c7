package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/pivolan/worklife_dashboard/domain/models"
)

// LoadFile opens filePath, unpacking it if needed, and parses it as CSV.
func LoadFile(filePath string) (*Dataset, error) {
	f, err := Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filePath, err)
	}
	return ds, nil
}

// LoadFromDB reads every required column of table. A missing column fails
// the query rather than yielding zero values.
func LoadFromDB(db *gorm.DB, table string) (*Dataset, error) {
	columns := make([]string, len(models.RequiredColumns))
	for i, c := range models.RequiredColumns {
		columns[i] = string(c)
	}

	var records []models.Record
	if err := db.Table(table).Select(columns).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load table %s: %w", table, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("load table %s: %w", table, ErrNoRecords)
	}
	if err := normalizeRecords(records); err != nil {
		return nil, fmt.Errorf("load table %s: %w", table, err)
	}
	return New(records), nil
}

// normalizeRecords trims every category the way ReadCSV trims its cells and
// rejects rows whose hours are not finite. Line is the 1-based row number.
func normalizeRecords(records []models.Record) error {
	for i := range records {
		r := &records[i]
		if math.IsNaN(r.HoursWorkedPerWeek) || math.IsInf(r.HoursWorkedPerWeek, 0) {
			return &ParseError{
				Line:   i + 1,
				Column: models.ColumnHoursWorkedPerWeek,
				Value:  strconv.FormatFloat(r.HoursWorkedPerWeek, 'g', -1, 64),
				Err:    errors.New("hours must be finite"),
			}
		}
		for _, s := range []*string{
			&r.Gender, &r.StressLevel, &r.WorkLocation, &r.Industry, &r.Region, &r.JobRole,
			&r.WorkLifeBalanceRating, &r.MentalHealthCondition, &r.SleepQuality, &r.PhysicalActivity,
		} {
			*s = strings.TrimSpace(*s)
		}
	}
	return nil
}
