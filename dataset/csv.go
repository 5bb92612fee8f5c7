package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"github.com/pivolan/go_utils"

	"github.com/pivolan/worklife_dashboard/domain/models"
)

const SEPARATOR = ','

var specialSymbols = regexp.MustCompile("[^a-zA-Z0-9]+")

// ReadCSV parses a header row followed by one record per line.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = SEPARATOR
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rec, err := parseRow(reader, row, index)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return New(records), nil
}

// columnIndex maps each required column to its position in the header.
// When a header repeats, the first occurrence wins.
func columnIndex(header []string) (map[models.Column]int, error) {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = normalizeHeader(h)
	}
	names = ValidateHeaders(names)

	index := make(map[models.Column]int, len(models.RequiredColumns))
	var missing []models.Column
	for _, col := range models.RequiredColumns {
		key := normalizeHeader(string(col))
		if !go_utils.InArray(key, names) {
			missing = append(missing, col)
			continue
		}
		for i, name := range names {
			if name == key {
				index[col] = i
				break
			}
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return index, nil
}

func parseRow(reader *csv.Reader, row []string, index map[models.Column]int) (models.Record, error) {
	var rec models.Record
	for _, col := range models.RequiredColumns {
		i := index[col]
		if i >= len(row) {
			line, _ := reader.FieldPos(0)
			return rec, &ParseError{Line: line, Column: col, Err: errors.New("field missing")}
		}
		value := strings.TrimSpace(row[i])

		switch col {
		case models.ColumnAge:
			age, err := parseAge(value)
			if err != nil {
				line, _ := reader.FieldPos(i)
				return rec, &ParseError{Line: line, Column: col, Value: value, Err: err}
			}
			rec.Age = age
		case models.ColumnHoursWorkedPerWeek:
			hours, err := strconv.ParseFloat(value, 64)
			if err == nil && (math.IsNaN(hours) || math.IsInf(hours, 0)) {
				err = errors.New("hours must be finite")
			}
			if err != nil {
				line, _ := reader.FieldPos(i)
				return rec, &ParseError{Line: line, Column: col, Value: value, Err: err}
			}
			rec.HoursWorkedPerWeek = hours
		case models.ColumnGender:
			rec.Gender = value
		case models.ColumnStressLevel:
			rec.StressLevel = value
		case models.ColumnWorkLocation:
			rec.WorkLocation = value
		case models.ColumnIndustry:
			rec.Industry = value
		case models.ColumnRegion:
			rec.Region = value
		case models.ColumnJobRole:
			rec.JobRole = value
		case models.ColumnWorkLifeBalanceRating:
			rec.WorkLifeBalanceRating = value
		case models.ColumnMentalHealthCondition:
			rec.MentalHealthCondition = value
		case models.ColumnSleepQuality:
			rec.SleepQuality = value
		case models.ColumnPhysicalActivity:
			rec.PhysicalActivity = value
		}
	}
	return rec, nil
}

// parseAge accepts integers and integral floats such as "34.0".
func parseAge(value string) (int, error) {
	if age, err := strconv.Atoi(value); err == nil {
		return age, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("age %v is not an integer", f)
	}
	return int(f), nil
}

// normalizeHeader makes "Work Life Balance Rating", "work_life_balance_rating"
// and "Work_Life_Balance_Rating" compare equal.
func normalizeHeader(header string) string {
	header = strings.TrimPrefix(strings.TrimSpace(header), "\ufeff")
	header = unidecode.Unidecode(header)
	return strings.ToLower(replaceSpecialSymbols(header))
}

func replaceSpecialSymbols(input string) string {
	processed := specialSymbols.ReplaceAllString(input, "_")
	return strings.Trim(processed, "_")
}

// ValidateHeaders проверяет и исправляет дубликаты в заголовках
func ValidateHeaders(headers []string) []string {
	seen := make(map[string]int)
	result := make([]string, len(headers))

	for i, header := range headers {
		originalHeader := header
		counter := 1

		for {
			if count, exists := seen[header]; exists {
				header = fmt.Sprintf("%s_%d", originalHeader, counter)
				counter++
			} else {
				seen[header] = count + 1
				break
			}
		}

		result[i] = header
	}

	return result
}
