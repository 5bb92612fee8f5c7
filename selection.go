package main

import (
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pivolan/worklife_dashboard/dataset"
	"github.com/pivolan/worklife_dashboard/domain/models"
	"github.com/pivolan/worklife_dashboard/view"
)

const (
	paramAgeMin = "age_min"
	paramAgeMax = "age_max"
)

type filterParam struct {
	Column models.Column
	Key    string
	Label  string
}

// filterParams follow models.FilterColumns order.
var filterParams = []filterParam{
	{Column: models.ColumnGender, Key: "gender", Label: "Select Gender"},
	{Column: models.ColumnStressLevel, Key: "stress_level", Label: "Select Stress Level"},
	{Column: models.ColumnWorkLocation, Key: "work_location", Label: "Select Work Location"},
	{Column: models.ColumnIndustry, Key: "industry", Label: "Select Industry"},
	{Column: models.ColumnRegion, Key: "region", Label: "Select Region"},
	{Column: models.ColumnJobRole, Key: "job_role", Label: "Select Job Role"},
}

// parseSelection reads the filter state from a query string. Missing or
// unparsable age bounds fall back to the dataset's age domain; empty values
// are dropped. Nothing here fails: unknown categories just match no rows.
func parseSelection(q url.Values, ds *dataset.Dataset, logger *zap.Logger) view.Selection {
	lo, hi := ds.AgeDomain()
	age := view.AgeRange{
		Min: ageBound(q, paramAgeMin, lo, logger),
		Max: ageBound(q, paramAgeMax, hi, logger),
	}

	sel := view.Selection{Age: &age, Categories: map[models.Column][]string{}}
	for _, p := range filterParams {
		var values []string
		for _, v := range q[p.Key] {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		if len(values) > 0 {
			sel.Categories[p.Column] = values
		}
	}
	return sel
}

func ageBound(q url.Values, key string, fallback int, logger *zap.Logger) int {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.Debug("ignoring age bound", zap.String("param", key), zap.String("value", raw), zap.Error(err))
		return fallback
	}
	return v
}

// encodeSelection is the canonical query string of sel.
func encodeSelection(sel view.Selection) string {
	q := url.Values{}
	if sel.Age != nil {
		q.Set(paramAgeMin, strconv.Itoa(sel.Age.Min))
		q.Set(paramAgeMax, strconv.Itoa(sel.Age.Max))
	}
	for _, p := range filterParams {
		for _, v := range sel.Categories[p.Column] {
			q.Add(p.Key, v)
		}
	}
	return q.Encode()
}
