package models

import "strconv"

// Column is the header name of a dataset attribute.
type Column string

const (
	ColumnAge                   Column = "Age"
	ColumnGender                Column = "Gender"
	ColumnStressLevel           Column = "Stress_Level"
	ColumnWorkLocation          Column = "Work_Location"
	ColumnIndustry              Column = "Industry"
	ColumnRegion                Column = "Region"
	ColumnJobRole               Column = "Job_Role"
	ColumnHoursWorkedPerWeek    Column = "Hours_Worked_Per_Week"
	ColumnWorkLifeBalanceRating Column = "Work_Life_Balance_Rating"
	ColumnMentalHealthCondition Column = "Mental_Health_Condition"
	ColumnSleepQuality          Column = "Sleep_Quality"
	ColumnPhysicalActivity      Column = "Physical_Activity"
)

// RequiredColumns lists every column the dataset must provide.
var RequiredColumns = []Column{
	ColumnAge,
	ColumnGender,
	ColumnStressLevel,
	ColumnWorkLocation,
	ColumnIndustry,
	ColumnRegion,
	ColumnJobRole,
	ColumnHoursWorkedPerWeek,
	ColumnWorkLifeBalanceRating,
	ColumnMentalHealthCondition,
	ColumnSleepQuality,
	ColumnPhysicalActivity,
}

// FilterColumns are the categorical filters in the order the page shows them.
var FilterColumns = []Column{
	ColumnGender,
	ColumnStressLevel,
	ColumnWorkLocation,
	ColumnIndustry,
	ColumnRegion,
	ColumnJobRole,
}

// Record is one survey respondent.
type Record struct {
	Age                   int     `gorm:"column:Age"`
	Gender                string  `gorm:"column:Gender"`
	StressLevel           string  `gorm:"column:Stress_Level"`
	WorkLocation          string  `gorm:"column:Work_Location"`
	Industry              string  `gorm:"column:Industry"`
	Region                string  `gorm:"column:Region"`
	JobRole               string  `gorm:"column:Job_Role"`
	HoursWorkedPerWeek    float64 `gorm:"column:Hours_Worked_Per_Week"`
	WorkLifeBalanceRating string  `gorm:"column:Work_Life_Balance_Rating"`
	MentalHealthCondition string  `gorm:"column:Mental_Health_Condition"`
	SleepQuality          string  `gorm:"column:Sleep_Quality"`
	PhysicalActivity      string  `gorm:"column:Physical_Activity"`
}

// Category returns the textual value of col. Age is formatted as an
// integer; hours are not a category and yield "".
func (r Record) Category(col Column) string {
	switch col {
	case ColumnAge:
		return strconv.Itoa(r.Age)
	case ColumnGender:
		return r.Gender
	case ColumnStressLevel:
		return r.StressLevel
	case ColumnWorkLocation:
		return r.WorkLocation
	case ColumnIndustry:
		return r.Industry
	case ColumnRegion:
		return r.Region
	case ColumnJobRole:
		return r.JobRole
	case ColumnWorkLifeBalanceRating:
		return r.WorkLifeBalanceRating
	case ColumnMentalHealthCondition:
		return r.MentalHealthCondition
	case ColumnSleepQuality:
		return r.SleepQuality
	case ColumnPhysicalActivity:
		return r.PhysicalActivity
	}
	return ""
}

// ChartSpec describes one dashboard panel.
type ChartSpec struct {
	Title  string
	Column Column
	XAxis  string
	YAxis  string
	Color  string
}

// HoursAxisName labels the value axis of every panel.
const HoursAxisName = "Hours Worked Per Week"

// Charts are the four panels of the dashboard, left to right.
var Charts = []ChartSpec{
	{
		Title:  "Work Hours vs Work Life Balance",
		Column: ColumnWorkLifeBalanceRating,
		XAxis:  "Work Life Balance Rating",
		YAxis:  HoursAxisName,
		Color:  "blue",
	},
	{
		Title:  "Work Hours vs Mental Health Condition",
		Column: ColumnMentalHealthCondition,
		XAxis:  "Mental Health Condition",
		YAxis:  HoursAxisName,
		Color:  "green",
	},
	{
		Title:  "Work Hours vs Sleep Quality",
		Column: ColumnSleepQuality,
		XAxis:  "Sleep Quality",
		YAxis:  HoursAxisName,
		Color:  "orange",
	},
	{
		Title:  "Work Hours vs Physical Activity",
		Column: ColumnPhysicalActivity,
		XAxis:  "Physical Activity",
		YAxis:  HoursAxisName,
		Color:  "purple",
	},
}

// Series is one chart's data: X[i] is the category of a row, Y[i] its hours.
type Series struct {
	Spec ChartSpec
	X    []string
	Y    []float64
}

// Len is the number of bars.
func (s Series) Len() int {
	return len(s.X)
}

// GroupStat summarises the hours of the rows sharing one category.
type GroupStat struct {
	Category string
	Count    int
	Mean     float64
	Min      float64
	Max      float64
}
