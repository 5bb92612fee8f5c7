package dataset

import (
	"archive/zip"
	"compress/gzip"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pivolan/worklife_dashboard/domain/models"
)

const sampleCSV = `Employee_ID,Age,Gender,Job_Role,Industry,Years_of_Experience,Work_Location,Hours_Worked_Per_Week,Work_Life_Balance_Rating,Stress_Level,Mental_Health_Condition,Sleep_Quality,Physical_Activity,Region
EMP0001,32,Non-binary,HR,Healthcare,13,Hybrid,47,2,Medium,Depression,Good,Weekly,Europe
EMP0002,40,Female,Data Scientist,IT,3,Remote,52,1,Medium,Anxiety,Good,Weekly,Asia
EMP0003,59,Non-binary,Software Engineer,Education,22,Hybrid,46,5,Medium,Anxiety,Poor,None,North America
EMP0004,27,Male,Software Engineer,Finance,20,Onsite,32,4,High,Depression,Poor,None,Europe
`

func TestReadCSV(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Len())

	min, max := ds.AgeDomain()
	assert.Equal(t, 27, min)
	assert.Equal(t, 59, max)

	assert.Equal(t, []string{"Non-binary", "Female", "Male"}, ds.Distinct(models.ColumnGender))
	assert.Equal(t, []string{"Europe", "Asia", "North America"}, ds.Distinct(models.ColumnRegion))
	assert.Equal(t, []string{"Weekly", "None"}, ds.Distinct(models.ColumnPhysicalActivity))

	var first models.Record
	ds.Each(func(r models.Record) bool {
		first = r
		return false
	})
	assert.Equal(t, models.Record{
		Age:                   32,
		Gender:                "Non-binary",
		StressLevel:           "Medium",
		WorkLocation:          "Hybrid",
		Industry:              "Healthcare",
		Region:                "Europe",
		JobRole:               "HR",
		HoursWorkedPerWeek:    47,
		WorkLifeBalanceRating: "2",
		MentalHealthCondition: "Depression",
		SleepQuality:          "Good",
		PhysicalActivity:      "Weekly",
	}, first)
}

func TestReadCSVHeaderVariants(t *testing.T) {
	data := "\ufeffage,GENDER,Stress Level,Work-Location,industry,region,Job Role,Hours Worked Per Week,Work Life Balance Rating,Mental Health Condition,Sleep Quality,Physical Activity\n" +
		"33.0,Female,Low,Remote,IT,Asia,HR,40.5,3,None,Average,Daily\n"

	ds, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	ds.Each(func(r models.Record) bool {
		assert.Equal(t, 33, r.Age)
		assert.Equal(t, 40.5, r.HoursWorkedPerWeek)
		assert.Equal(t, "Remote", r.WorkLocation)
		return true
	})
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "empty input",
			input: "",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoRecords)
			},
		},
		{
			name:  "header only",
			input: strings.SplitN(sampleCSV, "\n", 2)[0] + "\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoRecords)
			},
		},
		{
			name:  "missing columns",
			input: "Age,Gender,Hours_Worked_Per_Week\n30,Male,40\n",
			check: func(t *testing.T, err error) {
				var missing *MissingColumnsError
				require.True(t, errors.As(err, &missing))
				assert.Contains(t, missing.Columns, models.ColumnSleepQuality)
				assert.NotContains(t, missing.Columns, models.ColumnAge)
				assert.Len(t, missing.Columns, 9)
			},
		},
		{
			name:  "fractional age",
			input: strings.Replace(sampleCSV, "EMP0002,40,", "EMP0002,40.5,", 1),
			check: func(t *testing.T, err error) {
				var parseErr *ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, models.ColumnAge, parseErr.Column)
				assert.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:  "bad hours",
			input: strings.Replace(sampleCSV, "Onsite,32,", "Onsite,many,", 1),
			check: func(t *testing.T, err error) {
				var parseErr *ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, models.ColumnHoursWorkedPerWeek, parseErr.Column)
				assert.Equal(t, "many", parseErr.Value)
			},
		},
		{
			name:  "non-finite hours",
			input: strings.Replace(sampleCSV, "Onsite,32,", "Onsite,NaN,", 1),
			check: func(t *testing.T, err error) {
				var parseErr *ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, models.ColumnHoursWorkedPerWeek, parseErr.Column)
				assert.Equal(t, "NaN", parseErr.Value)
			},
		},
		{
			name:  "infinite hours",
			input: strings.Replace(sampleCSV, "Onsite,32,", "Onsite,+Inf,", 1),
			check: func(t *testing.T, err error) {
				var parseErr *ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, models.ColumnHoursWorkedPerWeek, parseErr.Column)
			},
		},
		{
			name:  "infinite age",
			input: strings.Replace(sampleCSV, "EMP0002,40,", "EMP0002,Inf,", 1),
			check: func(t *testing.T, err error) {
				var parseErr *ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, models.ColumnAge, parseErr.Column)
			},
		},
		{
			name:  "short row",
			input: strings.SplitN(sampleCSV, "\n", 2)[0] + "\nEMP0009,30,Male\n",
			check: func(t *testing.T, err error) {
				var parseErr *ParseError
				assert.True(t, errors.As(err, &parseErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestNewCopiesRecords(t *testing.T) {
	records := []models.Record{{Age: 20, Gender: "Male"}, {Age: 30, Gender: "Female"}}
	ds := New(records)
	records[0].Gender = "changed"

	assert.Equal(t, []string{"Male", "Female"}, ds.Distinct(models.ColumnGender))

	distinct := ds.Distinct(models.ColumnGender)
	distinct[0] = "changed"
	assert.Equal(t, []string{"Male", "Female"}, ds.Distinct(models.ColumnGender))
}

func TestNewEmpty(t *testing.T) {
	ds := New(nil)
	assert.Equal(t, 0, ds.Len())
	min, max := ds.AgeDomain()
	assert.Equal(t, 0, min)
	assert.Equal(t, 0, max)
	assert.Empty(t, ds.Distinct(models.ColumnGender))
}

func TestLoadFileCompressed(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(plain, []byte(sampleCSV), 0644))

	gz := filepath.Join(dir, "data.csv.gz")
	writeWith(t, gz, func(f *os.File) {
		w := gzip.NewWriter(f)
		_, err := w.Write([]byte(sampleCSV))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	})

	lz := filepath.Join(dir, "data.csv.lz4")
	writeWith(t, lz, func(f *os.File) {
		w := lz4.NewWriter(f)
		_, err := w.Write([]byte(sampleCSV))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	})

	zp := filepath.Join(dir, "data.zip")
	writeWith(t, zp, func(f *os.File) {
		w := zip.NewWriter(f)
		readme, err := w.Create("README.txt")
		require.NoError(t, err)
		_, err = readme.Write([]byte("survey export"))
		require.NoError(t, err)
		data, err := w.Create("export/cleaned_df.csv")
		require.NoError(t, err)
		_, err = data.Write([]byte(sampleCSV))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	})

	for _, path := range []string{plain, gz, lz, zp} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			ds, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, 4, ds.Len())
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenEmptyZip(t *testing.T) {
	zp := filepath.Join(t.TempDir(), "empty.zip")
	writeWith(t, zp, func(f *os.File) {
		require.NoError(t, zip.NewWriter(f).Close())
	})

	_, err := Open(zp)
	assert.Error(t, err)
}

func TestLoadFromDB(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	ds, err := LoadFromDB(db, "cleaned_df")
	require.NoError(t, err)
	assert.Greater(t, ds.Len(), 0)
}

func writeWith(t *testing.T, path string, fill func(f *os.File)) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	fill(f)
	require.NoError(t, f.Close())
}

func TestNormalizeRecords(t *testing.T) {
	records := []models.Record{
		{Age: 30, Gender: " Female ", Region: "Asia\t", Industry: "IT", StressLevel: " High", WorkLocation: "Remote ",
			JobRole: " HR", HoursWorkedPerWeek: 40, WorkLifeBalanceRating: "3 ", MentalHealthCondition: " None",
			SleepQuality: "Good\r", PhysicalActivity: " Daily "},
	}
	require.NoError(t, normalizeRecords(records))

	ds := New(records)
	for _, col := range models.FilterColumns {
		for _, v := range ds.Distinct(col) {
			assert.Equal(t, strings.TrimSpace(v), v, col)
		}
	}
	assert.Equal(t, "Female", records[0].Gender)
	assert.Equal(t, "Daily", records[0].PhysicalActivity)
	assert.Equal(t, "3", records[0].WorkLifeBalanceRating)
	assert.Equal(t, "Good", records[0].SleepQuality)
	assert.Equal(t, 40.0, records[0].HoursWorkedPerWeek)

	for _, hours := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		bad := []models.Record{{Age: 30, HoursWorkedPerWeek: 40}, {Age: 31, HoursWorkedPerWeek: hours}}
		var parseErr *ParseError
		require.True(t, errors.As(normalizeRecords(bad), &parseErr))
		assert.Equal(t, 2, parseErr.Line)
		assert.Equal(t, models.ColumnHoursWorkedPerWeek, parseErr.Column)
	}
}
