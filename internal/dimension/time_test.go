package dimension

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana/empleo-dw/internal/source"
)

func TestBuildTime_SortedDenseKeys(t *testing.T) {
	postings := tableOf([]string{source.ColPostingID},
		source.Posting{ID: 1, CreatedDate: datep(2023, time.September, 10)},
		source.Posting{ID: 2, StartDate: datep(2023, time.January, 5), EndDate: datep(2023, time.March, 1)},
	)
	education := tableOf([]string{source.ColApplicantID},
		source.Education{ApplicantID: "A1", StartDate: datep(2023, time.March, 1)}, // duplicate day
	)

	dim := BuildTime(postings, education)
	require.Len(t, dim.Rows, 3)

	assert.Equal(t, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), dim.Rows[0].Date)
	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), dim.Rows[1].Date)
	assert.Equal(t, time.Date(2023, 9, 10, 0, 0, 0, 0, time.UTC), dim.Rows[2].Date)
	for i, r := range dim.Rows {
		assert.Equal(t, int64(i+1), r.SK, "keys are dense and follow sorted order")
	}

	earliest, ok := dim.EarliestSK()
	require.True(t, ok)
	assert.Equal(t, int64(1), earliest)
}

func TestBuildTime_CalendarAttributes(t *testing.T) {
	// 2023-09-16 is a Saturday in Q3 / second semester.
	postings := tableOf([]string{source.ColPostingID},
		source.Posting{ID: 1, CreatedDate: datep(2023, time.September, 16)},
	)
	dim := BuildTime(postings, source.Table[source.Education]{})

	require.Len(t, dim.Rows, 1)
	r := dim.Rows[0]
	assert.Equal(t, 2023, r.Year)
	assert.Equal(t, 9, r.Month)
	assert.Equal(t, 16, r.Day)
	assert.Equal(t, 3, r.Quarter)
	assert.Equal(t, 2, r.Semester)
	assert.Equal(t, 6, r.Weekday)
	assert.Equal(t, "Septiembre", r.MonthName)
	assert.Equal(t, "Sábado", r.DayName)
	assert.True(t, r.Weekend)
}

func TestBuildTime_WeekdayBoundaries(t *testing.T) {
	postings := tableOf([]string{source.ColPostingID},
		source.Posting{ID: 1, CreatedDate: datep(2023, time.September, 18)}, // Monday
		source.Posting{ID: 2, CreatedDate: datep(2023, time.September, 17)}, // Sunday
	)
	dim := BuildTime(postings, source.Table[source.Education]{})

	require.Len(t, dim.Rows, 2)
	sunday, monday := dim.Rows[0], dim.Rows[1]
	assert.Equal(t, 7, sunday.Weekday)
	assert.Equal(t, "Domingo", sunday.DayName)
	assert.True(t, sunday.Weekend)
	assert.Equal(t, 1, monday.Weekday)
	assert.Equal(t, "Lunes", monday.DayName)
	assert.False(t, monday.Weekend)
}

func TestTimeDim_SKTruncatesToDay(t *testing.T) {
	postings := tableOf([]string{source.ColPostingID},
		source.Posting{ID: 1, CreatedDate: datep(2023, time.June, 1)},
	)
	dim := BuildTime(postings, source.Table[source.Education]{})

	sk, ok := dim.SK(time.Date(2023, 6, 1, 18, 45, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, int64(1), sk)

	_, ok = dim.SK(time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestBuildTime_NoDates(t *testing.T) {
	dim := BuildTime(source.Table[source.Posting]{}, source.Table[source.Education]{})
	assert.True(t, dim.Empty())
	_, ok := dim.EarliestSK()
	assert.False(t, ok)
}
