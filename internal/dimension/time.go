// Package dimension builds the eight dimension tables. Each builder
// deduplicates a natural-key set from one or more source tables, assigns
// dense 1-based surrogate keys, and fills missing descriptive attributes
// with sentinels. Dimension rows use value fields only, so a built
// dimension can never carry a null attribute. Every builder also returns
// a natural-key index used later for fact resolution.
package dimension

import (
	"sort"
	"time"

	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

var monthNames = map[time.Month]string{
	time.January: "Enero", time.February: "Febrero", time.March: "Marzo",
	time.April: "Abril", time.May: "Mayo", time.June: "Junio",
	time.July: "Julio", time.August: "Agosto", time.September: "Septiembre",
	time.October: "Octubre", time.November: "Noviembre", time.December: "Diciembre",
}

var dayNames = map[int]string{
	1: "Lunes", 2: "Martes", 3: "Miércoles", 4: "Jueves",
	5: "Viernes", 6: "Sábado", 7: "Domingo",
}

type TimeRow struct {
	SK        int64
	Date      time.Time
	Year      int
	Month     int
	Day       int
	Quarter   int
	Semester  int
	Weekday   int // ISO: 1=Monday .. 7=Sunday
	MonthName string
	DayName   string
	Weekend   bool
}

// TimeDim is the calendar dimension. Unlike every other dimension its
// surrogate keys follow sorted date order, so the earliest date always
// holds SK 1.
type TimeDim struct {
	Rows   []TimeRow
	byDate map[time.Time]int64
}

// BuildTime collects every date across the posting and education tables,
// truncates to calendar days, deduplicates, and sorts ascending.
func BuildTime(postings source.Table[source.Posting], education source.Table[source.Education]) TimeDim {
	seen := make(map[time.Time]struct{})
	collect := func(t *time.Time) {
		if t != nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			seen[day] = struct{}{}
		}
	}
	for _, p := range postings.Rows {
		collect(p.StartDate)
		collect(p.EndDate)
		collect(p.CreatedDate)
	}
	for _, e := range education.Rows {
		collect(e.StartDate)
		collect(e.EndDate)
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	dim := TimeDim{byDate: make(map[time.Time]int64, len(dates))}
	for i, d := range dates {
		iso := (int(d.Weekday())+6)%7 + 1
		quarter := (int(d.Month())-1)/3 + 1
		semester := 1
		if quarter > 2 {
			semester = 2
		}
		row := TimeRow{
			SK:        int64(i + 1),
			Date:      d,
			Year:      d.Year(),
			Month:     int(d.Month()),
			Day:       d.Day(),
			Quarter:   quarter,
			Semester:  semester,
			Weekday:   iso,
			MonthName: monthNames[d.Month()],
			DayName:   dayNames[iso],
			Weekend:   iso >= 6,
		}
		dim.Rows = append(dim.Rows, row)
		dim.byDate[d] = row.SK
	}
	return dim
}

// SK resolves a calendar day to its surrogate key.
func (d TimeDim) SK(t time.Time) (int64, bool) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	sk, ok := d.byDate[day]
	return sk, ok
}

// EarliestSK returns the surrogate key of the earliest date, used as the
// placeholder registration/publication date when no real date resolves.
func (d TimeDim) EarliestSK() (int64, bool) {
	if len(d.Rows) == 0 {
		return 0, false
	}
	return d.Rows[0].SK, true
}

func (d TimeDim) Empty() bool { return len(d.Rows) == 0 }

func (d TimeDim) TableName() string { return schema.DimTiempo }

func (d TimeDim) ColumnNames() []string {
	desc, _ := schema.Describe(schema.DimTiempo)
	return desc.Columns
}

func (d TimeDim) RowValues() [][]any {
	out := make([][]any, 0, len(d.Rows))
	for _, r := range d.Rows {
		out = append(out, []any{
			r.SK, r.Date, r.Year, r.Month, r.Day, r.Quarter, r.Semester,
			r.Weekday, r.MonthName, r.DayName, r.Weekend,
		})
	}
	return out
}
