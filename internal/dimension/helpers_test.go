package dimension

import (
	"time"

	"github.com/mariana/empleo-dw/internal/source"
)

func strp(s string) *string { return &s }

func datep(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func tableOf[T any](columns []string, rows ...T) source.Table[T] {
	return source.Table[T]{Rows: rows, Columns: source.NewColumnSet(columns)}
}

var fullLocationColumns = []string{
	source.ColRegion, source.ColProvince, source.ColDistrict, source.ColGeocode,
}
