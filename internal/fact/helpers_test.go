package fact

import (
	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/dimension"
	"github.com/mariana/empleo-dw/internal/source"
)

func strp(s string) *string { return &s }

func i64p(v int64) *int64 { return &v }

func tableOf[T any](columns []string, rows ...T) source.Table[T] {
	return source.Table[T]{Rows: rows, Columns: source.NewColumnSet(columns)}
}

var locationColumns = []string{
	source.ColRegion, source.ColProvince, source.ColDistrict, source.ColGeocode,
}

func locationDimOf(geocodes ...string) dimension.LocationDim {
	var rows []source.Applicant
	for i, g := range geocodes {
		rows = append(rows, source.Applicant{ID: string(rune('A' + i)), Geocode: strp(g)})
	}
	return dimension.BuildLocation(tableOf(locationColumns, rows...), source.Table[source.Posting]{}, zap.NewNop())
}
