package dimension

import (
	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

// Source tags for location rows.
const (
	locationFromApplicant = "postulante"
	locationFromPosting   = "vacante"
)

type LocationRow struct {
	SK       int64
	Region   string
	Province string
	District string
	Geocode  string
	Source   string
}

type LocationDim struct {
	Rows     []LocationRow
	byGeocode map[string]int64
}

var locationColumns = []string{source.ColRegion, source.ColProvince, source.ColDistrict, source.ColGeocode}

// BuildLocation unions location tuples from the applicant and posting
// tables (in that order), deduplicates on geocode keeping the first
// occurrence, and replaces missing descriptive fields with the sentinel.
// A source table only contributes if its file carried all four location
// columns. If neither does, the dimension is skipped.
func BuildLocation(applicants source.Table[source.Applicant], postings source.Table[source.Posting], logger *zap.Logger) LocationDim {
	dim := LocationDim{byGeocode: make(map[string]int64)}
	seen := make(map[string]struct{})

	add := func(region, province, district, geocode *string, from string) {
		// Geocode-less tuples collapse into one sentinel row, never joinable.
		key := ""
		if geocode != nil {
			key = *geocode
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		row := LocationRow{
			SK:       int64(len(dim.Rows) + 1),
			Region:   orSentinel(region),
			Province: orSentinel(province),
			District: orSentinel(district),
			Geocode:  key,
			Source:   from,
		}
		if key == "" {
			row.Geocode = source.SentinelUnspecified
		} else {
			dim.byGeocode[key] = row.SK
		}
		dim.Rows = append(dim.Rows, row)
	}

	contributed := false
	if applicants.Columns.HasAll(locationColumns...) {
		contributed = true
		for _, a := range applicants.Rows {
			add(a.Region, a.Province, a.District, a.Geocode, locationFromApplicant)
		}
	}
	if postings.Columns.HasAll(locationColumns...) {
		contributed = true
		for _, p := range postings.Rows {
			add(p.Region, p.Province, p.District, p.Geocode, locationFromPosting)
		}
	}

	if !contributed {
		logger.Warn("dim_ubicacion skipped: no source carries the location columns")
	}
	return dim
}

// SK resolves a geocode to its surrogate key. Empty geocodes never
// resolve, matching the join semantics of a null key.
func (d LocationDim) SK(geocode string) (int64, bool) {
	if geocode == "" {
		return 0, false
	}
	sk, ok := d.byGeocode[geocode]
	return sk, ok
}

func (d LocationDim) Empty() bool { return len(d.Rows) == 0 }

func (d LocationDim) TableName() string { return schema.DimUbicacion }

func (d LocationDim) ColumnNames() []string {
	desc, _ := schema.Describe(schema.DimUbicacion)
	return desc.Columns
}

func (d LocationDim) RowValues() [][]any {
	out := make([][]any, 0, len(d.Rows))
	for _, r := range d.Rows {
		out = append(out, []any{r.SK, r.Region, r.Province, r.District, r.Geocode, r.Source})
	}
	return out
}

func orSentinel(s *string) string {
	if s == nil {
		return source.SentinelUnspecified
	}
	return *s
}
