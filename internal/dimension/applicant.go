package dimension

import (
	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

type ApplicantRow struct {
	SK            int64
	NaturalID     string
	Age           int
	Sex           string
	Geocode       string
	ConadisStatus string
}

type ApplicantDim struct {
	Rows []ApplicantRow
	byID map[string]int64
}

// BuildApplicant keeps the first row per applicant ID in source order.
func BuildApplicant(applicants source.Table[source.Applicant]) ApplicantDim {
	dim := ApplicantDim{byID: make(map[string]int64)}
	for _, a := range applicants.Rows {
		if _, dup := dim.byID[a.ID]; dup {
			continue
		}
		row := ApplicantRow{
			SK:            int64(len(dim.Rows) + 1),
			NaturalID:     a.ID,
			Sex:           orSentinel(a.Sex),
			Geocode:       orSentinel(a.Geocode),
			ConadisStatus: orSentinel(a.ConadisStatus),
		}
		if a.Age != nil {
			row.Age = *a.Age
		}
		dim.Rows = append(dim.Rows, row)
		dim.byID[a.ID] = row.SK
	}
	return dim
}

func (d ApplicantDim) SK(naturalID string) (int64, bool) {
	sk, ok := d.byID[naturalID]
	return sk, ok
}

func (d ApplicantDim) Empty() bool { return len(d.Rows) == 0 }

func (d ApplicantDim) TableName() string { return schema.DimPostulante }

func (d ApplicantDim) ColumnNames() []string {
	desc, _ := schema.Describe(schema.DimPostulante)
	return desc.Columns
}

func (d ApplicantDim) RowValues() [][]any {
	out := make([][]any, 0, len(d.Rows))
	for _, r := range d.Rows {
		out = append(out, []any{r.SK, r.NaturalID, r.Age, r.Sex, r.Geocode, r.ConadisStatus})
	}
	return out
}
