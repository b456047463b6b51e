package dimension

import (
	"strings"

	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

type PostingRow struct {
	SK               int64
	NaturalID        int64
	Title            string
	Vacancies        int
	Sector           string
	Geocode          string
	NoExperience     bool
	ExperienceMonths float64
}

type PostingDim struct {
	Rows []PostingRow
	byID map[int64]int64
}

// BuildPosting keeps one row per posting ID, built after reconciliation so
// placeholder postings become ordinary rows here. Descriptive attributes
// come from the first row carrying each ID; missing experience
// requirements default to zero and the no-experience flag is canonicalized
// from its mixed source encodings.
func BuildPosting(postings source.Table[source.Posting]) PostingDim {
	dim := PostingDim{byID: make(map[int64]int64)}
	for _, p := range postings.Rows {
		if _, dup := dim.byID[p.ID]; dup {
			continue
		}
		row := PostingRow{
			SK:           int64(len(dim.Rows) + 1),
			NaturalID:    p.ID,
			Title:        orSentinel(p.Title),
			Sector:       orSentinel(p.Sector),
			Geocode:      orSentinel(p.Geocode),
			NoExperience: canonicalFlag(p.NoExperience),
		}
		if p.Vacancies != nil {
			row.Vacancies = *p.Vacancies
		}
		if p.ExperienceMonths != nil {
			row.ExperienceMonths = *p.ExperienceMonths
		}
		dim.Rows = append(dim.Rows, row)
		dim.byID[p.ID] = row.SK
	}
	return dim
}

// canonicalFlag maps the truthy/falsy encodings seen upstream to a bool.
// Anything unmapped, including a missing column, is false.
func canonicalFlag(raw *string) bool {
	if raw == nil {
		return false
	}
	switch strings.ToUpper(strings.TrimSpace(*raw)) {
	case "SI", "S", "1", "TRUE":
		return true
	}
	return false
}

func (d PostingDim) SK(postingID int64) (int64, bool) {
	sk, ok := d.byID[postingID]
	return sk, ok
}

func (d PostingDim) Empty() bool { return len(d.Rows) == 0 }

func (d PostingDim) TableName() string { return schema.DimVacante }

func (d PostingDim) ColumnNames() []string {
	desc, _ := schema.Describe(schema.DimVacante)
	return desc.Columns
}

func (d PostingDim) RowValues() [][]any {
	out := make([][]any, 0, len(d.Rows))
	for _, r := range d.Rows {
		out = append(out, []any{
			r.SK, r.NaturalID, r.Title, r.Vacancies, r.Sector, r.Geocode,
			r.NoExperience, r.ExperienceMonths,
		})
	}
	return out
}
