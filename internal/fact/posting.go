package fact

import (
	"github.com/mariana/empleo-dw/internal/dimension"
	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

type PostingFactRow struct {
	PostingSK   int64
	LocationSK  *int64
	CompanySK   *int64
	PublishedSK *int64
	Active      bool
}

type PostingFacts struct {
	Rows []PostingFactRow
}

// BuildPostingFacts joins posting rows to dim_vacante (inner, mandatory)
// and to location/company/time with left semantics. The publication key
// falls back to the earliest time key when the creation date does not
// resolve. The active flag defaults to true when the source never carried
// the column. After joining, rows that still hold a null key against a
// populated dimension are dropped; when a dimension was skipped entirely
// its key stays null rather than emptying the whole table.
func BuildPostingFacts(postings source.Table[source.Posting], dimPosting dimension.PostingDim, dimLocation dimension.LocationDim, dimCompany dimension.CompanyDim, dimTime dimension.TimeDim) PostingFacts {
	activeColumn := postings.Columns.Has(source.ColActive)

	var earliest *int64
	if sk, ok := dimTime.EarliestSK(); ok {
		earliest = &sk
	}

	type key struct {
		posting   int64
		location  int64
		hasLoc    bool
		company   int64
		hasComp   bool
		published int64
		hasPub    bool
		active    bool
	}
	seen := make(map[key]struct{})

	var facts PostingFacts
	for _, p := range postings.Rows {
		postSK, ok := dimPosting.SK(p.ID)
		if !ok {
			continue
		}

		var locSK *int64
		if p.Geocode != nil {
			if sk, ok := dimLocation.SK(*p.Geocode); ok {
				locSK = &sk
			}
		}
		if locSK == nil && !dimLocation.Empty() {
			continue
		}

		var compSK *int64
		if p.CompanyID != nil {
			if sk, ok := dimCompany.SK(*p.CompanyID); ok {
				compSK = &sk
			}
		}
		if compSK == nil && !dimCompany.Empty() {
			continue
		}

		pubSK := earliest
		if p.CreatedDate != nil {
			if sk, ok := dimTime.SK(*p.CreatedDate); ok {
				pubSK = &sk
			}
		}

		active := true
		if activeColumn {
			if p.Active == nil {
				continue
			}
			active = *p.Active
		}

		k := key{posting: postSK, active: active}
		if locSK != nil {
			k.location, k.hasLoc = *locSK, true
		}
		if compSK != nil {
			k.company, k.hasComp = *compSK, true
		}
		if pubSK != nil {
			k.published, k.hasPub = *pubSK, true
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		facts.Rows = append(facts.Rows, PostingFactRow{
			PostingSK:   postSK,
			LocationSK:  locSK,
			CompanySK:   compSK,
			PublishedSK: pubSK,
			Active:      active,
		})
	}
	return facts
}

func (f PostingFacts) Empty() bool { return len(f.Rows) == 0 }

func (f PostingFacts) TableName() string { return schema.HechosVacante }

func (f PostingFacts) ColumnNames() []string {
	desc, _ := schema.Describe(schema.HechosVacante)
	return desc.Columns
}

func (f PostingFacts) RowValues() [][]any {
	out := make([][]any, 0, len(f.Rows))
	for _, r := range f.Rows {
		out = append(out, []any{r.PostingSK, r.LocationSK, r.CompanySK, r.PublishedSK, r.Active})
	}
	return out
}
