// Package fact builds the five fact tables by resolving source rows
// against the dimension indexes. Whether an unresolved key drops the row
// or survives as a null is a per-fact policy, not an error: referential
// gaps are a data-quality signal and the counts surface in the summary.
package fact

import (
	"github.com/mariana/empleo-dw/internal/dimension"
	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

type ApplicantFactRow struct {
	ApplicantSK  int64
	LocationSK   *int64
	RegisteredSK *int64
}

type ApplicantFacts struct {
	Rows []ApplicantFactRow
}

// BuildApplicantFacts emits one row per distinct applicant/location pair.
// The location join is a left join: an applicant with an unknown geocode
// keeps a null location key. Source data has no registration date, so
// every row carries the earliest time key as a fixed placeholder.
func BuildApplicantFacts(applicants source.Table[source.Applicant], dimApplicant dimension.ApplicantDim, dimLocation dimension.LocationDim, dimTime dimension.TimeDim) ApplicantFacts {
	var registered *int64
	if sk, ok := dimTime.EarliestSK(); ok {
		registered = &sk
	}

	type key struct {
		applicant int64
		location  int64
		hasLoc    bool
	}
	seen := make(map[key]struct{})

	var facts ApplicantFacts
	for _, a := range applicants.Rows {
		appSK, ok := dimApplicant.SK(a.ID)
		if !ok {
			continue
		}
		var locSK *int64
		if a.Geocode != nil {
			if sk, ok := dimLocation.SK(*a.Geocode); ok {
				locSK = &sk
			}
		}

		k := key{applicant: appSK}
		if locSK != nil {
			k.location, k.hasLoc = *locSK, true
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		facts.Rows = append(facts.Rows, ApplicantFactRow{
			ApplicantSK:  appSK,
			LocationSK:   locSK,
			RegisteredSK: registered,
		})
	}
	return facts
}

func (f ApplicantFacts) Empty() bool { return len(f.Rows) == 0 }

func (f ApplicantFacts) TableName() string { return schema.HechosPostulante }

func (f ApplicantFacts) ColumnNames() []string {
	desc, _ := schema.Describe(schema.HechosPostulante)
	return desc.Columns
}

func (f ApplicantFacts) RowValues() [][]any {
	out := make([][]any, 0, len(f.Rows))
	for _, r := range f.Rows {
		out = append(out, []any{r.ApplicantSK, r.LocationSK, r.RegisteredSK})
	}
	return out
}
