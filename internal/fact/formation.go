package fact

import (
	"github.com/mariana/empleo-dw/internal/dimension"
	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

type FormationFactRow struct {
	ApplicantSK   int64
	CareerSK      *int64
	InstitutionSK *int64
}

type FormationFacts struct {
	Rows []FormationFactRow
}

// BuildFormationFacts joins education rows to the applicant dimension with
// inner semantics: a formation record without a resolvable applicant is
// meaningless and dropped. Career and institution are left joins because
// those dimensions exclude unnamed entities instead of sentineling them.
func BuildFormationFacts(education source.Table[source.Education], dimApplicant dimension.ApplicantDim, dimCareer dimension.CareerDim, dimInstitution dimension.InstitutionDim) FormationFacts {
	type key struct {
		applicant   int64
		career      int64
		hasCareer   bool
		institution int64
		hasInst     bool
	}
	seen := make(map[key]struct{})

	var facts FormationFacts
	for _, e := range education.Rows {
		appSK, ok := dimApplicant.SK(e.ApplicantID)
		if !ok {
			continue
		}

		var careerSK, instSK *int64
		if e.Career != nil {
			if sk, ok := dimCareer.SK(*e.Career); ok {
				careerSK = &sk
			}
		}
		if e.Institution != nil {
			if sk, ok := dimInstitution.SK(*e.Institution); ok {
				instSK = &sk
			}
		}

		k := key{applicant: appSK}
		if careerSK != nil {
			k.career, k.hasCareer = *careerSK, true
		}
		if instSK != nil {
			k.institution, k.hasInst = *instSK, true
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		facts.Rows = append(facts.Rows, FormationFactRow{
			ApplicantSK:   appSK,
			CareerSK:      careerSK,
			InstitutionSK: instSK,
		})
	}
	return facts
}

func (f FormationFacts) Empty() bool { return len(f.Rows) == 0 }

func (f FormationFacts) TableName() string { return schema.HechosFormacion }

func (f FormationFacts) ColumnNames() []string {
	desc, _ := schema.Describe(schema.HechosFormacion)
	return desc.Columns
}

func (f FormationFacts) RowValues() [][]any {
	out := make([][]any, 0, len(f.Rows))
	for _, r := range f.Rows {
		out = append(out, []any{r.ApplicantSK, r.CareerSK, r.InstitutionSK})
	}
	return out
}
