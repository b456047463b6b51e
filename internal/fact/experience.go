package fact

import (
	"github.com/mariana/empleo-dw/internal/dimension"
	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

type ExperienceFacts struct {
	Rows []int64 // resolved applicant surrogate keys, deduplicated
}

// BuildExperienceFacts is a pure linkage table: one row per applicant that
// has at least one work-experience record. Inner join, key only.
func BuildExperienceFacts(experience source.Table[source.Experience], dimApplicant dimension.ApplicantDim) ExperienceFacts {
	seen := make(map[int64]struct{})
	var facts ExperienceFacts
	for _, e := range experience.Rows {
		sk, ok := dimApplicant.SK(e.ApplicantID)
		if !ok {
			continue
		}
		if _, dup := seen[sk]; dup {
			continue
		}
		seen[sk] = struct{}{}
		facts.Rows = append(facts.Rows, sk)
	}
	return facts
}

func (f ExperienceFacts) Empty() bool { return len(f.Rows) == 0 }

func (f ExperienceFacts) TableName() string { return schema.HechosExperiencia }

func (f ExperienceFacts) ColumnNames() []string {
	desc, _ := schema.Describe(schema.HechosExperiencia)
	return desc.Columns
}

func (f ExperienceFacts) RowValues() [][]any {
	out := make([][]any, 0, len(f.Rows))
	for _, sk := range f.Rows {
		out = append(out, []any{sk})
	}
	return out
}
