package fact

import (
	"github.com/mariana/empleo-dw/internal/dimension"
	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

type CompetencyFactRow struct {
	PostingSK    int64
	CompetencySK int64
}

type CompetencyFacts struct {
	Rows []CompetencyFactRow
}

// BuildCompetencyFacts builds the posting/competency bridge. Both joins
// are inner: a bridge row must resolve on both sides or it is dropped.
// Thanks to reconciliation the posting side always resolves, placeholder
// postings included.
func BuildCompetencyFacts(competencies source.Table[source.Competency], dimPosting dimension.PostingDim, dimCompetency dimension.CompetencyDim) CompetencyFacts {
	var facts CompetencyFacts
	for _, c := range competencies.Rows {
		postSK, ok := dimPosting.SK(c.PostingID)
		if !ok {
			continue
		}
		if c.Name == nil {
			continue
		}
		compSK, ok := dimCompetency.SK(*c.Name)
		if !ok {
			continue
		}
		facts.Rows = append(facts.Rows, CompetencyFactRow{
			PostingSK:    postSK,
			CompetencySK: compSK,
		})
	}
	return facts
}

func (f CompetencyFacts) Empty() bool { return len(f.Rows) == 0 }

func (f CompetencyFacts) TableName() string { return schema.HechosCompetenciaRequerida }

func (f CompetencyFacts) ColumnNames() []string {
	desc, _ := schema.Describe(schema.HechosCompetenciaRequerida)
	return desc.Columns
}

func (f CompetencyFacts) RowValues() [][]any {
	out := make([][]any, 0, len(f.Rows))
	for _, r := range f.Rows {
		out = append(out, []any{r.PostingSK, r.CompetencySK})
	}
	return out
}
