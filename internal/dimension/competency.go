package dimension

import (
	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

type CompetencyRow struct {
	SK   int64
	Name string
}

type CompetencyDim struct {
	Rows   []CompetencyRow
	byName map[string]int64
}

// BuildCompetency keeps one row per competency name. Rows without a name
// contribute nothing. Skipped when the file has no name column.
func BuildCompetency(competencies source.Table[source.Competency], logger *zap.Logger) CompetencyDim {
	dim := CompetencyDim{byName: make(map[string]int64)}
	if !competencies.Columns.Has(source.ColCompetencyName) {
		logger.Warn("dim_competencia skipped: competencias has no NOMBRECOMPETENCIA column")
		return dim
	}
	for _, c := range competencies.Rows {
		if c.Name == nil {
			continue
		}
		if _, dup := dim.byName[*c.Name]; dup {
			continue
		}
		row := CompetencyRow{SK: int64(len(dim.Rows) + 1), Name: *c.Name}
		dim.Rows = append(dim.Rows, row)
		dim.byName[row.Name] = row.SK
	}
	return dim
}

func (d CompetencyDim) SK(name string) (int64, bool) {
	sk, ok := d.byName[name]
	return sk, ok
}

func (d CompetencyDim) Empty() bool { return len(d.Rows) == 0 }

func (d CompetencyDim) TableName() string { return schema.DimCompetencia }

func (d CompetencyDim) ColumnNames() []string {
	desc, _ := schema.Describe(schema.DimCompetencia)
	return desc.Columns
}

func (d CompetencyDim) RowValues() [][]any {
	out := make([][]any, 0, len(d.Rows))
	for _, r := range d.Rows {
		out = append(out, []any{r.SK, r.Name})
	}
	return out
}
