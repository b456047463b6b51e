package dimension

import (
	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

// Career and institution names were normalized during upstream cleaning,
// so these two builders only deduplicate and assign keys. Rows without a
// name are excluded entities, not sentinel rows.

type CareerRow struct {
	SK     int64
	Name   string
	Degree string
}

type CareerDim struct {
	Rows   []CareerRow
	byName map[string]int64
}

// BuildCareer keeps one row per career name, carrying the first degree
// observed for that career in source order.
func BuildCareer(education source.Table[source.Education], logger *zap.Logger) CareerDim {
	dim := CareerDim{byName: make(map[string]int64)}
	if !education.Columns.Has(source.ColCareer) {
		logger.Warn("dim_carrera skipped: educacion has no CARRERA column")
		return dim
	}
	for _, e := range education.Rows {
		if e.Career == nil {
			continue
		}
		if _, dup := dim.byName[*e.Career]; dup {
			continue
		}
		row := CareerRow{
			SK:     int64(len(dim.Rows) + 1),
			Name:   *e.Career,
			Degree: orSentinel(e.Degree),
		}
		dim.Rows = append(dim.Rows, row)
		dim.byName[row.Name] = row.SK
	}
	return dim
}

func (d CareerDim) SK(name string) (int64, bool) {
	sk, ok := d.byName[name]
	return sk, ok
}

func (d CareerDim) Empty() bool { return len(d.Rows) == 0 }

func (d CareerDim) TableName() string { return schema.DimCarrera }

func (d CareerDim) ColumnNames() []string {
	desc, _ := schema.Describe(schema.DimCarrera)
	return desc.Columns
}

func (d CareerDim) RowValues() [][]any {
	out := make([][]any, 0, len(d.Rows))
	for _, r := range d.Rows {
		out = append(out, []any{r.SK, r.Name, r.Degree})
	}
	return out
}

type InstitutionRow struct {
	SK   int64
	Name string
}

type InstitutionDim struct {
	Rows   []InstitutionRow
	byName map[string]int64
}

func BuildInstitution(education source.Table[source.Education], logger *zap.Logger) InstitutionDim {
	dim := InstitutionDim{byName: make(map[string]int64)}
	if !education.Columns.Has(source.ColInstitution) {
		logger.Warn("dim_institucion skipped: educacion has no INSTITUCION column")
		return dim
	}
	for _, e := range education.Rows {
		if e.Institution == nil {
			continue
		}
		if _, dup := dim.byName[*e.Institution]; dup {
			continue
		}
		row := InstitutionRow{SK: int64(len(dim.Rows) + 1), Name: *e.Institution}
		dim.Rows = append(dim.Rows, row)
		dim.byName[row.Name] = row.SK
	}
	return dim
}

func (d InstitutionDim) SK(name string) (int64, bool) {
	sk, ok := d.byName[name]
	return sk, ok
}

func (d InstitutionDim) Empty() bool { return len(d.Rows) == 0 }

func (d InstitutionDim) TableName() string { return schema.DimInstitucion }

func (d InstitutionDim) ColumnNames() []string {
	desc, _ := schema.Describe(schema.DimInstitucion)
	return desc.Columns
}

func (d InstitutionDim) RowValues() [][]any {
	out := make([][]any, 0, len(d.Rows))
	for _, r := range d.Rows {
		out = append(out, []any{r.SK, r.Name})
	}
	return out
}
