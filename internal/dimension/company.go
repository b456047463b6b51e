package dimension

import (
	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

type CompanyRow struct {
	SK        int64
	NaturalID int64
}

type CompanyDim struct {
	Rows []CompanyRow
	byID map[int64]int64
}

// BuildCompany keeps one row per company ID found in the posting table.
// Skipped when the posting file has no company column.
func BuildCompany(postings source.Table[source.Posting], logger *zap.Logger) CompanyDim {
	dim := CompanyDim{byID: make(map[int64]int64)}
	if !postings.Columns.Has(source.ColCompanyID) {
		logger.Warn("dim_empresa skipped: vacantes has no IDEMPRESA column")
		return dim
	}
	for _, p := range postings.Rows {
		if p.CompanyID == nil {
			continue
		}
		if _, dup := dim.byID[*p.CompanyID]; dup {
			continue
		}
		row := CompanyRow{SK: int64(len(dim.Rows) + 1), NaturalID: *p.CompanyID}
		dim.Rows = append(dim.Rows, row)
		dim.byID[row.NaturalID] = row.SK
	}
	return dim
}

func (d CompanyDim) SK(companyID int64) (int64, bool) {
	sk, ok := d.byID[companyID]
	return sk, ok
}

func (d CompanyDim) Empty() bool { return len(d.Rows) == 0 }

func (d CompanyDim) TableName() string { return schema.DimEmpresa }

func (d CompanyDim) ColumnNames() []string {
	desc, _ := schema.Describe(schema.DimEmpresa)
	return desc.Columns
}

func (d CompanyDim) RowValues() [][]any {
	out := make([][]any, 0, len(d.Rows))
	for _, r := range d.Rows {
		out = append(out, []any{r.SK, r.NaturalID})
	}
	return out
}
