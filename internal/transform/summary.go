package transform

import (
	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/schema"
)

// TableCount is one table's row count in the summary.
type TableCount struct {
	Name string
	Tier schema.Tier
	Rows int
}

// Summary reports what a transform produced.
type Summary struct {
	Tables          []TableCount
	DimensionTotal  int
	FactTotal       int
	OrphanCount     int
	TotalReferenced int
	OrphanPercent   float64
}

// Summarize counts every output table and folds in reconciliation stats.
func Summarize(r Result) Summary {
	s := Summary{
		OrphanCount:     r.Stats.OrphanCount,
		TotalReferenced: r.Stats.TotalReferenced,
		OrphanPercent:   r.Stats.Percent,
	}
	for _, t := range r.Tables() {
		desc, _ := schema.Describe(t.TableName())
		rows := len(t.RowValues())
		s.Tables = append(s.Tables, TableCount{Name: t.TableName(), Tier: desc.Tier, Rows: rows})
		if desc.Tier == schema.TierDimension {
			s.DimensionTotal += rows
		} else {
			s.FactTotal += rows
		}
	}
	return s
}

// Log writes the summary through the pipeline logger.
func (s Summary) Log(logger *zap.Logger) {
	for _, t := range s.Tables {
		logger.Info("table built",
			zap.String("table", t.Name),
			zap.String("tier", string(t.Tier)),
			zap.Int("rows", t.Rows))
	}
	logger.Info("transform complete",
		zap.Int("dimension_rows", s.DimensionTotal),
		zap.Int("fact_rows", s.FactTotal),
		zap.Int("orphans_repaired", s.OrphanCount),
		zap.Int("postings_referenced", s.TotalReferenced),
		zap.Float64("orphan_percent", s.OrphanPercent))
}
