package warehouse

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mariana/empleo-dw/internal/csvio"
	"github.com/mariana/empleo-dw/internal/etlerrors"
	"github.com/mariana/empleo-dw/internal/schema"
)

// colKind is the parse type of one warehouse column when reading a
// transformed CSV back for loading.
type colKind int

const (
	kindString colKind = iota
	kindInt
	kindInt64
	kindNullInt64
	kindFloat
	kindBool
	kindDate
)

// columnKinds maps every registry column to its parse type. Surrogate keys
// are int64; fact foreign keys filled by left joins are nullable.
var columnKinds = map[string][]colKind{
	schema.DimTiempo: {
		kindInt64, kindDate, kindInt, kindInt, kindInt, kindInt, kindInt,
		kindInt, kindString, kindString, kindBool,
	},
	schema.DimUbicacion:  {kindInt64, kindString, kindString, kindString, kindString, kindString},
	schema.DimPostulante: {kindInt64, kindString, kindInt, kindString, kindString, kindString},
	schema.DimCarrera:    {kindInt64, kindString, kindString},
	schema.DimInstitucion: {kindInt64, kindString},
	schema.DimVacante: {
		kindInt64, kindInt64, kindString, kindInt, kindString, kindString,
		kindBool, kindFloat,
	},
	schema.DimEmpresa:    {kindInt64, kindInt64},
	schema.DimCompetencia: {kindInt64, kindString},

	schema.HechosPostulante:           {kindInt64, kindNullInt64, kindNullInt64},
	schema.HechosFormacion:            {kindInt64, kindNullInt64, kindNullInt64},
	schema.HechosExperiencia:          {kindInt64},
	schema.HechosVacante:              {kindInt64, kindNullInt64, kindNullInt64, kindNullInt64, kindBool},
	schema.HechosCompetenciaRequerida: {kindInt64, kindInt64},
}

// csvTable is a transformed table read back from disk.
type csvTable struct {
	name    string
	columns []string
	rows    [][]any
}

func (t csvTable) TableName() string     { return t.name }
func (t csvTable) ColumnNames() []string { return t.columns }
func (t csvTable) RowValues() [][]any    { return t.rows }

// ReadTables reads every transformed table CSV from dir, in registry
// order, parsing cells back to their warehouse types. All 13 files must be
// present with their exact registry columns.
func ReadTables(dir string) ([]schema.Table, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, etlerrors.MissingInput(fmt.Sprintf("transformed directory %s not found", dir), err)
	}

	var tables []schema.Table
	for _, desc := range schema.LoadOrder() {
		path := filepath.Join(dir, desc.Name+".csv")
		f, err := csvio.ReadFile(path)
		if err != nil {
			return nil, etlerrors.MissingInput(fmt.Sprintf("transformed table %s", desc.Name), err)
		}
		for _, col := range desc.Columns {
			if !f.HasColumn(col) {
				return nil, etlerrors.MissingColumn(fmt.Sprintf("table %s lacks column %s", desc.Name, col), nil)
			}
		}

		kinds := columnKinds[desc.Name]
		t := csvTable{name: desc.Name, columns: desc.Columns}
		for i, row := range f.Rows {
			values := make([]any, len(desc.Columns))
			for j, col := range desc.Columns {
				v, err := parseCell(row[col], kinds[j])
				if err != nil {
					return nil, etlerrors.Internal(
						fmt.Sprintf("table %s row %d column %s: %v", desc.Name, i+1, col, err), nil)
				}
				values[j] = v
			}
			t.rows = append(t.rows, values)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func parseCell(s string, kind colKind) (any, error) {
	switch kind {
	case kindString:
		return s, nil
	case kindInt:
		n, err := strconv.Atoi(s)
		return n, err
	case kindInt64:
		n, err := strconv.ParseInt(s, 10, 64)
		return n, err
	case kindNullInt64:
		if s == "" {
			return (*int64)(nil), nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, err
		}
		return &n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(s, 64)
		return f, err
	case kindBool:
		b, err := strconv.ParseBool(s)
		return b, err
	case kindDate:
		return time.Parse("2006-01-02", s)
	default:
		return nil, fmt.Errorf("unknown column kind %d", kind)
	}
}
