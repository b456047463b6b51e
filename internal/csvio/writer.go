package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mariana/empleo-dw/internal/schema"
)

// WriteTables writes each table to dir/<name>.csv with a header row and no
// index column. If any write fails, files written by this call are removed
// so a failed run never leaves partial output behind.
func WriteTables(dir string, tables []schema.Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	var written []string
	for _, table := range tables {
		path := filepath.Join(dir, table.TableName()+".csv")
		if err := writeTable(path, table); err != nil {
			for _, p := range written {
				_ = os.Remove(p)
			}
			_ = os.Remove(path)
			return fmt.Errorf("write %s: %w", table.TableName(), err)
		}
		written = append(written, path)
	}
	return nil
}

func writeTable(path string, table schema.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.ColumnNames()); err != nil {
		return err
	}
	width := len(table.ColumnNames())
	for _, row := range table.RowValues() {
		if len(row) != width {
			return fmt.Errorf("row has %d values, expected %d", len(row), width)
		}
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = FormatValue(v)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// FormatValue renders one cell. Nil (an unresolved left-join key) becomes
// an empty cell; dates are calendar days.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case *int64:
		if val == nil {
			return ""
		}
		return strconv.FormatInt(*val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", val)
	}
}
