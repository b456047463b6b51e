// Package warehouse loads the dimensional model into PostgreSQL.
package warehouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/etlerrors"
	"github.com/mariana/empleo-dw/internal/schema"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// Connect establishes a connection pool to the warehouse
func Connect(ctx context.Context, databaseURL string, logger *zap.Logger) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, etlerrors.Unavailable("failed to connect to database", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, etlerrors.Unavailable("failed to ping database", err)
	}

	return &DB{pool: pool, logger: logger}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the warehouse tables and the etl_runs ledger if
// they do not exist. Dimensions are created before facts so FK references
// resolve.
func (db *DB) EnsureSchema(ctx context.Context) error {
	stmts := append([]string{}, ddl...)
	stmts = append(stmts, etlRunsDDL)
	for _, stmt := range stmts {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return etlerrors.Internal("failed to create schema", err)
		}
	}
	return nil
}

// LoadAll replaces the warehouse contents with the given tables inside a
// single transaction: facts truncated first, then dimensions, then every
// table copied in registry order. A row is recorded in etl_runs either way.
func (db *DB) LoadAll(ctx context.Context, tables []schema.Table) (uuid.UUID, error) {
	runID := uuid.New()
	started := time.Now().UTC()

	err := db.loadInTx(ctx, tables)
	status := "completed"
	if err != nil {
		status = "failed"
	}

	total := 0
	for _, t := range tables {
		total += len(t.RowValues())
	}
	if _, recErr := db.pool.Exec(ctx,
		`INSERT INTO etl_runs (id, started_at, completed_at, row_count, status)
		 VALUES ($1, $2, NOW(), $3, $4)`,
		runID, started, total, status,
	); recErr != nil && err == nil {
		err = etlerrors.Internal("failed to record run", recErr)
	}

	if err != nil {
		return runID, err
	}
	db.logger.Info("warehouse load complete",
		zap.String("run_id", runID.String()),
		zap.Int("rows", total))
	return runID, nil
}

func (db *DB) loadInTx(ctx context.Context, tables []schema.Table) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return etlerrors.Unavailable("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	// Truncate in reverse registry order so facts go before the
	// dimensions they reference.
	order := schema.LoadOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+order[i].Name); err != nil {
			return etlerrors.Internal(fmt.Sprintf("failed to truncate %s", order[i].Name), err)
		}
	}

	for _, t := range tables {
		desc, ok := schema.Describe(t.TableName())
		if !ok {
			return etlerrors.Internal(fmt.Sprintf("unknown table %s", t.TableName()), nil)
		}
		rows := t.RowValues()
		n, err := tx.CopyFrom(ctx,
			pgx.Identifier{desc.Name},
			desc.Columns,
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return etlerrors.Internal(fmt.Sprintf("failed to copy into %s", desc.Name), err)
		}
		if int(n) != len(rows) {
			return etlerrors.Internal(fmt.Sprintf("short copy into %s: %d of %d rows", desc.Name, n, len(rows)), nil)
		}
		db.logger.Debug("table loaded", zap.String("table", desc.Name), zap.Int64("rows", n))
	}

	return tx.Commit(ctx)
}

// ValidateStructure checks that every registry table exists in the
// warehouse with exactly the registry's columns, in order. Returns one
// error per discrepancy, nil when the structure matches.
func (db *DB) ValidateStructure(ctx context.Context) []error {
	var problems []error
	for _, desc := range schema.LoadOrder() {
		rows, err := db.pool.Query(ctx,
			`SELECT column_name FROM information_schema.columns
			 WHERE table_name = $1 ORDER BY ordinal_position`,
			desc.Name,
		)
		if err != nil {
			problems = append(problems, etlerrors.Unavailable(fmt.Sprintf("failed to inspect %s", desc.Name), err))
			continue
		}
		var cols []string
		for rows.Next() {
			var c string
			if err := rows.Scan(&c); err != nil {
				problems = append(problems, etlerrors.Internal(fmt.Sprintf("failed to scan columns of %s", desc.Name), err))
				break
			}
			cols = append(cols, c)
		}
		rows.Close()

		if len(cols) == 0 {
			problems = append(problems, etlerrors.Internal(fmt.Sprintf("table %s does not exist", desc.Name), nil))
			continue
		}
		if strings.Join(cols, ",") != strings.Join(desc.Columns, ",") {
			problems = append(problems, etlerrors.Internal(
				fmt.Sprintf("table %s has columns [%s], want [%s]",
					desc.Name, strings.Join(cols, " "), strings.Join(desc.Columns, " ")), nil))
		}
	}
	return problems
}

// TableStats returns the current row count of every registry table.
func (db *DB) TableStats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64, len(schema.LoadOrder()))
	for _, desc := range schema.LoadOrder() {
		var n int64
		if err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+desc.Name).Scan(&n); err != nil {
			return nil, etlerrors.Unavailable(fmt.Sprintf("failed to count %s", desc.Name), err)
		}
		stats[desc.Name] = n
	}
	return stats, nil
}
