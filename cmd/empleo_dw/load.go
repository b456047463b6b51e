package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mariana/empleo-dw/internal/warehouse"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk-load transformed tables into the warehouse",
	Long:  "Read the 13 transformed table CSVs from the input directory and load them into PostgreSQL in dependency order inside a single transaction, recording the run in etl_runs.",
	RunE:  runLoad,
}

var (
	loadInputDir    string
	loadDatabaseURL string
)

func init() {
	loadCmd.Flags().StringVarP(&loadInputDir, "input", "i", "", "Directory containing the transformed table CSVs (required)")
	loadCmd.Flags().StringVarP(&loadDatabaseURL, "database-url", "d", "", "PostgreSQL connection URL (or DATABASE_URL)")

	loadCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(loadInputDir, "", loadDatabaseURL)
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tables, err := warehouse.ReadTables(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("failed to read transformed tables: %w", err)
	}

	ctx := context.Background()
	db, err := warehouse.Connect(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}
	if problems := db.ValidateStructure(ctx); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "structure mismatch: %v\n", p)
		}
		return fmt.Errorf("warehouse structure does not match the expected model")
	}

	runID, err := db.LoadAll(ctx, tables)
	if err != nil {
		return fmt.Errorf("load failed (run %s): %w", runID, err)
	}

	stats, err := db.TableStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read table stats: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Load complete (run %s)\n", runID)
	for _, t := range tables {
		fmt.Fprintf(os.Stdout, "  %-30s %d rows\n", t.TableName(), stats[t.TableName()])
	}

	return nil
}
