package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mariana/empleo-dw/internal/csvio"
	"github.com/mariana/empleo-dw/internal/extract"
	"github.com/mariana/empleo-dw/internal/transform"
	"github.com/mariana/empleo-dw/internal/warehouse"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: extract, transform, load",
	Long:  "Extract the six input datasets, build the dimensional model, optionally write it as CSV, and load it into PostgreSQL in one invocation.",
	RunE:  runPipeline,
}

var (
	runInputDir    string
	runOutDir      string
	runDatabaseURL string
)

func init() {
	runCmd.Flags().StringVarP(&runInputDir, "input", "i", "", "Directory containing the cleaned CSV inputs (required)")
	runCmd.Flags().StringVarP(&runOutDir, "out", "o", "", "Optional directory for transformed CSV output")
	runCmd.Flags().StringVarP(&runDatabaseURL, "database-url", "d", "", "PostgreSQL connection URL (or DATABASE_URL)")

	runCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(runInputDir, runOutDir, runDatabaseURL)
	if err != nil {
		return err
	}
	if err := cfg.RequireInput(); err != nil {
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

	tables, err := extract.New(logger).ExtractAll(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	result := transform.Run(*tables, time.Now(), logger)
	summary := transform.Summarize(result)
	summary.Log(logger)

	if cfg.OutputDir != "" {
		if err := csvio.WriteTables(cfg.OutputDir, result.Tables()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Tables written to %s\n", cfg.OutputDir)
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

	runID, err := db.LoadAll(ctx, result.Tables())
	if err != nil {
		return fmt.Errorf("load failed (run %s): %w", runID, err)
	}

	fmt.Fprintf(os.Stdout, "Pipeline complete (run %s): %d dimension rows, %d fact rows\n",
		runID, summary.DimensionTotal, summary.FactTotal)

	return nil
}
