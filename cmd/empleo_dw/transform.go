package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mariana/empleo-dw/internal/csvio"
	"github.com/mariana/empleo-dw/internal/extract"
	"github.com/mariana/empleo-dw/internal/transform"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Build the dimensional model and write it as CSV",
	Long:  "Extract the six input datasets, reconcile orphaned competency references, build the 8 dimension and 5 fact tables, and write one CSV per table to the output directory.",
	RunE:  runTransform,
}

var (
	transformInputDir string
	transformOutDir   string
)

func init() {
	transformCmd.Flags().StringVarP(&transformInputDir, "input", "i", "", "Directory containing the cleaned CSV inputs (required)")
	transformCmd.Flags().StringVarP(&transformOutDir, "out", "o", "", "Output directory for the transformed tables (required)")

	transformCmd.MarkFlagRequired("input")
	transformCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(transformInputDir, transformOutDir, "")
	if err != nil {
		return err
	}
	if err := cfg.RequireInput(); err != nil {
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

	if err := csvio.WriteTables(cfg.OutputDir, result.Tables()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Transform complete: %d dimension rows, %d fact rows\n",
		summary.DimensionTotal, summary.FactTotal)
	fmt.Fprintf(os.Stdout, "Tables written to %s\n", cfg.OutputDir)

	return nil
}
