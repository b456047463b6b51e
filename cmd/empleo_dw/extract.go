package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mariana/empleo-dw/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Validate and summarize the six cleaned input datasets",
	Long:  "Load the six expected cleaned CSV files from the input directory, validating presence, non-emptiness, and natural-key columns. Fails without producing output if any dataset is unusable.",
	RunE:  runExtract,
}

var extractInputDir string

func init() {
	extractCmd.Flags().StringVarP(&extractInputDir, "input", "i", "", "Directory containing the cleaned CSV inputs (required)")

	extractCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(extractInputDir, "", "")
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

	fmt.Fprintf(os.Stdout, "Extracted 6 datasets from %s\n", cfg.InputDir)
	fmt.Fprintf(os.Stdout, "  postulante:   %d rows\n", len(tables.Applicants.Rows))
	fmt.Fprintf(os.Stdout, "  discapacidad: %d rows\n", len(tables.Disabilities.Rows))
	fmt.Fprintf(os.Stdout, "  educacion:    %d rows\n", len(tables.Education.Rows))
	fmt.Fprintf(os.Stdout, "  experiencias: %d rows\n", len(tables.Experience.Rows))
	fmt.Fprintf(os.Stdout, "  vacantes:     %d rows\n", len(tables.Postings.Rows))
	fmt.Fprintf(os.Stdout, "  competencias: %d rows\n", len(tables.Competencies.Rows))

	return nil
}
