// Package main provides the entry point for the employment data warehouse ETL.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/config"
	"github.com/mariana/empleo-dw/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "empleo_dw",
	Short: "Recruitment data warehouse ETL",
	Long:  "Consolidates the six cleaned recruitment datasets into a constellation schema (8 dimensions, 5 facts) and bulk-loads it into PostgreSQL.",
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig merges the optional config file, the environment, and the
// given flag values. Flags win over file values.
func resolveConfig(inputDir, outDir, databaseURL string) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if verbose {
		cfg.Verbose = true
	}
	cfg.FromEnv()
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
