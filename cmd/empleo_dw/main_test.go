package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"extract", "transform", "load", "run"} {
		assert.True(t, names[want], "subcommand %s not registered", want)
	}
}

func TestResolveConfig_FlagsWinOverFile(t *testing.T) {
	fileDir := t.TempDir()
	flagDir := t.TempDir()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"input_dir": "`+fileDir+`", "database_url": "postgres://file/dw"}`), 0o644))

	configPath = path
	defer func() { configPath = "" }()

	cfg, err := resolveConfig(flagDir, "", "")
	require.NoError(t, err)
	assert.Equal(t, flagDir, cfg.InputDir, "the flag value overrides the file")
	assert.Equal(t, "postgres://file/dw", cfg.DatabaseURL, "file values survive when no flag is set")
}

func TestResolveConfig_EnvFallback(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/dw")

	cfg, err := resolveConfig("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/dw", cfg.DatabaseURL)

	cfg, err = resolveConfig("", "", "postgres://flag/dw")
	require.NoError(t, err)
	assert.Equal(t, "postgres://flag/dw", cfg.DatabaseURL, "an explicit flag beats the environment")
}

func TestResolveConfig_BadConfigFile(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "missing.json")
	defer func() { configPath = "" }()

	_, err := resolveConfig("", "", "")
	assert.Error(t, err)
}
