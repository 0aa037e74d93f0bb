// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpassoc/config"
	"github.com/katalvlaran/fpassoc/experiment"
	"github.com/katalvlaran/fpassoc/report"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fpassoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Nil(t, cfg.Size)
	assert.Nil(t, cfg.Offset)
	assert.Equal(t, 1.0, cfg.OffsetOr(1))
	assert.Equal(t, experiment.DefaultTrials, cfg.Trials)
	assert.Equal(t, "text", cfg.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFileNoEnv(t *testing.T) {
	cfg, err := config.LoadWithEnv("", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, "size: 1000\noffset: 2.5\nseed: 9\nformat: yaml\n")

	cfg, err := config.LoadWithEnv(path, map[string]string{})
	require.NoError(t, err)
	require.NotNil(t, cfg.Size)
	assert.Equal(t, 1000, *cfg.Size)
	assert.Equal(t, 2.5, cfg.OffsetOr(1))
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, experiment.DefaultTrials, cfg.Trials, "untouched keys keep defaults")

	cfg, err = config.LoadWithEnv(path, map[string]string{
		"FPASSOC_SIZE":    "42",
		"FPASSOC_VERBOSE": "true",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, *cfg.Size, "env overrides file")
	assert.Equal(t, 2.5, cfg.OffsetOr(1))
	assert.True(t, cfg.Verbose)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.LoadWithEnv(writeFile(t, ""), map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"), map[string]string{})
	require.Error(t, err)

	_, err = config.LoadWithEnv(writeFile(t, "sizes: 3\n"), map[string]string{})
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.LoadWithEnv("", map[string]string{"FPASSOC_SIZE": "lots"})
	require.Error(t, err)

	_, err = config.LoadWithEnv("", map[string]string{"FPASSOC_TRIALS": "0"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.LoadWithEnv("", map[string]string{"FPASSOC_FORMAT": "xml"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, report.ErrUnknownFormat)

}

// TestLoad_ExplicitZeroAndNegativeSize checks that configured sizes survive
// loading untouched so that experiment.Run can judge them.
func TestLoad_ExplicitZeroAndNegativeSize(t *testing.T) {
	cfg, err := config.LoadWithEnv(writeFile(t, "size: 0\noffset: 0\n"), map[string]string{})
	require.NoError(t, err)
	require.NotNil(t, cfg.Size)
	assert.Equal(t, 0, *cfg.Size)
	require.NotNil(t, cfg.Offset)
	assert.Equal(t, 0.0, cfg.OffsetOr(1))

	cfg, err = config.LoadWithEnv("", map[string]string{"FPASSOC_SIZE": "-4"})
	require.NoError(t, err)
	require.NotNil(t, cfg.Size)
	assert.Equal(t, -4, *cfg.Size)

	_, err = experiment.Run(*cfg.Size, cfg.OffsetOr(1))
	require.ErrorIs(t, err, experiment.ErrSizeOutOfRange)
}

func TestRunOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 5
	cfg.Trials = 3

	a, err := experiment.Run(100, 1, cfg.RunOptions()...)
	require.NoError(t, err)
	b, err := experiment.Run(100, 1, experiment.WithSeed(5), experiment.WithTrials(3))
	require.NoError(t, err)
	assert.Equal(t, b.Results, a.Results)

	cfg.Seed = 0
	c, err := experiment.Run(100, 1, cfg.RunOptions()...)
	require.NoError(t, err)
	require.NotNil(t, c.Seed, "entropy seed recorded")
}

func TestReportOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "JSON"
	cfg.Verbose = true
	assert.Equal(t, report.Options{Format: report.JSON, Verbose: true}, cfg.ReportOptions())
}
