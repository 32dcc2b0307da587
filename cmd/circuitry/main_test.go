package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitry/config"
	"github.com/katalvlaran/circuitry/merge"
)

func TestRun_Sample(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(nil, &stdout, &stderr))
	assert.Equal(t, "40\n25272\n", stdout.String())
	assert.Contains(t, stderr.String(), "source=sample")
	assert.Contains(t, stderr.String(), "run=")
}

func TestRun_FileWithLimitAndMetrics(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(input, []byte("0,0,0\n0,0,0\n100,0,0\n300,0,0\n"), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-input", input, "-limit", "1", "-metrics", "-log-level", "warn"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "2\n30000\n", stdout.String())
	assert.Contains(t, stderr.String(), "circuitry_edges_consumed_total")
	assert.NotContains(t, stderr.String(), "starting", "info logs are filtered at warn")
}

func TestRun_ConfigFileAndSampleOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "circuitry.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: /does/not/exist\nlimit: 10\n"), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-config", cfgPath, "-sample"}, &stdout, &stderr))
	assert.Equal(t, "40\n25272\n", stdout.String())

	stdout.Reset()
	err := run([]string{"-config", cfgPath}, &stdout, &stderr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, stdout.String(), "nothing is printed on failure")
}

func TestRun_Failures(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-limit", "500"}, &stdout, &stderr)
	assert.ErrorIs(t, err, merge.ErrBadLimit, "the sample has only 190 edges")

	err = run([]string{"-limit", "-3"}, &stdout, &stderr)
	assert.ErrorIs(t, err, config.ErrInvalid)

	err = run([]string{"-log-level", "chatty"}, &stdout, &stderr)
	assert.ErrorIs(t, err, config.ErrInvalid)

	assert.Empty(t, stdout.String())
}

// TestRun_SampleIgnoresConfiguredLimit checks that -sample drops a limit
// written for the configured file unless -limit is passed too.
func TestRun_SampleIgnoresConfiguredLimit(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "circuitry.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: data/full.txt\nlimit: 1000\n"), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-config", cfgPath, "-sample"}, &stdout, &stderr))
	assert.Equal(t, "40\n25272\n", stdout.String())

	stdout.Reset()
	err := run([]string{"-config", cfgPath, "-sample", "-limit", "1000"}, &stdout, &stderr)
	assert.ErrorIs(t, err, merge.ErrBadLimit, "an explicit -limit still applies")
	assert.Empty(t, stdout.String())
}
