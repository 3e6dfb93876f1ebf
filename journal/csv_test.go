package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	samplesPath := filepath.Join(dir, "samples.csv")

	j, err := NewCSV(runsPath, samplesPath)
	require.NoError(t, err)

	seed := uint64(42)
	require.NoError(t, j.RecordRun(RunRecord{
		RunID:     "01TESTRUN",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		S0:        100,
		Mu:        0.05,
		Sigma:     0.2,
		Horizon:   1,
		Steps:     2,
		Seed:      &seed,
		Terminal:  101.5,
	}))
	require.NoError(t, j.RecordPath("01TESTRUN",
		[]float64{0, 1.0},
		[]float64{100, 101.5}))
	require.NoError(t, j.Close())

	runs, err := os.ReadFile(runsPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(runs)), "\n")
	require.Equal(t, 2, len(lines))
	assert.Equal(t, "run_id,created_at,s0,mu,sigma,horizon,steps,seed,terminal", lines[0])
	assert.Contains(t, lines[1], "01TESTRUN")
	assert.Contains(t, lines[1], ",42,")

	samples, err := os.ReadFile(samplesPath)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(string(samples)), "\n")
	require.Equal(t, 3, len(lines))
	assert.Equal(t, "run_id,idx,t,value", lines[0])
	assert.Equal(t, "01TESTRUN,0,0.000000,100.000000", lines[1])
	assert.Equal(t, "01TESTRUN,1,1.000000,101.500000", lines[2])
}

func TestCSVUnseededRunHasEmptySeed(t *testing.T) {
	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")

	j, err := NewCSV(runsPath, filepath.Join(dir, "samples.csv"))
	require.NoError(t, err)

	require.NoError(t, j.RecordRun(RunRecord{
		RunID:     "01UNSEEDED",
		CreatedAt: time.Now().UTC(),
		S0:        100,
		Mu:        0.05,
		Sigma:     0.2,
		Horizon:   1,
		Steps:     2,
		Terminal:  99.0,
	}))
	require.NoError(t, j.Close())

	runs, err := os.ReadFile(runsPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(runs)), "\n")
	require.Equal(t, 2, len(lines))
	assert.Contains(t, lines[1], ",,")
}
