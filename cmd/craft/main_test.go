package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestParseSizes(t *testing.T) {
	cases, err := parseSizes("5, 12", 777)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	require.Equal(t, 12, cases[1].Departments)
	require.Equal(t, int64(777+10_000+1200), cases[1].InstanceSeed)

	_, err = parseSizes("1", 0)
	require.Error(t, err)
	_, err = parseSizes("x", 0)
	require.Error(t, err)
}

func TestMergeFixed(t *testing.T) {
	require.Equal(t, []int{2, 0, 1}, mergeFixed([]int{2, 0}, []int{0, 1}))
}

func TestDistancesCommand(t *testing.T) {
	out := execute(t, "distances", "--rects", "0,40,0,20; 40,60,0,20")
	require.Contains(t, out, "A\t0.0000\t30.0000")
}

func TestSolveCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plant.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"flow": [[0,1,2],[1,0,3],[2,3,0]],
		"distance": [[0,1,2],[1,0,1],[2,1,0]]
	}`), 0o644))
	csvPath := filepath.Join(dir, "history.csv")

	out := execute(t, "solve", path, "--history", "--csv", csvPath)
	require.Contains(t, out, "Original Total Cost (initial assignment): 16.0000")
	require.FileExists(t, csvPath)
}

func TestValidateRuns(t *testing.T) {
	require.NoError(t, validateRuns(1))
	require.Error(t, validateRuns(0))
	require.Error(t, validateRuns(-5))
}

func TestBenchCommand_RejectsNonPositiveRuns(t *testing.T) {
	rootCmd.SetArgs([]string{"bench", "--sizes", "4", "--runs", "0", "--out", filepath.Join(t.TempDir(), "r.csv")})
	require.Error(t, rootCmd.Execute())
	benchOpts.runs = 30
}
