package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"facilityLayout/internal/layout"
	"facilityLayout/internal/opt"
	"facilityLayout/internal/report"
)

func sample(t *testing.T) (*layout.Instance, opt.Result) {
	t.Helper()
	inst, err := layout.NewInstance(
		[]string{"A", "B", "C"},
		[][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}},
		[][]float64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}},
		nil,
	)
	require.NoError(t, err)
	res := opt.Result{
		Permutation: []int{1, 0, 2},
		Cost:        14,
		InitialCost: 16,
		History: []opt.Step{
			{Event: opt.InitialEvent, Cost: 16},
			{Event: opt.SwapEvent("A", "B"), Cost: 14},
		},
		Passes:      2,
		Evaluations: 6,
		Duration:    3 * time.Millisecond,
	}
	return inst, res
}

func TestConsole(t *testing.T) {
	inst, res := sample(t)
	var buf bytes.Buffer
	require.NoError(t, report.Console(&buf, inst, res, report.Options{ShowDistance: true, ShowHistory: true}))

	out := buf.String()
	require.Contains(t, out, "Distance Matrix:\n \tA\tB\tC\nA\t0.0000\t1.0000\t2.0000\n")
	require.Contains(t, out, "Minimum Total Cost: 14.0000\n")
	require.Contains(t, out, "Cost Savings vs original: 2.0000\n")
	require.Contains(t, out, "  A → 2\n  B → 1\n  C → 3\n")
	require.Contains(t, out, "  B  A  C\n")
	require.Contains(t, out, "  Swap A ↔ B"+strings.Repeat(" ", 16)+"14.0000\n")
}

func TestLocationOrder(t *testing.T) {
	require.Equal(t, []string{"C", "A", "B"}, report.LocationOrder([]string{"A", "B", "C"}, []int{1, 2, 0}))
}

func TestWriteHistoryCSV(t *testing.T) {
	_, res := sample(t)
	path := filepath.Join(t.TempDir(), "out", "history.csv")
	require.NoError(t, report.WriteHistoryCSV(path, res.History))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "step,event,cost\n0,Initial,16.000000\n1,Swap A ↔ B,14.000000\n", string(data))
}

func TestWriteXLSX(t *testing.T) {
	inst, res := sample(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, report.WriteXLSX(path, "run-1", inst, res))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Summary", "Assignment", "History", "Distance"}, f.GetSheetList())

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Equal(t, []string{"run_id", "run-1"}, summary[0])

	assign, err := f.GetRows("Assignment")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "2"}, assign[1])

	hist, err := f.GetRows("History")
	require.NoError(t, err)
	require.Len(t, hist, 3)
	require.Equal(t, "Swap A ↔ B", hist[2][1])
}
