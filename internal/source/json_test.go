package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"facilityLayout/internal/layout"
	"facilityLayout/internal/source"
)

func TestParseJSON_Matrices(t *testing.T) {
	p, err := source.ParseJSON([]byte(`{
		"labels": ["A", "B", "C"],
		"flow": [[0,1,2],[1,0,3],[2,3,0]],
		"distance": [[9,1,2],[1,0,1],[2,1,0]],
		"fixed": ["B", "Q", "B"],
		"maxPasses": 50
	}`))
	require.NoError(t, err)

	inst := p.Instance
	require.Equal(t, []string{"A", "B", "C"}, inst.Labels)
	require.Equal(t, 0.0, inst.Dist[0][0], "diagonal is forced to zero")
	require.Equal(t, layout.OnesMatrix(3), inst.Cost)
	require.Equal(t, []int{1}, p.Fixed)
	require.Equal(t, []string{"unknown label 'Q' ignored"}, p.Warnings)
	require.Equal(t, 50, p.MaxPasses)
	require.Nil(t, p.Initial)
}

func TestParseJSON_CompactRowsAndRectangles(t *testing.T) {
	p, err := source.ParseJSON([]byte(`{
		"departments": 3,
		"flow": ["1,2", "1,3", "2,3"],
		"cost": ["2,2", "2,2", "2,2"],
		"rectangles": "0,0,0,0; 6,6,0,0; 0,0,8,8",
		"metric": "euclidean",
		"initial": [2, 0, 1]
	}`))
	require.NoError(t, err)

	inst := p.Instance
	require.Equal(t, []string{"A", "B", "C"}, inst.Labels)
	require.Equal(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}, inst.Flow)
	require.Equal(t, 2.0, inst.Cost[2][1])
	require.InDelta(t, 10.0, inst.Dist[1][2], 1e-12)
	require.Equal(t, []int{2, 0, 1}, p.Initial)
}

func TestParseJSON_RectangleArraysAndSymmetrize(t *testing.T) {
	p, err := source.ParseJSON([]byte(`{
		"flow": [[0,1],[1,0]],
		"rectangles": [[0,40,0,20], "40,60,0,20"]
	}`))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 30}, {30, 0}}, p.Instance.Dist)

	p, err = source.ParseJSON([]byte(`{
		"flow": [[0,1],[1,0]],
		"distance": [[0,2],[4,0]],
		"symmetrize": true
	}`))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 3}, {3, 0}}, p.Instance.Dist)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := map[string]string{
		"invalid json":   `{"flow": [`,
		"missing flow":   `{"distance": [[0,1],[1,0]]}`,
		"missing dist":   `{"flow": [[0,1],[1,0]]}`,
		"shape":          `{"flow": [[0,1],[1,0]], "distance": [[0,1,1],[1,0,1],[1,1,0]]}`,
		"non numeric":    `{"flow": [[0,"x"],[1,0]], "distance": [[0,1],[1,0]]}`,
		"compact count":  `{"flow": ["1,2", "1"], "distance": [[0,1],[1,0]]}`,
		"bad metric":     `{"flow": [[0,1],[1,0]], "rectangles": "0,1,0,1;2,3,2,3", "metric": "cheb"}`,
		"bad initial":    `{"flow": [[0,1],[1,0]], "distance": [[0,1],[1,0]], "initial": [1,1]}`,
		"bad rectangles": `{"flow": [[0,1],[1,0]], "rectangles": [[0,1,0]]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := source.ParseJSON([]byte(body))
			require.Error(t, err)
		})
	}

	_, err := source.ParseJSON([]byte(`{"flow": [`))
	require.ErrorIs(t, err, source.ErrInvalidJSON)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"flow": [[0,1],[1,0]], "distance": [[0,5],[5,0]]}`), 0o644))

	src, err := source.FileSource(path)
	require.NoError(t, err)
	p, err := src.Load()
	require.NoError(t, err)
	require.Equal(t, 2, p.Instance.N())

	_, err = source.FileSource(filepath.Join(dir, "problem.txt"))
	require.Error(t, err)
}

func TestResolveFixed(t *testing.T) {
	fixed, warnings := source.ResolveFixed([]string{"A", "B", "C"}, source.SplitLabels(" C, x ,A,,C"))
	require.Equal(t, []int{2, 0}, fixed)
	require.Equal(t, []string{"unknown label 'x' ignored"}, warnings)
}

func TestParseCompactRow(t *testing.T) {
	row, err := source.ParseCompactRow("4, 5,6", 4, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 0, 6}, row)

	_, err = source.ParseCompactRow("4,5", 4, 0)
	require.Error(t, err)
	_, err = source.ParseCompactRow("4,a,5", 4, 0)
	require.Error(t, err)
}

func TestParseJSON_PreconditionSentinels(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{
			"ragged distance before symmetrize",
			`{"flow": [[0,1],[1,0]], "distance": [[0],[1,0]], "symmetrize": true}`,
			layout.ErrShapeMismatch,
		},
		{
			"negative departments",
			`{"departments": -1, "flow": ["1","1"], "distance": [[0,1],[1,0]]}`,
			layout.ErrTooFewDepartments,
		},
		{
			"huge departments",
			`{"departments": 1e12, "flow": ["1","1"], "distance": [[0,1],[1,0]]}`,
			layout.ErrShapeMismatch,
		},
		{
			"departments differ from flow",
			`{"departments": 3, "flow": ["1","1"], "distance": [[0,1],[1,0]]}`,
			layout.ErrShapeMismatch,
		},
		{
			"fractional initial",
			`{"flow": [[0,1],[1,0]], "distance": [[0,1],[1,0]], "initial": [1.7, 0]}`,
			layout.ErrInvalidPermutation,
		},
		{
			"string initial",
			`{"flow": [[0,1],[1,0]], "distance": [[0,1],[1,0]], "initial": ["abc", 1]}`,
			layout.ErrInvalidPermutation,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = source.ParseJSON([]byte(tc.body)) })
			require.ErrorIs(t, err, tc.want)
		})
	}

	p, err := source.ParseJSON([]byte(`{"departments": 2, "flow": ["1","1"], "distance": [[0,1],[1,0]], "initial": [1, 0.0]}`))
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, p.Initial)
}
