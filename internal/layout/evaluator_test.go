package layout_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"facilityLayout/internal/layout"
)

func threeDeptInstance(t *testing.T) *layout.Instance {
	t.Helper()
	inst, err := layout.NewInstance(
		[]string{"A", "B", "C"},
		[][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}},
		[][]float64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}},
		nil,
	)
	require.NoError(t, err)
	return inst
}

// asymmetricInstance заполняет F, D и C случайными несимметричными значениями.
func asymmetricInstance(t *testing.T, n int, rng *rand.Rand) *layout.Instance {
	t.Helper()
	fill := func() [][]float64 {
		m := layout.ZeroMatrix(n)
		for i := range m {
			for j := range m[i] {
				if i != j {
					m[i][j] = math.Round(rng.Float64()*1000) / 10
				}
			}
		}
		return m
	}
	inst, err := layout.NewInstance(layout.DefaultLabels(n), fill(), fill(), fill())
	require.NoError(t, err)
	return inst
}

func TestCost_IdentityBaseline(t *testing.T) {
	eval, err := layout.NewEvaluator(threeDeptInstance(t))
	require.NoError(t, err)

	cost, err := eval.Cost(layout.Identity(3))
	require.NoError(t, err)
	require.Equal(t, 16.0, cost)
}

func TestCost_TwoDepartments(t *testing.T) {
	inst, err := layout.NewInstance(
		[]string{"X", "Y"},
		[][]float64{{0, 3}, {5, 0}},
		[][]float64{{0, 2}, {7, 0}},
		[][]float64{{0, 1}, {2, 0}},
	)
	require.NoError(t, err)
	eval, err := layout.NewEvaluator(inst)
	require.NoError(t, err)

	// 3*2*1 + 5*7*2
	require.Equal(t, 76.0, eval.MustCost([]int{0, 1}))
	// 3*7*1 + 5*2*2
	require.Equal(t, 41.0, eval.MustCost([]int{1, 0}))
	require.Equal(t, 41.0-76.0, eval.Delta(0, 1, []int{0, 1}))
}

func TestCost_RejectsInvalidPermutation(t *testing.T) {
	eval, err := layout.NewEvaluator(threeDeptInstance(t))
	require.NoError(t, err)

	for name, perm := range map[string][]int{
		"short":     {0, 1},
		"duplicate": {0, 0, 2},
		"range":     {0, 1, 3},
		"negative":  {-1, 1, 2},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := eval.Cost(perm)
			require.ErrorIs(t, err, layout.ErrInvalidPermutation)
		})
	}
	require.Panics(t, func() { eval.MustCost([]int{1, 1, 1}) })
}

func TestDelta_SameIndexIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	eval, err := layout.NewEvaluator(asymmetricInstance(t, 6, rng))
	require.NoError(t, err)

	perm := rng.Perm(6)
	for i := 0; i < 6; i++ {
		require.Zero(t, eval.Delta(i, i, perm))
	}
}

func TestDelta_MatchesFullRecompute(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		n := 2 + rng.Intn(9)
		eval, err := layout.NewEvaluator(asymmetricInstance(t, n, rng))
		require.NoError(t, err)

		perm := rng.Perm(n)
		base := eval.MustCost(perm)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				swapped := append([]int(nil), perm...)
				swapped[i], swapped[j] = swapped[j], swapped[i]
				want := eval.MustCost(swapped) - base
				got := eval.Delta(i, j, perm)
				tol := 1e-9 * math.Max(1, math.Abs(base))
				require.InDeltaf(t, want, got, tol, "n=%d i=%d j=%d perm=%v", n, i, j, perm)
			}
		}
	}
}

func TestDelta_DoesNotMutate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inst := asymmetricInstance(t, 5, rng)
	flow := layout.CopyMatrix(inst.Flow)
	dist := layout.CopyMatrix(inst.Dist)
	eval, err := layout.NewEvaluator(inst)
	require.NoError(t, err)

	perm := []int{4, 2, 0, 1, 3}
	_ = eval.Delta(1, 3, perm)
	require.Equal(t, []int{4, 2, 0, 1, 3}, perm)
	require.Equal(t, flow, inst.Flow)
	require.Equal(t, dist, inst.Dist)
}
