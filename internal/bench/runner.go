package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"facilityLayout/internal/layout"
	"facilityLayout/internal/opt"
)

// MaxFlow - верхняя граница потока в случайных экземплярах.
const MaxFlow = 20

type Algorithm struct {
	Name string
	// Factory создаёт оптимизатор для запуска с данным сидом на задаче из n отделов.
	Factory func(seed int64, n int) opt.Optimizer
}

type Case struct {
	Departments  int
	InstanceSeed int64
}

type Record struct {
	Algo        string
	Departments int
	Runs        int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	CostBest    float64
	CostMean    float64
	CostStd     float64
	InitialMean float64
	PassesMean  float64
}

type Runner struct {
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout
}

func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	instRng := randForSeed(c.InstanceSeed)
	inst := layout.RandomInstance(c.Departments, MaxFlow, instRng)

	eval, err := layout.NewEvaluator(inst)
	if err != nil {
		return Record{}, err
	}

	costs := make([]float64, 0, r.Runs)
	initials := make([]float64, 0, r.Runs)
	passes := make([]int, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)

	for i := 0; i < r.Runs; i++ {
		runSeed := r.BaseSeed + int64(i)

		op := algo.Factory(runSeed, inst.N())

		runCtx := ctx
		cancel := func() {}
		if r.PerRunTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
		}
		start := time.Now()
		res, err := op.Solve(runCtx, inst)
		dur := time.Since(start)
		cancel()

		if err != nil && runCtx.Err() != nil {
			return Record{}, fmt.Errorf("run %d: cancelled/timeout: %w", i, err)
		}
		if err != nil {
			return Record{}, fmt.Errorf("run %d: solve error: %w", i, err)
		}
		if err := layout.ValidatePermutation(res.Permutation, inst.N()); err != nil {
			return Record{}, fmt.Errorf("run %d: %w", i, err)
		}
		// Контроль накопленной стоимости полным пересчётом
		if full := eval.MustCost(res.Permutation); !closeTo(full, res.Cost) {
			return Record{}, fmt.Errorf("run %d: cost drift: reported %.6f, recomputed %.6f", i, res.Cost, full)
		}

		costs = append(costs, res.Cost)
		initials = append(initials, res.InitialCost)
		passes = append(passes, res.Passes)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	cStats := CalcFloatStats(costs)
	tStats := CalcFloatStats(timesMs)

	return Record{
		Algo:        algo.Name,
		Departments: c.Departments,
		Runs:        r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		CostBest:    cStats.Best,
		CostMean:    cStats.Mean,
		CostStd:     cStats.Std,
		InitialMean: CalcFloatStats(initials).Mean,
		PassesMean:  CalcIntStats(passes).Mean,
	}, nil
}

func WriteCSV(path string, records []Record) error {
	if d := dirOf(path); d != "" {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"algo", "departments", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"cost_best", "cost_mean", "cost_std",
		"initial_mean", "passes_mean",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Algo,
			itoa(r.Departments),
			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			ftoa(r.CostBest),
			ftoa(r.CostMean),
			ftoa(r.CostStd),

			ftoa(r.InitialMean),
			ftoa(r.PassesMean),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
