package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"facilityLayout/internal/bench"
	"facilityLayout/internal/craft"
	"facilityLayout/internal/opt"
)

var benchOpts struct {
	out          string
	sizes        string
	algos        string
	runs         int
	baseSeed     int64
	instanceSeed int64
	perRunTO     time.Duration
	maxPasses    int
}

func init() {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark CRAFT on random layouts",
		Long: `Generate random layouts of the given sizes and run the descent from
seeded random initial assignments; write statistics to CSV.

Examples:
  craft bench --sizes 10,20,40 --runs 30
  craft bench --sizes 15 --runs 5 --out artifacts/small.csv`,
		RunE: runBench,
	}

	f := benchCmd.Flags()
	f.StringVar(&benchOpts.out, "out", "artifacts/results.csv", "путь к выходному CSV-файлу")
	f.StringVar(&benchOpts.sizes, "sizes", "10,20,40", "количество отделов (через запятую)")
	f.StringVar(&benchOpts.algos, "algos", "CRAFT", "список алгоритмов (через запятую)")
	f.IntVar(&benchOpts.runs, "runs", 30, "количество запусков (с разными сидами)")
	f.Int64Var(&benchOpts.baseSeed, "seed", 1000, "базовый сид для начальных перестановок")
	f.Int64Var(&benchOpts.instanceSeed, "instance_seed", 777, "базовый сид для генерации экземпляров задачи (фиксирован для конфигурации)")
	f.DurationVar(&benchOpts.perRunTO, "per_run_timeout", 0, "таймаут одного запуска; 0 — без ограничения")
	f.IntVar(&benchOpts.maxPasses, "max_passes", craft.DefaultMaxPasses, "ограничение числа проходов")

	rootCmd.AddCommand(benchCmd)
}

// Фабрики

func newCraftFactory(cfg craft.Config) func(seed int64, n int) opt.Optimizer {
	return func(seed int64, n int) opt.Optimizer {
		c := cfg
		c.Initial = bench.ShuffledPermutation(n, seed)
		solver, _ := craft.New(c)
		return solver
	}
}

func runBench(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	cases, err := parseSizes(benchOpts.sizes, benchOpts.instanceSeed)
	if err != nil {
		return err
	}
	if err := validateRuns(benchOpts.runs); err != nil {
		return err
	}

	craftCfg := craft.DefaultConfig()
	craftCfg.MaxPasses = benchOpts.maxPasses
	if err := craftCfg.Validate(); err != nil {
		return fmt.Errorf("конфликт в конфигурации CRAFT: %w", err)
	}

	available := map[string]bench.Algorithm{
		"CRAFT": {Name: "CRAFT", Factory: newCraftFactory(craftCfg)},
	}

	var selected []bench.Algorithm
	for _, a := range splitCSV(benchOpts.algos) {
		al, ok := available[strings.ToUpper(a)]
		if !ok {
			return fmt.Errorf("алгоритм %q не предоставлен в программе; доступные: %v", a, keys(available))
		}
		selected = append(selected, al)
	}

	runner := bench.Runner{
		Runs:          benchOpts.runs,
		BaseSeed:      benchOpts.baseSeed,
		PerRunTimeout: benchOpts.perRunTO,
	}

	var records []bench.Record
	for _, c := range cases {
		for _, a := range selected {
			fmt.Fprintf(out, "Запущен алгоритм %s; %d отделов (общее кол-во запусков=%d)...\n", a.Name, c.Departments, runner.Runs)

			rec, err := runner.RunCase(ctx, c, a)
			if err != nil {
				return err
			}
			records = append(records, rec)

			fmt.Fprintf(out, "  Стоимость: лучшая=%.2f средняя=%.2f стандартное отклонение=%.2f (начальная средняя=%.2f) | Проходов в среднем=%.1f | Время: среднее=%.2fms отклонение=%.2fms\n",
				rec.CostBest, rec.CostMean, rec.CostStd, rec.InitialMean,
				rec.PassesMean,
				rec.TimeMeanMs, rec.TimeStdMs,
			)
		}
	}

	if err := bench.WriteCSV(benchOpts.out, records); err != nil {
		return fmt.Errorf("ошибка при записи в CSV: %w", err)
	}
	fmt.Fprintln(out, "Saved:", benchOpts.out)
	return nil
}

// helpers

func parseSizes(s string, baseInstanceSeed int64) ([]bench.Case, error) {
	parts := splitCSV(s)
	cases := make([]bench.Case, 0, len(parts))

	for i, p := range parts {
		n, err := atoiStrict(p)
		if err != nil {
			return nil, fmt.Errorf("размер %q: ошибка парсинга количества отделов: %w", p, err)
		}
		if n < 2 {
			return nil, fmt.Errorf("размер %q: количество отделов должно быть >= 2", p)
		}

		seed := baseInstanceSeed + int64(i)*10_000 + int64(n)*100

		cases = append(cases, bench.Case{
			Departments:  n,
			InstanceSeed: seed,
		})
	}

	return cases, nil
}

func validateRuns(runs int) error {
	if runs < 1 {
		return fmt.Errorf("количество запусков должно быть >= 1 (получено %d)", runs)
	}
	return nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiStrict(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func keys(m map[string]bench.Algorithm) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
