// Package craft реализует эвристику CRAFT: жадный спуск по парным обменам
// отделов с точной инкрементальной оценкой стоимости.
package craft

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/glog"

	"facilityLayout/internal/layout"
	"facilityLayout/internal/opt"
)

// Solver - структура реализации CRAFT.
type Solver struct {
	Cfg Config
}

// New возвращает новый CRAFT-солвер с валидацией конфигурации.
func New(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{Cfg: cfg}, nil
}

// Solve - основной цикл: на каждом проходе применяется лучший строго
// улучшающий обмен, пока такой существует или не исчерпан лимит проходов.
func (s *Solver) Solve(ctx context.Context, inst *layout.Instance) (opt.Result, error) {
	start := time.Now()

	// Все проверки выполняются до изменения состояния
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	eval, err := layout.NewEvaluator(inst)
	if err != nil {
		return opt.Result{}, err
	}
	n := inst.N()

	perm := layout.Identity(n)
	if s.Cfg.Initial != nil {
		if err := layout.ValidatePermutation(s.Cfg.Initial, n); err != nil {
			return opt.Result{}, fmt.Errorf("начальная перестановка: %w", err)
		}
		copy(perm, s.Cfg.Initial)
	}

	fixed := make([]bool, n)
	for _, idx := range s.Cfg.Fixed {
		if idx >= n {
			return opt.Result{}, fmt.Errorf("%w: %d (отделов %d)", ErrFixedOutOfRange, idx, n)
		}
		fixed[idx] = true
	}
	movable := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !fixed[i] {
			movable = append(movable, i)
		}
	}

	st := &state{perm: perm, cost: eval.MustCost(perm)}
	initialCost := st.cost
	history := opt.NewHistory(initialCost)
	evals := 0

	result := func(stopped string) opt.Result {
		return opt.Result{
			Permutation: st.perm,
			Cost:        st.cost,
			InitialCost: initialCost,
			History:     history.Steps(),
			Passes:      st.passes,
			Evaluations: evals,
			Duration:    time.Since(start),
			Meta: map[string]any{
				"max_passes": s.Cfg.MaxPasses,
				"fixed":      n - len(movable),
				"stopped":    stopped,
			},
		}
	}

	// Меньше двух подвижных отделов - обменивать нечего
	if len(movable) < 2 {
		return result("no_movable_pairs"), nil
	}

	for st.passes < s.Cfg.MaxPasses {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			return result("context"), err
		}

		st.passes++
		m, k, ok := st.bestSwap(eval, movable)
		evals += k
		if !ok {
			// Локальный оптимум
			glog.V(2).Infof("craft: проход %d без улучшений, стоимость %.4f", st.passes, st.cost)
			return result("local_optimum"), nil
		}

		st.apply(m)
		li, lj := inst.Labels[m.i], inst.Labels[m.j]
		history.Record(opt.SwapEvent(li, lj), st.cost)
		if s.Cfg.Verbose {
			glog.Infof("Swap %s ↔ %s | Δ=%.4f | Cost=%.4f", li, lj, m.delta, st.cost)
		}
	}

	return result("max_passes"), nil
}
