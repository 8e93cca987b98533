package craft

import "facilityLayout/internal/layout"

// state - изменяемое состояние одного поиска. Принадлежит одному вызову Solve.
type state struct {
	perm   []int
	cost   float64
	passes int
}

// move - лучший найденный за проход обмен.
type move struct {
	i, j  int
	delta float64
}

// bestSwap перебирает пары i < j (i по возрастанию, затем j по возрастанию)
// среди подвижных отделов и возвращает пару со строго отрицательной
// минимальной дельтой. При равенстве побеждает первая пара.
func (s *state) bestSwap(eval *layout.Evaluator, movable []int) (move, int, bool) {
	best := move{i: -1, j: -1}
	evals := 0
	for a := 0; a < len(movable)-1; a++ {
		i := movable[a]
		for _, j := range movable[a+1:] {
			d := eval.Delta(i, j, s.perm)
			evals++
			if d < best.delta {
				best = move{i: i, j: j, delta: d}
			}
		}
	}
	return best, evals, best.i >= 0
}

// apply меняет местами отделы и обновляет стоимость на дельту, без пересчёта.
func (s *state) apply(m move) {
	s.perm[m.i], s.perm[m.j] = s.perm[m.j], s.perm[m.i]
	s.cost += m.delta
}
