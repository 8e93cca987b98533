package layout

import "fmt"

// Evaluator считает стоимость размещения для проверенного экземпляра.
// Матрицы только читаются.
type Evaluator struct {
	inst *Instance
}

func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{inst: inst}, nil
}

// Cost = сумма по i != j величин F[i][j] * D[perm[i]][perm[j]] * C[i][j].
func (e *Evaluator) Cost(perm []int) (float64, error) {
	if e == nil || e.inst == nil {
		return 0, fmt.Errorf("nil evaluator")
	}
	n := e.inst.N()
	if err := ValidatePermutation(perm, n); err != nil {
		return 0, err
	}
	f, d, c := e.inst.Flow, e.inst.Dist, e.inst.Cost

	total := 0.0
	for i := 0; i < n; i++ {
		pi := perm[i]
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			total += f[i][j] * d[pi][perm[j]] * c[i][j]
		}
	}
	return total, nil
}

func (e *Evaluator) MustCost(perm []int) float64 {
	v, err := e.Cost(perm)
	if err != nil {
		panic(err)
	}
	return v
}

// Delta возвращает точное изменение стоимости при обмене местами отделов
// i и j за O(n). Меняются только слагаемые, в которых участвует i или j.
// perm не проверяется: вызывается в горячем цикле.
func (e *Evaluator) Delta(i, j int, perm []int) float64 {
	if i == j {
		return 0
	}
	f, d, c := e.inst.Flow, e.inst.Dist, e.inst.Cost
	pi, pj := perm[i], perm[j]

	dlt := 0.0
	for k := range perm {
		if k == i || k == j {
			continue
		}
		pk := perm[k]
		// i с k
		dlt += f[i][k] * (d[pj][pk] - d[pi][pk]) * c[i][k]
		dlt += f[k][i] * (d[pk][pj] - d[pk][pi]) * c[k][i]
		// j с k
		dlt += f[j][k] * (d[pi][pk] - d[pj][pk]) * c[j][k]
		dlt += f[k][j] * (d[pk][pi] - d[pk][pj]) * c[k][j]
	}

	// i с j: после обмена i стоит на pj, j на pi
	dlt += f[i][j] * (d[pj][pi] - d[pi][pj]) * c[i][j]
	dlt += f[j][i] * (d[pi][pj] - d[pj][pi]) * c[j][i]
	return dlt
}
