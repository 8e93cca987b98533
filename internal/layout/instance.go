package layout

import (
	"fmt"
	"math"
	"math/rand"
)

// Instance - задача размещения: N отделов, матрицы потоков, расстояний
// и удельных затрат на перемещение.
type Instance struct {
	Labels []string
	// Flow[i][j] - поток от отдела i к отделу j (может быть несимметричным).
	Flow [][]float64
	// Dist[p][q] - расстояние между местами p и q.
	Dist [][]float64
	// Cost[i][j] - стоимость единицы потока на единицу расстояния.
	Cost [][]float64
}

// NewInstance собирает и проверяет экземпляр задачи.
// Если cost == nil, используется матрица из единиц.
func NewInstance(labels []string, flow, dist, cost [][]float64) (*Instance, error) {
	if cost == nil {
		cost = OnesMatrix(len(flow))
	}
	inst := &Instance{Labels: labels, Flow: flow, Dist: dist, Cost: cost}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

// N возвращает количество отделов.
func (inst *Instance) N() int { return len(inst.Labels) }

func (inst *Instance) Validate() error {
	if inst == nil {
		return fmt.Errorf("instance is nil")
	}
	n := len(inst.Labels)
	if n < 2 {
		return fmt.Errorf("%w: количество отделов должно быть >= 2 (получено %d)", ErrTooFewDepartments, n)
	}
	seen := make(map[string]struct{}, n)
	for i, lab := range inst.Labels {
		if lab == "" {
			return fmt.Errorf("%w: пустая метка отдела %d", ErrDuplicateLabel, i)
		}
		if _, ok := seen[lab]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, lab)
		}
		seen[lab] = struct{}{}
	}
	for _, m := range []struct {
		name string
		v    [][]float64
	}{
		{"flow", inst.Flow},
		{"distance", inst.Dist},
		{"cost", inst.Cost},
	} {
		if err := validateSquare(m.name, m.v, n); err != nil {
			return err
		}
	}
	return nil
}

func validateSquare(name string, m [][]float64, n int) error {
	if len(m) != n {
		return fmt.Errorf("%w: %s имеет %d строк, ожидалось %d", ErrShapeMismatch, name, len(m), n)
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: %s строка %d имеет %d элементов, ожидалось %d", ErrShapeMismatch, name, i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s[%d][%d]=%v", ErrNonFinite, name, i, j, v)
			}
		}
		if row[i] != 0 {
			return fmt.Errorf("%w: %s[%d][%d]=%v", ErrNonZeroDiagonal, name, i, i, row[i])
		}
	}
	return nil
}

// DefaultLabels возвращает метки A, B, ..., Z, AA, AB, ...
func DefaultLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = columnLabel(i)
	}
	return out
}

func columnLabel(i int) string {
	var b []byte
	for i++; i > 0; i = (i - 1) / 26 {
		b = append([]byte{byte('A' + (i-1)%26)}, b...)
	}
	return string(b)
}

// RandomInstance генерирует случайную задачу: места - случайные точки
// на целочисленной сетке (манхэттенское расстояние), потоки в [0, maxFlow],
// удельные затраты равны единице.
func RandomInstance(n, maxFlow int, rng *rand.Rand) *Instance {
	if rng == nil {
		panic("генератор случайных чисел не инициализирован (nil)")
	}
	if n < 2 || maxFlow < 0 {
		panic("invalid instance bounds")
	}
	side := int(math.Ceil(math.Sqrt(float64(n)))) * 10
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: float64(rng.Intn(side)), Y: float64(rng.Intn(side))}
	}
	flow := ZeroMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				flow[i][j] = float64(rng.Intn(maxFlow + 1))
			}
		}
	}
	inst, err := NewInstance(DefaultLabels(n), flow, DistanceMatrix(points, Manhattan), nil)
	if err != nil {
		panic(err)
	}
	return inst
}
