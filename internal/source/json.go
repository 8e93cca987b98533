package source

import (
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"facilityLayout/internal/layout"
)

// JSONSource - задача в формате JSON:
//
//	{
//	  "labels": ["A", "B", "C"],
//	  "flow": [[0,1,2],[1,0,3],[2,3,0]] | ["1,2", "1,3", "2,3"],
//	  "distance": [[...]] | "rectangles": [[x0,x1,y0,y1], ...] | "0,40,0,20; ...",
//	  "metric": "manhattan" | "euclidean",
//	  "symmetrize": true,
//	  "cost": [[...]],
//	  "fixed": ["B"],
//	  "initial": [0, 1, 2],
//	  "maxPasses": 10000
//	}
type JSONSource struct {
	Data []byte
}

func (s JSONSource) Load() (*Problem, error) { return ParseJSON(s.Data) }

var ErrInvalidJSON = errors.New("source: invalid JSON")

func ParseJSON(data []byte) (*Problem, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return parseProblem(gjson.ParseBytes(data))
}

func parseProblem(r gjson.Result) (*Problem, error) {
	flow, err := readMatrix(r.Get("flow"))
	if err != nil {
		return nil, fmt.Errorf("flow: %w", err)
	}
	if flow == nil {
		return nil, fmt.Errorf("flow: поле обязательно")
	}

	labels := readStrings(r.Get("labels"))
	if labels == nil {
		n := len(flow)
		if d := r.Get("departments"); d.Exists() {
			if err := checkDepartments(d, n); err != nil {
				return nil, err
			}
		}
		labels = layout.DefaultLabels(n)
	}

	dist, err := readDistance(r)
	if err != nil {
		return nil, err
	}

	cost, err := readMatrix(r.Get("cost"))
	if err != nil {
		return nil, fmt.Errorf("cost: %w", err)
	}

	// Диагональ всегда нулевая, как при вводе компактными строками
	for _, m := range [][][]float64{flow, dist, cost} {
		layout.ZeroDiagonal(m)
	}

	inst, err := layout.NewInstance(labels, flow, dist, cost)
	if err != nil {
		return nil, err
	}

	p := &Problem{
		Instance:  inst,
		MaxPasses: int(r.Get("maxPasses").Int()),
	}
	p.Fixed, p.Warnings = ResolveFixed(labels, readStrings(r.Get("fixed")))

	if v := r.Get("initial"); v.Exists() {
		if !v.IsArray() {
			return nil, fmt.Errorf("initial: ожидается массив индексов")
		}
		var bad error
		v.ForEach(func(_, x gjson.Result) bool {
			if x.Type != gjson.Number || x.Num != math.Trunc(x.Num) {
				bad = fmt.Errorf("%w: initial[%d]=%s не целое число", layout.ErrInvalidPermutation, len(p.Initial), x.Raw)
				return false
			}
			p.Initial = append(p.Initial, int(x.Int()))
			return true
		})
		if bad != nil {
			return nil, bad
		}
		if err := layout.ValidatePermutation(p.Initial, inst.N()); err != nil {
			return nil, fmt.Errorf("initial: %w", err)
		}
	}
	return p, nil
}

// checkDepartments сверяет поле departments с числом строк flow
// до выделения памяти под метки.
func checkDepartments(d gjson.Result, rows int) error {
	if d.Type != gjson.Number || d.Num != math.Trunc(d.Num) {
		return fmt.Errorf("%w: departments=%s не целое число", layout.ErrShapeMismatch, d.Raw)
	}
	if d.Num < 2 {
		return fmt.Errorf("%w: departments=%s", layout.ErrTooFewDepartments, d.Raw)
	}
	if d.Num != float64(rows) {
		return fmt.Errorf("%w: departments=%s, в flow %d строк", layout.ErrShapeMismatch, d.Raw, rows)
	}
	return nil
}

func readDistance(r gjson.Result) ([][]float64, error) {
	if v := r.Get("distance"); v.Exists() {
		dist, err := readMatrix(v)
		if err != nil {
			return nil, fmt.Errorf("distance: %w", err)
		}
		if r.Get("symmetrize").Bool() {
			// Symmetrize обращается к m[j][i]: форму нужно проверить заранее
			if err := layout.CheckSquare(dist); err != nil {
				return nil, fmt.Errorf("distance: %w", err)
			}
			dist = layout.Symmetrize(dist)
		}
		return dist, nil
	}

	v := r.Get("rectangles")
	if !v.Exists() {
		return nil, fmt.Errorf("нужно задать distance или rectangles")
	}
	metric := layout.Manhattan
	if m := r.Get("metric"); m.Exists() {
		var err error
		if metric, err = layout.ParseMetric(m.String()); err != nil {
			return nil, err
		}
	}
	rects, err := readRects(v)
	if err != nil {
		return nil, fmt.Errorf("rectangles: %w", err)
	}
	return layout.DistanceFromRects(rects, metric), nil
}

func readRects(v gjson.Result) ([]layout.Rect, error) {
	if v.Type == gjson.String {
		return layout.ParseRects(v.String(), 0)
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("ожидается массив или строка")
	}
	var (
		rects []layout.Rect
		err   error
	)
	v.ForEach(func(_, e gjson.Result) bool {
		var r layout.Rect
		if e.Type == gjson.String {
			r, err = layout.ParseRect(e.String())
		} else {
			r, err = layout.ParseRect(joinNumbers(e))
		}
		if err != nil {
			err = fmt.Errorf("прямоугольник %d: %w", len(rects)+1, err)
			return false
		}
		rects = append(rects, r)
		return true
	})
	return rects, err
}

// readMatrix принимает массив строк-массивов или массив компактных строк.
// Отсутствующее поле даёт nil без ошибки.
func readMatrix(v gjson.Result) ([][]float64, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("ожидается массив")
	}
	rows := v.Array()
	if len(rows) > 0 && rows[0].Type == gjson.String {
		lines := make([]string, len(rows))
		for i, row := range rows {
			lines[i] = row.String()
		}
		return ParseCompactMatrix(lines)
	}

	m := make([][]float64, len(rows))
	for i, row := range rows {
		if !row.IsArray() {
			return nil, fmt.Errorf("строка %d: ожидается массив", i)
		}
		for j, x := range row.Array() {
			if x.Type != gjson.Number {
				return nil, fmt.Errorf("[%d][%d]: ожидается число (получено %s)", i, j, x.Raw)
			}
			m[i] = append(m[i], x.Float())
		}
	}
	return m, nil
}

func readStrings(v gjson.Result) []string {
	if !v.IsArray() {
		if v.Type == gjson.String {
			return SplitLabels(v.String())
		}
		return nil
	}
	var out []string
	v.ForEach(func(_, x gjson.Result) bool {
		out = append(out, x.String())
		return true
	})
	return out
}

func joinNumbers(v gjson.Result) string {
	s := ""
	v.ForEach(func(k, x gjson.Result) bool {
		if s != "" {
			s += ","
		}
		s += x.Raw
		return true
	})
	return s
}
