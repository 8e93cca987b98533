package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Point struct {
	X, Y float64
}

// Rect - прямоугольник отдела: [X0, X1] x [Y0, Y1].
type Rect struct {
	X0, X1, Y0, Y1 float64
}

func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// ParseRect разбирает строку "x_start,x_end,y_start,y_end".
// Перевёрнутые границы нормализуются.
func ParseRect(line string) (Rect, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return Rect{}, fmt.Errorf("ожидалось ровно 4 значения через запятую: x_start,x_end,y_start,y_end (получено %d)", len(parts))
	}
	var v [4]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Rect{}, fmt.Errorf("значение %q: %w", strings.TrimSpace(p), err)
		}
		v[i] = x
	}
	r := Rect{X0: v[0], X1: v[1], Y0: v[2], Y1: v[3]}
	if r.X1 < r.X0 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r, nil
}

// ParseRects разбирает блок прямоугольников, разделённых ';' или переводами строк.
// expected <= 0 отключает проверку количества.
func ParseRects(block string, expected int) ([]Rect, error) {
	raw := strings.TrimSpace(block)
	var entries []string
	if strings.Contains(raw, ";") {
		entries = strings.Split(raw, ";")
	} else {
		entries = strings.Split(raw, "\n")
	}

	rects := make([]Rect, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		r, err := ParseRect(e)
		if err != nil {
			return nil, fmt.Errorf("прямоугольник %d: %w", len(rects)+1, err)
		}
		rects = append(rects, r)
	}
	if expected > 0 && len(rects) != expected {
		return nil, fmt.Errorf("ожидалось %d отделов, получено %d", expected, len(rects))
	}
	return rects, nil
}

func Centers(rects []Rect) []Point {
	out := make([]Point, len(rects))
	for i, r := range rects {
		out[i] = r.Center()
	}
	return out
}

// Metric - метрика расстояния между центрами.
type Metric string

const (
	Manhattan Metric = "manhattan"
	Euclidean Metric = "euclidean"
)

func ParseMetric(s string) (Metric, error) {
	switch m := Metric(strings.ToLower(strings.TrimSpace(s))); m {
	case Manhattan, Euclidean:
		return m, nil
	case "l1":
		return Manhattan, nil
	case "l2":
		return Euclidean, nil
	default:
		return "", fmt.Errorf("неизвестная метрика %q", s)
	}
}

func DistanceMatrix(points []Point, metric Metric) [][]float64 {
	n := len(points)
	d := ZeroMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := points[i].X - points[j].X
			dy := points[i].Y - points[j].Y
			switch metric {
			case Euclidean:
				d[i][j] = math.Hypot(dx, dy)
			default:
				d[i][j] = math.Abs(dx) + math.Abs(dy)
			}
		}
	}
	return d
}

// DistanceFromRects: центры прямоугольников -> матрица расстояний,
// симметризованная с нулевой диагональю.
func DistanceFromRects(rects []Rect, metric Metric) [][]float64 {
	return Symmetrize(DistanceMatrix(Centers(rects), metric))
}
