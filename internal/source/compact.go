package source

import (
	"fmt"
	"strconv"
	"strings"

	"facilityLayout/internal/layout"
)

// ParseCompactRow разбирает строку i матрицы n x n в компактной записи:
// n-1 чисел через запятую для всех j != i по порядку. Диагональ равна нулю.
func ParseCompactRow(line string, n, i int) ([]float64, error) {
	var vals []float64
	for _, p := range strings.Split(line, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("строка %d: все элементы должны быть числами: %w", i+1, err)
		}
		vals = append(vals, v)
	}
	if len(vals) != n-1 {
		return nil, fmt.Errorf("строка %d: нужно ровно %d значений (получено %d)", i+1, n-1, len(vals))
	}

	row := make([]float64, n)
	k := 0
	for j := range row {
		if j == i {
			continue
		}
		row[j] = vals[k]
		k++
	}
	return row, nil
}

// ParseCompactMatrix собирает матрицу из компактных строк, по одной на отдел.
func ParseCompactMatrix(rows []string) ([][]float64, error) {
	n := len(rows)
	m := layout.ZeroMatrix(n)
	for i, line := range rows {
		row, err := ParseCompactRow(line, n, i)
		if err != nil {
			return nil, err
		}
		copy(m[i], row)
	}
	return m, nil
}
