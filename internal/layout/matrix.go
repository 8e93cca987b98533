package layout

import "fmt"

func ZeroMatrix(n int) [][]float64 {
	backing := make([]float64, n*n)
	m := make([][]float64, n)
	for i := range m {
		m[i] = backing[i*n : (i+1)*n]
	}
	return m
}

// OnesMatrix - единицы вне диагонали, нули на диагонали.
func OnesMatrix(n int) [][]float64 {
	m := ZeroMatrix(n)
	for i := range m {
		for j := range m[i] {
			if i != j {
				m[i][j] = 1
			}
		}
	}
	return m
}

func CopyMatrix(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i, row := range src {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// CheckSquare проверяет, что m - квадратная матрица (len(m) x len(m)).
func CheckSquare(m [][]float64) error {
	for i, row := range m {
		if len(row) != len(m) {
			return fmt.Errorf("%w: строка %d имеет %d элементов, ожидалось %d", ErrShapeMismatch, i, len(row), len(m))
		}
	}
	return nil
}

// Symmetrize ожидает квадратную матрицу (см. CheckSquare) и возвращает S[i][j] = (M[i][j] + M[j][i]) / 2 с нулевой диагональю.
func Symmetrize(m [][]float64) [][]float64 {
	n := len(m)
	s := ZeroMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				s[i][j] = 0.5 * (m[i][j] + m[j][i])
			}
		}
	}
	return s
}

// ZeroDiagonal обнуляет диагональ на месте.
func ZeroDiagonal(m [][]float64) {
	for i := range m {
		if i < len(m[i]) {
			m[i][i] = 0
		}
	}
}
