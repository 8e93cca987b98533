package layout

import "fmt"

// ValidatePermutation проверяет, что perm - биекция на [0, n).
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: длина должна быть %d (получено %d)", ErrInvalidPermutation, n, len(perm))
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: perm[%d]=%d вне диапазона [0,%d)", ErrInvalidPermutation, i, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: место %d занято дважды", ErrInvalidPermutation, v)
		}
		seen[v] = true
	}
	return nil
}

// Identity - отдел i на месте i.
func Identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Inverse возвращает отображение место -> отдел.
func Inverse(perm []int) []int {
	inv := make([]int, len(perm))
	for dept, loc := range perm {
		inv[loc] = dept
	}
	return inv
}
