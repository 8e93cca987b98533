package layout

import "errors"

// Ошибки-предусловия. Проверяются через errors.Is.
var (
	ErrTooFewDepartments  = errors.New("layout: at least 2 departments required")
	ErrShapeMismatch      = errors.New("layout: matrix shape mismatch")
	ErrDuplicateLabel     = errors.New("layout: duplicate department label")
	ErrNonFinite          = errors.New("layout: non-finite matrix value")
	ErrNonZeroDiagonal    = errors.New("layout: non-zero diagonal")
	ErrInvalidPermutation = errors.New("layout: invalid permutation")
)
