package opt

import (
	"context"
	"time"

	"facilityLayout/internal/layout"
)

type Optimizer interface {
	Solve(ctx context.Context, inst *layout.Instance) (Result, error)
}

type Result struct {
	// Permutation[i] - место отдела i.
	Permutation []int
	Cost        float64
	InitialCost float64
	History     []Step
	Passes      int
	Evaluations int
	Duration    time.Duration
	Meta        map[string]any
}

// Savings - экономия относительно начального размещения.
func (r Result) Savings() float64 { return r.InitialCost - r.Cost }
