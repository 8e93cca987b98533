// Package api - вызов CRAFT по JSON-запросу; общий для Lambda и CLI (--json).
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"facilityLayout/internal/craft"
	"facilityLayout/internal/layout"
	"facilityLayout/internal/opt"
	"facilityLayout/internal/report"
	"facilityLayout/internal/source"
)

var ErrBadRequest = errors.New("bad request")

type HistoryStep struct {
	Event string  `json:"event"`
	Cost  float64 `json:"cost"`
}

type Response struct {
	RunID         string        `json:"runId"`
	Labels        []string      `json:"labels"`
	Permutation   []int         `json:"permutation"`
	LocationOrder []string      `json:"locationOrder"`
	InitialCost   float64       `json:"initialCost"`
	Cost          float64       `json:"cost"`
	Savings       float64       `json:"savings"`
	Passes        int           `json:"passes"`
	Evaluations   int           `json:"evaluations"`
	TimeMs        int64         `json:"timeMs"`
	History       []HistoryStep `json:"history"`
	Warnings      []string      `json:"warnings,omitempty"`
}

// Solve разбирает задачу из тела запроса, запускает поиск и собирает ответ.
// Ошибки входных данных оборачивают ErrBadRequest.
func Solve(ctx context.Context, body []byte) (Response, error) {
	p, err := source.ParseJSON(body)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	cfg := craft.DefaultConfig()
	if p.MaxPasses != 0 {
		cfg.MaxPasses = p.MaxPasses
	}
	cfg.Fixed = p.Fixed
	cfg.Initial = p.Initial
	cfg.Verbose = gjson.GetBytes(body, "verbose").Bool()

	res, err := Run(ctx, p.Instance, cfg)
	if err != nil {
		return Response{}, err
	}
	return NewResponse(uuid.NewString(), p, res), nil
}

// Run запускает CRAFT; ошибки предусловий оборачивают ErrBadRequest.
func Run(ctx context.Context, inst *layout.Instance, cfg craft.Config) (opt.Result, error) {
	solver, err := craft.New(cfg)
	if err != nil {
		return opt.Result{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	res, err := solver.Solve(ctx, inst)
	if err != nil {
		if isPrecondition(err) {
			return opt.Result{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		return opt.Result{}, err
	}
	return res, nil
}

func NewResponse(runID string, p *source.Problem, res opt.Result) Response {
	labels := p.Instance.Labels
	hist := make([]HistoryStep, len(res.History))
	for i, st := range res.History {
		hist[i] = HistoryStep{Event: st.Event, Cost: st.Cost}
	}
	return Response{
		RunID:         runID,
		Labels:        labels,
		Permutation:   res.Permutation,
		LocationOrder: report.LocationOrder(labels, res.Permutation),
		InitialCost:   res.InitialCost,
		Cost:          res.Cost,
		Savings:       res.Savings(),
		Passes:        res.Passes,
		Evaluations:   res.Evaluations,
		TimeMs:        res.Duration.Milliseconds(),
		History:       hist,
		Warnings:      p.Warnings,
	}
}

func isPrecondition(err error) bool {
	for _, target := range []error{
		layout.ErrTooFewDepartments,
		layout.ErrShapeMismatch,
		layout.ErrDuplicateLabel,
		layout.ErrNonFinite,
		layout.ErrNonZeroDiagonal,
		layout.ErrInvalidPermutation,
		craft.ErrFixedOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// StatusCode сопоставляет ошибку HTTP-статусу.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
