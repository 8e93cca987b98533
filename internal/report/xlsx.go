package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"facilityLayout/internal/layout"
	"facilityLayout/internal/opt"
)

// WriteXLSX сохраняет отчёт в книгу Excel с листами
// Summary, Assignment, History и Distance.
func WriteXLSX(path, runID string, inst *layout.Instance, res opt.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return err
	}
	summary := [][]any{
		{"run_id", runID},
		{"departments", inst.N()},
		{"initial_cost", res.InitialCost},
		{"cost", res.Cost},
		{"savings", res.Savings()},
		{"passes", res.Passes},
		{"evaluations", res.Evaluations},
		{"duration_ms", float64(res.Duration.Microseconds()) / 1000.0},
	}
	if err := setRows(f, "Summary", summary); err != nil {
		return err
	}

	assign := [][]any{{"department", "location"}}
	for i, lab := range inst.Labels {
		assign = append(assign, []any{lab, res.Permutation[i] + 1})
	}
	if err := newSheet(f, "Assignment", assign); err != nil {
		return err
	}

	hist := [][]any{{"step", "event", "cost"}}
	for i, st := range res.History {
		hist = append(hist, []any{i, st.Event, st.Cost})
	}
	if err := newSheet(f, "History", hist); err != nil {
		return err
	}

	header := []any{""}
	for _, lab := range inst.Labels {
		header = append(header, lab)
	}
	dist := [][]any{header}
	for i, row := range inst.Dist {
		r := []any{inst.Labels[i]}
		for _, v := range row {
			r = append(r, v)
		}
		dist = append(dist, r)
	}
	if err := newSheet(f, "Distance", dist); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func newSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return setRows(f, name, rows)
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("лист %s: %w", sheet, err)
		}
	}
	return nil
}
