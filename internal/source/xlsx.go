package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"facilityLayout/internal/layout"
)

// Имена листов книги с исходными данными.
const (
	SheetFlow     = "Flow"
	SheetDistance = "Distance"
	SheetCost     = "Cost"
	SheetFixed    = "Fixed"
)

// XLSXSource читает задачу из книги Excel. На листах Flow, Distance и Cost
// первая строка и первый столбец содержат метки отделов. Лист Cost
// необязателен (по умолчанию единицы), лист Fixed содержит метки
// закреплённых отделов в столбце A.
type XLSXSource struct {
	Path string
}

func (s XLSXSource) Load() (*Problem, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) (*Problem, error) {
	labels, flow, err := readLabeledSheet(f, SheetFlow)
	if err != nil {
		return nil, err
	}
	_, dist, err := readLabeledSheet(f, SheetDistance)
	if err != nil {
		return nil, err
	}

	var cost [][]float64
	if hasSheet(f, SheetCost) {
		if _, cost, err = readLabeledSheet(f, SheetCost); err != nil {
			return nil, err
		}
	}

	for _, m := range [][][]float64{flow, dist, cost} {
		layout.ZeroDiagonal(m)
	}
	inst, err := layout.NewInstance(labels, flow, dist, cost)
	if err != nil {
		return nil, err
	}

	p := &Problem{Instance: inst}
	if hasSheet(f, SheetFixed) {
		rows, err := f.GetRows(SheetFixed)
		if err != nil {
			return nil, err
		}
		var names []string
		for _, row := range rows {
			if len(row) > 0 {
				names = append(names, row[0])
			}
		}
		p.Fixed, p.Warnings = ResolveFixed(labels, names)
	}
	return p, nil
}

func hasSheet(f *excelize.File, name string) bool {
	idx, err := f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

func readLabeledSheet(f *excelize.File, sheet string) ([]string, [][]float64, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("лист %s: %w", sheet, err)
	}
	if len(rows) < 2 || len(rows[0]) < 2 {
		return nil, nil, fmt.Errorf("лист %s: нет данных", sheet)
	}

	var labels []string
	for _, c := range rows[0][1:] {
		labels = append(labels, strings.TrimSpace(c))
	}
	n := len(labels)

	m := layout.ZeroMatrix(n)
	body := rows[1:]
	if len(body) != n {
		return nil, nil, fmt.Errorf("%w: лист %s содержит %d строк, ожидалось %d", layout.ErrShapeMismatch, sheet, len(body), n)
	}
	for i, row := range body {
		// GetRows отбрасывает пустые ячейки в конце строки
		for j := 1; j < len(row) && j <= n; j++ {
			cell := strings.TrimSpace(row[j])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("лист %s, строка %d, столбец %d: %w", sheet, i+2, j+1, err)
			}
			m[i][j-1] = v
		}
		if len(row) > n+1 {
			return nil, nil, fmt.Errorf("%w: лист %s, строка %d длиннее %d", layout.ErrShapeMismatch, sheet, i+2, n+1)
		}
	}
	return labels, m, nil
}
