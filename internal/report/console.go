// Package report выводит результаты поиска: консоль, CSV и книгу Excel.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"facilityLayout/internal/layout"
	"facilityLayout/internal/opt"
)

type Options struct {
	// ShowDistance печатает матрицу расстояний с метками.
	ShowDistance bool
	// ShowHistory печатает журнал стоимости.
	ShowHistory bool
}

// Console печатает итог в формате, привычном для пользователей консольной версии.
func Console(w io.Writer, inst *layout.Instance, res opt.Result, o Options) error {
	p := &printer{w: w}

	if o.ShowDistance {
		p.matrix("Distance Matrix:", inst.Labels, inst.Dist)
	}
	p.printf("\nOriginal Total Cost (initial assignment): %.4f\n", res.InitialCost)
	p.printf("\nMinimum Total Cost: %.4f\n", res.Cost)
	p.printf("Cost Savings vs original: %.4f\n", res.Savings())

	p.printf("\nFinal assignment (Department → Location index):\n")
	for i, lab := range inst.Labels {
		p.printf("  %s → %d\n", lab, res.Permutation[i]+1)
	}

	p.printf("\nDepartments in location order (1..n):\n")
	p.printf("  %s\n", strings.Join(LocationOrder(inst.Labels, res.Permutation), "  "))

	if o.ShowHistory {
		p.printf("\nCost history:\n")
		for _, st := range res.History {
			p.printf("  %-24s  %.4f\n", st.Event, st.Cost)
		}
	}
	return p.err
}

// Matrix печатает матрицу с метками строк и столбцов.
func Matrix(w io.Writer, title string, labels []string, m [][]float64) error {
	p := &printer{w: w}
	p.matrix(title, labels, m)
	return p.err
}

// LocationOrder - метки отделов в порядке мест.
func LocationOrder(labels []string, perm []int) []string {
	out := make([]string, len(perm))
	for loc, dept := range layout.Inverse(perm) {
		out[loc] = labels[dept]
	}
	return out
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) matrix(title string, labels []string, m [][]float64) {
	p.printf("\n%s\n", title)
	p.printf("%s\n", strings.Join(append([]string{" "}, labels...), "\t"))
	for i, row := range m {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, labels[i])
		for _, v := range row {
			cells = append(cells, strconv.FormatFloat(v, 'f', 4, 64))
		}
		p.printf("%s\n", strings.Join(cells, "\t"))
	}
}
