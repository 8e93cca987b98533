package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"facilityLayout/internal/opt"
)

// WriteHistoryCSV сохраняет журнал стоимости: step, event, cost.
func WriteHistoryCSV(path string, history []opt.Step) error {
	if d := filepath.Dir(path); d != "." {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"step", "event", "cost"}); err != nil {
		return err
	}
	for i, st := range history {
		row := []string{
			strconv.Itoa(i),
			st.Event,
			strconv.FormatFloat(st.Cost, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
