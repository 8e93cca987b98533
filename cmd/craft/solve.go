package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"facilityLayout/internal/api"
	"facilityLayout/internal/craft"
	"facilityLayout/internal/report"
	"facilityLayout/internal/source"
)

var solveOpts struct {
	fixed        string
	maxPasses    int
	verbose      bool
	history      bool
	showDistance bool
	csvOut       string
	xlsxOut      string
	jsonOut      bool
}

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <problem.json|problem.xlsx>",
		Short: "Run CRAFT on a problem file",
		Long: `Load flow, distance and handling-cost matrices from a JSON or XLSX file
and improve the initial layout by pairwise swaps until no swap reduces cost.

Examples:
  craft solve plant.json
  craft solve plant.xlsx --fixed A,D --history
  craft solve plant.json --verbose --xlsx report.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	f := solveCmd.Flags()
	f.StringVar(&solveOpts.fixed, "fixed", "", "Fixed departments (comma-separated labels)")
	f.IntVar(&solveOpts.maxPasses, "max-passes", 0, fmt.Sprintf("Pass limit (0 = file value or %d)", craft.DefaultMaxPasses))
	f.BoolVar(&solveOpts.verbose, "verbose", false, "Log every accepted swap")
	f.BoolVar(&solveOpts.history, "history", false, "Print cost history")
	f.BoolVar(&solveOpts.showDistance, "show-distance", true, "Print the distance matrix")
	f.StringVar(&solveOpts.csvOut, "csv", "", "Write cost history to CSV file")
	f.StringVar(&solveOpts.xlsxOut, "xlsx", "", "Write full report to XLSX file")
	f.BoolVar(&solveOpts.jsonOut, "json", false, "Print result as JSON")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	src, err := source.FileSource(args[0])
	if err != nil {
		return err
	}
	p, err := src.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if solveOpts.fixed != "" {
		extra, warnings := source.ResolveFixed(p.Instance.Labels, source.SplitLabels(solveOpts.fixed))
		p.Fixed = mergeFixed(p.Fixed, extra)
		p.Warnings = append(p.Warnings, warnings...)
	}
	for _, w := range p.Warnings {
		glog.Warning(w)
		fmt.Fprintf(os.Stderr, "Warning: %s.\n", w)
	}

	cfg := craft.DefaultConfig()
	if p.MaxPasses != 0 {
		cfg.MaxPasses = p.MaxPasses
	}
	if solveOpts.maxPasses != 0 {
		cfg.MaxPasses = solveOpts.maxPasses
	}
	cfg.Fixed = p.Fixed
	cfg.Initial = p.Initial
	cfg.Verbose = solveOpts.verbose
	if cfg.Verbose {
		_ = flag.Set("logtostderr", "true")
	}

	res, err := api.Run(context.Background(), p.Instance, cfg)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	glog.V(1).Infof("craft: run %s, %d passes, %d evaluations, %s", runID, res.Passes, res.Evaluations, res.Duration)

	out := cmd.OutOrStdout()
	if solveOpts.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(api.NewResponse(runID, p, res)); err != nil {
			return err
		}
	} else {
		o := report.Options{ShowDistance: solveOpts.showDistance, ShowHistory: solveOpts.history}
		if err := report.Console(out, p.Instance, res, o); err != nil {
			return err
		}
	}

	if solveOpts.csvOut != "" {
		if err := report.WriteHistoryCSV(solveOpts.csvOut, res.History); err != nil {
			return fmt.Errorf("ошибка при записи в CSV: %w", err)
		}
	}
	if solveOpts.xlsxOut != "" {
		if err := report.WriteXLSX(solveOpts.xlsxOut, runID, p.Instance, res); err != nil {
			return fmt.Errorf("ошибка при записи XLSX: %w", err)
		}
	}
	return nil
}

func mergeFixed(a, b []int) []int {
	seen := make(map[int]struct{}, len(a)+len(b))
	var out []int
	for _, v := range append(append([]int(nil), a...), b...) {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
