package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"facilityLayout/internal/layout"
	"facilityLayout/internal/report"
)

var (
	rectsArg  string
	metricArg string
)

func init() {
	distCmd := &cobra.Command{
		Use:   "distances",
		Short: "Build a distance matrix from department rectangles",
		Long: `Compute centers of department rectangles and the symmetric distance
matrix between them.

Examples:
  craft distances --rects "0,40,0,20; 40,60,0,20; 0,60,20,40"
  craft distances --rects "0,40,0,20; 40,60,0,20" --metric euclidean`,
		RunE: runDistances,
	}
	distCmd.Flags().StringVar(&rectsArg, "rects", "", "Rectangles x_start,x_end,y_start,y_end separated by ';' or newlines")
	distCmd.Flags().StringVar(&metricArg, "metric", string(layout.Manhattan), "Distance metric: manhattan | euclidean")
	_ = distCmd.MarkFlagRequired("rects")

	rootCmd.AddCommand(distCmd)
}

func runDistances(cmd *cobra.Command, _ []string) error {
	metric, err := layout.ParseMetric(metricArg)
	if err != nil {
		return err
	}
	rects, err := layout.ParseRects(rectsArg, 0)
	if err != nil {
		return err
	}
	if len(rects) < 2 {
		return fmt.Errorf("нужно не меньше 2 отделов (получено %d)", len(rects))
	}
	labels := layout.DefaultLabels(len(rects))
	return report.Matrix(cmd.OutOrStdout(), "Distance Matrix:", labels, layout.DistanceFromRects(rects, metric))
}
