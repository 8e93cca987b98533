package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "craft",
	Short: "CRAFT facility layout optimizer",
	Long: `CRAFT (Computerized Relative Allocation of Facilities Technique):
greedy pairwise-swap descent for the facility layout problem.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// glog ожидает разобранный стандартный набор флагов
		_ = flag.CommandLine.Parse(nil)
	},
}

func main() {
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	defer glog.Flush()

	if err := rootCmd.Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
