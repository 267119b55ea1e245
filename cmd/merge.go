package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SENAndrhevn23/FNF-Tools/ops"
)

func init() {
	rootCmd.AddCommand(mergeCmd)
}

var mergeCmd = &cobra.Command{
	Use:   "merge <chart.json>...",
	Short: "Merge charts end to end",
	Long:  `Concatenates charts on one timeline; each chart's notes are pushed past the accumulated duration of everything before it, so content never overlaps.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("merge", func() (ops.Result, error) {
			return ops.MergeFiles(baseConfig(), args)
		})
	},
}
