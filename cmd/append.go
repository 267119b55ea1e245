package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SENAndrhevn23/FNF-Tools/ops"
	"github.com/SENAndrhevn23/FNF-Tools/ui"
)

func init() {
	rootCmd.AddCommand(appendCmd)
}

var appendCmd = &cobra.Command{
	Use:   "append <chart.json>",
	Short: "Fill empty sections from the chart's note pool",
	Long:  `Collects every note in the chart into a pool and assigns a copy of it to each section that has no notes. Sections with notes are left untouched.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("append", func() (res ops.Result, err error) {
			res, err = ops.AppendNotes(baseConfig(), args[0])
			if err == nil {
				ui.Infof("Sections filled: %v", res.Filled)
			}
			return res, err
		})
	},
}
