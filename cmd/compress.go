package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SENAndrhevn23/FNF-Tools/ops"
)

func init() {
	rootCmd.AddCommand(compressCmd)
}

var compressCmd = &cobra.Command{
	Use:   "compress <chart.json>",
	Short: "Rewrite a chart compactly without changing its content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("compress", func() (ops.Result, error) {
			return ops.Compress(baseConfig(), args[0])
		})
	},
}
