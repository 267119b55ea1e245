package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SENAndrhevn23/FNF-Tools/ops"
)

func init() {
	rootCmd.AddCommand(splitCmd)
}

var splitCmd = &cobra.Command{
	Use:   "split <chart.json> <parts>",
	Short: "Split a chart into contiguous parts",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parts, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		return runOp("split", func() (ops.Result, error) {
			return ops.Split(baseConfig(), args[0], parts)
		})
	},
}
