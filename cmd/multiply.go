package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SENAndrhevn23/FNF-Tools/ops"
)

var flagSplits int

func init() {
	multiplyCmd.Flags().IntVar(&flagSplits, "splits", 1, "split the multiplied output into this many part files")
	rootCmd.AddCommand(multiplyCmd)
}

var multiplyCmd = &cobra.Command{
	Use:   "multiply <chart.json> <multiplier>",
	Short: "Repeat a chart N times on one timeline",
	Long:  `Repeats a chart's sections N times, shifting each repetition forward by the chart's duration, streaming the result to disk.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		return runOp("multiply", func() (ops.Result, error) {
			return ops.Multiply(baseConfig(), args[0], k, flagSplits)
		})
	},
}
