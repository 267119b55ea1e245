package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SENAndrhevn23/FNF-Tools/chart"
	"github.com/SENAndrhevn23/FNF-Tools/stream"
	"github.com/SENAndrhevn23/FNF-Tools/ui"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <chart.json>",
	Short: "Inspect a chart",
	Long:  `Prints a chart's section count, note count, bpm, estimated duration and file size.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := chart.Load(args[0])
		if err != nil {
			return err
		}
		duration := chart.Duration(doc.Sections, doc.BPM())
		fmt.Fprintf(ui.Out, "sections: %v\n", len(doc.Sections))
		fmt.Fprintf(ui.Out, "notes: %v\n", doc.NoteCount())
		fmt.Fprintf(ui.Out, "bpm: %v\n", doc.BPM())
		fmt.Fprintf(ui.Out, "duration: %.0fms (%.1fs)\n", duration, duration/1000)
		fmt.Fprintf(ui.Out, "size: %.2fMB\n", float64(stream.FileSize(args[0]))/stream.MB)
		return nil
	},
}
