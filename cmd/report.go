package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SENAndrhevn23/FNF-Tools/chart"
	"github.com/SENAndrhevn23/FNF-Tools/stream"
	"github.com/SENAndrhevn23/FNF-Tools/ui"
	"github.com/SENAndrhevn23/FNF-Tools/util"
)

var flagMaxFiles int

func init() {
	reportCmd.Flags().IntVar(&flagMaxFiles, "max", 0, "limit the number of files scanned (0 = no limit)")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Summarize every chart under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report(args[0])
		return nil
	},
}

type chartsReport struct {
	numFiles     int64
	numInvalid   int64
	numBytes     int64
	sectionCount []int
	noteCount    []int
	durationMs   float64
}

func analyzeCharts(root string) chartsReport {
	var report chartsReport

	for _, path := range util.GatherChartPaths(root, flagMaxFiles) {
		doc, err := chart.Load(path)
		if err != nil {
			report.numInvalid++
			continue
		}
		report.numFiles++
		report.numBytes += stream.FileSize(path)
		report.sectionCount = append(report.sectionCount, len(doc.Sections))
		report.noteCount = append(report.noteCount, doc.NoteCount())
		report.durationMs += chart.Duration(doc.Sections, doc.BPM())
	}
	return report
}

func report(root string) {
	r := analyzeCharts(root)
	fmt.Fprintf(ui.Out, "charts: %v (skipped %v invalid)\n", r.numFiles, r.numInvalid)
	fmt.Fprintf(ui.Out, "sections: %v\n", util.Sum(r.sectionCount))
	fmt.Fprintf(ui.Out, "notes: %v\n", util.Sum(r.noteCount))
	fmt.Fprintf(ui.Out, "total bytes: %v\n", r.numBytes)
	fmt.Fprintf(ui.Out, "total duration: %.1fs\n", r.durationMs/1000)
	if r.numFiles == 0 {
		ui.Errorf("No charts found under %v", root)
	}
}
