package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SENAndrhevn23/FNF-Tools/constants"
	"github.com/SENAndrhevn23/FNF-Tools/ops"
	"github.com/SENAndrhevn23/FNF-Tools/stream"
	"github.com/SENAndrhevn23/FNF-Tools/ui"
)

var rootCmd = &cobra.Command{
	Use:   "fnftools",
	Short: "FNF chart multitask tool",
	Long:  `Multiply, merge, split, append and compress Friday Night Funkin' song charts, streaming the output so huge charts never blow up memory.`,
}

var (
	flagOutputRoot string
	flagPretty     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutputRoot, "out", "o", "", "output root (default: next to the input file)")
	rootCmd.PersistentFlags().BoolVar(&flagPretty, "pretty", false, "indent output instead of compact JSON")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// baseConfig assembles the operation config from flags and env.
func baseConfig() ops.Config {
	cfg := ops.Config{
		OutputRoot: flagOutputRoot,
		MaxBytes:   constants.GetMaxSizeMB() * stream.MB,
		Confirm:    confirmSize,
	}
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = constants.GetOutputRoot()
	}
	if flagPretty {
		cfg.Indent = "  "
	}
	return cfg
}

// confirmSize asks before writing past the advisory ceiling.
func confirmSize(estimatedMB float64) bool {
	ui.Errorf("Estimated size %.2f MB exceeds the %v MB limit!", estimatedMB, constants.GetMaxSizeMB())
	fmt.Fprint(ui.Out, "You sure you want to go above the limit? (Y/N): ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToUpper(strings.TrimSpace(line)) == "Y"
}

// runOp times an operation and prints its outcome, mirroring the
// original tool's logging.
func runOp(name string, fn func() (ops.Result, error)) error {
	start := time.Now()
	res, err := fn()
	if err != nil {
		ui.Errorf("Error in %v: %v", name, err)
		return err
	}
	for _, p := range res.Skipped {
		ui.Errorf("Skipping invalid chart: %v", p)
	}
	if res.Canceled {
		ui.Errorf("Operation canceled due to size limit.")
		return nil
	}
	for _, p := range res.Outputs {
		ui.Savedf("Saved %v", p)
	}
	ui.Infof("Sections: %v, Notes: %v", res.Sections, res.Notes)
	ui.Donef("Done in %.2fs", time.Since(start).Seconds())
	return nil
}
