package cmd

import (
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"

	"github.com/SENAndrhevn23/FNF-Tools/ops"
	"github.com/SENAndrhevn23/FNF-Tools/ui"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <chart.json>",
	Short: "Re-compress a chart whenever it changes",
	Long:  `Polls the chart file and reruns compress after each change, debounced so editors that write in bursts trigger a single rerun. Stop with Ctrl-C.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watch(args[0])
	},
}

func watch(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	lastMod := info.ModTime()

	cfg := baseConfig()
	cfg.Confirm = nil
	rerun := func() {
		runOp("compress", func() (ops.Result, error) {
			return ops.Compress(cfg, path)
		})
	}

	debounced := debounce.New(time.Second)
	ui.Infof("Watching %v", path)

	for {
		time.Sleep(500 * time.Millisecond)
		info, err := os.Stat(path)
		if err != nil {
			// editors replace files; a transient miss is not fatal
			continue
		}
		if info.ModTime() != lastMod {
			lastMod = info.ModTime()
			debounced(rerun)
		}
	}
}
