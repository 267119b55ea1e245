package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SENAndrhevn23/FNF-Tools/midichart"
	"github.com/SENAndrhevn23/FNF-Tools/stream"
	"github.com/SENAndrhevn23/FNF-Tools/ui"
	"github.com/SENAndrhevn23/FNF-Tools/util"
)

var (
	flagBPM  float64
	flagName string
	flagSide string
)

func init() {
	convertCmd.Flags().Float64Var(&flagBPM, "bpm", 120, "chart bpm metadata")
	convertCmd.Flags().StringVar(&flagName, "name", "Test", "song name")
	convertCmd.Flags().StringVar(&flagSide, "side", "player", "which side gets the notes: player or opponent")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <song.mid>",
	Short: "Convert a MIDI file to a Psych Engine chart",
	Long:  `Flattens every note in the MIDI file onto one side (full song on player or opponent) and writes a complete Psych Engine chart.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		side := midichart.Side(flagSide)
		if side != midichart.SidePlayer && side != midichart.SideOpponent {
			return fmt.Errorf("unknown side %q", flagSide)
		}

		doc, err := midichart.Convert(args[0], flagBPM, flagName, side)
		if err != nil {
			return err
		}

		root := flagOutputRoot
		if root == "" {
			root = filepath.Dir(args[0])
		}
		dest := filepath.Join(root, fmt.Sprintf("%v_%v_full.json", util.Stem(args[0]), side))
		w := &stream.Writer{
			Dest:       dest,
			Meta:       doc.Meta,
			NotesIndex: doc.NotesIndex,
			Count:      len(doc.Sections),
			Indent:     "  ",
		}
		if _, err := w.Write(stream.FromSections(doc.Sections)); err != nil {
			return err
		}
		ui.Savedf("Saved %v", dest)
		ui.Infof("Total notes: %v", doc.NoteCount())
		return nil
	},
}
