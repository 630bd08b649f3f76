package cmd

import (
	"fmt"

	"github.com/jsphweid/chordsmith/midi"
	"github.com/jsphweid/chordsmith/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Lists the notes extracted from a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := midi.Load(args[0], midi.Options{IncludeDrums: true})
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, n := range notes {
			fmt.Fprintf(w, "%8.3f %8.3f  %-4s vel %d\n",
				n.StartTime, n.Duration, pitch.FormatMidi(int(n.Pitch), false), n.Velocity)
		}
		fmt.Fprintf(w, "%d notes\n", len(notes))
		return nil
	},
}
