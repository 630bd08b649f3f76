package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordsmith/backing"
	"github.com/jsphweid/chordsmith/pitch"
	"github.com/jsphweid/chordsmith/voicing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	voiceOctave int
	voiceStrict bool
)

func init() {
	voiceCmd.Flags().IntVar(&voiceOctave, "octave", backing.DefaultOctave, "octave of the chord root")
	voiceCmd.Flags().BoolVar(&voiceStrict, "strict", false, "fail on unknown chord qualities")
	rootCmd.AddCommand(voiceCmd)
}

var voiceCmd = &cobra.Command{
	Use:   "voice <symbol>",
	Short: "Prints the shell voicing of a chord symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := voicing.Generator{Dict: dict, Strict: voiceStrict}
		notes, sym, err := g.Voice(args[0], voiceOctave)
		if err != nil {
			return err
		}
		if sym.Fallback {
			log.Warn("unknown chord quality, using a major triad",
				zap.String("symbol", sym.Text), zap.String("quality", sym.Suffix))
		}

		names := make([]string, len(notes))
		for i, n := range notes {
			names[i] = fmt.Sprintf("%d(%s)", n, pitch.FormatMidi(n, false))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", sym.Text, strings.Join(names, " "))
		return nil
	},
}
