package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordsmith/backing"
	"github.com/jsphweid/chordsmith/pitch"
	"github.com/jsphweid/chordsmith/sample"
	"github.com/jsphweid/chordsmith/util"
	"github.com/jsphweid/chordsmith/voicing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	backingStyle  string
	backingBars   int
	backingOctave int
	backingBPM    float64
	backingOut    string
	backingJSON   bool
	backingStrict bool
)

func init() {
	f := backingCmd.Flags()
	f.StringVar(&backingStyle, "style", string(backing.Swing), "rhythm style: bebop, blues, modern, gospel, swing or bossa")
	f.IntVar(&backingBars, "bars", backing.DefaultBars, "length in 4/4 bars")
	f.IntVar(&backingOctave, "octave", backing.DefaultOctave, "octave of the chord roots")
	f.Float64Var(&backingBPM, "bpm", sample.DefaultBPM, "tempo written to the MIDI file")
	f.StringVar(&backingOut, "out", "", "write a MIDI file instead of printing")
	f.BoolVar(&backingJSON, "json", false, "print the pattern as JSON")
	f.BoolVar(&backingStrict, "strict", false, "fail on unknown chord qualities")
	rootCmd.AddCommand(backingCmd)
}

var backingCmd = &cobra.Command{
	Use:     "backing <chords>",
	Short:   "Generates a backing pattern for a chord or progression",
	Example: `  chordsmith backing "Dm7 G7 Cmaj7 Cmaj7" --style bossa --bars 4 --out ii-V-I.mid`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style := backing.ParseStyle(backingStyle)
		if !strings.EqualFold(string(style), strings.TrimSpace(backingStyle)) {
			log.Warn("unknown style, using swing", zap.String("style", backingStyle))
		}

		g := backing.Generator{Voicer: &voicing.Generator{Dict: dict, Strict: backingStrict}}
		p, err := g.Generate(args[0], backing.Options{Style: style, Bars: backingBars, Octave: &backingOctave})
		if err != nil {
			return err
		}

		switch {
		case backingOut != "":
			if err := sample.WriteFile(backingOut, p, sample.Options{BPM: backingBPM, Name: args[0]}); err != nil {
				return err
			}
			log.Info("wrote backing track", zap.String("path", backingOut), zap.Int("notes", len(p.Notes)))
		case backingJSON:
			return util.WriteJSON(cmd.OutOrStdout(), p)
		default:
			for _, n := range p.Notes {
				fmt.Fprintf(cmd.OutOrStdout(), "%6.2f %5.2f  %-4s %d\n",
					n.TimeBeats, n.DurationBeats, pitch.FormatMidi(int(n.Midi), false), n.Midi)
			}
		}
		return nil
	},
}
