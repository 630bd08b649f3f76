package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jsphweid/chordsmith/chord"
	"github.com/jsphweid/chordsmith/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:     "identify <note>...",
	Short:   "Names the chord formed by MIDI note numbers or note names",
	Example: "  chordsmith identify 60 64 67 71\n  chordsmith identify E G Bb D",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pitches, err := parsePitches(args)
		if err != nil {
			return err
		}
		m, ok := identify(pitches)
		if !ok {
			return errors.New("no chord matches these notes")
		}
		fmt.Fprintln(cmd.OutOrStdout(), m.Label)
		return nil
	},
}

// parsePitches accepts MIDI numbers or note names (octave 4).
func parsePitches(args []string) ([]int, error) {
	pitches := make([]int, 0, len(args))
	for _, a := range args {
		if n, err := strconv.Atoi(a); err == nil {
			if n < pitch.MinMidi || n > pitch.MaxMidi {
				return nil, fmt.Errorf("%w: %d", pitch.ErrOutOfRange, n)
			}
			pitches = append(pitches, n)
			continue
		}
		n, err := pitch.NoteNameToMidi(a, 4)
		if err != nil {
			return nil, err
		}
		pitches = append(pitches, n)
	}
	return pitches, nil
}

// identify matches pitches with the lowest one as bass.
func identify(pitches []int) (chord.Match, bool) {
	if len(pitches) == 0 {
		return chord.Match{}, false
	}
	low := pitches[0]
	for _, p := range pitches {
		if p < low {
			low = p
		}
	}
	return chord.NewMatcher(dict).Match(pitches, low)
}
