package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordsmith/midi"
	"github.com/jsphweid/chordsmith/model"
	"github.com/jsphweid/chordsmith/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	segmentJSON  bool
	segmentDrums bool
)

func init() {
	segmentCmd.Flags().BoolVar(&segmentJSON, "json", false, "print regions as JSON")
	segmentCmd.Flags().BoolVar(&segmentDrums, "drums", false, "include the percussion channel")
	rootCmd.AddCommand(segmentCmd)
}

var segmentCmd = &cobra.Command{
	Use:   "segment <file.mid>",
	Short: "Labels the chords of a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		regions, err := segmentFile(args[0], midi.Options{IncludeDrums: segmentDrums})
		if err != nil {
			return err
		}
		if segmentJSON {
			return util.WriteJSON(cmd.OutOrStdout(), model.SegmentResponse{Regions: regions})
		}
		printRegions(cmd.OutOrStdout(), regions)
		return nil
	},
}

func segmentFile(path string, opts midi.Options) ([]model.ChordRegion, error) {
	notes, err := midi.Load(path, opts)
	if err != nil {
		return nil, err
	}
	regions := newEngine().Segment(notes)
	log.Debug("segmented", zap.String("path", path), zap.Int("notes", len(notes)), zap.Int("regions", len(regions)))
	return regions, nil
}

func printRegions(w io.Writer, regions []model.ChordRegion) {
	for _, r := range regions {
		fmt.Fprintf(w, "%8.3f %8.3f  %s\n", r.StartTime, r.EndTime, r.Label)
	}
}
