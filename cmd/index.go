package cmd

import (
	"path/filepath"
	"strconv"

	"github.com/jsphweid/chordsmith/bucket"
	"github.com/jsphweid/chordsmith/constants"
	"github.com/jsphweid/chordsmith/file"
	"github.com/jsphweid/chordsmith/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [dir] [max]",
	Short: "Segments every MIDI file under a directory into a chord index",
	Long: `Segments every .mid/.midi file under dir (default $MIDI_DIR) and writes the
chord label buckets and a manifest to $OUT_DIR. max limits the number of files.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dir string
		if len(args) > 0 {
			dir = args[0]
		} else {
			d, err := constants.GetMidiDir()
			if err != nil {
				return err
			}
			dir = d
		}

		var maxNum int
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			maxNum = n
		}

		m, err := Index(dir, constants.GetOutDir(), maxNum)
		if err != nil {
			return err
		}
		notes := make([]int, len(m.Results))
		for i, r := range m.Results {
			notes[i] = r.NumNotes
		}
		log.Info("index complete",
			zap.String("run_id", m.RunID),
			zap.Int("files", len(m.Files)),
			zap.Int("skipped", m.Skipped()),
			zap.Uint64("notes", util.Sum(notes)))
		return nil
	},
}

func BucketsPath(outDir string) string {
	return filepath.Join(outDir, constants.BucketsName)
}

func ManifestPath(outDir string) string {
	return filepath.Join(outDir, constants.ManifestName)
}

// Index rebuilds outDir from the MIDI files found under dir.
func Index(dir string, outDir string, maxNum int) (file.Manifest, error) {
	if err := util.RecreateOutputDir(outDir); err != nil {
		return file.Manifest{}, err
	}
	paths, err := util.GatherAllMidiPaths(dir, maxNum)
	if err != nil {
		return file.Manifest{}, err
	}
	fileNumMap := file.CreateFileNumMap(paths)

	p := bucket.Processor{Engine: newEngine(), Log: log}
	buckets, results := p.ProcessAllMidiFiles(fileNumMap)

	m := file.NewManifest(fileNumMap, results)
	if err := util.CreateJSON(BucketsPath(outDir), buckets); err != nil {
		return file.Manifest{}, err
	}
	if err := util.CreateJSON(ManifestPath(outDir), m); err != nil {
		return file.Manifest{}, err
	}
	return m, nil
}
