package cmd

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/jsphweid/chordsmith/chord"
	"github.com/jsphweid/chordsmith/constants"
	"github.com/jsphweid/chordsmith/logger"
	"github.com/jsphweid/chordsmith/theory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	log  = zap.NewNop()
	dict = theory.Default()
)

var rootCmd = &cobra.Command{
	Use:   "chordsmith",
	Short: "Chord segmentation and backing track generation",
	Long: `chordsmith labels the chords in MIDI performances and voices chord symbols
into rhythmic backing patterns.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		l, err := logger.New(constants.GetLogLevel(), constants.GetLogFormat())
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func newEngine() *chord.Engine {
	return chord.NewEngine(dict, constants.GetChordOptions())
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
