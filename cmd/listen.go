package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jsphweid/chordsmith/chord"
	"github.com/jsphweid/chordsmith/live"
	"github.com/jsphweid/chordsmith/pitch"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
	"go.uber.org/zap"
)

var (
	listenPort     int
	listenDebounce time.Duration
	listenList     bool
)

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI input port number")
	listenCmd.Flags().DurationVar(&listenDebounce, "debounce", 50*time.Millisecond, "quiet time before a chord is reported")
	listenCmd.Flags().BoolVar(&listenList, "list", false, "list MIDI input ports and exit")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chord held on a MIDI input",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer midi.CloseDriver()

		if listenList {
			for i, in := range midi.GetInPorts() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i, in.String())
			}
			return nil
		}

		in, err := midi.InPort(listenPort)
		if err != nil {
			return fmt.Errorf("can't open midi input %d: %w", listenPort, err)
		}

		out := cmd.OutOrStdout()
		l := live.NewListener(chord.NewMatcher(dict), listenDebounce, func(u live.Update) {
			fmt.Fprintln(out, describeUpdate(u))
		})
		stop, err := midi.ListenTo(in, l.Handle, midi.HandleError(func(err error) {
			log.Warn("midi input error", zap.Error(err))
		}))
		if err != nil {
			return err
		}
		defer stop()

		log.Info("listening for chords", zap.String("port", in.String()))
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		<-ctx.Done()
		return nil
	},
}

func describeUpdate(u live.Update) string {
	names := make([]string, len(u.Held))
	for i, k := range u.Held {
		names[i] = pitch.FormatMidi(int(k), false)
	}
	held := strings.Join(names, " ")
	switch {
	case len(u.Held) == 0:
		return "-"
	case u.Matched:
		return fmt.Sprintf("%-8s %s", u.Match.Label, held)
	default:
		return fmt.Sprintf("%-8s %s", "?", held)
	}
}
