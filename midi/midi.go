package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/chordsmith/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DrumChannel is the General MIDI percussion channel (channel 10, zero based).
const DrumChannel = 9

var ErrNoNotes = errors.New("no notes found")

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading midi file %s: %w", filepath, err)
	}
	return Decode(bytes.NewReader(dat))
}

// Decode parses a standard MIDI file. Decoder panics are returned as errors.
func Decode(r io.Reader) (s *smf.SMF, e error) {
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if p := recover(); p != nil {
			s, e = nil, fmt.Errorf("parsing midi file: %v", p)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

type Options struct {
	// IncludeDrums keeps notes on the percussion channel.
	IncludeDrums bool
}

type noteKey struct {
	channel uint8
	key     uint8
}

type openNote struct {
	start    int64
	velocity uint8
}

// NoteEvents pairs note on/off messages of every track into timed notes. A note off closes
// the earliest open note with the same channel and key. Notes still open when their track
// ends are closed there. Times come from the file's tempo map.
func NoteEvents(s *smf.SMF, opts Options) ([]model.NoteEvent, error) {
	var notes []model.NoteEvent
	seconds := func(ticks int64) float64 {
		return float64(s.TimeAt(ticks)) / 1e6
	}

	for _, track := range s.Tracks {
		open := make(map[noteKey][]openNote)
		closeNote := func(k noteKey, end int64) {
			stack := open[k]
			if len(stack) == 0 {
				return
			}
			n := stack[0]
			open[k] = stack[1:]
			startSec := seconds(n.start)
			if dur := seconds(end) - startSec; dur > 0 {
				notes = append(notes, model.NoteEvent{
					Pitch:     k.key,
					StartTime: startSec,
					Duration:  dur,
					Velocity:  n.velocity,
				})
			}
		}

		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			msg := gomidi.Message(event.Message)
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				if channel == DrumChannel && !opts.IncludeDrums {
					continue
				}
				k := noteKey{channel, key}
				open[k] = append(open[k], openNote{start: absTicks, velocity: velocity})
			case msg.GetNoteEnd(&channel, &key):
				closeNote(noteKey{channel, key}, absTicks)
			}
		}

		var dangling []noteKey
		for k, stack := range open {
			if len(stack) > 0 {
				dangling = append(dangling, k)
			}
		}
		sort.Slice(dangling, func(i, j int) bool {
			if dangling[i].channel != dangling[j].channel {
				return dangling[i].channel < dangling[j].channel
			}
			return dangling[i].key < dangling[j].key
		})
		for _, k := range dangling {
			for len(open[k]) > 0 {
				closeNote(k, absTicks)
			}
		}
	}

	if len(notes) == 0 {
		return nil, ErrNoNotes
	}
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].StartTime != notes[j].StartTime {
			return notes[i].StartTime < notes[j].StartTime
		}
		return notes[i].Pitch < notes[j].Pitch
	})
	return notes, nil
}

// Load reads a MIDI file and extracts its notes.
func Load(filepath string, opts Options) ([]model.NoteEvent, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, err
	}
	notes, err := NoteEvents(s, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return notes, nil
}
