package sample

import (
	"io"
	"math"
	"os"
	"sort"

	"github.com/jsphweid/chordsmith/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	DefaultBPM      = 120.0
	DefaultVelocity = 64
)

type Options struct {
	BPM     float64
	Channel uint8
	// Name is written as the track name when set.
	Name string
}

type tickEvent struct {
	tick     uint32
	off      bool
	key      uint8
	velocity uint8
}

// Create renders a backing pattern as a single-track standard MIDI file in 4/4.
func Create(p model.BackingPattern, opts Options) (*smf.SMF, error) {
	bpm := opts.BPM
	if bpm <= 0 {
		bpm = DefaultBPM
	}

	res := smf.New()
	ticks, ok := res.TimeFormat.(smf.MetricTicks)
	if !ok {
		ticks = smf.MetricTicks(960)
	}
	toTicks := func(beats float64) uint32 {
		return uint32(math.Round(beats * float64(ticks.Ticks4th())))
	}

	var events []tickEvent
	for _, n := range p.Notes {
		start := toTicks(n.TimeBeats)
		vel := n.Velocity
		if vel == 0 {
			// a zero velocity note on reads back as a note off
			vel = DefaultVelocity
		}
		events = append(events,
			tickEvent{tick: start, key: n.Midi, velocity: vel},
			tickEvent{tick: start + toTicks(n.DurationBeats), off: true, key: n.Midi},
		)
	}

	// offs first so a repeated key is released before it is struck again
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].off && !events[j].off
	})

	var track smf.Track
	if opts.Name != "" {
		track.Add(0, smf.MetaTrackSequenceName(opts.Name))
	}
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(bpm))

	var last uint32
	for _, e := range events {
		delta := e.tick - last
		last = e.tick
		if e.off {
			track.Add(delta, midi.NoteOff(opts.Channel, e.key))
		} else {
			track.Add(delta, midi.NoteOn(opts.Channel, e.key, e.velocity))
		}
	}

	end := toTicks(p.TotalBeats)
	var tail uint32
	if end > last {
		tail = end - last
	}
	track.Close(tail)

	if err := res.Add(track); err != nil {
		return nil, err
	}
	return res, nil
}

func Write(w io.Writer, p model.BackingPattern, opts Options) error {
	s, err := Create(p, opts)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func WriteFile(path string, p model.BackingPattern, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, p, opts)
}
