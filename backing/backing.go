package backing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/chordsmith/model"
	"github.com/jsphweid/chordsmith/voicing"
)

const (
	BeatsPerBar     = 4
	HitDuration     = 0.5
	DefaultBars     = 2
	DefaultOctave   = 4
	DefaultVelocity = 80
)

var ErrEmptyContext = errors.New("empty chord context")

type Options struct {
	Style Style
	// Bars defaults to DefaultBars when not positive.
	Bars int
	// Octave of the chord roots, DefaultOctave when nil. C0 is MIDI 12.
	Octave *int
}

type Generator struct {
	Voicer *voicing.Generator
}

// Generate voices every chord of context, a single symbol or a space separated progression,
// and plays it with the style's rhythm. Each chord gets an equal share of the bars; its
// pattern restarts on the chord's first beat and repeats every bar, and hits falling at or
// past the end of the chord's share are dropped.
func (g *Generator) Generate(context string, opts Options) (model.BackingPattern, error) {
	symbols := strings.Fields(context)
	if len(symbols) == 0 {
		return model.BackingPattern{}, ErrEmptyContext
	}
	bars := opts.Bars
	if bars <= 0 {
		bars = DefaultBars
	}
	octave := DefaultOctave
	if opts.Octave != nil {
		octave = *opts.Octave
	}
	voicer := g.Voicer
	if voicer == nil {
		voicer = &voicing.Generator{}
	}

	voicings := make([][]int, len(symbols))
	for i, symbol := range symbols {
		notes, _, err := voicer.Voice(symbol, octave)
		if err != nil {
			return model.BackingPattern{}, fmt.Errorf("chord %d %q: %w", i+1, symbol, err)
		}
		voicings[i] = notes
	}

	total := float64(bars * BeatsPerBar)
	perChord := total / float64(len(symbols))
	pattern := ParseStyle(string(opts.Style)).Pattern()

	res := model.BackingPattern{TotalBeats: total}
	for i, notes := range voicings {
		start := float64(i) * perChord
		for bar := 0.0; bar < perChord; bar += BeatsPerBar {
			for _, hit := range pattern {
				offset := bar + hit
				if offset >= perChord {
					continue
				}
				for _, n := range notes {
					res.Notes = append(res.Notes, model.PatternNote{
						Midi:          uint8(n),
						TimeBeats:     start + offset,
						DurationBeats: HitDuration,
						Velocity:      DefaultVelocity,
					})
				}
			}
		}
	}

	sort.SliceStable(res.Notes, func(i, j int) bool {
		if res.Notes[i].TimeBeats != res.Notes[j].TimeBeats {
			return res.Notes[i].TimeBeats < res.Notes[j].TimeBeats
		}
		return res.Notes[i].Midi < res.Notes[j].Midi
	})
	return res, nil
}

func Generate(context string, style Style, bars int) (model.BackingPattern, error) {
	var g Generator
	return g.Generate(context, Options{Style: style, Bars: bars})
}
