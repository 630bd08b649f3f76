package voicing

import (
	"fmt"

	"github.com/jsphweid/chordsmith/pitch"
	"github.com/jsphweid/chordsmith/theory"
)

// Generator turns chord symbols into shell voicings. The zero value uses the standard
// dictionary and the major-triad fallback for unknown qualities.
type Generator struct {
	Dict *theory.Dictionary
	// Strict makes unknown qualities an ErrUnknownQuality instead of a major triad.
	Strict bool
}

var std = &Generator{}

func (g *Generator) dict() *theory.Dictionary {
	if g.Dict == nil {
		return theory.Default()
	}
	return g.Dict
}

// Intervals returns the 3-note shell of a quality id or any of its spellings.
func (g *Generator) Intervals(quality string) ([]int, error) {
	id, ok := g.dict().Resolve(quality)
	if ok {
		if shell, _, ok := g.dict().Shell(id); ok {
			return shell, nil
		}
	}
	if g.Strict {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuality, quality)
	}
	shell, _ := theory.ShellOf([]int{0, 4, 7})
	return shell, nil
}

// Voicing places the shell of quality on root in the given octave (C4 = 60).
func (g *Generator) Voicing(root string, quality string, octave int) ([]int, error) {
	base, err := pitch.NoteNameToMidi(root, octave)
	if err != nil {
		return nil, err
	}
	intervals, err := g.Intervals(quality)
	if err != nil {
		return nil, err
	}
	return stack(base, intervals)
}

func stack(base int, intervals []int) ([]int, error) {
	notes := make([]int, len(intervals))
	for i, iv := range intervals {
		n := base + iv
		if n < pitch.MinMidi || n > pitch.MaxMidi {
			return nil, fmt.Errorf("%w: %d", pitch.ErrOutOfRange, n)
		}
		notes[i] = n
	}
	return notes, nil
}

// Voice parses symbol and voices it. A slash bass different from the root is added an
// octave below the chord.
func (g *Generator) Voice(symbol string, octave int) ([]int, Symbol, error) {
	sym, err := g.Parse(symbol)
	if err != nil {
		return nil, Symbol{}, err
	}
	notes, err := g.Voicing(sym.Root, string(sym.Quality), octave)
	if err != nil {
		return nil, Symbol{}, fmt.Errorf("voicing %q: %w", symbol, err)
	}
	if sym.HasBass() && sym.BassPC != sym.RootPC {
		bass, err := pitch.NoteNameToMidi(sym.Bass, octave-1)
		if err != nil {
			return nil, Symbol{}, fmt.Errorf("voicing %q: %w", symbol, err)
		}
		notes = append([]int{bass}, notes...)
	}
	return notes, sym, nil
}

func GetChordIntervals(quality string) []int {
	intervals, _ := std.Intervals(quality)
	return intervals
}

func GetChordVoicing(root string, quality string, octave int) ([]int, error) {
	return std.Voicing(root, quality, octave)
}
