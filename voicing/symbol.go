package voicing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordsmith/pitch"
	"github.com/jsphweid/chordsmith/theory"
)

var (
	ErrInvalidChordSymbol = errors.New("invalid chord symbol")
	ErrUnknownQuality     = errors.New("unknown chord quality")
)

// Symbol is a parsed chord symbol such as "Bbm7" or "C7/E".
type Symbol struct {
	Text    string
	Root    string
	RootPC  int
	Quality theory.QualityID
	// Suffix is the quality text as written.
	Suffix string
	// Bass is the slash bass note, "" when there is none.
	Bass   string
	BassPC int
	// Fallback is set when Suffix was not recognised and the chord was read as a major triad.
	Fallback bool
}

func (s Symbol) HasBass() bool {
	return s.Bass != ""
}

// splitNote reads a leading [A-G][#b]? and returns it with the rest of s.
func splitNote(s string) (string, string, bool) {
	if s == "" || s[0] < 'A' || s[0] > 'G' {
		return "", s, false
	}
	n := 1
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		n = 2
	}
	return s[:n], s[n:], true
}

// Parse reads root, quality and optional slash bass. An unrecognised quality is read as a
// major triad unless the generator is strict.
func (g *Generator) Parse(symbol string) (Symbol, error) {
	text := strings.TrimSpace(symbol)
	root, rest, ok := splitNote(text)
	if !ok {
		return Symbol{}, fmt.Errorf("%w: %q", ErrInvalidChordSymbol, symbol)
	}
	rootPC, err := pitch.PitchClassOf(root)
	if err != nil {
		return Symbol{}, fmt.Errorf("%w: %q", ErrInvalidChordSymbol, symbol)
	}

	sym := Symbol{Text: text, Root: root, RootPC: rootPC, Suffix: rest, BassPC: -1}
	if i := strings.LastIndex(rest, "/"); i >= 0 {
		if bass, tail, ok := splitNote(rest[i+1:]); ok && tail == "" {
			sym.Suffix = rest[:i]
			sym.Bass = bass
			sym.BassPC, _ = pitch.PitchClassOf(bass)
		}
	}

	q, ok := g.dict().Resolve(strings.TrimSpace(sym.Suffix))
	switch {
	case ok:
		sym.Quality = q
	case g.Strict:
		return Symbol{}, fmt.Errorf("%w: %q in %q", ErrUnknownQuality, sym.Suffix, symbol)
	default:
		sym.Quality = theory.Maj
		sym.Fallback = true
	}
	return sym, nil
}

func ParseChordSymbol(symbol string) (Symbol, error) {
	return std.Parse(symbol)
}
