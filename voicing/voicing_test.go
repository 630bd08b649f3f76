package voicing

import (
	"errors"
	"testing"

	"github.com/jsphweid/chordsmith/chord"
	"github.com/jsphweid/chordsmith/pitch"
	"github.com/jsphweid/chordsmith/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetChordVoicing(t *testing.T) {
	cases := []struct {
		root    string
		quality string
		octave  int
		want    []int
	}{
		{"C", "maj", 4, []int{60, 64, 67}},
		{"A", "min", 4, []int{69, 72, 76}},
		{"G", "7", 3, []int{55, 59, 65}},
		{"C", "maj7", 4, []int{60, 64, 71}},
		{"D", "m7", 4, []int{62, 65, 72}},
		{"Bb", "m7b5", 3, []int{58, 61, 68}},
		{"E", "5", 2, []int{40, 47, 52}},
		{"F#", "dim7", 4, []int{66, 69, 75}},
	}

	for _, c := range cases {
		t.Run(c.root+c.quality, func(t *testing.T) {
			got, err := GetChordVoicing(c.root, c.quality, c.octave)
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestGetChordVoicingOutOfRange(t *testing.T) {
	_, err := GetChordVoicing("G", "maj7", 9)
	assert.True(t, errors.Is(err, pitch.ErrOutOfRange))

	_, err = GetChordVoicing("C", "maj", -2)
	assert.True(t, errors.Is(err, pitch.ErrOutOfRange))
}

func TestGetChordVoicingInvalidRoot(t *testing.T) {
	_, err := GetChordVoicing("H", "maj", 4)
	assert.True(t, errors.Is(err, pitch.ErrInvalidNoteName))
}

func TestGetChordIntervals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]int{0, 4, 11}, GetChordIntervals("maj7"))
	assert.Equal([]int{0, 3, 10}, GetChordIntervals("hdim7"))
	assert.Equal([]int{0, 4, 10}, GetChordIntervals("7#9"))
	assert.Equal([]int{0, 4, 7}, GetChordIntervals("nonsense"))
	assert.Equal([]int{0, 4, 7}, GetChordIntervals("6"))
	assert.Equal([]int{0, 3, 7}, GetChordIntervals("min6"))
	assert.Equal([]int{0, 3, 7}, GetChordIntervals("m"))
}

func TestParseChordSymbol(t *testing.T) {
	cases := []struct {
		in      string
		root    string
		rootPC  int
		quality theory.QualityID
		bass    string
	}{
		{"C", "C", 0, theory.Maj, ""},
		{"  Am7 ", "A", 9, theory.Min7, ""},
		{"Bbm7b5", "Bb", 10, theory.HalfDim7, ""},
		{"F#ø7", "F#", 6, theory.HalfDim7, ""},
		{"EbM7", "Eb", 3, theory.Maj7, ""},
		{"Ebm7", "Eb", 3, theory.Min7, ""},
		{"Dm(maj7)", "D", 2, theory.MinMaj7, ""},
		{"G7sus", "G", 7, theory.Dom7Sus4, ""},
		{"C7/E", "C", 0, theory.Dom7, "E"},
		{"Ab/Eb", "Ab", 8, theory.Maj, "Eb"},
		{"Cb", "Cb", 11, theory.Maj, ""},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			sym, err := ParseChordSymbol(c.in)
			require.NoError(t, err)
			assert := assert.New(t)
			assert.Equal(c.root, sym.Root)
			assert.Equal(c.rootPC, sym.RootPC)
			assert.Equal(c.quality, sym.Quality)
			assert.Equal(c.bass, sym.Bass)
			assert.False(sym.Fallback)
		})
	}
}

func TestParseRejectsInvalidRoot(t *testing.T) {
	for _, in := range []string{"", "   ", "H7", "cmaj7", "#C", "7"} {
		_, err := ParseChordSymbol(in)
		assert.True(t, errors.Is(err, ErrInvalidChordSymbol), "%q", in)
	}
}

func TestUnknownQualityFallsBackToMajor(t *testing.T) {
	sym, err := ParseChordSymbol("Cfoo")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(theory.Maj, sym.Quality)
	assert.True(sym.Fallback)
	assert.Equal("foo", sym.Suffix)
}

func TestSlashWithoutNoteStaysInQuality(t *testing.T) {
	sym, err := ParseChordSymbol("C6/9")

	assert := assert.New(t)
	assert.NoError(err)
	assert.False(sym.HasBass())
	assert.Equal(-1, sym.BassPC)
	assert.True(sym.Fallback)
}

func TestStrictRejectsUnknownQuality(t *testing.T) {
	g := &Generator{Strict: true}

	_, err := g.Parse("Cfoo")
	assert.True(t, errors.Is(err, ErrUnknownQuality))

	_, err = g.Intervals("foo")
	assert.True(t, errors.Is(err, ErrUnknownQuality))

	sym, err := g.Parse("Cm7")
	assert.NoError(t, err)
	assert.Equal(t, theory.Min7, sym.Quality)
}

func TestVoiceAddsSlashBassBelow(t *testing.T) {
	notes, sym, err := std.Voice("C7/E", 4)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]int{52, 60, 64, 70}, notes)
	assert.Equal(theory.Dom7, sym.Quality)

	notes, _, err = std.Voice("C/C", 4)
	assert.NoError(err)
	assert.Equal([]int{60, 64, 67}, notes)
}

func TestGeneratorUsesInjectedDictionary(t *testing.T) {
	dict := theory.New([]theory.ChordDefinition{
		{ID: "quartal", Symbol: "q", Intervals: []int{0, 5, 10}},
	}, nil, map[string]theory.QualityID{"q": "quartal"})

	g := &Generator{Dict: dict}
	notes, sym, err := g.Voice("Dq", 4)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(theory.QualityID("quartal"), sym.Quality)
	assert.Equal([]int{62, 67, 72}, notes)
}

// Shells of these qualities are complete triads on another root and read back as that
// chord: dim7 as a diminished triad, sus4 and 7sus4 as a sus2 triad, which comes first in
// the dictionary. A power chord shell has only two pitch classes.
var ambiguousShells = map[theory.QualityID]bool{
	theory.Sus4:     true,
	theory.Dim7:     true,
	theory.Dom7Sus4: true,
	theory.Power:    true,
}

func TestVoicingRoundTripsThroughMatcher(t *testing.T) {
	dict := theory.Default()
	matcher := chord.NewMatcher(dict)

	for _, def := range dict.Chords() {
		if ambiguousShells[def.ID] {
			continue
		}
		for _, root := range []string{"C", "Eb", "F#", "A"} {
			symbol := root + def.Symbol
			t.Run(symbol, func(t *testing.T) {
				notes, sym, err := std.Voice(symbol, 4)
				require.NoError(t, err)

				pcs := make([]int, len(notes))
				for i, n := range notes {
					pcs[i] = n % 12
				}
				m, ok := matcher.Match(pcs, notes[0]%12)
				require.True(t, ok)

				_, wantFamily, _ := dict.Shell(sym.Quality)
				_, gotFamily, _ := dict.Shell(m.Quality)
				assert.Equal(t, sym.RootPC, m.Root)
				assert.Equal(t, wantFamily, gotFamily)
			})
		}
	}
}
