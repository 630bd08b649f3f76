package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var closedQualities = []QualityID{
	Maj, Min, Dim, Aug, Maj7, Min7, Dom7, Dim7, HalfDim7, MinMaj7, Aug7, Dom9, Maj9, Min9,
	Dom11, Dom13, Sus2, Sus4, Dom7Sus4, Add9, Add11, Six, Min6, Power, Dom7Flat5, Dom7Sharp5,
	Dom7Flat9, Dom7Sharp9,
}

func TestDefaultDictionaryHasClosedQualitySetInOrder(t *testing.T) {
	chords := Default().Chords()
	require.Len(t, chords, len(closedQualities))
	for i, id := range closedQualities {
		assert.Equal(t, id, chords[i].ID)
		assert.Equal(t, i, Default().Order(id))
		assert.Equal(t, 0, chords[i].Intervals[0], "root of %s", id)
	}
}

func TestUnknownKeysAreNotFound(t *testing.T) {
	assert := assert.New(t)
	d := Default()

	_, ok := d.Chord("maj13#11")
	assert.False(ok)
	_, ok = d.Scale("bebop_dominant")
	assert.False(ok)
	_, ok = d.Resolve("xyz")
	assert.False(ok)
	assert.Equal(-1, d.Order("nope"))
	_, _, ok = d.Shell("nope")
	assert.False(ok)
}

func TestResolveSynonyms(t *testing.T) {
	cases := map[string]QualityID{
		"":        Maj,
		"M":       Maj,
		"m":       Min,
		"-":       Min,
		"m7":      Min7,
		"M7":      Maj7,
		"Δ7":      Maj7,
		"m7b5":    HalfDim7,
		"ø7":      HalfDim7,
		"mMaj7":   MinMaj7,
		"m(maj7)": MinMaj7,
		"°7":      Dim7,
		"+":       Aug,
		"7+":      Aug7,
		"sus":     Sus4,
		"7sus":    Dom7Sus4,
		"no3":     Power,
		"add2":    Add9,
		"-6":      Min6,
		"7#9":     Dom7Sharp9,
		"hdim7":   HalfDim7,
	}

	d := Default()
	for suffix, want := range cases {
		t.Run(suffix, func(t *testing.T) {
			got, ok := d.Resolve(suffix)
			assert.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestEveryLabelSymbolResolvesToItsQuality(t *testing.T) {
	d := Default()
	for _, c := range d.Chords() {
		got, ok := d.Resolve(c.Symbol)
		assert.True(t, ok, c.Symbol)
		assert.Equal(t, c.ID, got, c.Symbol)
	}
}

func TestReturnedDefinitionsAreCopies(t *testing.T) {
	d := Default()
	c, ok := d.Chord(Maj)
	require.True(t, ok)
	c.Intervals[1] = 3

	again, _ := d.Chord(Maj)
	assert.Equal(t, []int{0, 4, 7}, again.Intervals)
}

func TestCustomDictionary(t *testing.T) {
	d := New(
		[]ChordDefinition{{ID: "quartal", Symbol: "q", Intervals: []int{0, 5, 10}}},
		nil,
		map[string]QualityID{"4ths": "quartal", "bogus": "missing"},
	)

	assert := assert.New(t)
	id, ok := d.Resolve("4ths")
	assert.True(ok)
	assert.Equal(QualityID("quartal"), id)

	_, ok = d.Resolve("bogus")
	assert.False(ok)
	_, ok = d.Chord(Maj)
	assert.False(ok)
	assert.Len(Default().Chords(), len(closedQualities))
}

func TestMask(t *testing.T) {
	c, _ := Default().Chord(Dom9)
	// 0, 2, 4, 7, 10
	assert.Equal(t, uint16(1<<0|1<<2|1<<4|1<<7|1<<10), c.Mask())
}

func TestScales(t *testing.T) {
	assert := assert.New(t)
	d := Default()

	for _, s := range d.Scales() {
		assert.LessOrEqual(len(s.Intervals), 7, s.ID)
		assert.Len(s.DegreeLabels, len(s.Intervals), s.ID)
		for _, iv := range s.Intervals {
			assert.True(iv >= 0 && iv <= 11, s.ID)
		}
		if len(s.DegreeQualities) > 0 {
			assert.Len(s.DegreeQualities, len(s.Intervals), s.ID)
		}
	}

	lydian, ok := d.Scale(Lydian)
	assert.True(ok)
	assert.Equal([]string{"1", "2", "3", "#4", "5", "6", "7"}, lydian.DegreeLabels)

	dorian, _ := d.Scale(Dorian)
	assert.Equal([]string{"1", "2", "b3", "4", "5", "6", "b7"}, dorian.DegreeLabels)
	assert.Equal([]QualityID{Min7, Min7, Maj7, Dom7, Min7, HalfDim7, Maj7}, dorian.DegreeQualities)

	blues, _ := d.Scale(Blues)
	assert.Equal([]string{"1", "b3", "4", "b5", "5", "b7"}, blues.DegreeLabels)
}

func TestResolveScale(t *testing.T) {
	assert := assert.New(t)
	d := Default()

	id, ok := d.ResolveScale("Major")
	assert.True(ok)
	assert.Equal(Ionian, id)

	id, ok = d.ResolveScale("natural minor")
	assert.True(ok)
	assert.Equal(Aeolian, id)

	id, ok = d.ResolveScale("Harmonic Minor")
	assert.True(ok)
	assert.Equal(HarmonicMinor, id)

	_, ok = d.ResolveScale("chromatic")
	assert.False(ok)
}

func TestScalePitchClasses(t *testing.T) {
	pcs, ok := Default().ScalePitchClasses(7, Ionian)
	assert.True(t, ok)
	assert.Equal(t, []int{7, 9, 11, 0, 2, 4, 6}, pcs)
}

func TestDiatonicChord(t *testing.T) {
	assert := assert.New(t)
	d := Default()

	root, q, ok := d.DiatonicChord(0, Ionian, 5)
	assert.True(ok)
	assert.Equal(7, root)
	assert.Equal(Dom7, q)

	root, q, ok = d.DiatonicChord(9, HarmonicMinor, 5)
	assert.True(ok)
	assert.Equal(4, root)
	assert.Equal(Dom7, q)

	_, _, ok = d.DiatonicChord(0, Ionian, 8)
	assert.False(ok)
	_, _, ok = d.DiatonicChord(0, Blues, 1)
	assert.False(ok)
}
