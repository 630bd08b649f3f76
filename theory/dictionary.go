package theory

import (
	"strings"
	"sync"
)

// Dictionary is an immutable table of chord and scale definitions.
// It is safe for concurrent use; every accessor returns copies.
type Dictionary struct {
	chords     []ChordDefinition
	chordIndex map[QualityID]int
	synonyms   map[string]QualityID

	scales        []ScaleDefinition
	scaleIndex    map[ScaleID]int
	scaleSynonyms map[string]ScaleID
}

// New builds a dictionary from the given tables. Chord order is kept and is the order
// callers iterate in. Every chord and scale id resolves to itself without an explicit synonym.
func New(chords []ChordDefinition, scales []ScaleDefinition, synonyms map[string]QualityID) *Dictionary {
	d := &Dictionary{
		chordIndex:    make(map[QualityID]int, len(chords)),
		synonyms:      make(map[string]QualityID, len(synonyms)+len(chords)),
		scaleIndex:    make(map[ScaleID]int, len(scales)),
		scaleSynonyms: make(map[string]ScaleID),
	}

	for _, c := range chords {
		if _, dup := d.chordIndex[c.ID]; dup {
			continue
		}
		d.chordIndex[c.ID] = len(d.chords)
		d.chords = append(d.chords, c.clone())
		d.synonyms[string(c.ID)] = c.ID
	}
	for k, v := range synonyms {
		if _, ok := d.chordIndex[v]; ok {
			d.synonyms[k] = v
		}
	}

	for _, s := range scales {
		if _, dup := d.scaleIndex[s.ID]; dup {
			continue
		}
		d.scaleIndex[s.ID] = len(d.scales)
		d.scales = append(d.scales, s.clone())
	}
	return d
}

var standard = sync.OnceValue(func() *Dictionary {
	d := New(standardChords, standardScales, standardSynonyms)
	for k, v := range standardScaleSynonyms {
		d.scaleSynonyms[k] = v
	}
	return d
})

// Default returns the standard dictionary. It is built once and shared.
func Default() *Dictionary {
	return standard()
}

func (d *Dictionary) Chord(id QualityID) (ChordDefinition, bool) {
	i, ok := d.chordIndex[id]
	if !ok {
		return ChordDefinition{}, false
	}
	return d.chords[i].clone(), true
}

// Chords returns every definition in dictionary order.
func (d *Dictionary) Chords() []ChordDefinition {
	res := make([]ChordDefinition, len(d.chords))
	for i, c := range d.chords {
		res[i] = c.clone()
	}
	return res
}

// Order is the position of id in dictionary order, -1 when unknown.
func (d *Dictionary) Order(id QualityID) int {
	if i, ok := d.chordIndex[id]; ok {
		return i
	}
	return -1
}

// Resolve maps a quality suffix ("m7b5", "Δ7", "") to its canonical id.
func (d *Dictionary) Resolve(suffix string) (QualityID, bool) {
	id, ok := d.synonyms[suffix]
	return id, ok
}

func (d *Dictionary) Scale(id ScaleID) (ScaleDefinition, bool) {
	i, ok := d.scaleIndex[id]
	if !ok {
		return ScaleDefinition{}, false
	}
	return d.scales[i].clone(), true
}

func (d *Dictionary) Scales() []ScaleDefinition {
	res := make([]ScaleDefinition, len(d.scales))
	for i, s := range d.scales {
		res[i] = s.clone()
	}
	return res
}

// ResolveScale accepts ids and a few common names ("major", "natural minor").
func (d *Dictionary) ResolveScale(name string) (ScaleID, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	if _, ok := d.scaleIndex[ScaleID(key)]; ok {
		return ScaleID(key), true
	}
	id, ok := d.scaleSynonyms[key]
	return id, ok
}

// ScalePitchClasses spells a scale from root as pitch classes.
func (d *Dictionary) ScalePitchClasses(root int, id ScaleID) ([]int, bool) {
	s, ok := d.Scale(id)
	if !ok {
		return nil, false
	}
	res := make([]int, len(s.Intervals))
	for i, iv := range s.Intervals {
		res[i] = (((root+iv)%12)+12)%12
	}
	return res, true
}

// DiatonicChord returns the root pitch class and quality of the seventh chord on the
// given 1-based degree of a harmonised scale.
func (d *Dictionary) DiatonicChord(root int, id ScaleID, degree int) (int, QualityID, bool) {
	s, ok := d.Scale(id)
	if !ok || degree < 1 || degree > len(s.DegreeQualities) {
		return 0, "", false
	}
	pc := (((root+s.Intervals[degree-1])%12)+12)%12
	return pc, s.DegreeQualities[degree-1], true
}
