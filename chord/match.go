package chord

import (
	"math/bits"

	"github.com/jsphweid/chordsmith/pitch"
	"github.com/jsphweid/chordsmith/theory"
)

const fifth = 7

type tier int

const (
	tierExact tier = iota
	tierShell
	tierSubset
	tierShellSubset
	noTier
)

type Match struct {
	Root    int
	Quality theory.QualityID
	Label   string
	// Exact is set when the input is exactly the chord's tones, nothing missing or added.
	Exact bool
}

type template struct {
	id     theory.QualityID
	symbol string
	order  int
	mask   uint16
	// shell is mask without the fifth, zero when the chord cannot be recognised without it.
	shell uint16
}

// Matcher labels pitch-class sets against a dictionary. Templates are computed once, so a
// Matcher is cheap to share and safe for concurrent use.
type Matcher struct {
	templates []template
}

func NewMatcher(dict *theory.Dictionary) *Matcher {
	var m Matcher
	for i, c := range dict.Chords() {
		t := template{id: c.ID, symbol: c.Symbol, order: i, mask: c.Mask()}
		if t.mask&(1<<fifth) != 0 && bits.OnesCount16(t.mask) >= 4 {
			t.shell = t.mask &^ (1 << fifth)
		}
		m.templates = append(m.templates, t)
	}
	return &m
}

func (t template) tier(rel uint16) tier {
	switch {
	case t.mask == rel:
		return tierExact
	case t.shell != 0 && t.shell == rel:
		return tierShell
	case t.mask&rel == t.mask:
		return tierSubset
	case t.shell != 0 && t.shell&rel == t.shell:
		return tierShellSubset
	}
	return noTier
}

type candidate struct {
	root      int
	t         *template
	tier      tier
	explained int
}

// beats ranks a over b: tier, explained intervals, dictionary order, then for the same
// quality on different roots the root on the bass, then the lower root.
func (a candidate) beats(b candidate, bass int) bool {
	if a.tier != b.tier {
		return a.tier < b.tier
	}
	if a.explained != b.explained {
		return a.explained > b.explained
	}
	if a.t.order != b.t.order {
		return a.t.order < b.t.order
	}
	if aBass, bBass := a.root == bass, b.root == bass; aBass != bBass {
		return aBass
	}
	return a.root < b.root
}

// Match returns the best (root, quality) for a set of pitch classes. Duplicates and values
// outside 0..11 are folded. bass is the pitch class of the lowest sounding note, -1 when
// unknown; it only chooses between roots of a symmetric chord such as aug or dim7.
// Fewer than three distinct pitch classes never match.
func (m *Matcher) Match(pitchClasses []int, bass int) (Match, bool) {
	var set uint16
	for _, pc := range pitchClasses {
		set |= 1 << uint(pitch.Mod12(pc))
	}
	if bits.OnesCount16(set) < 3 {
		return Match{}, false
	}
	if bass >= 0 {
		bass = pitch.Mod12(bass)
	}

	var best candidate
	found := false
	for root := 0; root < 12; root++ {
		if set&(1<<uint(root)) == 0 {
			continue
		}
		rel := rotate(set, root)
		for i := range m.templates {
			t := &m.templates[i]
			tr := t.tier(rel)
			if tr == noTier {
				continue
			}
			c := candidate{root: root, t: t, tier: tr, explained: bits.OnesCount16(t.mask & rel)}
			if !found || c.beats(best, bass) {
				best = c
				found = true
			}
		}
	}
	if !found {
		return Match{}, false
	}
	return Match{
		Root:    best.root,
		Quality: best.t.id,
		Label:   Label(best.root, best.t.symbol),
		Exact:   best.tier == tierExact,
	}, true
}

// rotate re-expresses a pitch-class mask relative to root.
func rotate(set uint16, root int) uint16 {
	var rel uint16
	for pc := 0; pc < 12; pc++ {
		if set&(1<<uint(pc)) != 0 {
			rel |= 1 << uint(pitch.Mod12(pc-root))
		}
	}
	return rel
}

// Label spells a chord as root name plus quality symbol, e.g. "F#m7".
func Label(root int, symbol string) string {
	return pitch.PitchClassName(root, false) + symbol
}
