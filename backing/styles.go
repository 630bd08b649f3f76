package backing

import "strings"

type Style string

const (
	Swing  Style = "swing"
	Bebop  Style = "bebop"
	Blues  Style = "blues"
	Modern Style = "modern"
	Gospel Style = "gospel"
	Bossa  Style = "bossa"
)

// RhythmPattern is the list of beat offsets hit within one bar.
type RhythmPattern []float64

var patterns = map[Style]RhythmPattern{
	Swing:  {0, 2},
	Bebop:  {0, 1.5, 3},
	Blues:  {0, 1, 2, 3},
	Modern: {0.5, 2.5},
	Gospel: {0, 1, 1.5, 3},
	Bossa:  {0, 2.5, 3},
}

// Styles lists the known styles in a fixed order.
func Styles() []Style {
	return []Style{Bebop, Blues, Modern, Gospel, Swing, Bossa}
}

// ParseStyle maps a style name to a known style. Unknown names become Swing.
func ParseStyle(name string) Style {
	s := Style(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := patterns[s]; ok {
		return s
	}
	return Swing
}

func (s Style) Pattern() RhythmPattern {
	p, ok := patterns[s]
	if !ok {
		p = patterns[Swing]
	}
	return append(RhythmPattern(nil), p...)
}
