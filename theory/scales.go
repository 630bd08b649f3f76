package theory

import "strings"

type ScaleID string

const (
	Ionian           ScaleID = "ionian"
	Dorian           ScaleID = "dorian"
	Phrygian         ScaleID = "phrygian"
	Lydian           ScaleID = "lydian"
	Mixolydian       ScaleID = "mixolydian"
	Aeolian          ScaleID = "aeolian"
	Locrian          ScaleID = "locrian"
	HarmonicMinor    ScaleID = "harmonic_minor"
	MelodicMinor     ScaleID = "melodic_minor"
	MajorPentatonic  ScaleID = "major_pentatonic"
	MinorPentatonic  ScaleID = "minor_pentatonic"
	Blues            ScaleID = "blues"
	MajorBlues       ScaleID = "major_blues"
	WholeTone        ScaleID = "whole_tone"
	AlteredScale     ScaleID = "altered"
	LydianDominant   ScaleID = "lydian_dominant"
	PhrygianDominant ScaleID = "phrygian_dominant"
	HungarianMinor   ScaleID = "hungarian_minor"
	Hirajoshi        ScaleID = "hirajoshi"
)

type ScaleDefinition struct {
	ID        ScaleID
	Name      string
	Intervals []int
	// DegreeLabels holds one label per interval, e.g. "b3" for a minor third.
	DegreeLabels []string
	// DegreeQualities is the diatonic seventh-chord quality built on each degree.
	// Empty for scales that are not harmonised.
	DegreeQualities []QualityID
}

func (s ScaleDefinition) clone() ScaleDefinition {
	s.Intervals = append([]int(nil), s.Intervals...)
	s.DegreeLabels = append([]string(nil), s.DegreeLabels...)
	s.DegreeQualities = append([]QualityID(nil), s.DegreeQualities...)
	return s
}

var intervalLabels = [12]string{"1", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7"}
var majorSteps = [7]int{0, 2, 4, 5, 7, 9, 11}

// degreeLabels names heptatonic degrees by position (so lydian gets "#4", not "b5")
// and everything else by interval.
func degreeLabels(intervals []int) []string {
	labels := make([]string, len(intervals))
	for i, iv := range intervals {
		if len(intervals) != 7 {
			labels[i] = intervalLabels[iv]
			continue
		}
		num := string(rune('1' + i))
		switch diff := iv - majorSteps[i]; {
		case diff == 0:
			labels[i] = num
		case diff < 0:
			labels[i] = strings.Repeat("b", -diff) + num
		default:
			labels[i] = strings.Repeat("#", diff) + num
		}
	}
	return labels
}

var majorModeQualities = []QualityID{Maj7, Min7, Min7, Maj7, Dom7, Min7, HalfDim7}

func modeQualities(offset int) []QualityID {
	res := make([]QualityID, len(majorModeQualities))
	for i := range res {
		res[i] = majorModeQualities[(i+offset)%len(majorModeQualities)]
	}
	return res
}

func scale(id ScaleID, name string, intervals []int, qualities []QualityID) ScaleDefinition {
	return ScaleDefinition{
		ID:              id,
		Name:            name,
		Intervals:       intervals,
		DegreeLabels:    degreeLabels(intervals),
		DegreeQualities: qualities,
	}
}

// The augmented third degree of both minor variants has no seventh chord in the
// dictionary, so it is harmonised as a plain augmented triad.
var standardScales = []ScaleDefinition{
	scale(Ionian, "Ionian", []int{0, 2, 4, 5, 7, 9, 11}, modeQualities(0)),
	scale(Dorian, "Dorian", []int{0, 2, 3, 5, 7, 9, 10}, modeQualities(1)),
	scale(Phrygian, "Phrygian", []int{0, 1, 3, 5, 7, 8, 10}, modeQualities(2)),
	scale(Lydian, "Lydian", []int{0, 2, 4, 6, 7, 9, 11}, modeQualities(3)),
	scale(Mixolydian, "Mixolydian", []int{0, 2, 4, 5, 7, 9, 10}, modeQualities(4)),
	scale(Aeolian, "Aeolian", []int{0, 2, 3, 5, 7, 8, 10}, modeQualities(5)),
	scale(Locrian, "Locrian", []int{0, 1, 3, 5, 6, 8, 10}, modeQualities(6)),
	scale(HarmonicMinor, "Harmonic Minor", []int{0, 2, 3, 5, 7, 8, 11},
		[]QualityID{MinMaj7, HalfDim7, Aug, Min7, Dom7, Maj7, Dim7}),
	scale(MelodicMinor, "Melodic Minor", []int{0, 2, 3, 5, 7, 9, 11},
		[]QualityID{MinMaj7, Min7, Aug, Dom7, Dom7, HalfDim7, HalfDim7}),
	scale(MajorPentatonic, "Major Pentatonic", []int{0, 2, 4, 7, 9}, nil),
	scale(MinorPentatonic, "Minor Pentatonic", []int{0, 3, 5, 7, 10}, nil),
	scale(Blues, "Blues Scale", []int{0, 3, 5, 6, 7, 10}, nil),
	scale(MajorBlues, "Major Blues", []int{0, 2, 3, 4, 7, 9}, nil),
	scale(WholeTone, "Whole Tone", []int{0, 2, 4, 6, 8, 10}, nil),
	scale(AlteredScale, "Altered Scale", []int{0, 1, 3, 4, 6, 8, 10}, nil),
	scale(LydianDominant, "Lydian Dominant", []int{0, 2, 4, 6, 7, 9, 10}, nil),
	scale(PhrygianDominant, "Phrygian Dominant", []int{0, 1, 4, 5, 7, 8, 10}, nil),
	scale(HungarianMinor, "Hungarian Minor", []int{0, 2, 3, 6, 7, 8, 11}, nil),
	scale(Hirajoshi, "Hirajoshi", []int{0, 2, 3, 7, 8}, nil),
}

var standardScaleSynonyms = map[string]ScaleID{
	"major":         Ionian,
	"minor":         Aeolian,
	"natural_minor": Aeolian,
	"jazz_minor":    MelodicMinor,
	"super_locrian": AlteredScale,
	"spanish":       PhrygianDominant,
}
