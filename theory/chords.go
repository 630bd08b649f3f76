package theory

// QualityID is the canonical, closed identifier of a chord quality.
type QualityID string

const (
	Maj        QualityID = "maj"
	Min        QualityID = "min"
	Dim        QualityID = "dim"
	Aug        QualityID = "aug"
	Maj7       QualityID = "maj7"
	Min7       QualityID = "min7"
	Dom7       QualityID = "7"
	Dim7       QualityID = "dim7"
	HalfDim7   QualityID = "hdim7"
	MinMaj7    QualityID = "minmaj7"
	Aug7       QualityID = "aug7"
	Dom9       QualityID = "9"
	Maj9       QualityID = "maj9"
	Min9       QualityID = "min9"
	Dom11      QualityID = "11"
	Dom13      QualityID = "13"
	Sus2       QualityID = "sus2"
	Sus4       QualityID = "sus4"
	Dom7Sus4   QualityID = "7sus4"
	Add9       QualityID = "add9"
	Add11      QualityID = "add11"
	Six        QualityID = "6"
	Min6       QualityID = "min6"
	Power      QualityID = "5"
	Dom7Flat5  QualityID = "7b5"
	Dom7Sharp5 QualityID = "7#5"
	Dom7Flat9  QualityID = "7b9"
	Dom7Sharp9 QualityID = "7#9"
)

type Category string

const (
	Triad     Category = "triad"
	Seventh   Category = "seventh"
	Extended  Category = "extended"
	Suspended Category = "suspended"
	Added     Category = "added"
	Sixth     Category = "sixth"
	PowerCat  Category = "power"
	Altered   Category = "altered"
)

type ChordDefinition struct {
	ID   QualityID
	Name string
	// Symbol is the suffix printed after the root in a label, "" for a major triad.
	Symbol    string
	Intervals []int
	Category  Category
}

func (c ChordDefinition) clone() ChordDefinition {
	c.Intervals = append([]int(nil), c.Intervals...)
	return c
}

// Mask is the set of intervals reduced mod 12, one bit per pitch class.
func (c ChordDefinition) Mask() uint16 {
	var mask uint16
	for _, iv := range c.Intervals {
		mask |= 1 << uint(((iv%12)+12)%12)
	}
	return mask
}

// standardChords is in canonical order. The matcher breaks its final ties on this order,
// so aug7 wins over the enharmonically identical 7#5.
var standardChords = []ChordDefinition{
	{ID: Maj, Name: "Major Triad", Symbol: "", Intervals: []int{0, 4, 7}, Category: Triad},
	{ID: Min, Name: "Minor Triad", Symbol: "m", Intervals: []int{0, 3, 7}, Category: Triad},
	{ID: Dim, Name: "Diminished Triad", Symbol: "dim", Intervals: []int{0, 3, 6}, Category: Triad},
	{ID: Aug, Name: "Augmented Triad", Symbol: "aug", Intervals: []int{0, 4, 8}, Category: Triad},
	{ID: Maj7, Name: "Major 7th", Symbol: "maj7", Intervals: []int{0, 4, 7, 11}, Category: Seventh},
	{ID: Min7, Name: "Minor 7th", Symbol: "m7", Intervals: []int{0, 3, 7, 10}, Category: Seventh},
	{ID: Dom7, Name: "Dominant 7th", Symbol: "7", Intervals: []int{0, 4, 7, 10}, Category: Seventh},
	{ID: Dim7, Name: "Diminished 7th", Symbol: "dim7", Intervals: []int{0, 3, 6, 9}, Category: Seventh},
	{ID: HalfDim7, Name: "Half-Diminished 7th", Symbol: "m7b5", Intervals: []int{0, 3, 6, 10}, Category: Seventh},
	{ID: MinMaj7, Name: "Minor-Major 7th", Symbol: "m(maj7)", Intervals: []int{0, 3, 7, 11}, Category: Seventh},
	{ID: Aug7, Name: "Augmented 7th", Symbol: "aug7", Intervals: []int{0, 4, 8, 10}, Category: Seventh},
	{ID: Dom9, Name: "Dominant 9th", Symbol: "9", Intervals: []int{0, 4, 7, 10, 14}, Category: Extended},
	{ID: Maj9, Name: "Major 9th", Symbol: "maj9", Intervals: []int{0, 4, 7, 11, 14}, Category: Extended},
	{ID: Min9, Name: "Minor 9th", Symbol: "m9", Intervals: []int{0, 3, 7, 10, 14}, Category: Extended},
	{ID: Dom11, Name: "Dominant 11th", Symbol: "11", Intervals: []int{0, 4, 7, 10, 14, 17}, Category: Extended},
	{ID: Dom13, Name: "Dominant 13th", Symbol: "13", Intervals: []int{0, 4, 7, 10, 14, 21}, Category: Extended},
	{ID: Sus2, Name: "Suspended 2nd", Symbol: "sus2", Intervals: []int{0, 2, 7}, Category: Suspended},
	{ID: Sus4, Name: "Suspended 4th", Symbol: "sus4", Intervals: []int{0, 5, 7}, Category: Suspended},
	{ID: Dom7Sus4, Name: "Dominant 7th Suspended 4th", Symbol: "7sus4", Intervals: []int{0, 5, 7, 10}, Category: Suspended},
	{ID: Add9, Name: "Added 9th", Symbol: "add9", Intervals: []int{0, 4, 7, 14}, Category: Added},
	{ID: Add11, Name: "Added 11th", Symbol: "add11", Intervals: []int{0, 4, 7, 17}, Category: Added},
	{ID: Six, Name: "Major 6th", Symbol: "6", Intervals: []int{0, 4, 7, 9}, Category: Sixth},
	{ID: Min6, Name: "Minor 6th", Symbol: "m6", Intervals: []int{0, 3, 7, 9}, Category: Sixth},
	{ID: Power, Name: "Power Chord", Symbol: "5", Intervals: []int{0, 7}, Category: PowerCat},
	{ID: Dom7Flat5, Name: "Dominant 7th Flat 5", Symbol: "7b5", Intervals: []int{0, 4, 6, 10}, Category: Altered},
	{ID: Dom7Sharp5, Name: "Dominant 7th Sharp 5", Symbol: "7#5", Intervals: []int{0, 4, 8, 10}, Category: Altered},
	{ID: Dom7Flat9, Name: "Dominant 7th Flat 9", Symbol: "7b9", Intervals: []int{0, 4, 7, 10, 13}, Category: Altered},
	{ID: Dom7Sharp9, Name: "Dominant 7th Sharp 9", Symbol: "7#9", Intervals: []int{0, 4, 7, 10, 15}, Category: Altered},
}

// standardSynonyms maps every accepted suffix spelling to its canonical id.
// Lookup is exact: "M7" and "m7" are different chords.
var standardSynonyms = map[string]QualityID{
	"": Maj, "maj": Maj, "M": Maj, "major": Maj,
	"m": Min, "min": Min, "-": Min, "mi": Min, "minor": Min,
	"dim": Dim, "°": Dim, "o": Dim,
	"aug": Aug, "+": Aug,
	"maj7": Maj7, "M7": Maj7, "Maj7": Maj7, "ma7": Maj7, "Δ": Maj7, "Δ7": Maj7,
	"min7": Min7, "m7": Min7, "-7": Min7, "mi7": Min7,
	"7": Dom7, "dom7": Dom7, "dom": Dom7,
	"dim7": Dim7, "°7": Dim7, "o7": Dim7,
	"hdim7": HalfDim7, "m7b5": HalfDim7, "min7b5": HalfDim7, "-7b5": HalfDim7, "m7(b5)": HalfDim7, "ø": HalfDim7, "ø7": HalfDim7,
	"minmaj7": MinMaj7, "mMaj7": MinMaj7, "minMaj7": MinMaj7, "mM7": MinMaj7, "m(maj7)": MinMaj7, "m(M7)": MinMaj7, "-maj7": MinMaj7,
	"aug7": Aug7, "+7": Aug7, "7+": Aug7,
	"9": Dom9, "dom9": Dom9,
	"maj9": Maj9, "M9": Maj9, "Maj9": Maj9, "Δ9": Maj9,
	"min9": Min9, "m9": Min9, "-9": Min9,
	"11": Dom11,
	"13": Dom13,
	"sus2": Sus2,
	"sus4": Sus4, "sus": Sus4,
	"7sus4": Dom7Sus4, "7sus": Dom7Sus4,
	"add9": Add9, "add2": Add9,
	"add11": Add11, "add4": Add11,
	"6": Six, "M6": Six, "maj6": Six,
	"min6": Min6, "m6": Min6, "-6": Min6,
	"5": Power, "no3": Power,
	"7b5": Dom7Flat5, "7(b5)": Dom7Flat5,
	"7#5": Dom7Sharp5, "7(#5)": Dom7Sharp5,
	"7b9": Dom7Flat9, "7(b9)": Dom7Flat9,
	"7#9": Dom7Sharp9, "7(#9)": Dom7Sharp9,
}
