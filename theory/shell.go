package theory

// Family groups qualities that share one shell voicing shape.
type Family string

const (
	FamilyMajor7    Family = "major7"
	FamilyMinor7    Family = "minor7"
	FamilyDominant7 Family = "dominant7"
	FamilyMinor     Family = "minor"
	FamilyDiminish  Family = "diminished"
	FamilyAugmented Family = "augmented"
	FamilySuspended Family = "suspended"
	FamilyPower     Family = "power"
	FamilyMajor     Family = "major"
)

type intervalSet map[int]bool

func (s intervalSet) has(ivs ...int) bool {
	for _, iv := range ivs {
		if !s[iv] {
			return false
		}
	}
	return true
}

// first returns the first of ivs present in s, or -1.
func (s intervalSet) first(ivs ...int) int {
	for _, iv := range ivs {
		if s[iv] {
			return iv
		}
	}
	return -1
}

type shellRule struct {
	family  Family
	applies func(s intervalSet) bool
	shell   func(s intervalSet) []int
}

// shellRules are tried in order and the first match wins: major-7, minor-7, dominant-7,
// minor triad, diminished, augmented, then suspended and power chords that have no third,
// and finally the major triad. A shell is root, third and seventh, or the fifth when the
// chord has no seventh, so sixth chords are voiced as their triad. Only intervals inside
// the first octave are considered, so a #9 (15) never reads as a minor third.
var shellRules = []shellRule{
	{
		family:  FamilyMajor7,
		applies: func(s intervalSet) bool { return s.has(4, 11) },
		shell:   func(s intervalSet) []int { return []int{0, 4, 11} },
	},
	{
		family:  FamilyMinor7,
		applies: func(s intervalSet) bool { return s.has(3) && s.first(10, 11) >= 0 },
		shell:   func(s intervalSet) []int { return []int{0, 3, s.first(11, 10)} },
	},
	{
		family:  FamilyDominant7,
		applies: func(s intervalSet) bool { return s.has(10) },
		shell:   func(s intervalSet) []int { return []int{0, thirdOf(s), 10} },
	},
	{
		family:  FamilyMinor,
		applies: func(s intervalSet) bool { return s.has(3, 7) },
		shell:   func(s intervalSet) []int { return []int{0, 3, 7} },
	},
	{
		family:  FamilyDiminish,
		applies: func(s intervalSet) bool { return s.has(3, 6) },
		shell: func(s intervalSet) []int {
			if s.has(9) {
				return []int{0, 3, 9}
			}
			return []int{0, 3, 6}
		},
	},
	{
		family:  FamilyAugmented,
		applies: func(s intervalSet) bool { return s.has(4, 8) },
		shell:   func(s intervalSet) []int { return []int{0, 4, 8} },
	},
	{
		family:  FamilySuspended,
		applies: func(s intervalSet) bool { return s.first(3, 4) < 0 && s.first(5, 2) >= 0 },
		shell:   func(s intervalSet) []int { return []int{0, s.first(5, 2), 7} },
	},
	{
		family:  FamilyPower,
		applies: func(s intervalSet) bool { return s.first(2, 3, 4, 5) < 0 },
		shell:   func(s intervalSet) []int { return []int{0, 7, 12} },
	},
}

var defaultShell = []int{0, 4, 7}

func thirdOf(s intervalSet) int {
	if third := s.first(4, 3, 5, 2); third >= 0 {
		return third
	}
	return 4
}

// ShellOf classifies raw chord intervals into a family and its 3-note shell.
func ShellOf(intervals []int) ([]int, Family) {
	s := make(intervalSet, len(intervals))
	for _, iv := range intervals {
		if iv >= 0 && iv < 12 {
			s[iv] = true
		}
	}
	for _, rule := range shellRules {
		if rule.applies(s) {
			return rule.shell(s), rule.family
		}
	}
	return append([]int(nil), defaultShell...), FamilyMajor
}

// Shell returns the shell voicing intervals of a quality.
func (d *Dictionary) Shell(id QualityID) ([]int, Family, bool) {
	c, ok := d.Chord(id)
	if !ok {
		return nil, "", false
	}
	shell, family := ShellOf(c.Intervals)
	return shell, family, true
}
