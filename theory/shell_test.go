package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellRulePriority(t *testing.T) {
	cases := []struct {
		id     QualityID
		shell  []int
		family Family
	}{
		{Maj, []int{0, 4, 7}, FamilyMajor},
		{Min, []int{0, 3, 7}, FamilyMinor},
		{Dim, []int{0, 3, 6}, FamilyDiminish},
		{Aug, []int{0, 4, 8}, FamilyAugmented},
		{Maj7, []int{0, 4, 11}, FamilyMajor7},
		{Maj9, []int{0, 4, 11}, FamilyMajor7},
		{Min7, []int{0, 3, 10}, FamilyMinor7},
		{Min9, []int{0, 3, 10}, FamilyMinor7},
		{HalfDim7, []int{0, 3, 10}, FamilyMinor7},
		// has a major seventh but no major third: minor-7 family keeps the major seventh
		{MinMaj7, []int{0, 3, 11}, FamilyMinor7},
		{Dom7, []int{0, 4, 10}, FamilyDominant7},
		{Dom9, []int{0, 4, 10}, FamilyDominant7},
		{Dom13, []int{0, 4, 10}, FamilyDominant7},
		{Aug7, []int{0, 4, 10}, FamilyDominant7},
		// #9 sits above the octave and must not be read as a minor third
		{Dom7Sharp9, []int{0, 4, 10}, FamilyDominant7},
		{Dom7Sus4, []int{0, 5, 10}, FamilyDominant7},
		// a sixth is neither a seventh nor a fifth, so sixth chords keep their triad
		{Six, []int{0, 4, 7}, FamilyMajor},
		{Min6, []int{0, 3, 7}, FamilyMinor},
		{Dim7, []int{0, 3, 9}, FamilyDiminish},
		{Sus2, []int{0, 2, 7}, FamilySuspended},
		{Sus4, []int{0, 5, 7}, FamilySuspended},
		{Power, []int{0, 7, 12}, FamilyPower},
		{Add9, []int{0, 4, 7}, FamilyMajor},
		{Add11, []int{0, 4, 7}, FamilyMajor},
	}

	d := Default()
	for _, c := range cases {
		t.Run(string(c.id), func(t *testing.T) {
			shell, family, ok := d.Shell(c.id)
			assert := assert.New(t)
			assert.True(ok)
			assert.Equal(c.shell, shell)
			assert.Equal(c.family, family)
		})
	}
}

func TestEveryQualityHasThreeNoteShell(t *testing.T) {
	d := Default()
	for _, c := range d.Chords() {
		shell, _, ok := d.Shell(c.ID)
		assert.True(t, ok)
		assert.Len(t, shell, 3, c.ID)
		assert.Equal(t, 0, shell[0], c.ID)
	}
}

func TestShellOfUnknownShapeFallsBackToMajor(t *testing.T) {
	shell, family := ShellOf([]int{0, 4})
	assert.Equal(t, []int{0, 4, 7}, shell)
	assert.Equal(t, FamilyMajor, family)
}
