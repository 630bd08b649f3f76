package pitch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidNoteName = errors.New("invalid note name")
	ErrOutOfRange      = errors.New("midi note out of range")
)

const (
	MinMidi = 0
	MaxMidi = 127
)

var letterPitchClasses = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// Mod12 is n mod 12 folded into 0..11, also for negative n.
func Mod12(n int) int {
	return ((n % 12) + 12) % 12
}

func Transpose(pc int, semitones int) int {
	return Mod12(pc + semitones)
}

// PitchClassOf parses a note name without octave such as "C", "f#", "Bb" or "E♭♭".
// Any number of accidentals is accepted.
func PitchClassOf(name string) (int, error) {
	raw, err := semitonesFromC(name)
	if err != nil {
		return 0, err
	}
	return Mod12(raw), nil
}

// NoteNameToMidi computes pitchClass + (octave+1)*12, so C4 is 60.
// Cb4 is 59 and B#4 is 72: accidentals may cross the octave line.
func NoteNameToMidi(name string, octave int) (int, error) {
	raw, err := semitonesFromC(name)
	if err != nil {
		return 0, err
	}

	midi := (octave+1)*12 + raw
	if midi < MinMidi || midi > MaxMidi {
		return 0, fmt.Errorf("%w: %s%d -> %d", ErrOutOfRange, name, octave, midi)
	}
	return midi, nil
}

func semitonesFromC(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidNoteName)
	}

	letter := name[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	raw, ok := letterPitchClasses[letter]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}

	for _, r := range name[1:] {
		switch r {
		case '#', '♯':
			raw++
		case 'b', '♭':
			raw--
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
		}
	}
	return raw, nil
}

func PitchClassName(pc int, preferFlats bool) string {
	if preferFlats {
		return flatNames[Mod12(pc)]
	}
	return sharpNames[Mod12(pc)]
}

// MidiToNoteName is the inverse of NoteNameToMidi. Octave is floor(midi/12) - 1.
func MidiToNoteName(midi int, preferFlats bool) (string, int) {
	octave := floorDiv(midi, 12) - 1
	return PitchClassName(midi, preferFlats), octave
}

// FormatMidi renders a note like "C#4".
func FormatMidi(midi int, preferFlats bool) string {
	name, octave := MidiToNoteName(midi, preferFlats)
	return fmt.Sprintf("%s%d", name, octave)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
