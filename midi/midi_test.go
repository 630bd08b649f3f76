package midi

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordsmith/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// build writes one track at 120 bpm; deltas are in quarter notes of 960 ticks (0.5s).
func build(t *testing.T, events ...func(tr *smf.Track)) *smf.SMF {
	s := smf.New()
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	for _, e := range events {
		e(&tr)
	}
	tr.Close(0)
	require.NoError(t, s.Add(tr))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	res, err := Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return res
}

func on(delta uint32, ch, key uint8) func(tr *smf.Track) {
	return func(tr *smf.Track) { tr.Add(delta, gomidi.NoteOn(ch, key, 100)) }
}

func off(delta uint32, ch, key uint8) func(tr *smf.Track) {
	return func(tr *smf.Track) { tr.Add(delta, gomidi.NoteOff(ch, key)) }
}

func TestNoteEventsPairsOnAndOff(t *testing.T) {
	s := build(t,
		on(0, 0, 60), on(0, 0, 64),
		off(960, 0, 60), off(0, 0, 64),
		on(960, 0, 67), off(480, 0, 67),
	)

	notes, err := NoteEvents(s, Options{})
	require.NoError(t, err)
	assert.Equal(t, []model.NoteEvent{
		{Pitch: 60, StartTime: 0, Duration: 0.5, Velocity: 100},
		{Pitch: 64, StartTime: 0, Duration: 0.5, Velocity: 100},
		{Pitch: 67, StartTime: 1, Duration: 0.25, Velocity: 100},
	}, notes)
}

func TestOverlappingSameKeyClosesEarliestFirst(t *testing.T) {
	s := build(t,
		on(0, 0, 60),
		on(960, 0, 60),
		off(960, 0, 60),
		off(960, 0, 60),
	)

	notes, err := NoteEvents(s, Options{})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, 0.0, notes[0].StartTime)
	assert.Equal(t, 1.0, notes[0].Duration)
	assert.Equal(t, 0.5, notes[1].StartTime)
	assert.Equal(t, 1.0, notes[1].Duration)
}

func TestDanglingNotesCloseAtTrackEnd(t *testing.T) {
	s := build(t,
		on(0, 0, 60),
		on(0, 0, 48),
		off(1920, 0, 48),
	)

	notes, err := NoteEvents(s, Options{})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, uint8(48), notes[0].Pitch)
	assert.Equal(t, 1.0, notes[1].Duration)
}

func TestDrumsAreSkippedUnlessRequested(t *testing.T) {
	s := build(t,
		on(0, DrumChannel, 36), off(960, DrumChannel, 36),
		on(0, 0, 60), off(960, 0, 60),
	)

	notes, err := NoteEvents(s, Options{})
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	notes, err = NoteEvents(s, Options{IncludeDrums: true})
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestNoNotes(t *testing.T) {
	s := build(t)
	_, err := NoteEvents(s, Options{})
	assert.True(t, errors.Is(err, ErrNoNotes))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not midi")))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.mid"), Options{})
	assert.True(errors.Is(err, os.ErrNotExist))

	s := build(t, on(0, 0, 60), off(960, 0, 60))
	path := filepath.Join(t.TempDir(), "one.mid")
	require.NoError(t, s.WriteFile(path))

	notes, err := Load(path, Options{})
	assert.NoError(err)
	assert.Len(notes, 1)
}
