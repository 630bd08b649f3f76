package constants

import (
	"testing"

	"github.com/jsphweid/chordsmith/chord"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{"OUT_DIR", "PORT", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "MIDI_DIR",
		"GAP_THRESHOLD", "MERGE_GAP_THRESHOLD"} {
		t.Setenv(key, "")
	}

	assert := assert.New(t)
	assert.Equal("./out", GetOutDir())
	assert.Equal("8080", GetPort())
	assert.Equal("info", GetLogLevel())
	assert.Equal("json", GetLogFormat())
	assert.Equal("development", GetEnvironment())
	assert.Equal(chord.DefaultOptions(), GetChordOptions())

	_, err := GetMidiDir()
	assert.Error(err)
}

func TestOverrides(t *testing.T) {
	t.Setenv("OUT_DIR", "/tmp/regions")
	t.Setenv("PORT", "9000")
	t.Setenv("MIDI_DIR", "/data/midi")
	t.Setenv("GAP_THRESHOLD", "0.05")
	t.Setenv("MERGE_GAP_THRESHOLD", "nope")

	assert := assert.New(t)
	assert.Equal("/tmp/regions", GetOutDir())
	assert.Equal("9000", GetPort())

	dir, err := GetMidiDir()
	assert.NoError(err)
	assert.Equal("/data/midi", dir)

	opts := GetChordOptions()
	assert.Equal(0.05, opts.GapThreshold)
	assert.Equal(chord.DefaultMergeGapThreshold, opts.MergeGapThreshold)
}
