package bucket

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordsmith/backing"
	"github.com/jsphweid/chordsmith/chord"
	"github.com/jsphweid/chordsmith/file"
	"github.com/jsphweid/chordsmith/model"
	"github.com/jsphweid/chordsmith/sample"
	"github.com/jsphweid/chordsmith/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writePattern(t *testing.T, dir, name, context string) string {
	p, err := backing.Generate(context, backing.Swing, 2)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, sample.WriteFile(path, p, sample.Options{BPM: 120}))
	return path
}

func TestProcessAllMidiFiles(t *testing.T) {
	dir := t.TempDir()
	first := writePattern(t, dir, "a.mid", "Cmaj7 G7")
	second := writePattern(t, dir, "b.mid", "G7")
	broken := filepath.Join(dir, "c.mid")
	require.NoError(t, os.WriteFile(broken, []byte("nope"), 0666))

	p := Processor{Engine: chord.NewEngine(theory.Default(), chord.DefaultOptions()), Log: zap.NewNop()}
	files := file.CreateFileNumMap([]string{first, second, broken})
	buckets, results := p.ProcessAllMidiFiles(files)

	assert := assert.New(t)
	require.Len(t, results, 3)
	assert.Equal(4, results[0].NumRegions)
	assert.Equal(12, results[0].NumNotes)
	assert.Empty(results[1].Error)
	assert.NotEmpty(results[2].Error)

	assert.Len(buckets["Cmaj7"], 2)
	assert.Len(buckets["G7"], 6)

	res := Search(buckets, files, "G7")
	assert.Equal(6, res.NumMatches)
	assert.Equal(2, res.NumFiles)
	assert.Equal(first, res.Results[0].Path)
	assert.Equal([]float64{2, 3}, res.Results[0].Offsets)
	assert.Equal([]float64{0, 1, 2, 3}, res.Results[1].Offsets)
}

func TestSearchMissingLabel(t *testing.T) {
	res := Search(model.Buckets{}, nil, "Cm")
	assert.Equal(t, 0, res.NumMatches)
	assert.NotNil(t, res.Results)
}
