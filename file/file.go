package file

import (
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/chordsmith/model"
)

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// Result is the outcome of indexing one file. Error is set when the file was skipped.
type Result struct {
	FileNum    uint32 `json:"file_num"`
	Path       string `json:"path"`
	NumNotes   int    `json:"num_notes"`
	NumRegions int    `json:"num_regions"`
	Error      string `json:"error,omitempty"`
}

// Manifest describes one index run.
type Manifest struct {
	RunID     string                  `json:"run_id"`
	CreatedAt time.Time               `json:"created_at"`
	Files     model.FileNumToMidiPath `json:"files"`
	Results   []Result                `json:"results"`
}

func NewManifest(files model.FileNumToMidiPath, results []Result) Manifest {
	return Manifest{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Files:     files,
		Results:   results,
	}
}

// Skipped counts files that could not be indexed.
func (m Manifest) Skipped() int {
	var n int
	for _, r := range m.Results {
		if r.Error != "" {
			n++
		}
	}
	return n
}
