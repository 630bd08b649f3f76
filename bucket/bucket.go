package bucket

import (
	"sort"

	"github.com/jsphweid/chordsmith/chord"
	"github.com/jsphweid/chordsmith/file"
	"github.com/jsphweid/chordsmith/midi"
	"github.com/jsphweid/chordsmith/model"
	"github.com/jsphweid/chordsmith/util"
	"go.uber.org/zap"
)

// Processor segments MIDI files and collects their regions into label buckets.
type Processor struct {
	Engine *chord.Engine
	Log    *zap.Logger
	Midi   midi.Options
}

func (p *Processor) processMidiFile(fileNum uint32, path string, buckets model.Buckets) file.Result {
	res := file.Result{FileNum: fileNum, Path: path}
	notes, err := midi.Load(path, p.Midi)
	if err != nil {
		p.Log.Warn("skipping midi file", zap.String("path", path), zap.Error(err))
		res.Error = err.Error()
		return res
	}

	regions := p.Engine.Segment(notes)
	for _, r := range regions {
		buckets[r.Label] = append(buckets[r.Label], model.Occurrence{
			FileNum:   fileNum,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}
	res.NumNotes = len(notes)
	res.NumRegions = len(regions)
	return res
}

// ProcessAllMidiFiles indexes every file in file number order. Unreadable files are
// reported in the results and skipped.
func (p *Processor) ProcessAllMidiFiles(m model.FileNumToMidiPath) (model.Buckets, []file.Result) {
	buckets := make(model.Buckets)
	var results []file.Result
	keys := util.SortedKeys(m)
	for i, num := range keys {
		p.Log.Debug("processing midi file",
			zap.Int("n", i+1), zap.Int("of", len(keys)), zap.String("path", m[num]))
		results = append(results, p.processMidiFile(num, m[num], buckets))
	}
	return buckets, results
}

// Search returns the occurrences of label grouped by file, files and offsets ascending.
func Search(buckets model.Buckets, files model.FileNumToMidiPath, label string) model.SearchResponse {
	res := model.SearchResponse{Label: label, Results: []model.SearchResult{}}
	byFile := make(map[uint32][]float64)
	for _, o := range buckets[label] {
		byFile[o.FileNum] = append(byFile[o.FileNum], o.StartTime)
		res.NumMatches++
	}
	for _, num := range util.SortedKeys(byFile) {
		offsets := byFile[num]
		sort.Float64s(offsets)
		res.Results = append(res.Results, model.SearchResult{FileNum: num, Path: files[num], Offsets: offsets})
	}
	res.NumFiles = len(res.Results)
	return res
}
