package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/jsphweid/chordsmith/midi"
	"github.com/jsphweid/chordsmith/model"
	"github.com/jsphweid/chordsmith/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <file.mid>...",
	Short: "Summarises the chord regions of one or more MIDI files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var all [][]model.ChordRegion
		for _, path := range args {
			regions, err := segmentFile(path, midi.Options{})
			if err != nil {
				log.Warn("skipping midi file", zap.String("path", path), zap.Error(err))
				continue
			}
			all = append(all, regions)
		}
		if len(all) == 0 {
			return fmt.Errorf("none of the %d files could be read", len(args))
		}
		printReport(cmd.OutOrStdout(), analyzeRegions(all))
		return nil
	},
}

const maxReportedQualities = 12

type regionsReport struct {
	numFiles   int
	numRegions int
	qualities  map[string]int
	meanDur    float64
	stdDevDur  float64
	medianDur  float64
	maxDur     float64
}

func analyzeRegions(files [][]model.ChordRegion) regionsReport {
	report := regionsReport{numFiles: len(files), qualities: make(map[string]int)}
	var durations []float64
	for _, regions := range files {
		for _, r := range regions {
			report.numRegions++
			report.qualities[r.QualityID]++
			durations = append(durations, r.Duration())
		}
	}
	if len(durations) == 0 {
		return report
	}

	sort.Float64s(durations)
	if len(durations) < 2 {
		// the sample standard deviation of one value is undefined
		report.meanDur = durations[0]
	} else {
		report.meanDur, report.stdDevDur = stat.MeanStdDev(durations, nil)
	}
	report.medianDur = stat.Quantile(0.5, stat.Empirical, durations, nil)
	report.maxDur = durations[len(durations)-1]
	return report
}

func printReport(w io.Writer, r regionsReport) {
	fmt.Fprintf(w, "files: %v\n", r.numFiles)
	fmt.Fprintf(w, "regions: %v\n", r.numRegions)
	fmt.Fprintf(w, "duration mean: %.3fs stddev: %.3fs median: %.3fs max: %.3fs\n",
		r.meanDur, r.stdDevDur, r.medianDur, r.maxDur)

	qualities := util.SortedKeys(r.qualities)
	sort.SliceStable(qualities, func(i, j int) bool {
		return r.qualities[qualities[i]] > r.qualities[qualities[j]]
	})
	for _, q := range qualities[:util.Min(len(qualities), maxReportedQualities)] {
		fmt.Fprintf(w, "  %-8s %v\n", q, r.qualities[q])
	}
}
