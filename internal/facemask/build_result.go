package facemask

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// BuildResult represents the outcome of Build.Start().
type BuildResult struct {
	Built     int
	Skipped   int
	Failed    int
	Faces     int
	Coverages []float64
}

// Add adds result counts.
func (r *BuildResult) Add(result BuildResult) {
	r.Built += result.Built
	r.Skipped += result.Skipped
	r.Failed += result.Failed
	r.Faces += result.Faces
	r.Coverages = append(r.Coverages, result.Coverages...)
}

// Total returns the number of face crops processed.
func (r *BuildResult) Total() int {
	return r.Built + r.Skipped + r.Failed
}

// CoverageSummary returns mean, median, and standard deviation of mask coverage.
func (r *BuildResult) CoverageSummary() string {
	if len(r.Coverages) == 0 {
		return "no coverage data"
	}

	mean, _ := stats.Mean(r.Coverages)
	median, _ := stats.Median(r.Coverages)
	sd, _ := stats.StandardDeviation(r.Coverages)

	return fmt.Sprintf("coverage mean %.1f%%, median %.1f%%, sd %.1f%%", mean*100, median*100, sd*100)
}
