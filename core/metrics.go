// Package core implements the scoring pipeline that links test smells to
// historical change and fault activity mined from git history.
package core

import (
	"sort"

	"github.com/TANJUMAJERIN/testsmellRank/core/gitlog"
	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// BuildMetricVectors computes the four normalized activity metrics for every
// qualifying test file. A test file qualifies when it appears in at least one
// commit. Each metric sums the file's own counters with the counters of its
// co-changed production files and divides by totalCommits, so vectors from
// repositories of different sizes stay comparable. Output is sorted by path.
func BuildMetricVectors(
	totalCommits int,
	stats map[string]*schema.FileStats,
	linked schema.CoChangeMap,
	files *gitlog.FileClassifier,
) []schema.MetricVector {
	if totalCommits == 0 {
		return nil
	}
	n := float64(totalCommits)

	vectors := make([]schema.MetricVector, 0)
	for path, own := range stats {
		if files.Classify(path) != schema.TestFile || own.TotalChanges < 1 {
			continue
		}

		sum := *own
		for _, prod := range linked[path] {
			if ps, ok := stats[prod]; ok {
				sum.Merge(ps)
			}
		}

		vectors = append(vectors, schema.MetricVector{
			Path:      path,
			ChgFreq:   float64(sum.TotalChanges) / n,
			ChgExt:    float64(sum.TotalChurn) / n,
			FaultFreq: float64(sum.FaultyChanges) / n,
			FaultExt:  float64(sum.FaultyChurn) / n,
		})
	}

	sort.Slice(vectors, func(i, j int) bool {
		return vectors[i].Path < vectors[j].Path
	})
	return vectors
}
