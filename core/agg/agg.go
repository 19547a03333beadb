// Package agg has aggregation logic for commit activity data.
package agg

import (
	"sync"

	"github.com/TANJUMAJERIN/testsmellRank/core/gitlog"
	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// BuildFileStats folds all commit records into per-path activity
// aggregates. The fold is commutative and associative, so when workers > 1
// the commits are partitioned, folded independently and merged; the result
// is identical to the sequential fold.
func BuildFileStats(commits []schema.CommitRecord, faults *gitlog.FaultClassifier, workers int) map[string]*schema.FileStats {
	if workers <= 1 || len(commits) < 2*workers {
		return foldCommits(commits, faults)
	}

	chunkSize := (len(commits) + workers - 1) / workers
	partials := make([]map[string]*schema.FileStats, 0, workers)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for start := 0; start < len(commits); start += chunkSize {
		end := min(start+chunkSize, len(commits))
		chunk := commits[start:end]
		wg.Go(func() {
			partial := foldCommits(chunk, faults)
			mu.Lock()
			partials = append(partials, partial)
			mu.Unlock()
		})
	}
	wg.Wait()

	merged := make(map[string]*schema.FileStats)
	for _, partial := range partials {
		for path, stats := range partial {
			if existing, ok := merged[path]; ok {
				existing.Merge(stats)
			} else {
				merged[path] = stats
			}
		}
	}
	return merged
}

// foldCommits is the sequential fold over one commit partition.
func foldCommits(commits []schema.CommitRecord, faults *gitlog.FaultClassifier) map[string]*schema.FileStats {
	stats := make(map[string]*schema.FileStats)
	for _, commit := range commits {
		faulty := faults.IsFaulty(commit.Message)
		for path, change := range commit.Files {
			fs, ok := stats[path]
			if !ok {
				fs = &schema.FileStats{}
				stats[path] = fs
			}
			fs.Add(change, faulty)
		}
	}
	return stats
}

// CountFaultyCommits returns how many commits match a fault keyword.
func CountFaultyCommits(commits []schema.CommitRecord, faults *gitlog.FaultClassifier) int {
	n := 0
	for _, commit := range commits {
		if faults.IsFaulty(commit.Message) {
			n++
		}
	}
	return n
}
