package core

import (
	"context"

	"github.com/TANJUMAJERIN/testsmellRank/core/agg"
	"github.com/TANJUMAJERIN/testsmellRank/core/gitlog"
	"github.com/TANJUMAJERIN/testsmellRank/internal/contract"
	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// ErrNoHistory is the message carried by the structured error result when
// the repository has no usable commit history.
const ErrNoHistory = "no commits found in repository history"

// Analyze runs the full scoring pipeline: mine the commit log, aggregate
// per-file activity, link co-changes, build metric vectors, correlate smell
// presence against them and rank the smell types. History problems never
// surface as Go errors; they come back as a structured result so callers can
// render them uniformly.
func Analyze(
	ctx context.Context,
	cfg *contract.Config,
	client contract.GitClient,
	smells []schema.SmellOccurrence,
) *schema.Result {
	logCtx, cancel := context.WithTimeout(ctx, cfg.LogTimeout)
	defer cancel()

	raw, err := client.GetCommitLog(logCtx, cfg.RepoPath)
	if err != nil {
		return &schema.Result{Metrics: map[string]*schema.SmellScore{}, Error: err.Error()}
	}

	commits := gitlog.Parse(raw)
	if len(commits) == 0 {
		return &schema.Result{Metrics: map[string]*schema.SmellScore{}, Error: ErrNoHistory}
	}

	faults := gitlog.NewFaultClassifier(cfg.FaultKeywords)
	files := gitlog.NewFileClassifier(cfg.SourceExtensions, cfg.BootstrapMarkers)

	fileStats := agg.BuildFileStats(commits, faults, cfg.Workers)
	linked := agg.BuildCoChange(commits, files)
	vectors := BuildMetricVectors(len(commits), fileStats, linked, files)

	scores := ScoreSmells(vectors, smells, files)
	AssignRanks(scores)

	return &schema.Result{
		Metrics:    scores,
		Statistics: buildStatistics(commits, fileStats, faults, files),
	}
}

// buildStatistics summarizes the history behind the run. Test files are
// counted as distinct test-classified paths, not occurrences.
func buildStatistics(
	commits []schema.CommitRecord,
	fileStats map[string]*schema.FileStats,
	faults *gitlog.FaultClassifier,
	files *gitlog.FileClassifier,
) *schema.Statistics {
	faulty := agg.CountFaultyCommits(commits, faults)

	testFiles := 0
	for path := range fileStats {
		if files.Classify(path) == schema.TestFile {
			testFiles++
		}
	}

	pct := 0.0
	if len(commits) > 0 {
		pct = float64(faulty) / float64(len(commits)) * 100
	}

	return &schema.Statistics{
		TotalCommits:    len(commits),
		FaultyCommits:   faulty,
		FaultPercentage: pct,
		TotalFiles:      len(fileStats),
		TestFiles:       testFiles,
	}
}
