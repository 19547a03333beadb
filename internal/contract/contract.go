// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// GitClient defines the git operations needed for history analysis.
// This allows the core pipeline to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its stdout output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetCommitLog returns the raw numstat commit log for the whole repository.
	GetCommitLog(ctx context.Context, repoPath string) ([]byte, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// GetRepoRoot returns the absolute path to the root of the git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)
}

// RunStore defines the interface for tracking analysis runs and storing
// ranked smell scores across invocations.
type RunStore interface {
	// BeginRun creates a new run row and returns its unique ID
	BeginRun(startTime time.Time, repoPath, repoHash string, configParams map[string]any) (int64, error)

	// EndRun updates the run row with completion data
	EndRun(runID int64, endTime time.Time, totalSmells, totalCommits int) error

	// RecordSmellScore stores one ranked smell score for a run
	RecordSmellScore(runID int64, smellType string, score *schema.SmellScore) error

	// FetchRuns returns the most recent runs, newest first
	FetchRuns(limit int) ([]schema.RunRecord, error)

	// FetchSmellScores returns all stored scores for a run, in rank order
	FetchSmellScores(runID int64) ([]schema.SmellScoreRecord, error)

	// GetStatus returns status information about the store
	GetStatus() (schema.RunStoreStatus, error)

	// Close closes the underlying connection
	Close() error
}
