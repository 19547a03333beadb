package agg

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TANJUMAJERIN/testsmellRank/core/gitlog"
	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

func sampleCommits() []schema.CommitRecord {
	return []schema.CommitRecord{
		{
			Hash:    "a1",
			Message: "Add login flow",
			Files: map[string]schema.FileChange{
				"auth.py":       {Additions: 10, Deletions: 2},
				"test_login.py": {Additions: 5, Deletions: 0},
			},
		},
		{
			Hash:    "b2",
			Message: "Fix crash on empty token",
			Files: map[string]schema.FileChange{
				"auth.py":       {Additions: 3, Deletions: 1},
				"test_login.py": {Additions: 2, Deletions: 2},
			},
		},
		{
			Hash:    "c3",
			Message: "Refactor session handling",
			Files: map[string]schema.FileChange{
				"session.py": {Additions: 8, Deletions: 4},
			},
		},
	}
}

func TestBuildFileStats(t *testing.T) {
	faults := gitlog.NewFaultClassifier(schema.DefaultFaultKeywords)
	stats := BuildFileStats(sampleCommits(), faults, 1)

	require.Len(t, stats, 3)

	auth := stats["auth.py"]
	require.NotNil(t, auth)
	assert.Equal(t, 2, auth.TotalChanges)
	assert.Equal(t, 16, auth.TotalChurn)
	assert.Equal(t, 1, auth.FaultyChanges)
	assert.Equal(t, 4, auth.FaultyChurn)

	session := stats["session.py"]
	require.NotNil(t, session)
	assert.Equal(t, 1, session.TotalChanges)
	assert.Equal(t, 12, session.TotalChurn)
	assert.Zero(t, session.FaultyChanges)
	assert.Zero(t, session.FaultyChurn)
}

func TestBuildFileStatsParallelMatchesSequential(t *testing.T) {
	faults := gitlog.NewFaultClassifier(schema.DefaultFaultKeywords)

	var commits []schema.CommitRecord
	for i := range 100 {
		msg := "Touch things"
		if i%3 == 0 {
			msg = "Fix off by one"
		}
		commits = append(commits, schema.CommitRecord{
			Hash:    fmt.Sprintf("%040d", i),
			Message: msg,
			Files: map[string]schema.FileChange{
				fmt.Sprintf("pkg/file_%d.go", i%7): {Additions: i, Deletions: i % 5},
				"shared.go":                        {Additions: 1, Deletions: 1},
			},
		})
	}

	sequential := BuildFileStats(commits, faults, 1)
	parallel := BuildFileStats(commits, faults, 4)

	require.Len(t, parallel, len(sequential))
	for path, want := range sequential {
		got := parallel[path]
		require.NotNil(t, got, path)
		assert.Equal(t, *want, *got, path)
	}
}

func TestBuildFileStatsEmpty(t *testing.T) {
	faults := gitlog.NewFaultClassifier(schema.DefaultFaultKeywords)
	assert.Empty(t, BuildFileStats(nil, faults, 4))
}

func TestCountFaultyCommits(t *testing.T) {
	faults := gitlog.NewFaultClassifier(schema.DefaultFaultKeywords)
	assert.Equal(t, 1, CountFaultyCommits(sampleCommits(), faults))
}

func TestBuildCoChange(t *testing.T) {
	files := gitlog.NewFileClassifier(schema.DefaultSourceExtensions, schema.DefaultBootstrapMarkers)
	linked := BuildCoChange(sampleCommits(), files)

	require.Len(t, linked, 1)
	assert.Equal(t, []string{"auth.py"}, linked["test_login.py"])
}

func TestBuildCoChangeAllPairsWithinCommit(t *testing.T) {
	files := gitlog.NewFileClassifier(schema.DefaultSourceExtensions, schema.DefaultBootstrapMarkers)
	commits := []schema.CommitRecord{
		{
			Hash:    "d4",
			Message: "Rework billing",
			Files: map[string]schema.FileChange{
				"test_invoice.py": {Additions: 1},
				"test_payment.py": {Additions: 1},
				"invoice.py":      {Additions: 1},
				"payment.py":      {Additions: 1},
			},
		},
	}

	linked := BuildCoChange(commits, files)
	want := []string{"invoice.py", "payment.py"}
	assert.Equal(t, want, linked["test_invoice.py"])
	assert.Equal(t, want, linked["test_payment.py"])
}

func TestBuildCoChangeDeduplicates(t *testing.T) {
	files := gitlog.NewFileClassifier(schema.DefaultSourceExtensions, schema.DefaultBootstrapMarkers)
	commits := []schema.CommitRecord{
		{
			Hash:    "e5",
			Message: "First pass",
			Files: map[string]schema.FileChange{
				"test_auth.py": {Additions: 1},
				"auth.py":      {Additions: 1},
			},
		},
		{
			Hash:    "f6",
			Message: "Second pass",
			Files: map[string]schema.FileChange{
				"test_auth.py": {Additions: 1},
				"auth.py":      {Additions: 1},
			},
		},
	}

	linked := BuildCoChange(commits, files)
	assert.Equal(t, []string{"auth.py"}, linked["test_auth.py"])
}

func TestBuildCoChangeIgnoresCommitsWithoutPairs(t *testing.T) {
	files := gitlog.NewFileClassifier(schema.DefaultSourceExtensions, schema.DefaultBootstrapMarkers)
	commits := []schema.CommitRecord{
		{
			Hash:    "g7",
			Message: "Test only",
			Files:   map[string]schema.FileChange{"test_auth.py": {Additions: 1}},
		},
		{
			Hash:    "h8",
			Message: "Production only",
			Files:   map[string]schema.FileChange{"auth.py": {Additions: 1}},
		},
	}
	assert.Empty(t, BuildCoChange(commits, files))
}
