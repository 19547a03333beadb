// Package schema has configs, models and shared types for all parts of testsmellRank.
package schema

import "time"

// FileChange holds the numstat counters for a single file within one commit.
type FileChange struct {
	Additions int // Lines added (0 for binary files)
	Deletions int // Lines deleted (0 for binary files)
}

// Churn returns the total lines touched by this change.
func (fc FileChange) Churn() int {
	return fc.Additions + fc.Deletions
}

// CommitRecord represents a single parsed non-merge commit.
// It is immutable once parsed and owned by the pipeline run that parsed it.
type CommitRecord struct {
	Hash      string                // Full or abbreviated commit hash
	Message   string                // Commit subject line
	Timestamp time.Time             // Author date
	Files     map[string]FileChange // Per-path numstat counters
}

// FileStats is the per-path activity aggregate folded over all commits.
// All counters are non-negative and monotonically increasing during the fold.
type FileStats struct {
	TotalChanges  int // Commits touching the path
	TotalChurn    int // Lines added plus deleted across all commits
	FaultyChanges int // Commits touching the path whose message matched a fault keyword
	FaultyChurn   int // Churn contributed by faulty commits
}

// Add folds one file change into the aggregate.
func (fs *FileStats) Add(change FileChange, faulty bool) {
	churn := change.Churn()
	fs.TotalChanges++
	fs.TotalChurn += churn
	if faulty {
		fs.FaultyChanges++
		fs.FaultyChurn += churn
	}
}

// Merge combines another aggregate into this one. The fold is commutative
// and associative, so partitioned aggregation with a final merge is valid.
func (fs *FileStats) Merge(other *FileStats) {
	fs.TotalChanges += other.TotalChanges
	fs.TotalChurn += other.TotalChurn
	fs.FaultyChanges += other.FaultyChanges
	fs.FaultyChurn += other.FaultyChurn
}

// CoChangeMap links each test file to the production files it was committed
// alongside. Values are sorted and deduplicated; edges only ever run from a
// test path to a production path.
type CoChangeMap map[string][]string

// MetricVector holds the four normalized activity metrics for one test file.
// Each metric divides summed counters by N, the total non-merge commit count.
type MetricVector struct {
	Path      string  // Test file path as seen in git history
	ChgFreq   float64 // (linked production changes + own changes) / N
	ChgExt    float64 // (linked production churn + own churn) / N
	FaultFreq float64 // (linked production faulty changes + own faulty changes) / N
	FaultExt  float64 // (linked production faulty churn + own faulty churn) / N
}

// SmellOccurrence is one detected code-smell instance supplied by an
// external static-analysis collaborator. Only SmellType and FilePath are
// consumed by the scoring pipeline.
type SmellOccurrence struct {
	SmellType string `json:"smell_type"`
	FilePath  string `json:"file_path"`
	Line      int    `json:"line"`
}
