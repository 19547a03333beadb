package schema

import "time"

// RunRecord represents a stored analysis run with metadata.
// It maps to the tsrank_runs table.
type RunRecord struct {
	RunID         int64
	RepoPath      string
	RepoHash      string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalSmells   *int32 // nil until the run completes
	TotalCommits  *int32 // nil until the run completes
	ConfigParams  *string
}

// SmellScoreRecord represents one stored smell score row.
// It maps to the tsrank_smell_scores table.
type SmellScoreRecord struct {
	RunID               int64
	SmellType           string
	RecordedAt          time.Time
	InstanceCount       int32
	FilesWithSmell      int32
	ChangeFrequencyRho  float64
	ChangeExtentRho     float64
	FaultFrequencyRho   float64
	FaultExtentRho      float64
	CPScore             float64
	FPScore             float64
	PrioritizationScore float64
	DataRank            int32
	PriorityLabel       string
}

// RunStoreStatus holds status information about the run-history store.
type RunStoreStatus struct {
	Backend     DatabaseBackend
	RunCount    int64
	ScoreCount  int64
	LastRunTime *time.Time
}
