// Package parquet provides data structures and functions for exporting run
// history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// AnalysisRun represents a single analysis run with metadata.
// This struct maps to the tsrank_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RepoPath is the repository the run analyzed
	RepoPath string `parquet:"repo_path,snappy"`

	// RepoHash is the HEAD commit hash at analysis time
	RepoHash string `parquet:"repo_hash,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalSmells is the number of smell types scored in this run, nil
	// for runs that never completed
	TotalSmells *int32 `parquet:"total_smells,optional,snappy"`

	// TotalCommits is the number of non-merge commits mined, nil for
	// runs that never completed
	TotalCommits *int32 `parquet:"total_commits,optional,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// SmellScoreRow represents one ranked smell score within a run.
// This struct maps to the tsrank_smell_scores database table.
type SmellScoreRow struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// SmellType is the smell identifier supplied by the scanner
	SmellType string `parquet:"smell_type,snappy"`

	// RecordedAt is when this score was stored
	RecordedAt time.Time `parquet:"recorded_at,snappy"`

	// InstanceCount is the number of detected occurrences of the smell
	InstanceCount int32 `parquet:"instance_count,snappy"`

	// FilesWithSmell is the number of qualifying test files carrying the smell
	FilesWithSmell int32 `parquet:"files_with_smell,snappy"`

	// ChangeFrequencyRho correlates presence with change frequency
	ChangeFrequencyRho float64 `parquet:"change_frequency_rho,snappy"`

	// ChangeExtentRho correlates presence with change extent
	ChangeExtentRho float64 `parquet:"change_extent_rho,snappy"`

	// FaultFrequencyRho correlates presence with fault frequency
	FaultFrequencyRho float64 `parquet:"fault_frequency_rho,snappy"`

	// FaultExtentRho correlates presence with fault extent
	FaultExtentRho float64 `parquet:"fault_extent_rho,snappy"`

	// CPScore is the change-proneness score
	CPScore float64 `parquet:"cp_score,snappy"`

	// FPScore is the fault-proneness score
	FPScore float64 `parquet:"fp_score,snappy"`

	// PrioritizationScore is the combined ranking score
	PrioritizationScore float64 `parquet:"prioritization_score,snappy"`

	// DataRank is the strict 1..n rank within the run
	DataRank int32 `parquet:"data_rank,snappy"`

	// PriorityLabel is the plain-text priority bucket
	PriorityLabel string `parquet:"priority_label,snappy"`
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the AnalysisRun struct tags
	writer := parquet.NewGenericWriter[AnalysisRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteSmellScoresParquet writes a slice of SmellScoreRow structs to a Parquet file.
func WriteSmellScoresParquet(data []SmellScoreRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the SmellScoreRow struct tags
	writer := parquet.NewGenericWriter[SmellScoreRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to AnalysisRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			RunID:         record.RunID,
			RepoPath:      record.RepoPath,
			RepoHash:      record.RepoHash,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalSmells:   record.TotalSmells,
			TotalCommits:  record.TotalCommits,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertSmellScoreRecords converts schema.SmellScoreRecord to SmellScoreRow for Parquet export.
func ConvertSmellScoreRecords(records []schema.SmellScoreRecord) []SmellScoreRow {
	result := make([]SmellScoreRow, len(records))
	for i, record := range records {
		result[i] = SmellScoreRow{
			RunID:               record.RunID,
			SmellType:           record.SmellType,
			RecordedAt:          record.RecordedAt,
			InstanceCount:       record.InstanceCount,
			FilesWithSmell:      record.FilesWithSmell,
			ChangeFrequencyRho:  record.ChangeFrequencyRho,
			ChangeExtentRho:     record.ChangeExtentRho,
			FaultFrequencyRho:   record.FaultFrequencyRho,
			FaultExtentRho:      record.FaultExtentRho,
			CPScore:             record.CPScore,
			FPScore:             record.FPScore,
			PrioritizationScore: record.PrioritizationScore,
			DataRank:            record.DataRank,
			PriorityLabel:       record.PriorityLabel,
		}
	}
	return result
}
