package store

import (
	"errors"
	"fmt"

	"github.com/TANJUMAJERIN/testsmellRank/internal/contract"
	"github.com/TANJUMAJERIN/testsmellRank/internal/parquet"
	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// ExecuteRunsExport exports all stored runs and smell scores to Parquet files.
func ExecuteRunsExport(st contract.RunStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := st.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run store status: %w", err)
	}

	if status.RunCount == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total analysis runs: %d\n", status.RunCount)
	fmt.Printf("Total smell score records: %d\n", status.ScoreCount)

	// Retrieve all analysis runs
	runs, err := st.FetchRuns(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve the smell scores of every run
	var scores []schema.SmellScoreRecord
	for _, run := range runs {
		runScores, err := st.FetchSmellScores(run.RunID)
		if err != nil {
			return fmt.Errorf("failed to retrieve smell scores for run %d: %w", run.RunID, err)
		}
		scores = append(scores, runScores...)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetScores := parquet.ConvertSmellScoreRecords(scores)

	// Write analysis runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteAnalysisRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d analysis runs to: %s\n", len(parquetRuns), runsFile)

	// Write smell scores to Parquet
	scoresFile := outputFile + ".smell_scores.parquet"
	if err := parquet.WriteSmellScoresParquet(parquetScores, scoresFile); err != nil {
		return fmt.Errorf("failed to write smell scores: %w", err)
	}
	fmt.Printf("Exported %d smell score records to: %s\n", len(parquetScores), scoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
