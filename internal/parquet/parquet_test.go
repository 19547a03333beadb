package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

func TestWriteAnalysisRunsParquetRoundTrip(t *testing.T) {
	endTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	durationMs := int32(1500)
	totalSmells := int32(3)
	totalCommits := int32(120)
	configParams := `{"limit":25}`

	runs := []AnalysisRun{
		{
			RunID:         1,
			RepoPath:      "/repo",
			RepoHash:      "deadbeef",
			StartTime:     endTime.Add(-2 * time.Second),
			EndTime:       &endTime,
			RunDurationMs: &durationMs,
			TotalSmells:   &totalSmells,
			TotalCommits:  &totalCommits,
			ConfigParams:  &configParams,
		},
		{
			RunID:     2,
			RepoPath:  "/repo",
			RepoHash:  "cafebabe",
			StartTime: endTime,
			// nullable fields stay nil for a run still in flight
		},
	}

	path := filepath.Join(t.TempDir(), "runs.parquet")
	require.NoError(t, WriteAnalysisRunsParquet(runs, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	reader := parquet.NewGenericReader[AnalysisRun](f)
	defer func() { _ = reader.Close() }()

	got := make([]AnalysisRun, 2)
	n, _ := reader.Read(got)
	require.Equal(t, 2, n)

	assert.Equal(t, int64(1), got[0].RunID)
	assert.Equal(t, "deadbeef", got[0].RepoHash)
	require.NotNil(t, got[0].RunDurationMs)
	assert.Equal(t, int32(1500), *got[0].RunDurationMs)
	assert.Nil(t, got[1].EndTime)
	assert.Nil(t, got[1].TotalSmells)
	assert.Nil(t, got[1].TotalCommits)
	assert.Nil(t, got[1].ConfigParams)
}

func TestWriteSmellScoresParquetRoundTrip(t *testing.T) {
	rows := []SmellScoreRow{
		{
			RunID:               1,
			SmellType:           "assertion_roulette",
			RecordedAt:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			InstanceCount:       5,
			FilesWithSmell:      2,
			ChangeFrequencyRho:  0.9,
			PrioritizationScore: 1.5,
			DataRank:            1,
			PriorityLabel:       "Critical",
		},
	}

	path := filepath.Join(t.TempDir(), "scores.parquet")
	require.NoError(t, WriteSmellScoresParquet(rows, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	reader := parquet.NewGenericReader[SmellScoreRow](f)
	defer func() { _ = reader.Close() }()

	got := make([]SmellScoreRow, 1)
	n, _ := reader.Read(got)
	require.Equal(t, 1, n)
	assert.Equal(t, "assertion_roulette", got[0].SmellType)
	assert.Equal(t, int32(1), got[0].DataRank)
	assert.InDelta(t, 1.5, got[0].PrioritizationScore, 1e-9)
}

func TestConvertRunRecords(t *testing.T) {
	totalSmells := int32(2)
	totalCommits := int32(50)
	records := []schema.RunRecord{
		{RunID: 7, RepoPath: "/r", RepoHash: "abc", TotalSmells: &totalSmells, TotalCommits: &totalCommits},
		{RunID: 8, RepoPath: "/r", RepoHash: "abc"},
	}
	converted := ConvertRunRecords(records)
	require.Len(t, converted, 2)
	assert.Equal(t, int64(7), converted[0].RunID)
	require.NotNil(t, converted[0].TotalSmells)
	assert.Equal(t, int32(2), *converted[0].TotalSmells)
	assert.Nil(t, converted[1].TotalSmells)
	assert.Nil(t, converted[1].TotalCommits)
}

func TestConvertSmellScoreRecords(t *testing.T) {
	records := []schema.SmellScoreRecord{
		{RunID: 7, SmellType: "eager_test", DataRank: 3, PriorityLabel: "Low"},
	}
	converted := ConvertSmellScoreRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, "eager_test", converted[0].SmellType)
	assert.Equal(t, int32(3), converted[0].DataRank)
}
