package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/TANJUMAJERIN/testsmellRank/core"
	"github.com/TANJUMAJERIN/testsmellRank/internal/contract"
	"github.com/TANJUMAJERIN/testsmellRank/internal/outwriter"
	"github.com/TANJUMAJERIN/testsmellRank/internal/store"
	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// rankCmd correlates smell presence with Git history and ranks smell types.
var rankCmd = &cobra.Command{
	Use:   "rank [repo-path]",
	Short: "Rank test smell types by their correlation with change and fault history.",
	Long: `Correlate detected test smells with Git history and rank the smell types.

For every test file in the repository, its change and fault history is
aggregated together with the history of co-changed production files. Each
smell type is then scored by how strongly its presence correlates with that
history, producing a prioritization order for refactoring work.

Per smell type the report shows:
- Change proneness (CP) from change frequency and extent correlations
- Fault proneness (FP) from fault frequency and extent correlations
- Prioritization score (PS) combining both, with a criticality label
- How many of the four correlations are statistically significant

Examples:
  # Rank smells detected by an external tool
  testsmellrank rank --smells smells.json

  # Analyze a different repository and keep the top 10
  testsmellrank rank ~/src/billing --smells smells.json --limit 10

  # Export the full scoring record for downstream tooling
  testsmellrank rank --smells smells.json --output json --output-file scores.json

  # Track runs over time in a local SQLite store
  testsmellrank rank --smells smells.json --store-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeRank(); err != nil {
			contract.LogFatal("Cannot run smell ranking", err)
		}
	},
}

// executeRank drives one full ranking pass: load smells, analyze history,
// persist the run when tracking is enabled, and write the report.
func executeRank() error {
	if cfg.SmellsFile == "" {
		return errors.New("--smells is required")
	}
	smells, err := contract.LoadSmells(cfg.SmellsFile)
	if err != nil {
		return err
	}

	client := contract.NewLocalGitClient()
	start := time.Now()

	result := core.Analyze(rootCtx, cfg, client, smells)

	if cfg.StoreBackend != schema.NoneBackend {
		if err := recordRun(client, result, start); err != nil {
			// Tracking failures should not suppress the report itself.
			contract.LogWarn("Could not record run history", err)
		}
	}

	return outwriter.NewOutWriter().WriteResult(result, cfg, time.Since(start))
}

// recordRun persists one completed analysis run and its ranked scores.
func recordRun(client contract.GitClient, result *schema.Result, start time.Time) error {
	if result.Unavailable() {
		return errors.New(result.Error)
	}

	st, err := store.NewRunStore(cfg.StoreBackend, cfg.StoreDBConnect)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	repoHash, err := client.GetRepoHash(rootCtx, cfg.RepoPath)
	if err != nil {
		return err
	}

	configParams := map[string]any{
		"limit":     cfg.ResultLimit,
		"workers":   cfg.Workers,
		"precision": cfg.Precision,
		"output":    string(cfg.Output),
		"smells":    cfg.SmellsFile,
	}

	runID, err := st.BeginRun(start, cfg.RepoPath, repoHash, configParams)
	if err != nil {
		return err
	}

	for _, entry := range result.Ranked() {
		if err := st.RecordSmellScore(runID, entry.SmellType, entry.Score); err != nil {
			return err
		}
	}

	return st.EndRun(runID, time.Now(), len(result.Metrics), result.Statistics.TotalCommits)
}
