package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TANJUMAJERIN/testsmellRank/internal/contract"
	"github.com/TANJUMAJERIN/testsmellRank/internal/store"
	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// runsSetup loads minimal configuration needed for run history operations.
// This is used by commands that need store access without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT open the store or create tables,
// allowing migrations to run on a fresh database.
func runsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetRunDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// runsMigrateSetupWrapper wraps runsMigrateSetup to provide PreRunE for the migrate command.
func runsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsMigrateSetup()
}

// openRunStore opens the configured run store backend.
func openRunStore() (contract.RunStore, error) {
	return store.NewRunStore(cfg.StoreBackend, cfg.StoreDBConnect)
}

// runsCmd focused on run history management.
//
// Note: Runs subcommands use minimal initialization (runsSetup) instead of
// the full sharedSetup used by the rank command. This avoids Git repo
// validation and complex config processing for simple store operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage historical run tracking and exports",
	Long: `Manage historical run data recorded by the rank command.

When a store backend is enabled, every ranking run is tracked, storing:
- Run metadata (timestamp, repository, configuration, duration)
- Ranked smell scores with all correlation components

This enables longitudinal analysis, trend detection, and data export for BI tools.

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, the default)

Subcommands:
  status  - Show run tracking statistics
  list    - List recent runs
  export  - Export data to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  testsmellrank runs status --store-backend sqlite

  # Export for analysis in pandas/DuckDB
  testsmellrank runs export --store-backend sqlite --output-file smell-data`,
}

// runsStatusCmd shows run store status.
var runsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about historical run tracking.

Displays:
- Backend type
- Total number of runs stored
- Total smell score records across all runs
- Last run timestamp

Use this to:
- Verify run tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health

Examples:
  # Check run tracking status
  testsmellrank runs status --store-backend sqlite`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		st, err := openRunStore()
		if err != nil {
			contract.LogFatal("Failed to open run store", err)
		}
		defer func() { _ = st.Close() }()
		status, err := st.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run store status", err)
		}
		store.PrintRunStatus(status)
	},
}

// runsListCmd lists recent runs.
var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analysis runs, newest first",
	Long: `Show the most recent ranking runs recorded in the store.

Each line shows the run ID, repository, HEAD commit, start time, duration,
and how many smell types and commits the run covered.

Examples:
  # Show the latest runs
  testsmellrank runs list --store-backend sqlite

  # Show more history
  testsmellrank runs list --store-backend sqlite --limit 100`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		st, err := openRunStore()
		if err != nil {
			contract.LogFatal("Failed to open run store", err)
		}
		defer func() { _ = st.Close() }()
		runs, err := st.FetchRuns(viper.GetInt("limit"))
		if err != nil {
			contract.LogFatal("Failed to fetch runs", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return
		}
		for _, run := range runs {
			duration := "in progress"
			if run.RunDurationMs != nil {
				duration = fmt.Sprintf("%dms", *run.RunDurationMs)
			}
			shortHash := run.RepoHash
			if len(shortHash) > 8 {
				shortHash = shortHash[:8]
			}
			counts := ""
			if run.TotalSmells != nil && run.TotalCommits != nil {
				counts = fmt.Sprintf("  smells=%d commits=%d", *run.TotalSmells, *run.TotalCommits)
			}
			fmt.Printf("#%d  %s @ %s  %s  %s%s\n",
				run.RunID, run.RepoPath, shortHash,
				run.StartTime.Format("2006-01-02 15:04:05"), duration, counts)
		}
	},
}

// runsExportCmd exports run data to Parquet files.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for BI tools and analytics",
	Long: `Export all stored run data to Parquet format for use with analytics tools.

Exports two datasets:
- Runs - metadata about each ranking execution
- Smell scores - ranked correlation scores per smell type and run

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  testsmellrank runs export --store-backend sqlite --output-file smell-data

  # Use with DuckDB for analysis
  testsmellrank runs export --store-backend sqlite --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.smell_scores.parquet') LIMIT 10"`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		st, err := openRunStore()
		if err != nil {
			contract.LogFatal("Failed to open run store", err)
		}
		defer func() { _ = st.Close() }()
		if err := store.ExecuteRunsExport(st, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run data", err)
		}
	},
}

// runsMigrateCmd runs database migrations for the run store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

Migrations allow:
- Upgrading to new schema versions when testsmellRank is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  testsmellrank runs migrate --store-backend sqlite

  # Migrate to specific version
  testsmellrank runs migrate --store-backend sqlite --target-version 1

  # Rollback to initial state
  testsmellrank runs migrate --store-backend sqlite --target-version 0`,
	PreRunE: runsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := store.MigrateRunStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
