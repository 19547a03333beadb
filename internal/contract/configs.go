package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
	DefaultLogTimeout  = 2 * time.Minute
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath    string
	SmellsFile  string
	ResultLimit int
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	LogTimeout  time.Duration
	Width       int // Terminal width override (0 = auto-detect)

	FaultKeywords    []string
	SourceExtensions []string
	BootstrapMarkers []string

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile     string `mapstructure:"output-file"`
	Limit          int    `mapstructure:"limit"`
	Workers        int    `mapstructure:"workers"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	Width          int    `mapstructure:"width"`
	LogTimeout     string `mapstructure:"log-timeout"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`

	// --- Fields from rankCmd.Flags() ---
	SmellsFile string `mapstructure:"smells"`

	// --- Classifier rule overrides from config file ---
	FaultKeywords    []string `mapstructure:"fault-keywords"`
	SourceExtensions []string `mapstructure:"source-extensions"`
	BootstrapMarkers []string `mapstructure:"bootstrap-markers"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.FaultKeywords != nil {
		clone.FaultKeywords = make([]string, len(c.FaultKeywords))
		copy(clone.FaultKeywords, c.FaultKeywords)
	}
	if c.SourceExtensions != nil {
		clone.SourceExtensions = make([]string, len(c.SourceExtensions))
		copy(clone.SourceExtensions, c.SourceExtensions)
	}
	if c.BootstrapMarkers != nil {
		clone.BootstrapMarkers = make([]string, len(c.BootstrapMarkers))
		copy(clone.BootstrapMarkers, c.BootstrapMarkers)
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processClassifierRules(cfg, input); err != nil {
		return err
	}
	if err := resolveGitPath(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.SmellsFile = input.SmellsFile
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 1 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	// --- 4. Log Timeout ---
	cfg.LogTimeout = DefaultLogTimeout
	if input.LogTimeout != "" {
		d, err := time.ParseDuration(input.LogTimeout)
		if err != nil {
			return fmt.Errorf("invalid --log-timeout value '%s': %w", input.LogTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("log-timeout must be positive (received %s)", d)
		}
		cfg.LogTimeout = d
	}

	// --- 5. Store Backend Validation ---
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}

	return nil
}

// processClassifierRules fills the fault keyword and file classification rule
// sets, falling back to the built-in defaults when not overridden.
func processClassifierRules(cfg *Config, input *ConfigRawInput) error {
	cfg.FaultKeywords = cleanRuleList(input.FaultKeywords)
	if len(cfg.FaultKeywords) == 0 {
		cfg.FaultKeywords = schema.DefaultFaultKeywords
	}

	cfg.SourceExtensions = cleanRuleList(input.SourceExtensions)
	if len(cfg.SourceExtensions) == 0 {
		cfg.SourceExtensions = schema.DefaultSourceExtensions
	}
	for _, ext := range cfg.SourceExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("source extension '%s' must start with a dot", ext)
		}
	}

	cfg.BootstrapMarkers = cleanRuleList(input.BootstrapMarkers)
	if len(cfg.BootstrapMarkers) == 0 {
		cfg.BootstrapMarkers = schema.DefaultBootstrapMarkers
	}

	return nil
}

func cleanRuleList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// resolveGitPath resolves the git repository root from the positional argument.
func resolveGitPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absSearchPath = filepath.Clean(absSearchPath)

	info, statErr := os.Stat(absSearchPath)
	gitContextPath := absSearchPath
	if statErr == nil && !info.IsDir() {
		gitContextPath = filepath.Dir(absSearchPath)
	}

	gitRoot, err := client.GetRepoRoot(ctx, gitContextPath)
	if err != nil {
		return err
	}

	cfg.RepoPath = gitRoot
	return nil
}
