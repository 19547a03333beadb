package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// FileKind classifies a path seen in git history.
	FileKind string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All file kinds. Every path in history falls into exactly one of these.
const (
	TestFile       FileKind = "test"
	ProductionFile FileKind = "production"
	IgnoredFile    FileKind = "ignored"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// DefaultFaultKeywords is the fixed keyword set used to label a commit as
// fault-related. Matching is case-insensitive substring matching, so
// "prefix" and "fixup" match too; the list is intentionally high-recall.
var DefaultFaultKeywords = []string{
	"bug", "fix", "error", "defect", "issue", "fault",
	"crash", "patch", "repair", "correct", "resolve",
}

// DefaultSourceExtensions lists the extensions recognized as source code
// for the production-file classification.
var DefaultSourceExtensions = []string{
	".py", ".go", ".js", ".jsx", ".ts", ".tsx", ".java", ".rb",
	".c", ".cc", ".cpp", ".h", ".hpp", ".cs", ".rs", ".php",
	".kt", ".scala", ".swift", ".m",
}

// DefaultBootstrapMarkers lists basename suffixes of package-init and
// build-script files excluded from the production class.
var DefaultBootstrapMarkers = []string{
	"__init__.py", "__main__.py", "setup.py",
}
