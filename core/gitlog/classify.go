package gitlog

import (
	"path"
	"strings"

	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// FileClassifier labels paths as test, production or ignored, using a
// configured set of source extensions and bootstrap markers so multiple
// analyses can run with different rule sets without interference.
type FileClassifier struct {
	sourceExts       []string
	bootstrapMarkers []string
}

// NewFileClassifier builds a classifier from explicit rule sets.
func NewFileClassifier(sourceExts, bootstrapMarkers []string) *FileClassifier {
	return &FileClassifier{
		sourceExts:       lowerAll(sourceExts),
		bootstrapMarkers: lowerAll(bootstrapMarkers),
	}
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Normalize lowers the path, converts separators to forward slashes and
// strips any leading slash, so git-log paths and externally supplied smell
// paths compare consistently.
func (c *FileClassifier) Normalize(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.TrimPrefix(p, "/")
}

// Classify assigns the path to exactly one of test, production or ignored.
func (c *FileClassifier) Classify(p string) schema.FileKind {
	n := c.Normalize(p)
	if c.isTest(n) {
		return schema.TestFile
	}
	if c.isProduction(n) {
		return schema.ProductionFile
	}
	return schema.IgnoredFile
}

// isTest matches the conventional test-path shapes on a normalized path.
func (c *FileClassifier) isTest(n string) bool {
	return strings.Contains(n, "/test_") ||
		strings.Contains(n, "_test.") ||
		strings.Contains(n, "/tests/") ||
		strings.HasPrefix(n, "test_") ||
		strings.HasPrefix(n, "tests/")
}

// isProduction requires a recognized source extension and excludes
// bootstrap files like package initializers and build scripts.
func (c *FileClassifier) isProduction(n string) bool {
	hasSourceExt := false
	for _, ext := range c.sourceExts {
		if strings.HasSuffix(n, ext) {
			hasSourceExt = true
			break
		}
	}
	if !hasSourceExt {
		return false
	}
	for _, marker := range c.bootstrapMarkers {
		if strings.HasSuffix(n, marker) {
			return false
		}
	}
	return true
}

// SamePath reports whether two paths refer to the same file. It succeeds
// when the normalized paths are identical, when one is a path suffix of the
// other (same trailing path under a different prefix), or when both
// basenames are identical and test-prefixed. This is needed to correlate
// smell-scanner paths against git-log paths, which often differ in prefix.
func (c *FileClassifier) SamePath(a, b string) bool {
	na, nb := c.Normalize(a), c.Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	if strings.HasSuffix(na, "/"+nb) || strings.HasSuffix(nb, "/"+na) {
		return true
	}
	baseA, baseB := path.Base(na), path.Base(nb)
	return baseA == baseB && strings.HasPrefix(baseA, "test")
}
