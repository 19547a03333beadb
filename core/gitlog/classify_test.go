package gitlog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

func newTestClassifier() *FileClassifier {
	return NewFileClassifier(schema.DefaultSourceExtensions, schema.DefaultBootstrapMarkers)
}

func TestFileClassifier_Classify(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		path string
		want schema.FileKind
	}{
		{"tests/test_auth.py", schema.TestFile},
		{"test_main.py", schema.TestFile},
		{"pkg/handler_test.go", schema.TestFile},
		{"src/tests/helpers.py", schema.TestFile},
		{"tests/fixtures.py", schema.TestFile},
		{"app/test_views.py", schema.TestFile},

		{"auth.py", schema.ProductionFile},
		{"src/server.go", schema.ProductionFile},
		{"LIB/Parser.Java", schema.ProductionFile},

		{"app/__init__.py", schema.IgnoredFile},
		{"setup.py", schema.IgnoredFile},
		{"README.md", schema.IgnoredFile},
		{"assets/logo.png", schema.IgnoredFile},
		{"requirements.txt", schema.IgnoredFile},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.path))
		})
	}
}

func TestFileClassifier_Normalize(t *testing.T) {
	c := newTestClassifier()

	assert.Equal(t, "src/main.py", c.Normalize("/src/Main.py"))
	assert.Equal(t, "src/utils/tool.py", c.Normalize("src\\Utils\\Tool.py"))
	assert.Equal(t, "a.py", c.Normalize("  a.py  "))
}

func TestFileClassifier_SamePath(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "tests/test_auth.py", "tests/test_auth.py", true},
		{"case and separator differences", "Tests\\Test_Auth.py", "tests/test_auth.py", true},
		{"one is suffix of the other", "backend/tests/test_auth.py", "tests/test_auth.py", true},
		{"suffix in either direction", "tests/test_auth.py", "project/backend/tests/test_auth.py", true},
		{"same test basename different dirs", "unit/test_auth.py", "integration/test_auth.py", true},
		{"same non-test basename different dirs", "a/models.py", "b/models.py", false},
		{"different files", "tests/test_auth.py", "tests/test_user.py", false},
		{"partial prefix is not a suffix", "sts/utils.py", "tests/utils.py", false},
		{"empty", "", "tests/test_auth.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.SamePath(tt.a, tt.b))
		})
	}
}

func TestFileClassifier_EveryPathHasExactlyOneKind(t *testing.T) {
	c := newTestClassifier()

	paths := []string{
		"tests/test_a.py", "auth.py", "__init__.py", "doc.md",
		"test_x.py", "src/app.py", "a/b/c.go", "binary.bin",
	}
	for _, p := range paths {
		kind := c.Classify(p)
		assert.Contains(t, []schema.FileKind{
			schema.TestFile, schema.ProductionFile, schema.IgnoredFile,
		}, kind, "path %s must fall into exactly one class", p)
	}
}

// FuzzNormalize ensures path normalization never panics and is idempotent.
func FuzzNormalize(f *testing.F) {
	seeds := []string{"/a/b.py", "A\\B.PY", "", "  x  ", "tests/test_a.py"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	c := NewFileClassifier(schema.DefaultSourceExtensions, schema.DefaultBootstrapMarkers)
	f.Fuzz(func(t *testing.T, p string) {
		once := c.Normalize(p)
		twice := c.Normalize(once)
		if once != twice {
			t.Errorf("normalize not idempotent: %q -> %q -> %q", p, once, twice)
		}
	})
}
