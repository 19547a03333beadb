package gitlog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BasicLog(t *testing.T) {
	log := strings.Join([]string{
		"a1b2c3d4e5f60718293a4b5c6d7e8f9012345678|fix: resolve login bug|2024-03-01T10:00:00Z",
		"5\t2\tauth.py",
		"3\t1\ttests/test_auth.py",
		"b2c3d4e5f60718293a4b5c6d7e8f90123456789a|add feature|2024-03-02T11:30:00Z",
		"10\t0\tfeature.py",
	}, "\n")

	commits := Parse([]byte(log))
	require.Len(t, commits, 2)

	first := commits[0]
	assert.Equal(t, "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678", first.Hash)
	assert.Equal(t, "fix: resolve login bug", first.Message)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), first.Timestamp)
	require.Len(t, first.Files, 2)
	assert.Equal(t, 5, first.Files["auth.py"].Additions)
	assert.Equal(t, 2, first.Files["auth.py"].Deletions)
	assert.Equal(t, 4, first.Files["tests/test_auth.py"].Churn())

	second := commits[1]
	assert.Equal(t, "add feature", second.Message)
	require.Len(t, second.Files, 1)
	assert.Equal(t, 10, second.Files["feature.py"].Churn())
}

func TestParse_ShortHashHeader(t *testing.T) {
	log := "a1b2c3d|short hash commit|2024-01-01T00:00:00Z\n1\t1\tmain.py\n"

	commits := Parse([]byte(log))
	require.Len(t, commits, 1)
	assert.Equal(t, "a1b2c3d", commits[0].Hash)
}

func TestParse_BinaryFileCountsAsChange(t *testing.T) {
	log := strings.Join([]string{
		"a1b2c3d4e5f6071829|add logo|2024-01-01T00:00:00Z",
		"-\t-\tassets/logo.png",
		"2\t1\tmain.py",
	}, "\n")

	commits := Parse([]byte(log))
	require.Len(t, commits, 1)

	// Binary churn reads as 0, but the change to the file is still recorded.
	change, ok := commits[0].Files["assets/logo.png"]
	require.True(t, ok)
	assert.Equal(t, 0, change.Churn())
	assert.Equal(t, 3, commits[0].Files["main.py"].Churn())
}

func TestParse_LinesBeforeFirstHeaderDiscarded(t *testing.T) {
	log := strings.Join([]string{
		"warning: some noise from git",
		"3\t3\torphan.py",
		"a1b2c3d4e5f6071829|first real commit|2024-01-01T00:00:00Z",
		"1\t0\treal.py",
	}, "\n")

	commits := Parse([]byte(log))
	require.Len(t, commits, 1)
	assert.NotContains(t, commits[0].Files, "orphan.py")
	assert.Contains(t, commits[0].Files, "real.py")
}

func TestParse_MalformedLinesSkipped(t *testing.T) {
	log := strings.Join([]string{
		"a1b2c3d4e5f6071829|commit|2024-01-01T00:00:00Z",
		"abc\tdef\tbroken.py", // non-numeric counters
		"5\t5",                // missing path
		"",                    // blank
		"some stray output without tabs",
		"2\t2\tkept.py",
	}, "\n")

	commits := Parse([]byte(log))
	require.Len(t, commits, 1)
	require.Len(t, commits[0].Files, 1)
	assert.Contains(t, commits[0].Files, "kept.py")
}

func TestParse_SubjectContainingPipes(t *testing.T) {
	log := "a1b2c3d4e5f6071829|fix: a | b | c handling|2024-01-01T00:00:00Z\n1\t1\tpipes.py\n"

	commits := Parse([]byte(log))
	require.Len(t, commits, 1)
	assert.Equal(t, "fix: a | b | c handling", commits[0].Message)
	assert.False(t, commits[0].Timestamp.IsZero())
}

func TestParse_IsoDateWithSpaces(t *testing.T) {
	log := "a1b2c3d4e5f6071829|commit|2024-01-01 10:30:00 +0200\n1\t1\ta.py\n"

	commits := Parse([]byte(log))
	require.Len(t, commits, 1)
	assert.Equal(t, 2024, commits[0].Timestamp.Year())
}

func TestParse_RenamePaths(t *testing.T) {
	log := strings.Join([]string{
		"a1b2c3d4e5f6071829|move things around|2024-01-01T00:00:00Z",
		"1\t1\told_name.py => new_name.py",
		"2\t2\tsrc/{utils => helpers}/tool.py",
	}, "\n")

	commits := Parse([]byte(log))
	require.Len(t, commits, 1)
	assert.Contains(t, commits[0].Files, "new_name.py")
	assert.Contains(t, commits[0].Files, "src/helpers/tool.py")
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, Parse(nil))
	assert.Empty(t, Parse([]byte("")))
	assert.Empty(t, Parse([]byte("no headers here at all\n")))
}

// FuzzParse fuzzes the log parser with arbitrary text. The parser must
// never panic regardless of input shape.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"a1b2c3d4e5f6071829|commit|2024-01-01T00:00:00Z\n1\t2\tfile.py\n",
		"-\t-\tbinary.png\n",
		"a1b2c3d|x|\n\t\t\n",
		"||||\n",
		"a1b2c3d4e5f6071829|a => b|2024-01-01T00:00:00Z\n1\t1\t{x => y}/z.py\n",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		commits := Parse([]byte(input))
		for _, c := range commits {
			for _, change := range c.Files {
				if change.Additions < 0 || change.Deletions < 0 {
					panic("negative churn counters")
				}
			}
		}
	})
}
