package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "short.go", TruncatePath("short.go", 20))
	assert.Equal(t, "...d/e/f.go", TruncatePath("a/b/c/d/e/f.go", 11))
	// maxWidth too small for ellipsis, path comes back untouched
	assert.Equal(t, "a/b/c/d/e/f.go", TruncatePath("a/b/c/d/e/f.go", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestGetColorLabelMatchesPlainText(t *testing.T) {
	cases := map[float64]string{
		1.5:  CriticalValue,
		0.7:  HighValue,
		0.2:  ModerateValue,
		-0.4: LowValue,
	}
	for ps, want := range cases {
		assert.Contains(t, GetColorLabel(ps), want)
	}
}
