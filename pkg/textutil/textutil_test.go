package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiptools/shiptools/pkg/textutil"
)

func TestStripANSI(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", textutil.StripANSI("\x1b[32mhello\x1b[0m"))
	assert.Equal(t, "plain", textutil.StripANSI("plain"))
}

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, textutil.VisibleWidth("\x1b[31mhello\x1b[0m"))
	assert.Equal(t, 0, textutil.VisibleWidth(""))
}

func TestPadCenter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  ab  ", textutil.PadCenter("ab", 6))
	assert.Equal(t, " ab  ", textutil.PadCenter("ab", 5))
	assert.Equal(t, "abcdef", textutil.PadCenter("abcdef", 4))
}

func TestPadCenter_IgnoresANSI(t *testing.T) {
	t.Parallel()

	padded := textutil.PadCenter("\x1b[31mab\x1b[0m", 6)
	assert.Equal(t, 6, textutil.VisibleWidth(padded))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", textutil.Truncate("short", 10))
	assert.Equal(t, "long te...", textutil.Truncate("long text here", 10))
	assert.Equal(t, "ab", textutil.Truncate("abcdef", 2))
}
