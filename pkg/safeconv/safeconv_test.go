package safeconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiptools/shiptools/pkg/safeconv"
)

func TestParseInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, safeconv.ParseInt("42", 0))
	assert.Equal(t, -7, safeconv.ParseInt("-7", 0))
	assert.Equal(t, 99, safeconv.ParseInt("bogus", 99))
}

func TestParseFloat(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 3.14, safeconv.ParseFloat("3.14", 0), 0.0001)
	assert.InDelta(t, 1.5, safeconv.ParseFloat("x", 1.5), 0.0001)
}

func TestParseSigned64_Plain(t *testing.T) {
	t.Parallel()

	v, err := safeconv.ParseSigned64("-590")
	require.NoError(t, err)
	assert.Equal(t, int64(-590), v)
}

func TestParseSigned64_UnsignedWraparound(t *testing.T) {
	t.Parallel()

	v, err := safeconv.ParseSigned64("18446744073709551026")
	require.NoError(t, err)
	assert.Equal(t, int64(-590), v)
}

func TestParseSigned64_Invalid(t *testing.T) {
	t.Parallel()

	_, err := safeconv.ParseSigned64("not-a-number")
	require.Error(t, err)
}
