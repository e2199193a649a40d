package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlain(t *testing.T) {
	c, err := Parse([]string{"ls", "-l", "/tmp"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ls", "-l", "/tmp"}, c.Args)
	assert.Equal(t, "ls", c.Name())
	assert.Empty(t, c.In)
	assert.Empty(t, c.Out)
	assert.False(t, c.Background)
}

func TestParseBackgroundMarker(t *testing.T) {
	c, err := Parse([]string{"sleep", "5", "&"})
	require.NoError(t, err)

	assert.True(t, c.Background)
	assert.Equal(t, []string{"sleep", "5"}, c.Args, "marker must be stripped")
}

func TestParseMarkerOnlyTrailing(t *testing.T) {
	c, err := Parse([]string{"echo", "&", "done"})
	require.NoError(t, err)

	assert.False(t, c.Background)
	assert.Equal(t, []string{"echo", "&", "done"}, c.Args)
}

func TestParseRedirections(t *testing.T) {
	c, err := Parse([]string{"sort", "<", "in.txt", ">", "out.txt"})
	require.NoError(t, err)

	assert.Equal(t, []string{"sort"}, c.Args)
	assert.Equal(t, "in.txt", c.In)
	assert.Equal(t, "out.txt", c.Out)
}

func TestParseRedirectionAnywhere(t *testing.T) {
	c, err := Parse([]string{">", "out.txt", "wc", "<", "in.txt", "-l"})
	require.NoError(t, err)

	assert.Equal(t, []string{"wc", "-l"}, c.Args)
	assert.Equal(t, "in.txt", c.In)
	assert.Equal(t, "out.txt", c.Out)
}

func TestParseDuplicateRedirectionLastWins(t *testing.T) {
	c, err := Parse([]string{"cat", ">", "first", ">", "second"})
	require.NoError(t, err)

	assert.Equal(t, "second", c.Out)
	assert.Equal(t, []string{"cat"}, c.Args)
}

func TestParseTrailingOperator(t *testing.T) {
	for _, op := range []string{"<", ">"} {
		_, err := Parse([]string{"cat", op})
		assert.Error(t, err, "trailing %q must never be executed", op)
	}
}

func TestParseTrailingOperatorBeforeMarker(t *testing.T) {
	_, err := Parse([]string{"cat", ">", "&"})
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse([]string{"<", "in.txt"})
	assert.ErrorIs(t, err, ErrEmpty)
}
