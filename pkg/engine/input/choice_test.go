package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseChoiceByNumber(t *testing.T) {
	options := []string{"North", "South", "East"}

	idx, err := ParseChoice(options, "1")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = ParseChoice(options, " 3 ")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestParseChoiceByText(t *testing.T) {
	options := []string{"North", "South", "East"}

	tests := []struct {
		line string
		want int
	}{
		{"north", 0},
		{"NORTH", 0},
		{"South", 1},
		{"  east ", 2},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			idx, err := ParseChoice(options, tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, idx)
		})
	}
}

func TestParseChoiceNumberOutOfRange(t *testing.T) {
	options := []string{"North", "South"}

	for _, line := range []string{"0", "3", "-1"} {
		_, err := ParseChoice(options, line)
		var choiceErr *InvalidChoiceError
		require.ErrorAs(t, err, &choiceErr)
		assert.True(t, choiceErr.Numeric)
		assert.NotContains(t, choiceErr.Error(), "Try again")
	}
}

func TestParseChoiceUnknownText(t *testing.T) {
	options := []string{"North", "South"}

	_, err := ParseChoice(options, "upstairs")
	var choiceErr *InvalidChoiceError
	require.ErrorAs(t, err, &choiceErr)
	assert.False(t, choiceErr.Numeric)
	assert.Contains(t, choiceErr.Error(), "Try again. 'upstairs'")
}

func TestParseChoiceEmptyOptions(t *testing.T) {
	_, err := ParseChoice(nil, "1")
	assert.Error(t, err)
}

func TestPropertyParseChoiceValidIndexAlwaysResolves(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "num_options")
		options := make([]string, n)
		for i := range options {
			options[i] = rapid.StringMatching(`[A-Za-z]{1,10}`).Draw(t, "option")
		}
		pick := rapid.IntRange(1, n).Draw(t, "pick")

		idx, err := ParseChoice(options, strings.ToUpper(options[pick-1]))
		require.NoError(t, err)
		// Text matching picks the first case-insensitive match.
		assert.Equal(t, strings.ToLower(options[idx]), strings.ToLower(options[pick-1]))
	})
}

func TestReaderReadLine(t *testing.T) {
	r := NewReader(strings.NewReader("  hello \nworld\n"))

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "world", line)

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}
