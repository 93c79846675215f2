package moderation

import (
	stdErrors "errors"
	"testing"
	"udp-chat/errors"

	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	dictionary := []string{"badger", "snake", "mushroom"}
	mod, err := NewModerator(dictionary, replacementChar)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Multiple occurrences",
			input:    "badger badger",
			expected: "****** ******",
			words:    []string{"badger", "badger"},
		},
		{
			name:     "Uppercase and noise",
			input:    "S-N-A-K-E!",
			expected: "*********!",
			words:    []string{"snake"},
		},
		{
			name:     "Invalid bytes already replaced are kept",
			input:    "a � badger",
			expected: "a � ******",
			words:    []string{"badger"},
		},
		{
			name:     "Nothing to censor",
			input:    "hello\t127.0.0.1:9000",
			expected: "hello\t127.0.0.1:9000",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestNewModerator_OnlyNoise(t *testing.T) {
	req := require.New(t)

	// Given a dictionary that normalises to nothing
	_, err := NewModerator([]string{"...", ",,,", ""}, replacementChar)

	// Then the moderator is refused
	req.True(stdErrors.Is(err, errors.ErrEmptyWords))
}

func TestParseWords(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"badger", "snake"}, ParseWords(" badger, ,snake,"))
	req.Empty(ParseWords(""))
}
