package keyword

import (
	"chat-notifier/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatcher_Find(t *testing.T) {
	req := require.New(t)
	matcher, err := NewMatcher([]string{"tutturuu", "ding", "amogus"})
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "Nothing", input: "hello chat", expected: nil},
		{name: "Single word", input: "ding ding", expected: []string{"ding"}},
		{name: "Case is ignored", input: "AMOGUS sus", expected: []string{"amogus"}},
		{name: "Inside another word", input: "dingdong", expected: []string{"ding"}},
		{name: "Order of appearance", input: "amogus then tutturuu", expected: []string{"amogus", "tutturuu"}},
		{name: "Empty", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, matcher.Find(tt.input))
		})
	}
}

func TestMatcher_First_Uses_Declaration_Priority(t *testing.T) {
	req := require.New(t)
	matcher, err := NewMatcher([]string{"amogus", "awoo", "nya"})
	req.NoError(err)

	// nya appears first in the text but amogus has priority
	word, ok := matcher.First("nya nya amogus awoo")
	req.True(ok)
	req.Equal("amogus", word)

	word, ok = matcher.First("AWOO and nya")
	req.True(ok)
	req.Equal("awoo", word)

	_, ok = matcher.First("nothing here")
	req.False(ok)
}

func TestNewMatcher_Empty(t *testing.T) {
	_, err := NewMatcher([]string{"", ""})
	require.ErrorIs(t, err, errors.ErrEmptyWords)
}
