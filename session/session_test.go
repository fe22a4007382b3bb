package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellodash/hellodash/openai"
)

func TestNewSession(t *testing.T) {
	s := New()
	assert.NotEmpty(t, s.ID)
	assert.Empty(t, s.History)
	assert.Equal(t, 1, s.SearchPage)
	require.NotNil(t, s.SearchCache)

	s2 := New()
	assert.NotEqual(t, s.ID, s2.ID)
}

func TestHistoryOrderAfterOneRoundTrip(t *testing.T) {
	s := New()
	assert.Empty(t, s.History)

	s.AppendUser("Hi")
	s.AppendAssistant("Hello")

	require.Len(t, s.History, 2)
	assert.Equal(t, openai.ChatMessage{Role: openai.RoleUser, Content: "Hi"}, s.History[0])
	assert.Equal(t, openai.ChatMessage{Role: openai.RoleAssistant, Content: "Hello"}, s.History[1])
}

func TestHistoryGrowsMonotonically(t *testing.T) {
	s := New()
	s.AppendUser("one")
	s.AppendAssistant("two")
	s.AppendUser("three")

	require.Len(t, s.History, 3)
	assert.Equal(t, "one", s.History[0].Content)
	assert.Equal(t, "three", s.History[2].Content)
}

func TestTranscriptPrependsSystemMessage(t *testing.T) {
	s := New()
	s.AppendUser("Hi")

	transcript := s.Transcript("Be concise.")
	require.Len(t, transcript, 2)
	assert.Equal(t, openai.RoleSystem, transcript[0].Role)
	assert.Equal(t, "Be concise.", transcript[0].Content)
	assert.Equal(t, openai.RoleUser, transcript[1].Role)

	// The stored history is unchanged.
	require.Len(t, s.History, 1)
	assert.Equal(t, openai.RoleUser, s.History[0].Role)
}

func TestTranscriptWithoutSystemMessage(t *testing.T) {
	s := New()
	s.AppendUser("Hi")
	assert.Len(t, s.Transcript(""), 1)
}

func TestClearHistory(t *testing.T) {
	s := New()
	id := s.ID
	s.AppendUser("Hi")
	s.ClearHistory()

	assert.Empty(t, s.History)
	assert.Equal(t, id, s.ID)
	assert.NotNil(t, s.SearchCache)
}

func TestPagination(t *testing.T) {
	s := New()

	s.NextPage(3)
	assert.Equal(t, 2, s.SearchPage)
	s.NextPage(3)
	assert.Equal(t, 3, s.SearchPage)

	// Clamped at the last page.
	s.NextPage(3)
	assert.Equal(t, 3, s.SearchPage)

	s.PrevPage()
	assert.Equal(t, 2, s.SearchPage)
	s.PrevPage()
	s.PrevPage()
	// Clamped at the first page.
	assert.Equal(t, 1, s.SearchPage)

	s.SetPage(99, 5)
	assert.Equal(t, 5, s.SearchPage)
	s.SetPage(-4, 5)
	assert.Equal(t, 1, s.SearchPage)
}
