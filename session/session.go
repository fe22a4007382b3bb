// Package session holds the per-session mutable state the pages share:
// conversation history, the search pagination cursor, and the search response
// cache. State is an explicit object passed into handlers rather than ambient
// globals, so concurrent sessions cannot interfere. A single session assumes
// one writer at a time.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/hellodash/hellodash/cache"
	"github.com/hellodash/hellodash/openai"
)

// DefaultCacheTTL bounds how long a cached search response is served.
const DefaultCacheTTL = 5 * time.Minute

// Session is the state for one user session.
type Session struct {
	ID          string
	History     []openai.ChatMessage
	SearchPage  int
	SearchCache *cache.Cache
}

// New creates an empty session with a fresh identifier.
func New() *Session {
	return NewWithTTL(DefaultCacheTTL)
}

// NewWithTTL creates an empty session whose search cache uses the given TTL.
func NewWithTTL(ttl time.Duration) *Session {
	return &Session{
		ID:          uuid.NewString(),
		SearchPage:  1,
		SearchCache: cache.New(ttl),
	}
}

// AppendUser appends a user message to the conversation history.
func (s *Session) AppendUser(content string) {
	s.History = append(s.History, openai.ChatMessage{Role: openai.RoleUser, Content: content})
}

// AppendAssistant appends an assistant reply to the conversation history.
func (s *Session) AppendAssistant(content string) {
	s.History = append(s.History, openai.ChatMessage{Role: openai.RoleAssistant, Content: content})
}

// Transcript returns the history with an optional system message prepended.
// The stored history itself never contains the system message.
func (s *Session) Transcript(systemMessage string) []openai.ChatMessage {
	if systemMessage == "" {
		return s.History
	}
	transcript := make([]openai.ChatMessage, 0, len(s.History)+1)
	transcript = append(transcript, openai.ChatMessage{Role: openai.RoleSystem, Content: systemMessage})
	return append(transcript, s.History...)
}

// ClearHistory drops the conversation history. The session identifier and
// cache survive.
func (s *Session) ClearHistory() {
	s.History = nil
}

// SetPage moves the pagination cursor, clamped to [1, totalPages].
// A totalPages of zero leaves only page 1 reachable.
func (s *Session) SetPage(page, totalPages int) {
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	s.SearchPage = page
}

// NextPage advances the cursor by one, bounded by totalPages.
func (s *Session) NextPage(totalPages int) {
	s.SetPage(s.SearchPage+1, totalPages)
}

// PrevPage moves the cursor back by one, bounded below by 1.
func (s *Session) PrevPage() {
	s.SetPage(s.SearchPage-1, 0)
}
