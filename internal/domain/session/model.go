package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rpggio/polyglot/internal/langcode"
)

// Session is the single user session served by this process. It owns the
// state shared by every message, currently the selected target language.
type Session struct {
	ID        string
	StartedAt time.Time
	Target    *Selection
}

// New starts a session with the default target language.
func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Target:    NewSelection(langcode.Default),
	}
}

// Info is a read-only view of the session.
type Info struct {
	ID               string    `json:"id"`
	StartedAt        time.Time `json:"started_at"`
	SelectedLanguage string    `json:"selected_language"`
}

// Info returns the current view of the session.
func (s *Session) Info() Info {
	return Info{
		ID:               s.ID,
		StartedAt:        s.StartedAt,
		SelectedLanguage: s.Target.Get(),
	}
}

// Selection is the session-wide target language. Any writer may replace it;
// the last write wins.
type Selection struct {
	mu   sync.RWMutex
	lang string
}

// NewSelection creates a selection holding lang.
func NewSelection(lang string) *Selection {
	return &Selection{lang: lang}
}

// Get returns the selected language.
func (s *Selection) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Set replaces the selected language and returns the previous one.
func (s *Selection) Set(lang string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.lang
	s.lang = lang
	return prev
}
