package session

import (
	"sync"
	"time"

	"github.com/rpggio/reel/internal/domain/carousel"
	"github.com/rpggio/reel/internal/domain/gallery"
	"github.com/rpggio/reel/internal/domain/project"
)

// SessionStatus represents the lifecycle status of a session
type SessionStatus string

const (
	StatusActive SessionStatus = "active"
	StatusClosed SessionStatus = "closed"
)

// CloseReason records why a session ended.
type CloseReason string

const (
	ReasonClient   CloseReason = "client"
	ReasonIdle     CloseReason = "idle"
	ReasonShutdown CloseReason = "shutdown"
)

// Session is one mounted gallery and featured carousel for a single viewer.
type Session struct {
	ID        string
	CreatedAt time.Time

	Gallery  *gallery.Controller
	Carousel *carousel.Controller

	featured []project.Project

	mu           sync.Mutex
	status       SessionStatus
	lastActivity time.Time
}

// Info is a serializable summary of a session.
type Info struct {
	SessionID    string        `json:"session_id"`
	Status       SessionStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	LastActivity time.Time     `json:"last_activity"`
}

// Featured returns the projects the carousel rotates over.
func (s *Session) Featured() []project.Project {
	out := make([]project.Project, len(s.featured))
	copy(out, s.featured)
	return out
}

// CurrentSlide returns the featured project at the carousel index.
func (s *Session) CurrentSlide() (project.Project, bool) {
	state := s.Carousel.State()
	if state.Length == 0 || state.Index >= len(s.featured) {
		return project.Project{}, false
	}
	return s.featured[state.Index], true
}

// Info returns a summary of the session.
func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Info{
		SessionID:    s.ID,
		Status:       s.status,
		CreatedAt:    s.CreatedAt,
		LastActivity: s.lastActivity,
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = now
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActivity)
}

// close stops the carousel timer. Only the first call has any effect.
func (s *Session) close() bool {
	s.mu.Lock()
	if s.status == StatusClosed {
		s.mu.Unlock()
		return false
	}
	s.status = StatusClosed
	s.mu.Unlock()

	s.Carousel.Stop()
	return true
}
