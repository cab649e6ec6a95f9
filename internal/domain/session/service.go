package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/reel/internal/domain/carousel"
	"github.com/rpggio/reel/internal/domain/gallery"
	"github.com/rpggio/reel/internal/domain/project"
)

// Config controls session behavior.
type Config struct {
	// IdleTTL closes sessions with no activity for this long. Zero disables expiry.
	IdleTTL time.Duration
	// SweepInterval is how often Run looks for idle sessions.
	SweepInterval time.Duration
	// CarouselInterval is the featured carousel autoplay period.
	CarouselInterval time.Duration
	// CarouselOptions are applied to every new carousel.
	CarouselOptions []carousel.Option
}

// Service owns the live viewer sessions and their carousel timers.
type Service struct {
	catalog  *project.Catalog
	cfg      Config
	observer Observer
	logger   *slog.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewService creates a session service over catalog.
func NewService(catalog *project.Catalog, cfg Config, observer Observer, logger *slog.Logger) *Service {
	if observer == nil {
		observer = nopObserver{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	return &Service{
		catalog:  catalog,
		cfg:      cfg,
		observer: observer,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Open mounts a new gallery and carousel and starts autoplay. The carousel
// outlives ctx's cancellation; it runs until the session is closed.
func (s *Service) Open(ctx context.Context) (*Session, error) {
	featured := s.catalog.ListFeatured()
	now := s.now()

	opts := append([]carousel.Option{
		carousel.WithOnAdvance(func(carousel.State) { s.observer.CarouselAdvanced() }),
	}, s.cfg.CarouselOptions...)

	sess := &Session{
		ID:           uuid.NewString(),
		CreatedAt:    now,
		Gallery:      gallery.NewController(s.catalog),
		Carousel:     carousel.NewController(len(featured), s.cfg.CarouselInterval, opts...),
		featured:     featured,
		status:       StatusActive,
		lastActivity: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	sess.Carousel.Start(context.WithoutCancel(ctx))
	s.observer.SessionOpened()
	s.logger.Debug("session opened", "session_id", sess.ID, "featured", len(featured))
	return sess, nil
}

// Get returns an open session and marks it active.
func (s *Service) Get(_ context.Context, id string) (*Session, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.touch(s.now())
	return sess, nil
}

// Close unmounts a session and releases its carousel timer.
func (s *Service) Close(_ context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	if !s.closeSession(id, ReasonClient) {
		return ErrSessionNotFound
	}
	return nil
}

// List returns summaries of open sessions.
func (s *Service) List() []Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	infos := make([]Info, 0, len(s.sessions))
	for _, sess := range s.sessions {
		infos = append(infos, sess.Info())
	}
	return infos
}

// Count returns the number of open sessions.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep closes sessions idle longer than the configured TTL and returns
// how many were closed.
func (s *Service) Sweep(now time.Time) int {
	if s.cfg.IdleTTL <= 0 {
		return 0
	}

	s.mu.Lock()
	var idle []string
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.cfg.IdleTTL {
			idle = append(idle, id)
		}
	}
	s.mu.Unlock()

	closed := 0
	for _, id := range idle {
		if s.closeSession(id, ReasonIdle) {
			closed++
		}
	}
	if closed > 0 {
		s.logger.Info("idle sessions closed", "count", closed)
	}
	return closed
}

// Run sweeps idle sessions until ctx is done, then closes every session.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.CloseAll()
			return
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}

// CloseAll closes every open session.
func (s *Service) CloseAll() {
	s.mu.Lock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		s.closeSession(id, ReasonShutdown)
	}
}

func (s *Service) closeSession(id string, reason CloseReason) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok || !sess.close() {
		return false
	}
	s.observer.SessionClosed(reason)
	s.logger.Debug("session closed", "session_id", id, "reason", reason)
	return true
}
