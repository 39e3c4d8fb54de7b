package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

// PostureService runs simulated live posture sessions, one per user.
type PostureService struct {
	now  func() time.Time
	draw func() float64

	mu       sync.Mutex
	sessions map[string]*domain.PostureSession
}

func NewPostureService() *PostureService {
	return &PostureService{
		now:      time.Now,
		draw:     rand.Float64,
		sessions: make(map[string]*domain.PostureSession),
	}
}

// SetSource replaces the clock and the random source.
func (s *PostureService) SetSource(now func() time.Time, draw func() float64) {
	s.now = now
	s.draw = draw
}

// Start begins a session, replacing any session already running for userID.
func (s *PostureService) Start(userID string) domain.PostureSession {
	session := domain.NewPostureSession(s.now())

	s.mu.Lock()
	s.sessions[userID] = session
	s.mu.Unlock()

	return *session
}

func (s *PostureService) Sample(userID string) (domain.PostureSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return domain.PostureSession{}, domain.ErrNoActiveSession
	}

	session.Observe(s.draw())
	session.Tick(s.now())
	return *session, nil
}

func (s *PostureService) Stop(userID string) (domain.PostureSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return domain.PostureSession{}, domain.ErrNoActiveSession
	}
	delete(s.sessions, userID)

	session.Tick(s.now())
	return *session, nil
}
