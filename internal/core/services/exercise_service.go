package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

// ExerciseService owns the completed-exercise log, the derived stats and the
// guided exercise player.
type ExerciseService struct {
	store domain.KeyValueStore
	loc   *time.Location
	now   func() time.Time

	// writeMu serializes read-modify-write cycles on the log and stats.
	writeMu sync.Mutex

	mu       sync.Mutex
	sessions map[string]domain.PlayerState
}

func NewExerciseService(store domain.KeyValueStore, loc *time.Location) *ExerciseService {
	if loc == nil {
		loc = time.UTC
	}
	return &ExerciseService{
		store:    store,
		loc:      loc,
		now:      time.Now,
		sessions: make(map[string]domain.PlayerState),
	}
}

// SetClock replaces the time source.
func (s *ExerciseService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *ExerciseService) Location() *time.Location {
	return s.loc
}

type CompleteExerciseInput struct {
	UserID   string
	Name     string
	Category string
}

type PlayerResult struct {
	Player domain.PlayerState `json:"player"`
	Stats  *domain.Stats      `json:"stats,omitempty"`
}

func (s *ExerciseService) Catalog() []domain.Exercise {
	return domain.ExerciseCatalog()
}

func (s *ExerciseService) History(ctx context.Context, userID string) []domain.CompletedExercise {
	return getItem(ctx, s.store, domain.ScopedKey(domain.KeyCompletedExercises, userID), []domain.CompletedExercise{})
}

// TodayByCategory counts today's completions per category.
func (s *ExerciseService) TodayByCategory(ctx context.Context, userID string) map[string]int {
	return domain.CountTodayByCategory(s.History(ctx, userID), s.now(), s.loc)
}

func (s *ExerciseService) storedStats(ctx context.Context, userID string) domain.Stats {
	return getItem(ctx, s.store, domain.ScopedKey(domain.KeyStats, userID), domain.DefaultStats())
}

// Stats derives the current stats from the log without writing them back.
func (s *ExerciseService) Stats(ctx context.Context, userID string) domain.Stats {
	return domain.DeriveStats(s.History(ctx, userID), s.storedStats(ctx, userID), s.now(), s.loc)
}

// Complete appends a completion to the log, nudges the posture score and
// persists the recomputed stats. The stats go first and are rolled back if the
// log write fails, so an error means nothing was recorded.
func (s *ExerciseService) Complete(ctx context.Context, input CompleteExerciseInput) (*domain.Stats, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	entry, err := domain.NewCompletedExercise(input.Name, input.Category, s.now())
	if err != nil {
		return nil, err
	}

	history := append(s.History(ctx, input.UserID), entry)

	stored := s.storedStats(ctx, input.UserID)
	prev := stored
	prev.PostureScore = domain.ClampPostureScore(prev.PostureScore + domain.PostureScoreStep)

	statsKey := domain.ScopedKey(domain.KeyStats, input.UserID)
	stats := domain.DeriveStats(history, prev, s.now(), s.loc)
	if err := setItem(ctx, s.store, statsKey, stats); err != nil {
		return nil, err
	}

	if err := setItem(ctx, s.store, domain.ScopedKey(domain.KeyCompletedExercises, input.UserID), history); err != nil {
		if rbErr := setItem(ctx, s.store, statsKey, stored); rbErr != nil {
			log.Printf("[STORE] Stats rollback failed for user %s: %v", input.UserID, rbErr)
		}
		return nil, err
	}

	return &stats, nil
}

func (s *ExerciseService) SetPostureScore(ctx context.Context, userID string, score int) (*domain.Stats, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	stats := s.Stats(ctx, userID)
	stats.PostureScore = domain.ClampPostureScore(score)

	if err := setItem(ctx, s.store, domain.ScopedKey(domain.KeyStats, userID), stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RefreshStats rewrites the stored snapshot when it no longer matches the log,
// e.g. after a streak lapsed overnight. It reports whether anything changed.
func (s *ExerciseService) RefreshStats(ctx context.Context, userID string) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	stored := s.storedStats(ctx, userID)
	fresh := domain.DeriveStats(s.History(ctx, userID), stored, s.now(), s.loc)
	if fresh == stored {
		return false, nil
	}
	if err := setItem(ctx, s.store, domain.ScopedKey(domain.KeyStats, userID), fresh); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ExerciseService) StartSession(userID, exerciseID string) (domain.PlayerState, error) {
	exercise, err := domain.FindExercise(exerciseID)
	if err != nil {
		return domain.PlayerState{}, err
	}

	state := domain.NewPlayerState(exercise)

	s.mu.Lock()
	s.sessions[userID] = state
	s.mu.Unlock()

	return state, nil
}

// NextStep advances the active guided exercise. Stepping past the last step
// finishes the sequence and records the completion.
func (s *ExerciseService) NextStep(ctx context.Context, userID string) (*PlayerResult, error) {
	s.mu.Lock()
	state, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNoActiveSession
	}

	exercise, err := domain.FindExercise(state.ExerciseID)
	if err != nil {
		delete(s.sessions, userID)
		s.mu.Unlock()
		return nil, err
	}

	state.Advance(exercise)
	if state.Finished {
		delete(s.sessions, userID)
	} else {
		s.sessions[userID] = state
	}
	s.mu.Unlock()

	result := &PlayerResult{Player: state}
	if !state.Finished {
		return result, nil
	}

	stats, err := s.Complete(ctx, CompleteExerciseInput{
		UserID:   userID,
		Name:     exercise.Name,
		Category: exercise.Category,
	})
	if err != nil {
		return nil, err
	}
	result.Stats = stats
	return result, nil
}

func (s *ExerciseService) StopSession(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[userID]; !ok {
		return domain.ErrNoActiveSession
	}
	delete(s.sessions, userID)
	return nil
}
