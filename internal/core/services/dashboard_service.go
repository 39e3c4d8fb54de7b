package services

import (
	"context"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

type DashboardService struct {
	users     domain.UserRepository
	exercises *ExerciseService
}

func NewDashboardService(users domain.UserRepository, exercises *ExerciseService) *DashboardService {
	return &DashboardService{
		users:     users,
		exercises: exercises,
	}
}

type HomeView struct {
	User            *domain.User      `json:"user"`
	PostureScore    int               `json:"postureScore"`
	PostureLabel    string            `json:"postureLabel"`
	CurrentStreak   int               `json:"currentStreak"`
	TodayByCategory map[string]int    `json:"todayByCategory"`
	TodayTotal      int               `json:"todayTotal"`
	Recommended     []domain.Exercise `json:"recommended"`
}

type StatsView struct {
	domain.Stats
	LongestStreak    int                       `json:"longestStreak"`
	TotalCompletions int                       `json:"totalCompletions"`
	Achievements     []domain.Achievement      `json:"achievements"`
	Leaderboard      []domain.LeaderboardEntry `json:"leaderboard"`
}

func (s *DashboardService) Home(ctx context.Context, userID string) (*HomeView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := s.exercises.Stats(ctx, userID)
	today := s.exercises.TodayByCategory(ctx, userID)

	total := 0
	for _, n := range today {
		total += n
	}

	return &HomeView{
		User:            user,
		PostureScore:    stats.PostureScore,
		PostureLabel:    domain.PostureLabel(stats.PostureScore),
		CurrentStreak:   stats.CurrentStreak,
		TodayByCategory: today,
		TodayTotal:      total,
		Recommended:     domain.RecommendedExercises(),
	}, nil
}

func (s *DashboardService) Stats(ctx context.Context, userID string) *StatsView {
	history := s.exercises.History(ctx, userID)
	stats := s.exercises.Stats(ctx, userID)

	return &StatsView{
		Stats:            stats,
		LongestStreak:    domain.CalculateLongestStreak(history, s.exercises.Location()),
		TotalCompletions: len(history),
		Achievements:     domain.BuildAchievements(stats, len(history)),
		Leaderboard:      domain.BuildLeaderboard(stats),
	}
}
