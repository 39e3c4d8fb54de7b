package domain

import (
	"fmt"
	"sort"
)

const CurrentUserName = "You"

type LeaderboardEntry struct {
	Name  string `json:"name"`
	Rank  int    `json:"rank"`
	Score int    `json:"score"`
	Days  int    `json:"days"`
	IsYou bool   `json:"isYou"`
}

type Achievement struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

var mockPeers = []LeaderboardEntry{
	{Name: "Sarah K.", Score: 95, Days: 7},
	{Name: "Mike T.", Score: 82, Days: 5},
	{Name: "Alex W.", Score: 65, Days: 3},
	{Name: "Jamie L.", Score: 60, Days: 2},
}

// BuildLeaderboard ranks the current user against the fixed peer list by
// score, then streak days. Ties keep the current user ahead.
func BuildLeaderboard(stats Stats) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(mockPeers)+1)
	entries = append(entries, LeaderboardEntry{
		Name:  CurrentUserName,
		Score: stats.PostureScore,
		Days:  stats.CurrentStreak,
		IsYou: true,
	})
	entries = append(entries, mockPeers...)

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Days > entries[j].Days
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func BuildAchievements(stats Stats, completions int) []Achievement {
	exercise := "First Exercise"
	if completions > 0 {
		exercise = "Exercise Completed"
	}
	posture := "Posture Improver"
	if stats.PostureScore > 75 {
		posture = "Posture Pro"
	}

	return []Achievement{
		{Title: fmt.Sprintf("%d-Day Streak", stats.CurrentStreak), Icon: "streak"},
		{Title: exercise, Icon: "exercise"},
		{Title: posture, Icon: "posture"},
		{Title: "Early Adopter", Icon: "early-adopter"},
	}
}
