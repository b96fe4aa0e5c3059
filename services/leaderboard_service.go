package services

import (
	"math"
	"sort"

	"gamebattles-system/models"
	"gamebattles-system/repository"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Leaderboard is capped at the top 100 players.
const leaderboardSize = 100

// LeaderboardService derives the ranked standings from user records.
// It is a pure read-side projection; nothing here mutates state.
type LeaderboardService struct {
	users    repository.UserStore
	collator *collate.Collator
}

func NewLeaderboardService(users repository.UserStore) *LeaderboardService {
	return &LeaderboardService{
		users:    users,
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Top ranks all users by wins, then win rate, and truncates to the top 100.
// Players tied on both get a case-insensitive alphabetical order so the
// board is stable between refreshes.
func (s *LeaderboardService) Top() ([]models.LeaderboardEntry, error) {
	users, err := s.users.All()
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, len(users))
	for i, u := range users {
		total := u.Wins + u.Losses
		rate := 0.0
		if total > 0 {
			rate = math.Round(float64(u.Wins)/float64(total)*1000) / 10
		}
		entries[i] = models.LeaderboardEntry{
			ID:           u.ID,
			Username:     u.Username,
			TeamName:     u.TeamName,
			Wins:         u.Wins,
			Losses:       u.Losses,
			TotalMatches: total,
			WinRate:      rate,
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		return s.collator.CompareString(a.Username, b.Username) < 0
	})

	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	return entries, nil
}
