package utils

import (
	"errors"
	"log"
	"time"

	"gamebattles-system/models"
	"gamebattles-system/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData inserts a demo account and a couple of open matches so a
// fresh install has something to show. It is a no-op when the account
// already exists.
func SeedDemoData(users repository.UserStore, matches repository.MatchStore) error {
	if _, err := users.GetByEmail("test@gamebattles.com"); err == nil {
		log.Println("✅ Demo data already present, skipping seed")
		return nil
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		return err
	}
	demo := &models.User{
		ID:        uuid.NewString(),
		Username:  "TestPlayer",
		Email:     "test@gamebattles.com",
		Password:  string(hash),
		TeamName:  "Elite Squad",
		Wins:      15,
		Losses:    8,
		CreatedAt: time.Now().UTC(),
	}
	if err := users.Create(demo); err != nil {
		return err
	}

	open := []models.MatchCreateDTO{
		{
			GameTitle: "Modern Warfare 2",
			GameMode:  "Search and Destroy",
			BestOf:    3,
			Team1Name: demo.TeamName,
			Maps:      []string{"Afghan", "Terminal", "Rust"},
		},
		{
			GameTitle: "Black Ops 2",
			GameMode:  "Team Deathmatch",
			BestOf:    1,
			Team1Name: demo.TeamName,
			Maps:      []string{"Raid"},
		},
	}
	for _, dto := range open {
		match := &models.Match{
			ID:        uuid.NewString(),
			GameTitle: dto.GameTitle,
			GameMode:  dto.GameMode,
			BestOf:    dto.BestOf,
			Team1: models.Team{
				ID:      uuid.NewString(),
				Name:    dto.Team1Name,
				Players: []string{demo.ID},
			},
			Maps:       dto.Maps,
			MapResults: []models.MapResult{},
			Status:     models.StatusOpen,
			CreatedBy:  demo.ID,
			CreatedAt:  time.Now().UTC(),
		}
		if err := matches.Create(match); err != nil {
			return err
		}
	}

	log.Println("✅ Seeded demo user test@gamebattles.com (password123) with 2 open matches")
	return nil
}
