package services

import (
	"fmt"
	"log"
	"time"

	"gamebattles-system/models"
	"gamebattles-system/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// MatchService owns the match lifecycle: creation, joining, result
// reporting and the win/loss bookkeeping that follows a decided match.
type MatchService struct {
	users   repository.UserStore
	matches repository.MatchStore
}

func NewMatchService(users repository.UserStore, matches repository.MatchStore) *MatchService {
	return &MatchService{users: users, matches: matches}
}

// Create opens a new match with the creator as the sole member of team1.
func (s *MatchService) Create(creatorID string, dto models.MatchCreateDTO) (*models.Match, error) {
	if dto.GameTitle == "" || dto.GameMode == "" || dto.BestOf == 0 || dto.Team1Name == "" || len(dto.Maps) == 0 {
		return nil, fmt.Errorf("%w: missing required fields", models.ErrValidation)
	}
	if !models.ValidGameTitle(dto.GameTitle) {
		return nil, fmt.Errorf("%w: unsupported game title %q", models.ErrValidation, dto.GameTitle)
	}
	if !models.ValidGameMode(dto.GameMode) {
		return nil, fmt.Errorf("%w: unsupported game mode %q", models.ErrValidation, dto.GameMode)
	}
	if dto.BestOf < 1 {
		return nil, fmt.Errorf("%w: bestOf must be positive", models.ErrValidation)
	}
	if len(dto.Maps) != dto.BestOf {
		return nil, fmt.Errorf("%w: number of maps must match bestOf value", models.ErrValidation)
	}

	creator, err := s.users.GetByID(creatorID)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	match := &models.Match{
		ID:        id,
		Slug:      slug.Make(fmt.Sprintf("%s %s bo%d", dto.GameTitle, dto.Team1Name, dto.BestOf)) + "-" + id[:8],
		GameTitle: dto.GameTitle,
		GameMode:  dto.GameMode,
		BestOf:    dto.BestOf,
		Team1: models.Team{
			ID:      uuid.NewString(),
			Name:    dto.Team1Name,
			Players: []string{creator.ID},
		},
		Maps:       dto.Maps,
		MapResults: []models.MapResult{},
		Status:     models.StatusOpen,
		CreatedBy:  creator.ID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.matches.Create(match); err != nil {
		return nil, err
	}
	log.Printf("🎮 Match %s created by %s (%s, %s, bo%d)", match.Slug, creator.Username, match.GameTitle, match.GameMode, match.BestOf)
	return match, nil
}

// Join registers the joiner as team2 and moves the match to in-progress.
// The team name falls back to the joiner's profile team, then username.
func (s *MatchService) Join(matchID, joinerID, teamName string) (*models.Match, error) {
	match, err := s.matches.GetByID(matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != models.StatusOpen {
		return nil, models.ErrMatchNotOpen
	}
	if match.Team2 != nil {
		return nil, models.ErrMatchFull
	}
	if match.Team1.HasPlayer(joinerID) {
		return nil, models.ErrAlreadyJoined
	}

	joiner, err := s.users.GetByID(joinerID)
	if err != nil {
		return nil, err
	}

	name := teamName
	if name == "" {
		name = joiner.TeamName
	}
	if name == "" {
		name = joiner.Username
	}

	match.Team2 = &models.Team{
		ID:      uuid.NewString(),
		Name:    name,
		Players: []string{joiner.ID},
	}
	match.Status = models.StatusInProgress
	if err := s.matches.Update(match); err != nil {
		return nil, err
	}
	log.Printf("⚔️  %s joined match %s as %q", joiner.Username, match.Slug, name)
	return match, nil
}

// ReportResults records per-map scores, derives map and match winners, and
// propagates win/loss tallies to every participant of a decided match.
//
// Stat updates run one player at a time and are not atomic as a group: a
// failure mid-sequence leaves earlier players updated with no rollback.
func (s *MatchService) ReportResults(matchID, reporterID string, results []models.MapResultDTO) (*models.Match, error) {
	match, err := s.matches.GetByID(matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != models.StatusInProgress {
		return nil, models.ErrMatchNotInProgress
	}
	if !match.HasParticipant(reporterID) {
		return nil, models.ErrNotParticipant
	}

	scored, winner, err := scoreMatch(match.Maps, results)
	if err != nil {
		return nil, err
	}

	if winner != "" {
		winning, losing := match.Team1.Players, match.Team2.Players
		if winner == models.SideTeam2 {
			winning, losing = losing, winning
		}
		for _, playerID := range winning {
			if err := s.users.RecordWin(playerID); err != nil {
				return nil, fmt.Errorf("record win for %s: %w", playerID, err)
			}
		}
		for _, playerID := range losing {
			if err := s.users.RecordLoss(playerID); err != nil {
				return nil, fmt.Errorf("record loss for %s: %w", playerID, err)
			}
		}
	}

	now := time.Now().UTC()
	match.MapResults = scored
	match.Status = models.StatusCompleted
	match.Winner = winner
	match.CompletedAt = &now
	if err := s.matches.Update(match); err != nil {
		return nil, err
	}
	if winner != "" {
		log.Printf("🏆 Match %s completed, winner: %s", match.Slug, winner)
	} else {
		log.Printf("🤝 Match %s completed in a draw", match.Slug)
	}
	return match, nil
}

// scoreMatch validates reported scores against the match's map list and
// derives the per-map and overall winners. A tied map has no winner; a
// tied map count leaves the match winner empty.
func scoreMatch(maps []string, results []models.MapResultDTO) ([]models.MapResult, models.TeamSide, error) {
	if len(results) != len(maps) {
		return nil, "", fmt.Errorf("%w: expected results for %d maps, got %d", models.ErrValidation, len(maps), len(results))
	}

	scored := make([]models.MapResult, len(results))
	team1Wins, team2Wins := 0, 0
	for i, r := range results {
		if r.MapName != maps[i] {
			return nil, "", fmt.Errorf("%w: result %d is for %q, expected %q", models.ErrValidation, i+1, r.MapName, maps[i])
		}
		if r.Team1Score < 0 || r.Team2Score < 0 {
			return nil, "", fmt.Errorf("%w: scores must be non-negative", models.ErrValidation)
		}
		mr := models.MapResult{
			MapName:    r.MapName,
			Team1Score: r.Team1Score,
			Team2Score: r.Team2Score,
		}
		switch {
		case r.Team1Score > r.Team2Score:
			mr.Winner = models.SideTeam1
			team1Wins++
		case r.Team2Score > r.Team1Score:
			mr.Winner = models.SideTeam2
			team2Wins++
		}
		scored[i] = mr
	}

	var winner models.TeamSide
	switch {
	case team1Wins > team2Wins:
		winner = models.SideTeam1
	case team2Wins > team1Wins:
		winner = models.SideTeam2
	}
	return scored, winner, nil
}

// Get returns a single match by id.
func (s *MatchService) Get(matchID string) (*models.Match, error) {
	return s.matches.GetByID(matchID)
}

// ListAll returns every match, newest first.
func (s *MatchService) ListAll() ([]models.Match, error) {
	return s.matches.All()
}

// ListOpen returns matches still waiting for an opponent.
func (s *MatchService) ListOpen() ([]models.Match, error) {
	return s.matches.ListOpen()
}

// ListForUser returns matches where the user plays on either team.
func (s *MatchService) ListForUser(userID string) ([]models.Match, error) {
	return s.matches.ListByParticipant(userID)
}
