package models

import "time"

// MatchStatus tracks where a match sits in its lifecycle.
// Transitions only move forward: open → in-progress → completed.
type MatchStatus string

const (
	StatusOpen       MatchStatus = "open"
	StatusInProgress MatchStatus = "in-progress"
	StatusCompleted  MatchStatus = "completed"
	// StatusDisputed is a declared terminal state with no producing
	// transition yet; no operation moves a match into it.
	StatusDisputed MatchStatus = "disputed"
)

// TeamSide identifies which side of a match a team or winner refers to.
type TeamSide string

const (
	SideTeam1 TeamSide = "team1"
	SideTeam2 TeamSide = "team2"
)

// Team is one side of a match: a named group of player ids.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []string `json:"players"`
}

// HasPlayer reports whether the given user is on this team.
func (t *Team) HasPlayer(userID string) bool {
	if t == nil {
		return false
	}
	for _, p := range t.Players {
		if p == userID {
			return true
		}
	}
	return false
}

// MapResult is the score pair for a single map. Winner is derived from the
// scores when results are reported; it stays empty on a tied map.
type MapResult struct {
	MapName    string   `json:"mapName"`
	Team1Score int      `json:"team1Score"`
	Team2Score int      `json:"team2Score"`
	Winner     TeamSide `json:"winner,omitempty"`
}

// Match is a best-of-N contest between two teams over a fixed map list.
// Team2 is nil until an opponent joins; MapResults is empty until a
// participant reports scores.
type Match struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug,omitempty"`
	GameTitle   string      `json:"gameTitle"`
	GameMode    string      `json:"gameMode"`
	BestOf      int         `json:"bestOf"`
	Team1       Team        `json:"team1"`
	Team2       *Team       `json:"team2,omitempty"`
	Maps        []string    `json:"maps"`
	MapResults  []MapResult `json:"mapResults"`
	Status      MatchStatus `json:"status"`
	Winner      TeamSide    `json:"winner,omitempty"`
	CreatedBy   string      `json:"createdBy"`
	CreatedAt   time.Time   `json:"createdAt"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}

// HasParticipant reports whether the user plays on either side.
func (m *Match) HasParticipant(userID string) bool {
	return m.Team1.HasPlayer(userID) || m.Team2.HasPlayer(userID)
}

// MatchCreateDTO is the payload for creating a match.
type MatchCreateDTO struct {
	GameTitle string   `json:"gameTitle"`
	GameMode  string   `json:"gameMode"`
	BestOf    int      `json:"bestOf"`
	Team1Name string   `json:"team1Name"`
	Maps      []string `json:"maps"`
}

// MapResultDTO is one reported score line. The winner is never accepted
// from the client; it is recomputed from the scores.
type MapResultDTO struct {
	MapName    string `json:"mapName"`
	Team1Score int    `json:"team1Score"`
	Team2Score int    `json:"team2Score"`
}
