package models

import "time"

// User is a registered competitor. The password hash never leaves the
// auth service; every outward-facing response carries a UserDTO instead.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	TeamName  string    `json:"teamName,omitempty"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserDTO is the sanitized view of a User returned by the API.
type UserDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	TeamName  string    `json:"teamName,omitempty"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitize strips the credential hash for responses.
func (u *User) Sanitize() UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		TeamName:  u.TeamName,
		Wins:      u.Wins,
		Losses:    u.Losses,
		CreatedAt: u.CreatedAt,
	}
}

// LeaderboardEntry is one row of the ranked projection over all users.
type LeaderboardEntry struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	TeamName     string  `json:"teamName,omitempty"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	TotalMatches int     `json:"totalMatches"`
	WinRate      float64 `json:"winRate"` // percentage, one decimal
}
