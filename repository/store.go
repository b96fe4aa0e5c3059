package repository

import "gamebattles-system/models"

// UserStore is the persistence boundary for user records. Lookups are keyed
// by id, email or username; email and username comparisons are
// case-insensitive.
type UserStore interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)

	// RecordWin / RecordLoss bump a single player's tally by one.
	// Callers invoke them once per participant per completed match.
	RecordWin(userID string) error
	RecordLoss(userID string) error

	All() ([]models.User, error)
	Count() (int64, error)
}

// MatchStore is the persistence boundary for match records.
type MatchStore interface {
	Create(match *models.Match) error
	GetByID(id string) (*models.Match, error)

	// Update overwrites the stored match. Concurrent writers race
	// last-write-wins; the engine layers no locking on top.
	Update(match *models.Match) error

	All() ([]models.Match, error)
	ListOpen() ([]models.Match, error)
	ListByParticipant(userID string) ([]models.Match, error)
	CountByStatus() (map[models.MatchStatus]int64, error)
}
