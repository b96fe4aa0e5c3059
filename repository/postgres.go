package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gamebattles-system/models"

	"gorm.io/gorm"
)

// userRecord is the database row backing models.User.
type userRecord struct {
	ID        string `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	TeamName  string
	Wins      int       `gorm:"default:0"`
	Losses    int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (userRecord) TableName() string { return "users" }

// matchRecord is the database row backing models.Match. Team rosters, the
// map list and per-map results are stored as JSON text columns.
type matchRecord struct {
	ID             string `gorm:"primaryKey"`
	Slug           string `gorm:"index"`
	GameTitle      string `gorm:"not null"`
	GameMode       string `gorm:"not null"`
	BestOf         int    `gorm:"not null"`
	Team1JSON      string `gorm:"type:text;not null"`
	Team2JSON      string `gorm:"type:text"`
	MapsJSON       string `gorm:"type:text;not null"`
	MapResultsJSON string `gorm:"type:text"`
	Status         string `gorm:"index;not null"`
	Winner         string
	CreatedBy      string    `gorm:"index;not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	CompletedAt    *time.Time
}

func (matchRecord) TableName() string { return "matches" }

// Migrate creates or updates the backing tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRecord{}, &matchRecord{})
}

func toUserRecord(u *models.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		TeamName:  u.TeamName,
		Wins:      u.Wins,
		Losses:    u.Losses,
		CreatedAt: u.CreatedAt,
	}
}

func (r *userRecord) toUser() models.User {
	return models.User{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		TeamName:  r.TeamName,
		Wins:      r.Wins,
		Losses:    r.Losses,
		CreatedAt: r.CreatedAt,
	}
}

func toMatchRecord(m *models.Match) (matchRecord, error) {
	team1, err := json.Marshal(m.Team1)
	if err != nil {
		return matchRecord{}, fmt.Errorf("marshal team1: %w", err)
	}
	maps, err := json.Marshal(m.Maps)
	if err != nil {
		return matchRecord{}, fmt.Errorf("marshal maps: %w", err)
	}
	rec := matchRecord{
		ID:          m.ID,
		Slug:        m.Slug,
		GameTitle:   m.GameTitle,
		GameMode:    m.GameMode,
		BestOf:      m.BestOf,
		Team1JSON:   string(team1),
		MapsJSON:    string(maps),
		Status:      string(m.Status),
		Winner:      string(m.Winner),
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		CompletedAt: m.CompletedAt,
	}
	if m.Team2 != nil {
		team2, err := json.Marshal(m.Team2)
		if err != nil {
			return matchRecord{}, fmt.Errorf("marshal team2: %w", err)
		}
		rec.Team2JSON = string(team2)
	}
	if len(m.MapResults) > 0 {
		results, err := json.Marshal(m.MapResults)
		if err != nil {
			return matchRecord{}, fmt.Errorf("marshal map results: %w", err)
		}
		rec.MapResultsJSON = string(results)
	}
	return rec, nil
}

func (r *matchRecord) toMatch() (models.Match, error) {
	m := models.Match{
		ID:          r.ID,
		Slug:        r.Slug,
		GameTitle:   r.GameTitle,
		GameMode:    r.GameMode,
		BestOf:      r.BestOf,
		MapResults:  []models.MapResult{},
		Status:      models.MatchStatus(r.Status),
		Winner:      models.TeamSide(r.Winner),
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		CompletedAt: r.CompletedAt,
	}
	if err := json.Unmarshal([]byte(r.Team1JSON), &m.Team1); err != nil {
		return models.Match{}, fmt.Errorf("unmarshal team1 for match %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.MapsJSON), &m.Maps); err != nil {
		return models.Match{}, fmt.Errorf("unmarshal maps for match %s: %w", r.ID, err)
	}
	if r.Team2JSON != "" {
		var team2 models.Team
		if err := json.Unmarshal([]byte(r.Team2JSON), &team2); err != nil {
			return models.Match{}, fmt.Errorf("unmarshal team2 for match %s: %w", r.ID, err)
		}
		m.Team2 = &team2
	}
	if r.MapResultsJSON != "" {
		if err := json.Unmarshal([]byte(r.MapResultsJSON), &m.MapResults); err != nil {
			return models.Match{}, fmt.Errorf("unmarshal map results for match %s: %w", r.ID, err)
		}
	}
	return m, nil
}

// PostgresUserStore keeps users in Postgres through gorm.
type PostgresUserStore struct {
	DB *gorm.DB
}

func NewPostgresUserStore(db *gorm.DB) *PostgresUserStore {
	return &PostgresUserStore{DB: db}
}

func (s *PostgresUserStore) Create(user *models.User) error {
	rec := toUserRecord(user)
	if err := s.DB.Create(&rec).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *PostgresUserStore) GetByID(id string) (*models.User, error) {
	var rec userRecord
	if err := s.DB.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	u := rec.toUser()
	return &u, nil
}

func (s *PostgresUserStore) GetByEmail(email string) (*models.User, error) {
	var rec userRecord
	if err := s.DB.First(&rec, "LOWER(email) = LOWER(?)", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	u := rec.toUser()
	return &u, nil
}

func (s *PostgresUserStore) GetByUsername(username string) (*models.User, error) {
	var rec userRecord
	if err := s.DB.First(&rec, "LOWER(username) = LOWER(?)", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	u := rec.toUser()
	return &u, nil
}

func (s *PostgresUserStore) RecordWin(userID string) error {
	return s.bump(userID, "wins")
}

func (s *PostgresUserStore) RecordLoss(userID string) error {
	return s.bump(userID, "losses")
}

func (s *PostgresUserStore) bump(userID, column string) error {
	res := s.DB.Model(&userRecord{}).Where("id = ?", userID).
		Update(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return fmt.Errorf("update %s for user %s: %w", column, userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (s *PostgresUserStore) All() ([]models.User, error) {
	var recs []userRecord
	if err := s.DB.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]models.User, len(recs))
	for i := range recs {
		users[i] = recs[i].toUser()
	}
	return users, nil
}

func (s *PostgresUserStore) Count() (int64, error) {
	var n int64
	if err := s.DB.Model(&userRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// PostgresMatchStore keeps matches in Postgres through gorm.
type PostgresMatchStore struct {
	DB *gorm.DB
}

func NewPostgresMatchStore(db *gorm.DB) *PostgresMatchStore {
	return &PostgresMatchStore{DB: db}
}

func (s *PostgresMatchStore) Create(match *models.Match) error {
	rec, err := toMatchRecord(match)
	if err != nil {
		return err
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	return nil
}

func (s *PostgresMatchStore) GetByID(id string) (*models.Match, error) {
	var rec matchRecord
	if err := s.DB.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrMatchNotFound
		}
		return nil, fmt.Errorf("get match %s: %w", id, err)
	}
	m, err := rec.toMatch()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *PostgresMatchStore) Update(match *models.Match) error {
	rec, err := toMatchRecord(match)
	if err != nil {
		return err
	}
	res := s.DB.Model(&matchRecord{}).Where("id = ?", match.ID).Select("*").
		Omit("created_at").Updates(&rec)
	if res.Error != nil {
		return fmt.Errorf("update match %s: %w", match.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrMatchNotFound
	}
	return nil
}

func (s *PostgresMatchStore) All() ([]models.Match, error) {
	var recs []matchRecord
	if err := s.DB.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return recordsToMatches(recs)
}

func (s *PostgresMatchStore) ListOpen() ([]models.Match, error) {
	var recs []matchRecord
	err := s.DB.Where("status = ?", string(models.StatusOpen)).
		Order("created_at DESC").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list open matches: %w", err)
	}
	return recordsToMatches(recs)
}

func (s *PostgresMatchStore) ListByParticipant(userID string) ([]models.Match, error) {
	// Rosters live inside JSON columns, so membership is filtered in Go
	// after a status-ordered scan.
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	var mine []models.Match
	for i := range all {
		if all[i].HasParticipant(userID) {
			mine = append(mine, all[i])
		}
	}
	return mine, nil
}

func (s *PostgresMatchStore) CountByStatus() (map[models.MatchStatus]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := s.DB.Model(&matchRecord{}).Select("status, COUNT(*) AS n").
		Group("status").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count matches by status: %w", err)
	}
	counts := make(map[models.MatchStatus]int64, len(rows))
	for _, r := range rows {
		counts[models.MatchStatus(r.Status)] = r.N
	}
	return counts, nil
}

func recordsToMatches(recs []matchRecord) ([]models.Match, error) {
	matches := make([]models.Match, 0, len(recs))
	for i := range recs {
		m, err := recs[i].toMatch()
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}
