package repository

import (
	"sort"
	"strings"
	"sync"

	"gamebattles-system/models"
)

// MemoryUserStore is a map-backed UserStore used in tests and local runs
// without a database. Returned values are copies; mutating them does not
// touch the stored record.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) GetByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return &u, nil
}

func (s *MemoryUserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (s *MemoryUserStore) GetByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			u := u
			return &u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (s *MemoryUserStore) RecordWin(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return models.ErrUserNotFound
	}
	u.Wins++
	s.users[userID] = u
	return nil
}

func (s *MemoryUserStore) RecordLoss(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return models.ErrUserNotFound
	}
	u.Losses++
	s.users[userID] = u
	return nil
}

func (s *MemoryUserStore) All() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (s *MemoryUserStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

// MemoryMatchStore is a map-backed MatchStore.
type MemoryMatchStore struct {
	mu      sync.RWMutex
	matches map[string]models.Match
}

func NewMemoryMatchStore() *MemoryMatchStore {
	return &MemoryMatchStore{matches: make(map[string]models.Match)}
}

func (s *MemoryMatchStore) Create(match *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = copyMatch(*match)
	return nil
}

func (s *MemoryMatchStore) GetByID(id string) (*models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, models.ErrMatchNotFound
	}
	cp := copyMatch(m)
	return &cp, nil
}

func (s *MemoryMatchStore) Update(match *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[match.ID]; !ok {
		return models.ErrMatchNotFound
	}
	s.matches[match.ID] = copyMatch(*match)
	return nil
}

func (s *MemoryMatchStore) All() ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(models.Match) bool { return true }), nil
}

func (s *MemoryMatchStore) ListOpen() ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(m models.Match) bool {
		return m.Status == models.StatusOpen
	}), nil
}

func (s *MemoryMatchStore) ListByParticipant(userID string) ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(m models.Match) bool {
		return m.HasParticipant(userID)
	}), nil
}

func (s *MemoryMatchStore) CountByStatus() (map[models.MatchStatus]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[models.MatchStatus]int64)
	for _, m := range s.matches {
		counts[m.Status]++
	}
	return counts, nil
}

// filter must be called with the lock held.
func (s *MemoryMatchStore) filter(keep func(models.Match) bool) []models.Match {
	var out []models.Match
	for _, m := range s.matches {
		if keep(m) {
			out = append(out, copyMatch(m))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func copyMatch(m models.Match) models.Match {
	cp := m
	cp.Team1.Players = append(m.Team1.Players[:0:0], m.Team1.Players...)
	if m.Team2 != nil {
		team2 := *m.Team2
		team2.Players = append(m.Team2.Players[:0:0], m.Team2.Players...)
		cp.Team2 = &team2
	}
	cp.Maps = append(m.Maps[:0:0], m.Maps...)
	cp.MapResults = append(m.MapResults[:0:0], m.MapResults...)
	if m.CompletedAt != nil {
		t := *m.CompletedAt
		cp.CompletedAt = &t
	}
	return cp
}
