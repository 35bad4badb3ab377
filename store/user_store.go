package store

import (
	"sort"
	"strings"

	"engage/models"
)

func (s *Store) User(id string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return user.Clone(), true
}

// UserByEmail matches case-insensitively.
func (s *Store) UserByEmail(email string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lowered := strings.ToLower(email)
	for _, user := range s.users {
		if strings.ToLower(user.Email) == lowered {
			return user.Clone(), true
		}
	}
	return nil, false
}

func (s *Store) FirstAdmin() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Role == models.RoleAdmin {
			return user.Clone(), true
		}
	}
	return nil, false
}

// PutUser inserts or replaces a user record wholesale.
func (s *Store) PutUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user.Clone()
}

func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Users returns all users ordered by creation time, oldest first.
func (s *Store) Users() []*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Engagers returns engager users ordered by earnings, highest first.
func (s *Store) Engagers() []*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.User, 0)
	for _, user := range s.users {
		if user.Engager != nil {
			out = append(out, user.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Engager.Earnings == out[j].Engager.Earnings {
			return out[i].ID < out[j].ID
		}
		return out[i].Engager.Earnings > out[j].Engager.Earnings
	})
	return out
}
