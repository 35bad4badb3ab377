// Package store owns every entity collection and the persistence boundary.
// Collections live in memory; Load and Flush move them through a key-value
// blob Persister, one key per collection. Reads hand out deep copies and
// writes replace whole records, so a multi-entity operation only becomes
// visible once every record it touched has been put back.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"engage/models"
)

// Persister is the key-value blob boundary. Load returns (nil, nil) for a
// missing key. Values round-trip byte-exact.
type Persister interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

const (
	KeyUsers         = "users"
	KeyCampaigns     = "campaigns"
	KeyTasks         = "tasks"
	KeySubmissions   = "submissions"
	KeyWithdrawals   = "withdrawals"
	KeyDeposits      = "deposits"
	KeyAnnouncements = "announcements"
	KeyNotifications = "notifications"
)

type Store struct {
	mu        sync.Mutex
	persister Persister

	users         map[string]*models.User
	campaigns     []*models.Campaign
	tasks         []*models.Task
	submissions   []*models.Submission
	withdrawals   []*models.WithdrawalRequest
	deposits      []*models.DepositRequest
	announcements []*models.Announcement
	notifications []*models.Notification
}

func New(persister Persister) *Store {
	return &Store{
		persister: persister,
		users:     make(map[string]*models.User),
	}
}

// Load hydrates every collection from the persister. Missing keys leave the
// collection empty.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := loadKey(ctx, s.persister, KeyUsers, &s.users); err != nil {
		return err
	}
	if s.users == nil {
		s.users = make(map[string]*models.User)
	}
	if err := loadKey(ctx, s.persister, KeyCampaigns, &s.campaigns); err != nil {
		return err
	}
	if err := loadKey(ctx, s.persister, KeyTasks, &s.tasks); err != nil {
		return err
	}
	if err := loadKey(ctx, s.persister, KeySubmissions, &s.submissions); err != nil {
		return err
	}
	if err := loadKey(ctx, s.persister, KeyWithdrawals, &s.withdrawals); err != nil {
		return err
	}
	if err := loadKey(ctx, s.persister, KeyDeposits, &s.deposits); err != nil {
		return err
	}
	if err := loadKey(ctx, s.persister, KeyAnnouncements, &s.announcements); err != nil {
		return err
	}
	return loadKey(ctx, s.persister, KeyNotifications, &s.notifications)
}

// Flush writes every collection back through the persister.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveKey(ctx, s.persister, KeyUsers, s.users); err != nil {
		return err
	}
	if err := saveKey(ctx, s.persister, KeyCampaigns, s.campaigns); err != nil {
		return err
	}
	if err := saveKey(ctx, s.persister, KeyTasks, s.tasks); err != nil {
		return err
	}
	if err := saveKey(ctx, s.persister, KeySubmissions, s.submissions); err != nil {
		return err
	}
	if err := saveKey(ctx, s.persister, KeyWithdrawals, s.withdrawals); err != nil {
		return err
	}
	if err := saveKey(ctx, s.persister, KeyDeposits, s.deposits); err != nil {
		return err
	}
	if err := saveKey(ctx, s.persister, KeyAnnouncements, s.announcements); err != nil {
		return err
	}
	return saveKey(ctx, s.persister, KeyNotifications, s.notifications)
}

func loadKey[T any](ctx context.Context, persister Persister, key string, dest *T) error {
	blob, err := persister.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if blob == nil {
		return nil
	}
	if err := json.Unmarshal(blob, dest); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func saveKey(ctx context.Context, persister Persister, key string, value any) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := persister.Save(ctx, key, blob); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
