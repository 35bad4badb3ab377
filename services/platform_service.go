// Package services wires the entity store, ledger, and reward rules into the
// operations a presentation layer calls. Every operation runs to completion
// synchronously and flushes the store before returning; callers re-read state
// afterwards rather than subscribing to events.
package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"engage/auth"
	"engage/config"
	"engage/models"
	"engage/store"
	"engage/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailTaken           = errors.New("email already registered")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrNotAuthorized        = errors.New("not authorized")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidTransition    = errors.New("request already resolved")
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrMissingBankDetails   = errors.New("missing bank details")
	ErrMissingAnnouncement  = errors.New("announcement needs a title and content")
	ErrNotCreator           = errors.New("operation requires a creator wallet")
	ErrNotEngager           = errors.New("operation requires an engager account")
)

type PlatformService struct {
	cfg       config.Config
	store     *store.Store
	log       *zap.Logger
	currentID string
}

func NewPlatformService(cfg config.Config, st *store.Store, log *zap.Logger) *PlatformService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlatformService{cfg: cfg, store: st, log: log}
}

// Login resolves credentials to a user and a signed session token. The
// configured admin credential pair maps onto the existing Admin record; all
// other emails are looked up case-insensitively.
func (s *PlatformService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var user *models.User
	if s.isAdminCredential(email, password) {
		admin, ok := s.store.FirstAdmin()
		if !ok {
			return nil, "", ErrUserNotFound
		}
		user = admin
	} else {
		found, ok := s.store.UserByEmail(email)
		if !ok {
			return nil, "", ErrUserNotFound
		}
		if found.IsAdmin() {
			// admin records never fall back to email-only login
			return nil, "", ErrInvalidCredentials
		}
		if found.PasswordHash != "" && !auth.CheckPassword(found.PasswordHash, password) {
			return nil, "", ErrInvalidCredentials
		}
		user = found
	}
	token, err := auth.GenerateToken(s.cfg.JWTSecret, user.ID, s.cfg.TokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign session token: %w", err)
	}
	s.currentID = user.ID
	s.log.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, token, nil
}

func (s *PlatformService) isAdminCredential(email, password string) bool {
	if password != s.cfg.AdminPassword {
		return false
	}
	lowered := strings.ToLower(email)
	for _, adminEmail := range s.cfg.AdminEmails {
		if strings.ToLower(adminEmail) == lowered {
			return true
		}
	}
	return false
}

// SignUp creates a zero-initialized user of the given role and makes it the
// current user. Email uniqueness is enforced.
func (s *PlatformService) SignUp(ctx context.Context, role models.Role, name, email, password string) (*models.User, error) {
	if role != models.RoleCreator && role != models.RoleEngager {
		return nil, ErrInvalidRole
	}
	if err := validator.ValidateName(name); err != nil {
		return nil, err
	}
	if err := validator.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validator.ValidatePassword(password); err != nil {
		return nil, err
	}
	if _, exists := s.store.UserByEmail(email); exists {
		return nil, ErrEmailTaken
	}
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	user.Avatar = fmt.Sprintf("https://i.pravatar.cc/40?u=%s", user.ID)
	switch role {
	case models.RoleCreator:
		user.Creator = &models.CreatorProfile{}
	case models.RoleEngager:
		user.Engager = &models.EngagerProfile{
			ReferralCode: referralCodeFor(name),
			Rank:         s.store.UserCount() + 1,
			Level:        1,
		}
	}
	s.store.PutUser(user)
	s.currentID = user.ID
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	s.log.Info("user signed up", zap.String("user_id", user.ID), zap.String("role", string(role)))
	return user.Clone(), nil
}

// EnsureAdmin creates the Admin record if none exists yet. Admins carry a
// creator wallet shape.
func (s *PlatformService) EnsureAdmin(ctx context.Context, name, email string) (*models.User, error) {
	if admin, ok := s.store.FirstAdmin(); ok {
		return admin, nil
	}
	admin := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC(),
		Creator:   &models.CreatorProfile{},
	}
	admin.Avatar = fmt.Sprintf("https://i.pravatar.cc/40?u=%s", admin.ID)
	s.store.PutUser(admin)
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	s.log.Info("admin bootstrapped", zap.String("user_id", admin.ID))
	return admin.Clone(), nil
}

// Resume restores the current-user pointer from a session token issued by
// Login.
func (s *PlatformService) Resume(ctx context.Context, token string) (*models.User, error) {
	claims, err := auth.ParseToken(s.cfg.JWTSecret, token)
	if err != nil {
		return nil, err
	}
	user, ok := s.store.User(claims.UserID)
	if !ok {
		return nil, ErrUserNotFound
	}
	s.currentID = user.ID
	return user, nil
}

func (s *PlatformService) Logout() {
	s.currentID = ""
}

func (s *PlatformService) CurrentUser() (*models.User, error) {
	if s.currentID == "" {
		return nil, ErrNotAuthenticated
	}
	user, ok := s.store.User(s.currentID)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser applies profile edits onto the stored record. Monetary and
// gamification fields are taken from the stored copy, never from the caller:
// only ledger operations move money.
func (s *PlatformService) UpdateUser(ctx context.Context, updated *models.User) (*models.User, error) {
	if _, err := s.CurrentUser(); err != nil {
		return nil, err
	}
	existing, ok := s.store.User(updated.ID)
	if !ok {
		return nil, ErrUserNotFound
	}
	out := existing.Clone()
	if updated.Name != "" {
		if err := validator.ValidateName(updated.Name); err != nil {
			return nil, err
		}
		out.Name = updated.Name
	}
	if updated.Avatar != "" {
		out.Avatar = updated.Avatar
	}
	if updated.Email != "" && !strings.EqualFold(updated.Email, existing.Email) {
		if err := validator.ValidateEmail(updated.Email); err != nil {
			return nil, err
		}
		if _, taken := s.store.UserByEmail(updated.Email); taken {
			return nil, ErrEmailTaken
		}
		out.Email = updated.Email
	}
	if out.Engager != nil && updated.Engager != nil {
		if updated.Engager.AccountNumber != "" {
			if err := validator.ValidateAccountNumber(updated.Engager.AccountNumber); err != nil {
				return nil, err
			}
			out.Engager.AccountNumber = updated.Engager.AccountNumber
		}
		out.Engager.PhoneNumber = updated.Engager.PhoneNumber
	}
	s.store.PutUser(out)
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	return out.Clone(), nil
}

// Leaderboard returns engagers ordered by earnings with ranks assigned.
func (s *PlatformService) Leaderboard() []*models.User {
	engagers := s.store.Engagers()
	for i, engager := range engagers {
		engager.Engager.Rank = i + 1
	}
	return engagers
}

func (s *PlatformService) Notifications() ([]*models.Notification, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return nil, err
	}
	return s.store.NotificationsFor(user.ID), nil
}

func (s *PlatformService) Announcements() []*models.Announcement {
	return s.store.Announcements()
}

// MarkNotificationRead is idempotent: marking a read notification again is a
// no-op with no side effects.
func (s *PlatformService) MarkNotificationRead(ctx context.Context, id string) error {
	user, err := s.CurrentUser()
	if err != nil {
		return err
	}
	notification, ok := s.store.Notification(id)
	if !ok {
		return ErrNotificationNotFound
	}
	if notification.UserID != user.ID {
		return ErrNotAuthorized
	}
	if notification.Read {
		return nil
	}
	notification.Read = true
	s.store.PutNotification(notification)
	return s.store.Flush(ctx)
}

func (s *PlatformService) requireAdmin() (*models.User, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	return user, nil
}

func (s *PlatformService) notify(userID, message string) {
	s.store.PutNotification(&models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
}

func referralCodeFor(name string) string {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			prefix.WriteRune(r)
			if prefix.Len() == 4 {
				break
			}
		}
	}
	if prefix.Len() == 0 {
		prefix.WriteString("USER")
	}
	return fmt.Sprintf("%s%03d", prefix.String(), rand.Intn(1000))
}
