package services

import (
	"context"
	"testing"
	"time"

	"engage/config"
	"engage/models"
	"engage/store"

	"go.uber.org/zap"
)

const (
	testAdminEmail    = "admin@engage.test"
	testAdminPassword = "admin-pass-1"
	testPassword      = "password123"
)

func newTestService() *PlatformService {
	cfg := config.Config{
		AppEnv:        "test",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		AdminEmails:   []string{testAdminEmail},
		AdminPassword: testAdminPassword,
	}
	return NewPlatformService(cfg, store.New(store.NewMemoryPersister()), zap.NewNop())
}

func loginAdmin(t *testing.T, s *PlatformService) *models.User {
	t.Helper()
	ctx := context.Background()
	admin, err := s.EnsureAdmin(ctx, "Admin", testAdminEmail)
	if err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if _, _, err := s.Login(ctx, testAdminEmail, testAdminPassword); err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	return admin
}

func signUpCreator(t *testing.T, s *PlatformService, email string) *models.User {
	t.Helper()
	user, err := s.SignUp(context.Background(), models.RoleCreator, "BrandCorp", email, testPassword)
	if err != nil {
		t.Fatalf("creator sign-up failed: %v", err)
	}
	return user
}

func signUpEngager(t *testing.T, s *PlatformService, email string) *models.User {
	t.Helper()
	user, err := s.SignUp(context.Background(), models.RoleEngager, "TaskMaster", email, testPassword)
	if err != nil {
		t.Fatalf("engager sign-up failed: %v", err)
	}
	return user
}

func loginAs(t *testing.T, s *PlatformService, email string) {
	t.Helper()
	if _, _, err := s.Login(context.Background(), email, testPassword); err != nil {
		t.Fatalf("login as %s failed: %v", email, err)
	}
}

// fundWallet runs the full request-gated deposit flow: the current creator
// files the request, the admin approves it, and the creator session resumes.
func fundWallet(t *testing.T, s *PlatformService, creatorEmail string, amountMinor int64) {
	t.Helper()
	ctx := context.Background()
	request, err := s.RequestDeposit(ctx, amountMinor, models.PaymentCard)
	if err != nil {
		t.Fatalf("deposit request failed: %v", err)
	}
	loginAdmin(t, s)
	if _, err := s.ApproveDeposit(ctx, request.ID); err != nil {
		t.Fatalf("deposit approval failed: %v", err)
	}
	loginAs(t, s, creatorEmail)
}
