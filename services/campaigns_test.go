package services

import (
	"context"
	"testing"

	"engage/ledger"
	"engage/models"
	"engage/reward"
)

// Creator with a 500.00 wallet launches a 500.00 campaign of 1000 tasks:
// the wallet empties, one campaign debit lands in the log, and the task pays
// 0.50.
func TestCreateCampaignDebitsWallet(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	signUpCreator(t, s, "brand@example.com")
	fundWallet(t, s, "brand@example.com", 50000)

	campaign, task, err := s.CreateCampaign(ctx, CampaignInput{
		Name:           "Summer Collection Launch",
		Platform:       models.PlatformInstagram,
		EngagementType: models.EngagementLike,
		BudgetMinor:    50000,
		TotalTasks:     1000,
		Link:           "https://instagram.com/p/12345",
	})
	if err != nil {
		t.Fatalf("campaign creation failed: %v", err)
	}
	if campaign.Status != models.CampaignActive {
		t.Fatalf("expected Active campaign, got %s", campaign.Status)
	}
	if task.Payout != 50 {
		t.Fatalf("expected payout 50, got %d", task.Payout)
	}
	if task.CampaignID != campaign.ID {
		t.Fatal("task not linked to its campaign")
	}

	creator, _ := s.CurrentUser()
	if creator.Creator.WalletBalance != 0 {
		t.Fatalf("expected empty wallet, got %d", creator.Creator.WalletBalance)
	}
	last := creator.Creator.Transactions[len(creator.Creator.Transactions)-1]
	if last.Type != models.TransactionCampaign || last.Amount != -50000 {
		t.Fatalf("unexpected transaction: %+v", last)
	}
	if drift := ledger.Reconcile(creator); drift != 0 {
		t.Fatalf("wallet drifted from its log: %d", drift)
	}
}

// Creator with 100.00 attempts a 150.00 campaign: the operation fails with
// insufficient funds and nothing changes.
func TestCreateCampaignInsufficientFunds(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	signUpCreator(t, s, "brand@example.com")
	fundWallet(t, s, "brand@example.com", 10000)

	_, _, err := s.CreateCampaign(ctx, CampaignInput{
		Name:           "Too Ambitious",
		Platform:       models.PlatformTikTok,
		EngagementType: models.EngagementShare,
		BudgetMinor:    15000,
		TotalTasks:     100,
		Link:           "https://tiktok.com/v/67890",
	})
	if err != ledger.ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if len(s.store.Campaigns()) != 0 {
		t.Fatal("campaign created despite refused debit")
	}
	if len(s.store.Tasks()) != 0 {
		t.Fatal("task created despite refused debit")
	}
	creator, _ := s.CurrentUser()
	if creator.Creator.WalletBalance != 10000 {
		t.Fatalf("wallet changed on refused campaign: %d", creator.Creator.WalletBalance)
	}
	if len(creator.Creator.Transactions) != 1 {
		t.Fatalf("transaction recorded on refused campaign: %d entries", len(creator.Creator.Transactions))
	}
}

func TestCreateCampaignRequiresCreator(t *testing.T) {
	s := newTestService()
	signUpEngager(t, s, "worker@example.com")
	_, _, err := s.CreateCampaign(context.Background(), CampaignInput{
		Name:        "Nope",
		BudgetMinor: 100,
		TotalTasks:  1,
		Link:        "https://example.com/post",
	})
	if err != ErrNotCreator {
		t.Fatalf("expected ErrNotCreator, got %v", err)
	}
}

func TestRequestDepositStaysPending(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	signUpCreator(t, s, "brand@example.com")
	request, err := s.RequestDeposit(ctx, 25000, models.PaymentBankTransfer)
	if err != nil {
		t.Fatalf("deposit request failed: %v", err)
	}
	if request.Status != models.StatusPending {
		t.Fatalf("expected Pending, got %s", request.Status)
	}
	creator, _ := s.CurrentUser()
	if creator.Creator.WalletBalance != 0 {
		t.Fatal("wallet changed before approval")
	}
	if _, err := s.RequestDeposit(ctx, -5, models.PaymentCard); err != ledger.ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := s.RequestDeposit(ctx, 100, models.PaymentMethod("Cash")); err != ErrInvalidPaymentMethod {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestRequestWithdrawalValidation(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	user := signUpEngager(t, s, "worker@example.com")

	funded, _ := s.store.User(user.ID)
	funded.Engager.Earnings = 2000
	funded.Engager.EarningsLog = []models.Transaction{{ID: "seed", Type: models.TransactionTaskPayout, Amount: 2000}}
	s.store.PutUser(funded)

	if _, err := s.RequestWithdrawal(ctx, WithdrawalInput{AmountMinor: 5000, BankCountry: "Canada", BankName: "TD Bank", AccountNumber: "12345678"}); err != ledger.ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if _, err := s.RequestWithdrawal(ctx, WithdrawalInput{AmountMinor: 2000, BankCountry: "", BankName: "TD Bank", AccountNumber: "12345678"}); err != ErrMissingBankDetails {
		t.Fatalf("expected ErrMissingBankDetails, got %v", err)
	}
	if _, err := s.RequestWithdrawal(ctx, WithdrawalInput{AmountMinor: 2000, BankCountry: "Canada", BankName: "TD Bank", AccountNumber: "abc"}); err == nil {
		t.Fatal("expected account number validation error")
	}

	request, err := s.RequestWithdrawal(ctx, WithdrawalInput{AmountMinor: 2000, BankCountry: "Canada", BankName: "TD Bank", AccountNumber: "12345678"})
	if err != nil {
		t.Fatalf("withdrawal request failed: %v", err)
	}
	if request.Status != models.StatusPending {
		t.Fatalf("expected Pending, got %s", request.Status)
	}
	after, _ := s.CurrentUser()
	if after.Engager.Earnings != 2000 {
		t.Fatal("earnings changed before approval")
	}
}

// Five consecutive submissions reset the streak and grant the one-time bonus.
// XP from approvals is separate; with no approvals the balance of XP is
// exactly the bonus.
func TestTaskStreakBonus(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	signUpCreator(t, s, "brand@example.com")
	fundWallet(t, s, "brand@example.com", 50000)
	_, task, err := s.CreateCampaign(ctx, CampaignInput{
		Name:           "Streak Fodder",
		Platform:       models.PlatformYouTube,
		EngagementType: models.EngagementFollow,
		BudgetMinor:    50000,
		TotalTasks:     1000,
		Link:           "https://youtube.com/c/PixelPlayhouse",
	})
	if err != nil {
		t.Fatalf("campaign creation failed: %v", err)
	}

	signUpEngager(t, s, "worker@example.com")
	for i := 0; i < reward.StreakGoal; i++ {
		if _, err := s.SubmitTaskProof(ctx, task.ID, "https://screenshots.example/proof.png"); err != nil {
			t.Fatalf("submission %d failed: %v", i+1, err)
		}
	}
	engager, _ := s.CurrentUser()
	if engager.Engager.TaskStreak != 0 {
		t.Fatalf("expected streak reset, got %d", engager.Engager.TaskStreak)
	}
	if engager.Engager.XP != reward.StreakBonusXP {
		t.Fatalf("expected xp %d, got %d", reward.StreakBonusXP, engager.Engager.XP)
	}
	if engager.Engager.Earnings != 0 {
		t.Fatal("submissions must not pay out before approval")
	}
}

func TestSubmitTaskProofUnknownTask(t *testing.T) {
	s := newTestService()
	signUpEngager(t, s, "worker@example.com")
	if _, err := s.SubmitTaskProof(context.Background(), "missing", "https://screenshots.example/proof.png"); err != ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestPostAnnouncement(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	loginAdmin(t, s)
	announcement, err := s.PostAnnouncement(ctx, "Platform Maintenance", "Scheduled maintenance on Sunday.")
	if err != nil {
		t.Fatalf("announcement failed: %v", err)
	}
	if announcement.Author != "Admin" {
		t.Fatalf("expected author Admin, got %s", announcement.Author)
	}
	if len(s.Announcements()) != 1 {
		t.Fatal("expected one announcement")
	}
	if _, err := s.PostAnnouncement(ctx, " ", "content"); err != ErrMissingAnnouncement {
		t.Fatalf("expected ErrMissingAnnouncement, got %v", err)
	}

	signUpEngager(t, s, "worker@example.com")
	if _, err := s.PostAnnouncement(ctx, "Nope", "not an admin"); err != ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}
