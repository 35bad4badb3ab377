package services

import (
	"context"
	"strings"
	"time"

	"engage/ledger"
	"engage/models"
	"engage/money"
	"engage/reward"
	"engage/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignInput struct {
	Name           string
	Platform       models.SocialPlatform
	EngagementType models.EngagementType
	BudgetMinor    int64
	TotalTasks     int
	Link           string
	Description    string
}

// CreateCampaign debits the creator wallet and creates the campaign with its
// task in one synchronous operation. Insufficient funds refuses the whole
// thing: no campaign, no transaction, no task.
func (s *PlatformService) CreateCampaign(ctx context.Context, input CampaignInput) (*models.Campaign, *models.Task, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return nil, nil, err
	}
	if user.Creator == nil {
		return nil, nil, ErrNotCreator
	}
	if err := validator.ValidateName(input.Name); err != nil {
		return nil, nil, err
	}
	if err := validator.ValidateLink(input.Link); err != nil {
		return nil, nil, err
	}
	payout, err := money.PayoutPerTask(input.BudgetMinor, input.TotalTasks)
	if err != nil {
		return nil, nil, err
	}

	campaign := &models.Campaign{
		ID:             uuid.NewString(),
		CreatorID:      user.ID,
		Name:           input.Name,
		Platform:       input.Platform,
		EngagementType: input.EngagementType,
		Budget:         input.BudgetMinor,
		TotalTasks:     input.TotalTasks,
		Status:         models.CampaignActive,
		Link:           input.Link,
	}
	funded := user.Clone()
	if err := ledger.DebitCampaign(funded, campaign); err != nil {
		return nil, nil, err
	}
	description := input.Description
	if description == "" {
		description = string(input.EngagementType) + " on " + string(input.Platform) + ": " + input.Name
	}
	task := &models.Task{
		ID:             uuid.NewString(),
		CampaignID:     campaign.ID,
		Platform:       input.Platform,
		EngagementType: input.EngagementType,
		Payout:         payout,
		Description:    description,
		Link:           input.Link,
	}

	s.store.PutUser(funded)
	s.store.PutCampaign(campaign)
	s.store.PutTask(task)
	if err := s.store.Flush(ctx); err != nil {
		return nil, nil, err
	}
	s.log.Info("campaign created",
		zap.String("campaign_id", campaign.ID),
		zap.String("creator_id", user.ID),
		zap.String("budget", money.FormatMinor(campaign.Budget)),
		zap.Int("total_tasks", campaign.TotalTasks))
	return campaign, task, nil
}

// RequestDeposit records a pending deposit request. The wallet is untouched
// until an admin approves it.
func (s *PlatformService) RequestDeposit(ctx context.Context, amountMinor int64, method models.PaymentMethod) (*models.DepositRequest, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user.Creator == nil {
		return nil, ErrNotCreator
	}
	if amountMinor <= 0 {
		return nil, ledger.ErrInvalidAmount
	}
	if method != models.PaymentCard && method != models.PaymentBankTransfer {
		return nil, ErrInvalidPaymentMethod
	}
	request := &models.DepositRequest{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		Amount:        amountMinor,
		PaymentMethod: method,
		Status:        models.StatusPending,
		RequestedAt:   time.Now().UTC(),
	}
	s.store.PutDeposit(request)
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	return request, nil
}

type WithdrawalInput struct {
	AmountMinor   int64
	BankCountry   string
	BankName      string
	AccountNumber string
}

// RequestWithdrawal records a pending withdrawal for up to the engager's
// current earnings. The balance is checked again at approval time.
func (s *PlatformService) RequestWithdrawal(ctx context.Context, input WithdrawalInput) (*models.WithdrawalRequest, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user.Engager == nil {
		return nil, ErrNotEngager
	}
	if input.AmountMinor <= 0 {
		return nil, ledger.ErrInvalidAmount
	}
	if input.AmountMinor > user.Engager.Earnings {
		return nil, ledger.ErrInsufficientFunds
	}
	if strings.TrimSpace(input.BankCountry) == "" || strings.TrimSpace(input.BankName) == "" {
		return nil, ErrMissingBankDetails
	}
	if err := validator.ValidateAccountNumber(input.AccountNumber); err != nil {
		return nil, err
	}
	request := &models.WithdrawalRequest{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		Amount:        input.AmountMinor,
		BankCountry:   input.BankCountry,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		Status:        models.StatusPending,
		RequestedAt:   time.Now().UTC(),
	}
	s.store.PutWithdrawal(request)
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	return request, nil
}

// SubmitTaskProof files a pending submission and advances the task streak.
// Streaks move at submission time; earnings and XP wait for approval.
func (s *PlatformService) SubmitTaskProof(ctx context.Context, taskID, screenshotURL string) (*models.Submission, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user.Engager == nil {
		return nil, ErrNotEngager
	}
	task, ok := s.store.Task(taskID)
	if !ok {
		return nil, ErrTaskNotFound
	}
	submission := &models.Submission{
		ID:              uuid.NewString(),
		TaskID:          task.ID,
		TaskDescription: task.Description,
		UserID:          user.ID,
		ScreenshotURL:   screenshotURL,
		Status:          models.StatusPending,
		SubmittedAt:     time.Now().UTC(),
	}
	submitter := user.Clone()
	bonus := reward.RecordSubmission(submitter.Engager)
	s.store.PutUser(submitter)
	s.store.PutSubmission(submission)
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	if bonus {
		s.log.Info("streak bonus awarded", zap.String("user_id", user.ID), zap.Int("bonus_xp", reward.StreakBonusXP))
	}
	return submission, nil
}

// SubmitSubscriptionPayment flags the engager's subscription payment as
// awaiting admin review.
func (s *PlatformService) SubmitSubscriptionPayment(ctx context.Context) error {
	user, err := s.CurrentUser()
	if err != nil {
		return err
	}
	if user.Engager == nil {
		return ErrNotEngager
	}
	pending := user.Clone()
	pending.Engager.SubscriptionPaymentPending = true
	s.store.PutUser(pending)
	return s.store.Flush(ctx)
}

// PostAnnouncement publishes an admin broadcast.
func (s *PlatformService) PostAnnouncement(ctx context.Context, title, content string) (*models.Announcement, error) {
	admin, err := s.requireAdmin()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrMissingAnnouncement
	}
	announcement := &models.Announcement{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		Author:    admin.Name,
	}
	s.store.PutAnnouncement(announcement)
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	return announcement, nil
}
