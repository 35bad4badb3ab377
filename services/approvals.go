package services

import (
	"context"
	"errors"
	"fmt"

	"engage/ledger"
	"engage/models"
	"engage/money"
	"engage/reward"

	"go.uber.org/zap"
)

// The three request kinds share one state machine: Pending is the only state
// with outgoing transitions, Approved and Rejected are terminal, and acting
// on a terminal request fails with ErrInvalidTransition. The single exception
// is withdrawal approval, where insufficient earnings at approval time
// resolves the request to Rejected instead of failing.

// ApproveSubmission pays the engager, grants XP, and advances the owning
// campaign's completion counter.
func (s *PlatformService) ApproveSubmission(ctx context.Context, id string) (*models.Submission, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	submission, ok := s.store.Submission(id)
	if !ok {
		return nil, ErrRequestNotFound
	}
	if submission.Status.Terminal() {
		return nil, ErrInvalidTransition
	}
	task, ok := s.store.Task(submission.TaskID)
	if !ok {
		return nil, ErrTaskNotFound
	}
	user, ok := s.store.User(submission.UserID)
	if !ok {
		return nil, ErrUserNotFound
	}
	paid := user.Clone()
	if err := ledger.CreditTaskPayout(paid, task); err != nil {
		return nil, err
	}
	reward.AwardApprovalXP(paid.Engager)

	if task.CampaignID != "" {
		if campaign, ok := s.store.Campaign(task.CampaignID); ok {
			campaign.CompletedTasks++
			if campaign.CompletedTasks >= campaign.TotalTasks {
				campaign.Status = models.CampaignCompleted
			}
			s.store.PutCampaign(campaign)
		}
	}

	submission.Status = models.StatusApproved
	s.store.PutUser(paid)
	s.store.PutSubmission(submission)
	s.notify(submission.UserID, fmt.Sprintf("Your submission for %q was approved. $%s was added to your earnings.", task.Description, money.FormatMinor(task.Payout)))
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	s.log.Info("submission approved",
		zap.String("submission_id", submission.ID),
		zap.String("user_id", submission.UserID),
		zap.String("payout", money.FormatMinor(task.Payout)))
	return submission, nil
}

func (s *PlatformService) RejectSubmission(ctx context.Context, id string) (*models.Submission, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	submission, ok := s.store.Submission(id)
	if !ok {
		return nil, ErrRequestNotFound
	}
	if submission.Status.Terminal() {
		return nil, ErrInvalidTransition
	}
	submission.Status = models.StatusRejected
	s.store.PutSubmission(submission)
	s.notify(submission.UserID, fmt.Sprintf("Your submission for %q was rejected.", submission.TaskDescription))
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	return submission, nil
}

// ApproveWithdrawal re-checks earnings at approval time. When the balance no
// longer covers the request, the system resolves the request to Rejected and
// notifies the engager; the admin's approve does not fail.
func (s *PlatformService) ApproveWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequest, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	request, ok := s.store.Withdrawal(id)
	if !ok {
		return nil, ErrRequestNotFound
	}
	if request.Status.Terminal() {
		return nil, ErrInvalidTransition
	}
	user, ok := s.store.User(request.UserID)
	if !ok {
		return nil, ErrUserNotFound
	}
	debited := user.Clone()
	err := ledger.DebitWithdrawal(debited, request)
	if errors.Is(err, ledger.ErrInsufficientFunds) {
		request.Status = models.StatusRejected
		s.store.PutWithdrawal(request)
		s.notify(request.UserID, fmt.Sprintf("Your withdrawal of $%s was rejected: insufficient earnings at approval time.", money.FormatMinor(request.Amount)))
		if err := s.store.Flush(ctx); err != nil {
			return nil, err
		}
		s.log.Warn("withdrawal auto-rejected",
			zap.String("request_id", request.ID),
			zap.String("user_id", request.UserID),
			zap.String("amount", money.FormatMinor(request.Amount)))
		return request, nil
	}
	if err != nil {
		return nil, err
	}
	request.Status = models.StatusApproved
	s.store.PutUser(debited)
	s.store.PutWithdrawal(request)
	s.notify(request.UserID, fmt.Sprintf("Your withdrawal of $%s to %s was approved.", money.FormatMinor(request.Amount), request.BankName))
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	s.log.Info("withdrawal approved",
		zap.String("request_id", request.ID),
		zap.String("user_id", request.UserID),
		zap.String("amount", money.FormatMinor(request.Amount)))
	return request, nil
}

func (s *PlatformService) RejectWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequest, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	request, ok := s.store.Withdrawal(id)
	if !ok {
		return nil, ErrRequestNotFound
	}
	if request.Status.Terminal() {
		return nil, ErrInvalidTransition
	}
	request.Status = models.StatusRejected
	s.store.PutWithdrawal(request)
	s.notify(request.UserID, fmt.Sprintf("Your withdrawal of $%s was rejected.", money.FormatMinor(request.Amount)))
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	return request, nil
}

// ApproveDeposit credits the creator wallet through the ledger.
func (s *PlatformService) ApproveDeposit(ctx context.Context, id string) (*models.DepositRequest, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	request, ok := s.store.Deposit(id)
	if !ok {
		return nil, ErrRequestNotFound
	}
	if request.Status.Terminal() {
		return nil, ErrInvalidTransition
	}
	user, ok := s.store.User(request.UserID)
	if !ok {
		return nil, ErrUserNotFound
	}
	funded := user.Clone()
	if err := ledger.Deposit(funded, request.Amount, request.PaymentMethod); err != nil {
		return nil, err
	}
	request.Status = models.StatusApproved
	s.store.PutUser(funded)
	s.store.PutDeposit(request)
	s.notify(request.UserID, fmt.Sprintf("Your deposit of $%s was approved and added to your wallet.", money.FormatMinor(request.Amount)))
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	s.log.Info("deposit approved",
		zap.String("request_id", request.ID),
		zap.String("user_id", request.UserID),
		zap.String("amount", money.FormatMinor(request.Amount)))
	return request, nil
}

func (s *PlatformService) RejectDeposit(ctx context.Context, id string) (*models.DepositRequest, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}
	request, ok := s.store.Deposit(id)
	if !ok {
		return nil, ErrRequestNotFound
	}
	if request.Status.Terminal() {
		return nil, ErrInvalidTransition
	}
	request.Status = models.StatusRejected
	s.store.PutDeposit(request)
	s.notify(request.UserID, fmt.Sprintf("Your deposit of $%s was rejected.", money.FormatMinor(request.Amount)))
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}
	return request, nil
}

// ApproveSubscription clears the pending payment flag and unlocks tasks.
func (s *PlatformService) ApproveSubscription(ctx context.Context, userID string) error {
	if _, err := s.requireAdmin(); err != nil {
		return err
	}
	user, ok := s.store.User(userID)
	if !ok {
		return ErrUserNotFound
	}
	if user.Engager == nil {
		return ErrNotEngager
	}
	subscribed := user.Clone()
	subscribed.Engager.IsSubscribed = true
	subscribed.Engager.SubscriptionPaymentPending = false
	s.store.PutUser(subscribed)
	s.notify(userID, "Your subscription has been approved! You can now access all tasks.")
	return s.store.Flush(ctx)
}

// VerifyEngager marks an engager account as verified.
func (s *PlatformService) VerifyEngager(ctx context.Context, userID string) error {
	if _, err := s.requireAdmin(); err != nil {
		return err
	}
	user, ok := s.store.User(userID)
	if !ok {
		return ErrUserNotFound
	}
	if user.Engager == nil {
		return ErrNotEngager
	}
	verified := user.Clone()
	verified.Engager.IsVerified = true
	s.store.PutUser(verified)
	s.notify(userID, "Your account has been verified!")
	return s.store.Flush(ctx)
}
