// Package ledger is the only code allowed to change a user's monetary fields.
// Every operation either fully applies or fully refuses: preconditions are
// checked before any field is touched, and each balance change appends a
// matching transaction so the log always sums to the balance.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"engage/models"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoWallet          = errors.New("user has no wallet")
	ErrNoEarnings        = errors.New("user has no earnings balance")
)

// Deposit credits a creator wallet. Runs on deposit-request approval, never
// on request submission.
func Deposit(user *models.User, amountMinor int64, method models.PaymentMethod) error {
	if amountMinor <= 0 {
		return ErrInvalidAmount
	}
	if user.Creator == nil {
		return ErrNoWallet
	}
	user.Creator.Transactions = append(user.Creator.Transactions, models.Transaction{
		ID:          uuid.NewString(),
		Type:        models.TransactionDeposit,
		Description: fmt.Sprintf("%s deposit", method),
		Amount:      amountMinor,
		Date:        time.Now().UTC(),
	})
	user.Creator.WalletBalance += amountMinor
	return nil
}

// DebitCampaign charges a campaign budget against the creator wallet. The
// caller creates the campaign in the same synchronous operation; neither
// side happens without the other.
func DebitCampaign(user *models.User, campaign *models.Campaign) error {
	if campaign.Budget <= 0 {
		return ErrInvalidAmount
	}
	if user.Creator == nil {
		return ErrNoWallet
	}
	if campaign.Budget > user.Creator.WalletBalance {
		return ErrInsufficientFunds
	}
	user.Creator.Transactions = append(user.Creator.Transactions, models.Transaction{
		ID:          uuid.NewString(),
		Type:        models.TransactionCampaign,
		Description: campaign.Name,
		Amount:      -campaign.Budget,
		Date:        time.Now().UTC(),
	})
	user.Creator.WalletBalance -= campaign.Budget
	return nil
}

// CreditTaskPayout pays an engager for an approved submission.
func CreditTaskPayout(user *models.User, task *models.Task) error {
	if task.Payout <= 0 {
		return ErrInvalidAmount
	}
	if user.Engager == nil {
		return ErrNoEarnings
	}
	user.Engager.EarningsLog = append(user.Engager.EarningsLog, models.Transaction{
		ID:          uuid.NewString(),
		Type:        models.TransactionTaskPayout,
		Description: task.Description,
		Amount:      task.Payout,
		Date:        time.Now().UTC(),
	})
	user.Engager.Earnings += task.Payout
	return nil
}

// DebitWithdrawal applies an approved withdrawal against current earnings.
// The balance is re-checked here, at approval time, since it may have moved
// since the request was filed.
func DebitWithdrawal(user *models.User, request *models.WithdrawalRequest) error {
	if request.Amount <= 0 {
		return ErrInvalidAmount
	}
	if user.Engager == nil {
		return ErrNoEarnings
	}
	if request.Amount > user.Engager.Earnings {
		return ErrInsufficientFunds
	}
	user.Engager.EarningsLog = append(user.Engager.EarningsLog, models.Transaction{
		ID:          uuid.NewString(),
		Type:        models.TransactionWithdrawal,
		Description: fmt.Sprintf("Withdrawal to %s", request.BankName),
		Amount:      -request.Amount,
		Date:        time.Now().UTC(),
	})
	user.Engager.Earnings -= request.Amount
	return nil
}

// Reconcile returns the drift between a user's transaction log and balance,
// per side. Zero means the ledger invariant holds.
func Reconcile(user *models.User) int64 {
	if user.Creator != nil {
		var sum int64
		for _, txn := range user.Creator.Transactions {
			sum += txn.Amount
		}
		return user.Creator.WalletBalance - sum
	}
	if user.Engager != nil {
		var sum int64
		for _, txn := range user.Engager.EarningsLog {
			sum += txn.Amount
		}
		return user.Engager.Earnings - sum
	}
	return 0
}
