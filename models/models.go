package models

import "time"

type Role string

const (
	RoleCreator Role = "Creator"
	RoleEngager Role = "Engager"
	RoleAdmin   Role = "Admin"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "Active"
	CampaignPaused    CampaignStatus = "Paused"
	CampaignCompleted CampaignStatus = "Completed"
)

type SocialPlatform string

const (
	PlatformInstagram SocialPlatform = "Instagram"
	PlatformYouTube   SocialPlatform = "YouTube"
	PlatformTikTok    SocialPlatform = "TikTok"
	PlatformFacebook  SocialPlatform = "Facebook"
	PlatformTwitter   SocialPlatform = "Twitter"
	PlatformLinkedIn  SocialPlatform = "LinkedIn"
)

type EngagementType string

const (
	EngagementLike    EngagementType = "Like"
	EngagementFollow  EngagementType = "Follow"
	EngagementComment EngagementType = "Comment"
	EngagementView    EngagementType = "View"
	EngagementShare   EngagementType = "Share"
)

type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "Card"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
)

const (
	TransactionDeposit    = "deposit"
	TransactionCampaign   = "campaign"
	TransactionTaskPayout = "task_payout"
	TransactionWithdrawal = "withdrawal"
)

// User is a tagged union over the two role shapes. Exactly one of Creator or
// Engager is set; Admin users carry a CreatorProfile.
type User struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	Role         Role            `json:"role"`
	Avatar       string          `json:"avatar"`
	PasswordHash string          `json:"password_hash,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	Creator      *CreatorProfile `json:"creator,omitempty"`
	Engager      *EngagerProfile `json:"engager,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	out.Creator = u.Creator.clone()
	out.Engager = u.Engager.clone()
	return &out
}

// CreatorProfile holds the wallet side of the ledger. WalletBalance and
// Transactions are mutated only by the ledger package; sum(Transactions.Amount)
// must equal WalletBalance after every mutation.
type CreatorProfile struct {
	WalletBalance int64         `json:"wallet_balance"`
	Transactions  []Transaction `json:"transactions"`
}

func (p *CreatorProfile) clone() *CreatorProfile {
	if p == nil {
		return nil
	}
	out := *p
	out.Transactions = append([]Transaction(nil), p.Transactions...)
	return &out
}

// EngagerProfile holds the earnings side of the ledger plus gamification
// counters. EarningsLog mirrors the creator's transaction log so the same
// balance invariant applies to Earnings.
type EngagerProfile struct {
	Earnings                   int64         `json:"earnings"`
	EarningsLog                []Transaction `json:"earnings_log"`
	IsSubscribed               bool          `json:"is_subscribed"`
	SubscriptionPaymentPending bool          `json:"subscription_payment_pending"`
	ReferralCode               string        `json:"referral_code"`
	Referrals                  []Referral    `json:"referrals"`
	Rank                       int           `json:"rank"`
	XP                         int           `json:"xp"`
	Level                      int           `json:"level"`
	TaskStreak                 int           `json:"task_streak"`
	IsVerified                 bool          `json:"is_verified"`
	AccountNumber              string        `json:"account_number,omitempty"`
	PhoneNumber                string        `json:"phone_number,omitempty"`
}

func (p *EngagerProfile) clone() *EngagerProfile {
	if p == nil {
		return nil
	}
	out := *p
	out.EarningsLog = append([]Transaction(nil), p.EarningsLog...)
	out.Referrals = append([]Referral(nil), p.Referrals...)
	return &out
}

// Transaction amounts are signed minor units: positive credits, negative debits.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
}

type Campaign struct {
	ID             string         `json:"id"`
	CreatorID      string         `json:"creator_id"`
	Name           string         `json:"name"`
	Platform       SocialPlatform `json:"platform"`
	EngagementType EngagementType `json:"engagement_type"`
	Budget         int64          `json:"budget"`
	TotalTasks     int            `json:"total_tasks"`
	CompletedTasks int            `json:"completed_tasks"`
	Status         CampaignStatus `json:"status"`
	Link           string         `json:"link"`
}

func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

// Task payout is Budget/TotalTasks of the owning campaign, in minor units.
// CampaignID is empty for pre-seeded global tasks.
type Task struct {
	ID             string         `json:"id"`
	CampaignID     string         `json:"campaign_id,omitempty"`
	Platform       SocialPlatform `json:"platform"`
	EngagementType EngagementType `json:"engagement_type"`
	Payout         int64          `json:"payout"`
	Description    string         `json:"description"`
	Link           string         `json:"link"`
}

func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	out := *t
	return &out
}

type Submission struct {
	ID              string    `json:"id"`
	TaskID          string    `json:"task_id"`
	TaskDescription string    `json:"task_description"`
	UserID          string    `json:"user_id"`
	ScreenshotURL   string    `json:"screenshot_url"`
	Status          Status    `json:"status"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

func (s *Submission) Clone() *Submission {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}

type WithdrawalRequest struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Amount        int64     `json:"amount"`
	BankCountry   string    `json:"bank_country"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	Status        Status    `json:"status"`
	RequestedAt   time.Time `json:"requested_at"`
}

func (w *WithdrawalRequest) Clone() *WithdrawalRequest {
	if w == nil {
		return nil
	}
	out := *w
	return &out
}

type DepositRequest struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Amount        int64         `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        Status        `json:"status"`
	RequestedAt   time.Time     `json:"requested_at"`
}

func (d *DepositRequest) Clone() *DepositRequest {
	if d == nil {
		return nil
	}
	out := *d
	return &out
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) Clone() *Notification {
	if n == nil {
		return nil
	}
	out := *n
	return &out
}

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
}

func (a *Announcement) Clone() *Announcement {
	if a == nil {
		return nil
	}
	out := *a
	return &out
}

type Referral struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Avatar            string `json:"avatar"`
	Status            string `json:"status"`
	EarningsGenerated int64  `json:"earnings_generated"`
}
