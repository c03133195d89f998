package domain

import "time"

// Ledger entry reasons. Every balance change carries exactly one of these.
const (
	ReasonChannelReward  string = "channel_reward"
	ReasonReferralReward string = "referral_reward"
	ReasonOrderDebit     string = "order_debit"
	ReasonOrderRefund    string = "order_refund"
	ReasonAdminCredit    string = "admin_credit"
	ReasonAdminDebit     string = "admin_debit"
)

// Order statuses. Pending is the only non-terminal state.
const (
	OrderStatusPending   string = "pending"
	OrderStatusCompleted string = "completed"
	OrderStatusCancelled string = "cancelled"
)

// Service kinds known to the rate table.
const (
	ServiceFollowers string = "followers"
	ServiceLikes     string = "likes"
	ServiceViews     string = "views"
)

// Account holds a participant and its point balance. The id is the external
// messenger identity and is assigned by the transport, not by the store.
type Account struct {
	ID           int64      `db:"id"`
	Username     string     `db:"username"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Balance      int64      `db:"balance"`
	ReferralCode string     `db:"referral_code"`
	ReferredBy   *int64     `db:"referred_by"`
	JoinedAt     time.Time  `db:"joined_at"`
	LastActivity time.Time  `db:"last_activity"`
	Banned       bool       `db:"banned"`
	TotalOrders  int        `db:"total_orders"`
	TotalSpent   int64      `db:"total_spent"`
}

// LedgerEntry is one append-only row of the balance log.
// Invariant: an account's balance equals the sum of its deltas.
type LedgerEntry struct {
	ID        int64     `db:"id"`
	AccountID int64     `db:"account_id"`
	Delta     int64     `db:"delta"`
	Reason    string    `db:"reason"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

// Channel is a monitored channel whose membership pays a one-time reward.
type Channel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Username     string    `db:"username"`
	RewardPoints int64     `db:"reward_points"`
	Active       bool      `db:"active"`
	AddedAt      time.Time `db:"added_at"`
}

// SubscriptionGrant proves the channel reward for (account, channel) was paid.
// The row is the idempotency guard; it is created atomically with the credit.
type SubscriptionGrant struct {
	AccountID int64     `db:"account_id"`
	ChannelID string    `db:"channel_id"`
	Points    int64     `db:"points"`
	GrantedAt time.Time `db:"granted_at"`
}

// ReferralGrant proves the one-time referral reward for a referred account
// was paid to its referrer.
type ReferralGrant struct {
	ReferredID int64     `db:"referred_account_id"`
	ReferrerID int64     `db:"referrer_account_id"`
	Points     int64     `db:"points"`
	GrantedAt  time.Time `db:"granted_at"`
}

// Order is a request to spend points on a deliverable service.
// TotalCost is fixed at creation and is the exact refund amount on cancel.
type Order struct {
	ID          int64      `db:"id"`
	AccountID   int64      `db:"account_id"`
	ServiceKind string     `db:"service_kind"`
	Target      string     `db:"target"`
	Quantity    int        `db:"quantity"`
	UnitCost    int64      `db:"unit_cost"`
	TotalCost   int64      `db:"total_cost"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	CompletedAt *time.Time `db:"completed_at"`
}

// Terminal reports whether the order is in a final state.
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled
}

// AuditRecord is written for every admin gateway invocation, success or not.
type AuditRecord struct {
	ID      string    `db:"id"`
	ActorID int64     `db:"actor_id"`
	Action  string    `db:"action"`
	Target  string    `db:"target"`
	Detail  string    `db:"detail"`
	Success bool      `db:"success"`
	At      time.Time `db:"at"`
}

// Stats are the aggregate counters shown on the admin panel.
type Stats struct {
	TotalAccounts       int64 `db:"total_accounts"`
	TotalOrders         int64 `db:"total_orders"`
	ActiveChannels      int64 `db:"active_channels"`
	PointsInCirculation int64 `db:"points_in_circulation"`
}
