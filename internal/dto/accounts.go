package dto

import "time"

type RegisterRequestDTO struct {
	ID           int64  `json:"id" validate:"required" example:"500100200"`
	Username     string `json:"username" example:"satoshi"`
	FirstName    string `json:"first_name" example:"Sam"`
	LastName     string `json:"last_name" example:"Nakamoto"`
	ReferralCode string `json:"referral_code,omitempty" example:"7992739871"`
}

type AccountResponseDTO struct {
	ID           int64     `json:"id" example:"500100200"`
	Username     string    `json:"username" example:"satoshi"`
	Balance      int64     `json:"balance" example:"120"`
	ReferralCode string    `json:"referral_code" example:"7992739871"`
	Banned       bool      `json:"banned" example:"false"`
	TotalOrders  int       `json:"total_orders" example:"3"`
	TotalSpent   int64     `json:"total_spent" example:"240"`
	JoinedAt     time.Time `json:"joined_at" example:"2024-03-01T12:00:00Z"`
}

type StatementEntryDTO struct {
	Delta     int64     `json:"delta" example:"-50"`
	Reason    string    `json:"reason" example:"order_debit"`
	Note      string    `json:"note,omitempty" example:"followers x1000"`
	CreatedAt time.Time `json:"created_at" example:"2024-03-01T12:00:00Z"`
}
