package dto

import "time"

type AdminLoginRequestDTO struct {
	ActorID int64  `json:"actor_id" validate:"required" example:"300400500"`
	Key     string `json:"key" validate:"required"`
}

type AdminLoginResponseDTO struct {
	Token string `json:"token"`
}

type AdjustRequestDTO struct {
	AccountID int64  `json:"account_id" validate:"required" example:"500100200"`
	Delta     int64  `json:"delta" validate:"required" example:"-25"`
	Note      string `json:"note,omitempty" example:"promo correction"`
}

type AddChannelRequestDTO struct {
	ID           string `json:"id" validate:"required" example:"-1001234567890"`
	Name         string `json:"name" validate:"required" example:"Crypto News"`
	Username     string `json:"username" example:"cryptonews"`
	RewardPoints int64  `json:"reward_points" example:"10"`
}

type BanRequestDTO struct {
	AccountID int64 `json:"account_id" validate:"required" example:"500100200"`
	Banned    bool  `json:"banned" example:"true"`
}

type BroadcastRequestDTO struct {
	Body string `json:"body" validate:"required"`
}

type BroadcastResponseDTO struct {
	Total  int `json:"total" example:"1500"`
	Sent   int `json:"sent" example:"1488"`
	Failed int `json:"failed" example:"12"`
}

type StatsResponseDTO struct {
	TotalAccounts       int64 `json:"total_accounts" example:"1500"`
	TotalOrders         int64 `json:"total_orders" example:"4200"`
	ActiveChannels      int64 `json:"active_channels" example:"6"`
	PointsInCirculation int64 `json:"points_in_circulation" example:"31250"`
}

type AuditRecordDTO struct {
	ID      string    `json:"id" example:"9f4c1f0e-0f4e-4f3a-b9b2-2a4f9f4c1f0e"`
	ActorID int64     `json:"actor_id" example:"300400500"`
	Action  string    `json:"action" example:"manual_adjust"`
	Target  string    `json:"target" example:"500100200"`
	Detail  string    `json:"detail,omitempty" example:"delta=-25"`
	Success bool      `json:"success" example:"true"`
	At      time.Time `json:"at" example:"2024-03-01T12:00:00Z"`
}

type SessionEventRequestDTO struct {
	Event string `json:"event" validate:"required" example:"adjust_points"`
}

type SessionStateResponseDTO struct {
	State    string `json:"state" example:"awaiting_points_amount"`
	Accepted bool   `json:"accepted" example:"true"`
}
