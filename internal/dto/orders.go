package dto

import "time"

type QuoteRequestDTO struct {
	Service  string `json:"service" example:"followers"`
	Quantity int    `json:"quantity" example:"1000"`
}

type QuoteResponseDTO struct {
	Service   string `json:"service" example:"followers"`
	Quantity  int    `json:"quantity" example:"1000"`
	TotalCost int64  `json:"total_cost" example:"50"`
}

type CreateOrderRequestDTO struct {
	Service  string `json:"service" example:"likes"`
	Target   string `json:"target" example:"https://instagram.com/p/abc123"`
	Quantity int    `json:"quantity" example:"500"`
}

type OrderResponseDTO struct {
	ID          int64      `json:"id" example:"17"`
	Service     string     `json:"service" example:"likes"`
	Target      string     `json:"target" example:"https://instagram.com/p/abc123"`
	Quantity    int        `json:"quantity" example:"500"`
	TotalCost   int64      `json:"total_cost" example:"15"`
	Status      string     `json:"status" example:"pending"`
	CreatedAt   time.Time  `json:"created_at" example:"2024-03-01T12:00:00Z"`
	CompletedAt *time.Time `json:"completed_at,omitempty" example:"2024-03-02T09:30:00Z"`
}
