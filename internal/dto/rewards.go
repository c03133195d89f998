package dto

type ChannelResponseDTO struct {
	ID           string `json:"id" example:"-1001234567890"`
	Name         string `json:"name" example:"Crypto News"`
	Username     string `json:"username" example:"cryptonews"`
	RewardPoints int64  `json:"reward_points" example:"10"`
}

type ClaimResponseDTO struct {
	Earned   int64    `json:"earned" example:"20"`
	Channels []string `json:"channels" example:"Crypto News,Daily Memes"`
}
