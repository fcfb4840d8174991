package dto

import "time"

type CreditResponseDTO struct {
	Balance float64 `json:"balance" example:"1500.5"`
}

type AdminCreditRequestDTO struct {
	UserID    int     `json:"user_id" validate:"required,gt=0" example:"42"`
	Amount    float64 `json:"amount" validate:"required,gt=0" example:"500"`
	Operation string  `json:"operation" validate:"required,oneof=increase decrease" example:"increase"`
	Reason    string  `json:"reason" example:"manual top-up"`
}

type AdminCreditResponseDTO struct {
	Message    string  `json:"message"`
	NewBalance float64 `json:"new_balance" example:"2000.5"`
}

type CreditHistoryEntryDTO struct {
	PreviousBalance float64   `json:"previous_balance" example:"1000"`
	NewBalance      float64   `json:"new_balance" example:"300"`
	Delta           float64   `json:"delta" example:"-700"`
	Kind            string    `json:"kind" example:"decrease"`
	Reason          string    `json:"reason" example:"payment for order #2377225624"`
	ActorID         int       `json:"actor_id" example:"1"`
	CreatedAt       time.Time `json:"created_at" example:"2025-12-09T16:09:57+03:00"`
}
