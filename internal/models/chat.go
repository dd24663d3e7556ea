package models

import (
	"time"
)

// ChatExchange is one conversational turn with the inference service.
type ChatExchange struct {
	ID          int64     `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	UserMessage string    `json:"user_message" db:"user_message"`
	AIResponse  string    `json:"ai_response" db:"ai_response"`
	Timestamp   time.Time `json:"timestamp" db:"created_at"`
}
