package domain

import "time"

// RateLimitRecord is one entry in the append-only rate-limit ledger
type RateLimitRecord struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	ActionType string    `json:"action_type"`
	Timestamp  time.Time `json:"timestamp"`
}

// Rate-limited action types
const (
	ActionSubmission    = "submission"
	ActionCollaboration = "collaboration"
)
