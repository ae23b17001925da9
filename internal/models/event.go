package models

import "time"

// Event represents a loggable action in the system.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`  // e.g., "paper.upload", "billing.checkout"
	Level     string    `json:"level"` // e.g., "info", "warn", "error"
	Message   string    `json:"message"`
	UserID    *string   `json:"user_id,omitempty"` // Nullable for system-wide events
	CreatedAt time.Time `json:"created_at"`
}
