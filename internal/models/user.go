package models

import "time"

// User represents a registered account in the system.
type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	PasswordHash     string     `json:"-"` // Never expose this to the client
	IsPremium        bool       `json:"is_premium"`
	PremiumUntil     *time.Time `json:"premium_until,omitempty"`
	StripeCustomerID *string    `json:"-"` // Internal billing reference
	CreatedAt        time.Time  `json:"created_at"`
}
