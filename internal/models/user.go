package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription tiers
const (
	TierFree       = "free"
	TierStarter    = "starter"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID           uuid.UUID  `json:"user_id" db:"user_id"`                     // Primary key
	Email            string     `json:"email" db:"email"`                         // Unique email address
	PasswordHash     string     `json:"-" db:"password_hash"`                     // bcrypt hash
	Credits          float64    `json:"credits" db:"credits"`                     // Cached credit balance; moves only with a ledger row
	SubscriptionTier string     `json:"subscription_tier" db:"subscription_tier"` // free, starter, pro, enterprise
	ReferralCode     string     `json:"referral_code" db:"referral_code"`         // Unique code for referring new users
	ReferredBy       *string    `json:"referred_by,omitempty" db:"referred_by"`   // Referral code used at signup, if any
	IsAdmin          bool       `json:"is_admin" db:"is_admin"`                   // Admin flag
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`               // Creation timestamp
	LastLogin        *time.Time `json:"last_login,omitempty" db:"last_login"`     // Last successful login
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`               // Last update timestamp
}
