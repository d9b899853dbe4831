package auth

import (
	"time"

	"github.com/google/uuid"
)

// ActivationToken is a single-use credential mailed to approved staff.
type ActivationToken struct {
	Value     string
	ExpiresAt time.Time
}

// NewActivationToken issues a random token valid for ttl from now.
func NewActivationToken(now time.Time, ttl time.Duration) ActivationToken {
	return ActivationToken{Value: uuid.NewString(), ExpiresAt: now.Add(ttl).UTC()}
}

// Expired reports whether expiry has passed at now. A missing expiry counts as expired.
func Expired(expiry *time.Time, now time.Time) bool {
	return expiry == nil || now.After(*expiry)
}
