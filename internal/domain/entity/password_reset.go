// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset is a short-lived, single-use authorization for changing a
// customer's password. The opaque Token acts as a bearer capability for both
// the code-verification step and the final password commit; the numeric Code
// is what the customer types in from the verification email.
//
// A record is "live" while it is unverified and not yet expired. By
// construction a customer has at most one live record at a time: issuing a new
// one deletes any live predecessor inside the same transaction.
type PasswordReset struct {
	ID         uuid.UUID // The unique ID for this reset record.
	CustomerID uuid.UUID // The customer this reset authorization belongs to.
	Token      string    // Opaque lookup handle, returned to the caller at issuance.
	Code       string    // Six-digit numeric code delivered by email, compared for equality.
	ExpiresAt  time.Time // Absolute expiry, issuance time plus a fixed TTL.
	Verified   bool      // Set exactly once by a correct code submission.
	CreatedAt  time.Time // Timestamp of issuance.
}

// IsLive reports whether the record can still accept a code submission.
func (r *PasswordReset) IsLive(now time.Time) bool {
	return !r.Verified && !now.After(r.ExpiresAt)
}

// IsExpired reports whether the record's expiry has passed.
func (r *PasswordReset) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
