// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the core identity record of the system. A customer either signed
// up locally with an email/password pair, or arrived through a federated
// provider (Google). The two states are mutually exclusive: a local customer
// always carries a password hash and never a provider subject, while a google
// customer carries a provider subject and never a password hash.
type Customer struct {
	ID              uuid.UUID // The unique, immutable identifier for the customer.
	Name            string    // The customer's display name.
	Phone           string    // Optional contact phone number; empty when absent.
	Email           string    // Login identifier, unique across all customers regardless of provider.
	PasswordHash    string    // bcrypt hash of the password; present only when Provider is local.
	Provider        Provider  // The identity-issuing authority for this record.
	ProviderSubject string    // The provider's stable external ID ('sub' claim); present only for google records.
	CreatedAt       time.Time // Timestamp of when this account was created. Set once.
}

// IsSocial reports whether the customer is federated through an external
// identity provider and therefore has no password credential to manage.
func (c *Customer) IsSocial() bool {
	return c.Provider != ProviderLocal
}
