// Package entity contains the core business objects of the project.
package entity

// Provider represents the identity-issuing authority for a customer record.
type Provider string

const (
	// ProviderLocal indicates a password-based account registered directly with us.
	ProviderLocal Provider = "local"
	// ProviderGoogle indicates an account federated through Google Sign-In.
	ProviderGoogle Provider = "google"
)

// String returns the string representation of the Provider.
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the Provider is a valid value.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderGoogle:
		return true
	default:
		return false
	}
}
