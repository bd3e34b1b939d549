// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"tablenow/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a local customer.
type RegisterInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput defines the data required for a local customer to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginInput carries the Google ID token from the client.
type GoogleLoginInput struct {
	IDToken string `json:"id_token"`
}

// LinkAccountInput defines the data required to merge a local account
// with a Google identity.
type LinkAccountInput struct {
	CustomerID uuid.UUID `json:"-"`
	IDToken    string    `json:"id_token"`
}

// RequestPasswordChangeInput identifies the customer starting a
// password-change verification flow.
type RequestPasswordChangeInput struct {
	CustomerID uuid.UUID `json:"-"`
}

// VerifyCodeInput defines the data required to verify a mailed code.
type VerifyCodeInput struct {
	CustomerID uuid.UUID `json:"-"`
	Token      string    `json:"token"`
	Code       string    `json:"code"`
}

// CommitPasswordInput defines the data required to finalize a password change.
type CommitPasswordInput struct {
	CustomerID  uuid.UUID `json:"-"`
	Token       string    `json:"token"`
	NewPassword string    `json:"new_password"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created customer's record.
type RegisterOutput struct {
	Customer *entity.Customer
}

// LoginOutput returns the customer record and the generated token pair.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Customer     *entity.Customer
}

// GoogleLoginStatus discriminates the three outcomes of a Google sign-in.
type GoogleLoginStatus string

const (
	// GoogleLoginOK means an existing Google customer signed in.
	GoogleLoginOK GoogleLoginStatus = "ok"
	// GoogleLoginRegistered means a fresh Google customer was created.
	GoogleLoginRegistered GoogleLoginStatus = "registered"
	// GoogleLoginNeedLink means a local account with the same email exists
	// and the client must ask the customer to confirm the merge.
	GoogleLoginNeedLink GoogleLoginStatus = "need_link"
)

// GoogleLoginOutput returns the outcome of a Google sign-in attempt.
// Customer and the token pair are set for OK and Registered; NeedLink
// carries only the candidate's ID and name.
type GoogleLoginOutput struct {
	Status       GoogleLoginStatus
	Customer     *entity.Customer
	AccessToken  string
	RefreshToken string
	CandidateID  uuid.UUID
	Name         string
}

// LinkAccountOutput returns the merged customer record.
type LinkAccountOutput struct {
	Customer *entity.Customer
}

// RequestPasswordChangeOutput returns the reset token handed to the client.
// The 6-digit code travels by mail only.
type RequestPasswordChangeOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthUsecase defines the interface for authentication and account-linking
// business operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*GoogleLoginOutput, error)
	LinkAccount(ctx context.Context, input *LinkAccountInput) (*LinkAccountOutput, error)
	RequestPasswordChange(ctx context.Context, input *RequestPasswordChangeInput) (*RequestPasswordChangeOutput, error)
	VerifyCode(ctx context.Context, input *VerifyCodeInput) error
	CommitPassword(ctx context.Context, input *CommitPasswordInput) error
}
