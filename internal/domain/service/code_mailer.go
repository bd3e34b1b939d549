package service

import "context"

// CodeMailer delivers a password-reset verification code to a customer's
// email address. Implementations are expected to be synchronous; a returned
// error means the code could not be handed to the mail system.
type CodeMailer interface {
	// SendVerificationCode sends the numeric code to the given address,
	// addressing the customer by name and mentioning how many minutes the
	// code stays valid.
	SendVerificationCode(ctx context.Context, email, name, code string, ttlMinutes int) error
}
