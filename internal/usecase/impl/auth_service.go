// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"strings"
	"math/big"
	"time"

	"tablenow/config"
	deliverycontext "tablenow/internal/delivery/context"
	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	"tablenow/internal/domain/service"
	"tablenow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultResetTTL = 10 * time.Minute

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	codeMailer        service.CodeMailer
	resetTTL          time.Duration
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	CodeMailer        service.CodeMailer
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	resetTTL := defaultResetTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.ResetCodeTTL > 0 {
		resetTTL = params.Config.Auth.ResetCodeTTL
	}

	return &authService{
		txManager:         params.TxManager,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		codeMailer:        params.CodeMailer,
		resetTTL:          resetTTL,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the local customer registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting customer registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registeredCustomer *entity.Customer

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		// The email must be free across both providers, not just local rows.
		_, err := customerRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrDuplicateEmail.WrapMessage("customer registration failed")
		}
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return errors.Wrap(err, "failed to find customer by email")
		}

		newCustomer := &entity.Customer{
			Name:         input.Name,
			// Blank or whitespace-only phone normalizes to absent.
			Phone:        strings.TrimSpace(input.Phone),
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Provider:     entity.ProviderLocal,
		}
		if err := customerRepo.Create(ctx, newCustomer); err != nil {
			return errors.WithStack(err)
		}
		registeredCustomer = newCustomer

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Customer registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute customer registration transaction")
	}
	srv.log(ctx).Debug("Customer registered successfully", slog.String("customerID", registeredCustomer.ID.String()))

	return &usecase.RegisterOutput{Customer: registeredCustomer}, nil
}

// Login orchestrates the local customer login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting customer login", slog.String("email", input.Email))

	var loggedInCustomer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		customer, err := customerRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			// Covers ErrCustomerNotFound; the caller must not learn whether
			// the email exists.
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		if customer.IsSocial() || !srv.hasher.Check(input.Password, customer.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		loggedInCustomer = customer

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("error", err.Error()))

		return nil, errors.Wrap(err, "failed to execute customer login transaction")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(loggedInCustomer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}
	srv.log(ctx).Debug("Customer logged in successfully", slog.String("customerID", loggedInCustomer.ID.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Customer:     loggedInCustomer,
	}, nil
}

// GoogleLogin handles customer sign-in or registration via a Google ID token.
func (srv *authService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.GoogleLoginOutput, error) {
	srv.log(ctx).Info("Handling Google sign-in")

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("failed to verify Google ID token")
	}

	out := &usecase.GoogleLoginOutput{}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		// The subject lookup runs before the email lookup. A returning Google
		// customer who changed their email at Google must still land on their
		// own row instead of a link prompt against someone else's.
		existing, err := customerRepo.FindBySubject(ctx, entity.ProviderGoogle, oauthUser.Subject)
		if err == nil {
			out.Status = usecase.GoogleLoginOK
			out.Customer = existing

			return nil
		}
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return errors.Wrap(err, "failed to find customer by subject")
		}

		byEmail, err := customerRepo.FindByEmail(ctx, oauthUser.Email)
		if err == nil {
			if byEmail.IsSocial() {
				// A Google row already owns this email under a different
				// subject. Linking cannot resolve this.
				return domainerrors.ErrConflict.WrapMessage("email already bound to another google account")
			}
			out.Status = usecase.GoogleLoginNeedLink
			out.CandidateID = byEmail.ID
			out.Name = byEmail.Name

			return nil
		}
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return errors.Wrap(err, "failed to find customer by email")
		}

		newCustomer := &entity.Customer{
			Name:            oauthUser.Name,
			Email:           oauthUser.Email,
			Provider:        entity.ProviderGoogle,
			ProviderSubject: oauthUser.Subject,
		}
		if err := customerRepo.Create(ctx, newCustomer); err != nil {
			return errors.WithStack(err)
		}
		out.Status = usecase.GoogleLoginRegistered
		out.Customer = newCustomer

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Google sign-in failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute google sign-in transaction")
	}

	if out.Status == usecase.GoogleLoginNeedLink {
		srv.log(ctx).Info("Google sign-in requires account link", slog.String("candidateID", out.CandidateID.String()))

		return out, nil
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(out.Customer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens for google sign-in")
	}
	out.AccessToken = accessToken
	out.RefreshToken = refreshToken
	srv.log(ctx).Debug("Google sign-in completed",
		slog.String("customerID", out.Customer.ID.String()), slog.String("status", string(out.Status)))

	return out, nil
}

// LinkAccount merges a local account with the Google identity carried by the
// ID token. The row is mutated in place: the provider flips to google, the
// local credential is discarded and the display name follows the identity
// provider.
func (srv *authService) LinkAccount(ctx context.Context, input *usecase.LinkAccountInput) (*usecase.LinkAccountOutput, error) {
	srv.log(ctx).Info("Starting account link", slog.String("customerID", input.CustomerID.String()))

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("failed to verify Google ID token")
	}

	var linkedCustomer *entity.Customer

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		customer, err := customerRepo.FindByID(ctx, input.CustomerID)
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound.WrapMessage("account link failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find customer by id")
		}
		if customer.IsSocial() {
			return domainerrors.ErrAlreadyLinked.WrapMessage("account is already linked to a social provider")
		}

		holder, err := customerRepo.FindBySubject(ctx, entity.ProviderGoogle, oauthUser.Subject)
		if err == nil && holder.ID != customer.ID {
			return domainerrors.ErrSubjectInUse.WrapMessage("google identity already linked to another account")
		}
		if err != nil && !errors.Is(err, repository.ErrCustomerNotFound) {
			return errors.Wrap(err, "failed to find customer by subject")
		}

		customer.Provider = entity.ProviderGoogle
		customer.ProviderSubject = oauthUser.Subject
		customer.PasswordHash = ""
		customer.Name = oauthUser.Name
		if err := customerRepo.Update(ctx, customer); err != nil {
			return errors.WithStack(err)
		}
		linkedCustomer = customer

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Account link failed", slog.String("customerID", input.CustomerID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account link transaction")
	}
	srv.log(ctx).Info("Account linked successfully", slog.String("customerID", linkedCustomer.ID.String()))

	return &usecase.LinkAccountOutput{Customer: linkedCustomer}, nil
}

// RequestPasswordChange issues a fresh verification record and mails its code.
func (srv *authService) RequestPasswordChange(ctx context.Context, input *usecase.RequestPasswordChangeInput) (*usecase.RequestPasswordChangeOutput, error) {
	srv.log(ctx).Info("Starting password change request", slog.String("customerID", input.CustomerID.String()))

	code, err := generateNumericCode(6)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	var (
		email, name string
		token       = uuid.NewString()
		expiresAt   time.Time
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()
		resetRepo := repoFactory.ResetRepo()

		customer, err := customerRepo.FindByID(ctx, input.CustomerID)
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound.WrapMessage("password change request failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find customer by id")
		}
		if customer.IsSocial() {
			return domainerrors.ErrSocialAccountImmutable.WrapMessage("social accounts have no local password")
		}

		// The row lock serializes concurrent issuance for the same customer;
		// together with the delete below it keeps at most one live record.
		if err := customerRepo.AcquireUpdateLock(ctx, customer.ID); err != nil {
			return errors.Wrap(err, "failed to lock customer row")
		}

		now := time.Now()
		if err := resetRepo.DeleteLiveByCustomerID(ctx, customer.ID, now); err != nil {
			return errors.Wrap(err, "failed to invalidate previous reset records")
		}

		expiresAt = now.Add(srv.resetTTL)
		reset := &entity.PasswordReset{
			CustomerID: customer.ID,
			Token:      token,
			Code:       code,
			ExpiresAt:  expiresAt,
		}
		if err := resetRepo.Create(ctx, reset); err != nil {
			return errors.WithStack(err)
		}
		email, name = customer.Email, customer.Name

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Password change request failed", slog.String("customerID", input.CustomerID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute password change request transaction")
	}

	// The record is already committed; a mail failure must not roll it back.
	// The customer can retry delivery while the record stays redeemable.
	if err := srv.codeMailer.SendVerificationCode(ctx, email, name, code, int(srv.resetTTL.Minutes())); err != nil {
		srv.log(ctx).Error("Failed to mail verification code", slog.String("customerID", input.CustomerID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrNotificationFailed.WrapMessage("failed to deliver verification code")
	}
	srv.log(ctx).Debug("Verification code issued", slog.String("customerID", input.CustomerID.String()))

	return &usecase.RequestPasswordChangeOutput{Token: token, ExpiresAt: expiresAt}, nil
}

// VerifyCode redeems a mailed verification code against its reset record.
func (srv *authService) VerifyCode(ctx context.Context, input *usecase.VerifyCodeInput) error {
	srv.log(ctx).Debug("Verifying password change code", slog.String("customerID", input.CustomerID.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.ResetRepo()

		reset, err := resetRepo.FindByToken(ctx, input.CustomerID, input.Token)
		if errors.Is(err, repository.ErrResetNotFound) {
			return domainerrors.ErrResetTokenInvalid.WrapMessage("verification failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find reset record")
		}

		// A consumed record reports its consumption even after expiry.
		if reset.Verified {
			return domainerrors.ErrResetAlreadyUsed.WrapMessage("verification code already used")
		}
		if reset.IsExpired(time.Now()) {
			return domainerrors.ErrResetExpired.WrapMessage("verification code expired")
		}
		if reset.Code != input.Code {
			return domainerrors.ErrCodeMismatch.WrapMessage("verification code mismatch")
		}

		return errors.WithStack(resetRepo.MarkVerified(ctx, reset.ID))
	})

	if err != nil {
		srv.log(ctx).Warn("Code verification failed", slog.String("customerID", input.CustomerID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute code verification transaction")
	}
	srv.log(ctx).Debug("Verification code accepted", slog.String("customerID", input.CustomerID.String()))

	return nil
}

// CommitPassword finalizes a verified password change and consumes the record.
func (srv *authService) CommitPassword(ctx context.Context, input *usecase.CommitPasswordInput) error {
	srv.log(ctx).Info("Committing password change", slog.String("customerID", input.CustomerID.String()))

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()
		resetRepo := repoFactory.ResetRepo()

		customer, err := customerRepo.FindByID(ctx, input.CustomerID)
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound.WrapMessage("password change failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find customer by id")
		}
		// The account may have been linked between verification and commit.
		if customer.IsSocial() {
			return domainerrors.ErrSocialAccountImmutable.WrapMessage("social accounts have no local password")
		}

		reset, err := resetRepo.FindByToken(ctx, customer.ID, input.Token)
		if errors.Is(err, repository.ErrResetNotFound) {
			return domainerrors.ErrResetTokenInvalid.WrapMessage("password change failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find reset record")
		}
		if !reset.Verified {
			return domainerrors.ErrVerificationRequired.WrapMessage("verification code not yet confirmed")
		}
		if reset.IsExpired(time.Now()) {
			return domainerrors.ErrResetExpired.WrapMessage("verification window expired")
		}

		hashedPassword, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
		}

		// Re-using the previous password is allowed.
		customer.PasswordHash = hashedPassword
		if err := customerRepo.Update(ctx, customer); err != nil {
			return errors.WithStack(err)
		}

		return errors.WithStack(resetRepo.Delete(ctx, reset.ID))
	})

	if err != nil {
		srv.log(ctx).Warn("Password change commit failed", slog.String("customerID", input.CustomerID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}
	srv.log(ctx).Info("Password changed successfully", slog.String("customerID", input.CustomerID.String()))

	return nil
}

// generateNumericCode returns a random decimal string of the given length,
// zero-padded, drawn from crypto/rand.
func generateNumericCode(length int) (string, error) {
	const digits = "0123456789"

	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", errors.Wrap(err, "failed to read random digit")
		}
		buf[i] = digits[n.Int64()]
	}

	return string(buf), nil
}
