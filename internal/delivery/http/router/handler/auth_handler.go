// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tablenow/internal/delivery/http/response"
	"tablenow/internal/domain/entity"
	"tablenow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerResponse is the outward-facing view of a customer record.
// Credentials and provider subjects never leave the service.
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

func newCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Provider:  string(c.Provider),
		CreatedAt: c.CreatedAt,
	}
}

type tokenPairResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	Customer     *CustomerResponse `json:"customer"`
}

type googleLoginResponse struct {
	Status       usecase.GoogleLoginStatus `json:"status"`
	AccessToken  string                    `json:"access_token,omitempty"`
	RefreshToken string                    `json:"refresh_token,omitempty"`
	Customer     *CustomerResponse         `json:"customer,omitempty"`
	CandidateID  string                    `json:"candidate_id,omitempty"`
	Name         string                    `json:"name,omitempty"`
}

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the local customer registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCustomerResponse(output.Customer), "Customer registered successfully")
}

// Login handles the local customer login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Customer:     newCustomerResponse(output.Customer),
	}, "Login successful")
}

// GoogleLogin handles a Google ID-token sign-in. The response status tells
// the client whether it got a session, a fresh account, or a link prompt.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var input *usecase.GoogleLoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google login input")
	}
	if input == nil || input.IDToken == "" {
		return response.BadRequest(c, "INVALID_INPUT", "ID token is required")
	}

	output, err := h.uc.GoogleLogin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := googleLoginResponse{Status: output.Status}
	switch output.Status {
	case usecase.GoogleLoginNeedLink:
		resp.CandidateID = output.CandidateID.String()
		resp.Name = output.Name
	default:
		resp.AccessToken = output.AccessToken
		resp.RefreshToken = output.RefreshToken
		resp.Customer = newCustomerResponse(output.Customer)
	}

	statusCode := http.StatusOK
	if output.Status == usecase.GoogleLoginRegistered {
		statusCode = http.StatusCreated
	}

	return response.Success(c, statusCode, resp, "Google authentication processed")
}

// LinkAccount merges the authenticated local account with the Google
// identity carried by the ID token.
func (h *AuthHandler) LinkAccount(c echo.Context) error {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	var input *usecase.LinkAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}
	if input == nil || input.IDToken == "" {
		return response.BadRequest(c, "INVALID_INPUT", "ID token is required")
	}
	input.CustomerID = customerID

	output, err := h.uc.LinkAccount(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(output.Customer), "Account linked successfully")
}

// RequestPasswordChange starts the mailed-code verification flow.
func (h *AuthHandler) RequestPasswordChange(c echo.Context) error {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	output, err := h.uc.RequestPasswordChange(c.Request().Context(), &usecase.RequestPasswordChangeInput{
		CustomerID: customerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Verification code sent")
}

// VerifyCode checks the mailed code against the pending reset record.
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	var input *usecase.VerifyCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if input == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Token and code are required")
	}
	input.CustomerID = customerID

	if err := h.uc.VerifyCode(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "verified"}, "Code verified successfully")
}

// CommitPassword finalizes a verified password change.
func (h *AuthHandler) CommitPassword(c echo.Context) error {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	var input *usecase.CommitPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if input == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Token and new password are required")
	}
	input.CustomerID = customerID

	if err := h.uc.CommitPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "changed"}, "Password changed successfully")
}

// customerIDFromContext reads the authenticated customer ID set by the
// auth middleware.
func customerIDFromContext(c echo.Context) (uuid.UUID, bool) {
	customerID, ok := c.Get("customerID").(uuid.UUID)

	return customerID, ok
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
