package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablenow/config"
	"tablenow/internal/domain/entity"
)

func newTestAuthService(t *testing.T) *AuthServiceImpl {
	t.Helper()

	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthService(cfg, logger).(*AuthServiceImpl)
}

// makeIDToken assembles an unsigned JWT with the given claims. The verifier
// only inspects the payload, so the header and signature parts are fixed.
func makeIDToken(t *testing.T, claims IDTokenClaims) string {
	t.Helper()

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString(payload)

	return header + "." + body + ".test_signature"
}

func validClaims() IDTokenClaims {
	now := time.Now()

	return IDTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "google-subject-123",
		Aud:           "test_client_id",
		Exp:           now.Add(time.Hour).Unix(),
		Iat:           now.Unix(),
		Email:         "diner@example.com",
		EmailVerified: true,
		Name:          "Test Diner",
		Picture:       "https://example.com/avatar.png",
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	authService := newTestAuthService(t)
	ctx := context.Background()

	token := makeIDToken(t, validClaims())

	oauthUser, err := authService.VerifyIDToken(ctx, token)
	assert.NoError(t, err)
	assert.NotNil(t, oauthUser)
	assert.Equal(t, "google-subject-123", oauthUser.Subject)
	assert.Equal(t, "diner@example.com", oauthUser.Email)
	assert.Equal(t, "Test Diner", oauthUser.Name)
	assert.Equal(t, entity.ProviderGoogle, oauthUser.Provider)
	assert.True(t, oauthUser.EmailVerified)
}

func TestAuthService_VerifyIDToken_Expired(t *testing.T) {
	authService := newTestAuthService(t)
	ctx := context.Background()

	claims := validClaims()
	claims.Exp = time.Now().Add(-time.Hour).Unix()

	oauthUser, err := authService.VerifyIDToken(ctx, makeIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "token verification failed")
}

func TestAuthService_VerifyIDToken_WrongAudience(t *testing.T) {
	authService := newTestAuthService(t)
	ctx := context.Background()

	claims := validClaims()
	claims.Aud = "some_other_client_id"

	oauthUser, err := authService.VerifyIDToken(ctx, makeIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "invalid audience")
}

func TestAuthService_VerifyIDToken_WrongIssuer(t *testing.T) {
	authService := newTestAuthService(t)
	ctx := context.Background()

	claims := validClaims()
	claims.Iss = "https://accounts.example.net"

	oauthUser, err := authService.VerifyIDToken(ctx, makeIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "invalid issuer")
}

func TestAuthService_VerifyIDToken_UnverifiedEmail(t *testing.T) {
	authService := newTestAuthService(t)
	ctx := context.Background()

	claims := validClaims()
	claims.EmailVerified = false

	oauthUser, err := authService.VerifyIDToken(ctx, makeIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "email not verified")
}

func TestAuthService_GetProvider(t *testing.T) {
	authService := newTestAuthService(t)

	assert.Equal(t, entity.ProviderGoogle, authService.GetProvider())
}

func TestAuthService_ParseIDToken(t *testing.T) {
	authService := newTestAuthService(t)

	token := makeIDToken(t, validClaims())

	claims, err := authService.parseIDToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "google-subject-123", claims.Sub)
	assert.Equal(t, "diner@example.com", claims.Email)
	assert.Equal(t, "test_client_id", claims.Aud)
	assert.Equal(t, "https://accounts.google.com", claims.Iss)
	assert.True(t, claims.EmailVerified)
}

func TestAuthService_InvalidJWT(t *testing.T) {
	authService := newTestAuthService(t)
	ctx := context.Background()

	oauthUser, err := authService.VerifyIDToken(ctx, "invalid_token_format")
	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "invalid JWT format")
}
