package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/service"
	"tablenow/internal/infra/auth"
	mocksvc "tablenow/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthTestServer wires the middleware behind the central error handler so
// the tests observe the same response shape clients do.
func newAuthTestServer(t *testing.T) (*echo.Echo, *mocksvc.MockTokenService) {
	t.Helper()

	tokenSvc := mocksvc.NewMockTokenService(t)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	authMW := NewAuthMiddleware(tokenSvc)
	e.GET("/me", func(c echo.Context) error {
		customerID, ok := c.Get("customerID").(uuid.UUID)
		require.True(t, ok, "customerID should be set by the middleware")

		return c.JSON(http.StatusOK, map[string]string{"customer_id": customerID.String()})
	}, authMW.Authenticate)

	return e, tokenSvc
}

func doAuthRequest(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var resp domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestAuthMiddleware_RejectionsUseErrorEnvelope(t *testing.T) {
	testCases := []struct {
		name            string
		authHeader      string
		setupMock       func(tokenSvc *mocksvc.MockTokenService)
		expectedDetails string
	}{
		{
			name:            "missing header",
			authHeader:      "",
			expectedDetails: "Authorization header is missing",
		},
		{
			name:            "not a bearer token",
			authHeader:      "Basic dXNlcjpwYXNz",
			expectedDetails: "Invalid token format, must be Bearer token",
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMock: func(tokenSvc *mocksvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("bad-token").
					Return(nil, errors.New("token validation failed"))
			},
			expectedDetails: "Invalid or expired token",
		},
		{
			name:       "refresh token used as credential",
			authHeader: "Bearer refresh-token",
			setupMock: func(tokenSvc *mocksvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("refresh-token").
					Return(&service.Claims{
						CustomerID: uuid.New(),
						Type:       auth.TokenTypeRefresh,
					}, nil)
			},
			expectedDetails: "Access token required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, tokenSvc := newAuthTestServer(t)
			if tc.setupMock != nil {
				tc.setupMock(tokenSvc)
			}

			rec := doAuthRequest(e, tc.authHeader)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			resp := decodeErrorResponse(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, http.StatusUnauthorized, resp.Code)
			assert.Equal(t, "authentication required", resp.Message)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
			assert.Equal(t, tc.expectedDetails, resp.Error.Details)
		})
	}
}

func TestAuthMiddleware_ValidAccessTokenPasses(t *testing.T) {
	e, tokenSvc := newAuthTestServer(t)

	customerID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good-token").
		Return(&service.Claims{
			CustomerID: customerID,
			Type:       auth.TokenTypeAccess,
		}, nil)

	rec := doAuthRequest(e, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, customerID.String(), body["customer_id"])
}
