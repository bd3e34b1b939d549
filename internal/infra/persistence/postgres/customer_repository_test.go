package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablenow/internal/domain/entity"
)

func TestFromCustomerDomain_BlankOptionalFields(t *testing.T) {
	customer := &entity.Customer{
		ID:           uuid.New(),
		Name:         "Test Diner",
		Email:        "diner@example.com",
		PasswordHash: "$2a$12$hash",
		Provider:     entity.ProviderLocal,
	}

	customerM := fromCustomerDomain(customer)
	require.NotNil(t, customerM)
	assert.Nil(t, customerM.Phone)
	assert.Nil(t, customerM.ProviderSubject)
	require.NotNil(t, customerM.PasswordHash)
	assert.Equal(t, "$2a$12$hash", *customerM.PasswordHash)
}

func TestFromCustomerDomain_WhitespacePhoneNormalizesToNull(t *testing.T) {
	tests := []struct {
		name  string
		phone string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tab and newline", "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customerM := fromCustomerDomain(&entity.Customer{
				Name:     "Test Diner",
				Email:    "diner@example.com",
				Phone:    tt.phone,
				Provider: entity.ProviderLocal,
			})
			require.NotNil(t, customerM)
			assert.Nil(t, customerM.Phone)
		})
	}
}

func TestFromCustomerDomain_TrimsPhonePadding(t *testing.T) {
	customerM := fromCustomerDomain(&entity.Customer{
		Name:     "Test Diner",
		Email:    "diner@example.com",
		Phone:    " 010-0000-0000 ",
		Provider: entity.ProviderLocal,
	})
	require.NotNil(t, customerM)
	require.NotNil(t, customerM.Phone)
	assert.Equal(t, "010-0000-0000", *customerM.Phone)
}

func TestCustomerDomainMapping_RoundTrip(t *testing.T) {
	original := &entity.Customer{
		ID:              uuid.New(),
		Name:            "Google Diner",
		Phone:           "010-1234-5678",
		Email:           "google@example.com",
		Provider:        entity.ProviderGoogle,
		ProviderSubject: "google-subject-123",
	}

	back := toCustomerDomain(fromCustomerDomain(original))
	require.NotNil(t, back)
	assert.Equal(t, original.ID, back.ID)
	assert.Equal(t, original.Phone, back.Phone)
	assert.Equal(t, original.Email, back.Email)
	assert.Equal(t, original.Provider, back.Provider)
	assert.Equal(t, original.ProviderSubject, back.ProviderSubject)
	assert.Empty(t, back.PasswordHash)
}
