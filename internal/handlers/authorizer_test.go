package handlers

import (
	"testing"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminKeyAuthorizer(t *testing.T) {
	assert.NoError(t, adminKeyAuthorizer{}.authorize("anything"))
	assert.NoError(t, adminKeyAuthorizer{key: "k"}.authorize("k"))

	err := adminKeyAuthorizer{key: "k"}.authorize("wrong")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, invalidAdminKeyMessage, apperrors.Message(err))
}

func TestBearerSecretAuthorizer(t *testing.T) {
	tests := []struct {
		name       string
		auth       bearerSecretAuthorizer
		credential string
		wantMsg    string
	}{
		{name: "matching secret", auth: bearerSecretAuthorizer{secret: "s"}, credential: "s"},
		{name: "wrong secret", auth: bearerSecretAuthorizer{secret: "s"}, credential: "x", wantMsg: invalidCronSecretMessage},
		{name: "unset secret accepted", auth: bearerSecretAuthorizer{}, credential: ""},
		{name: "unset secret required", auth: bearerSecretAuthorizer{requireSecret: true}, credential: "x", wantMsg: cronSecretUnsetMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.auth.authorize(tt.credential)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, apperrors.ErrUnauthorized)
			assert.Equal(t, tt.wantMsg, apperrors.Message(err))
		})
	}
}
