// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIToken_Claims(t *testing.T) {
	signed, err := GenerateAPIToken("maritime-transport", "jane@example.com", "byob", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	}, jwt.WithIssuer("maritime-transport"), jwt.WithAudience("byob"))
	require.NoError(t, err)
	assert.True(t, token.Valid)

	assert.Equal(t, "jane@example.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.NotNil(t, claims.IssuedAt)
	assert.Nil(t, claims.ExpiresAt)
}

func TestGenerateAPIToken_Unique(t *testing.T) {
	a, err := GenerateAPIToken("iss", "a@b.c", "app", "key")
	require.NoError(t, err)
	b, err := GenerateAPIToken("iss", "a@b.c", "app", "key")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestGenerateAPIToken_WrongKeyFailsVerification(t *testing.T) {
	signed, err := GenerateAPIToken("iss", "a@b.c", "app", "key")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(*jwt.Token) (any, error) {
		return []byte("other"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestGenerateAPIToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name                            string
		issuer, email, appName, signKey string
	}{
		{name: "no issuer", email: "e", appName: "a", signKey: "k"},
		{name: "no email", issuer: "i", appName: "a", signKey: "k"},
		{name: "no app", issuer: "i", email: "e", signKey: "k"},
		{name: "no key", issuer: "i", email: "e", appName: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateAPIToken(tt.issuer, tt.email, tt.appName, tt.signKey)
			assert.Error(t, err)
		})
	}
}
