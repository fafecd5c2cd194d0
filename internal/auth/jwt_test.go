package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hobbyhub/internal/domain"
)

func TestGenerateAndParse(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*24*time.Hour)
	user := &domain.User{ID: 7, Email: "ana@example.com", Username: "ana"}

	token, err := issuer.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "ana", claims.Username)
	assert.NotEmpty(t, claims.ID, "jti should be set")

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 30*24*time.Hour, lifetime)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Generate(&domain.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := NewTokenIssuer("secret", -time.Minute).Generate(&domain.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", -time.Minute).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("secret", time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
