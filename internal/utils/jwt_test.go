package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("secret", "VIKI771012HMCRG093", "john_doe",
		[]string{"CUSTOMER", "ADMIN"}, 15)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), tok.Exp, 5*time.Second)

	claims, err := ParseAccessToken("secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "VIKI771012HMCRG093", claims.DNI)
	assert.Equal(t, "john_doe", claims.Username)
	assert.Equal(t, []string{"CUSTOMER", "ADMIN"}, claims.Roles)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	tok, err := NewAccessToken("secret", "VIKI771012HMCRG093", "john_doe", nil, 15)
	require.NoError(t, err)

	_, err = ParseAccessToken("other", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "VIKI771012HMCRG093",
		"exp": time.Now().UTC().Add(-time.Minute).Unix(),
		"iat": time.Now().UTC().Add(-2 * time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseAccessToken("secret", signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken("secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
