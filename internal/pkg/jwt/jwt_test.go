package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := New("test_secret_key_32_characters_min", time.Hour)

	token, err := svc.GenerateToken(42, "therapist")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "therapist", claims.Role)
	assert.Equal(t, "theracare", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := New("secret-one-secret-one-secret-one", time.Hour).GenerateToken(1, "patient")
	require.NoError(t, err)

	_, err = New("secret-two-secret-two-secret-two", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := New("test_secret_key_32_characters_min", -time.Minute)

	token, err := svc.GenerateToken(1, "patient")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := New("test_secret_key_32_characters_min", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
