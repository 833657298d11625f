package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	Init("test-secret")

	token, err := GenerateJWT("user-1", "teacher")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "teacher", claims.Role)
}

func TestValidateJWT_Garbage(t *testing.T) {
	Init("test-secret")

	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	Init("test-secret")
	token, err := GenerateJWT("user-1", "student")
	require.NoError(t, err)

	Init("other-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestVerificationTokenRoundTrip(t *testing.T) {
	Init("test-secret")

	token, err := GenerateVerificationToken("mail@example.com")
	require.NoError(t, err)

	email, err := ValidateVerificationToken(token)
	require.NoError(t, err)
	assert.Equal(t, "mail@example.com", email)
}

func TestValidateVerificationToken_Garbage(t *testing.T) {
	Init("test-secret")

	_, err := ValidateVerificationToken("nope")
	assert.Error(t, err)
}
