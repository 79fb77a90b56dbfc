package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "testsecret")

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenRejectsGarbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "testsecret")

	_, err := GetUserIDFromToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "testsecret")
	token, err := GenerateToken(42)
	require.NoError(t, err)

	os.Setenv("JWT_SECRET", "othersecret")
	_, err = GetUserIDFromToken(token)
	assert.Error(t, err)
}
