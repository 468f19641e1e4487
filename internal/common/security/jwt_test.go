package security

import (
	"testing"
	"time"

	"jobtrack/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWT(exp time.Duration) {
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: exp,
	}
	InitJWT()
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJWT(time.Hour)

	token, err := GenerateToken("user-123", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "admin", role)
}

func TestParseToken_Expired(t *testing.T) {
	setupJWT(-time.Hour)

	token, err := GenerateToken("user-123", "user")
	require.NoError(t, err)

	_, _, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Tampered(t *testing.T) {
	setupJWT(time.Hour)

	token, err := GenerateToken("user-123", "user")
	require.NoError(t, err)

	// Flip the last signature character
	last := token[len(token)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	_, _, err = ParseToken(tampered)
	assert.Error(t, err)
}

func TestParseToken_WrongKey(t *testing.T) {
	setupJWT(time.Hour)
	token, err := GenerateToken("user-123", "user")
	require.NoError(t, err)

	config.AppConfig.JWTKey = []byte("another-secret")
	InitJWT()

	_, _, err = ParseToken(token)
	assert.Error(t, err)
}
