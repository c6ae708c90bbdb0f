package auth

import (
	"testing"
	"time"

	"github.com/safar/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return config.AuthConfig{
		AdminUsername:     "admin@puff.com",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-signing-secret",
		SessionTTL:        time.Hour,
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	m := NewManager(testConfig(t))

	token, err := m.Login("admin@puff.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@puff.com", principal)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	m := NewManager(testConfig(t))

	_, err := m.Login("admin@puff.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = m.Login("someone@else.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = m.Login("", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPlainPasswordFallback(t *testing.T) {
	m := NewManager(config.AuthConfig{
		AdminUsername: "admin@puff.com",
		AdminPassword: "dev-only",
		JWTSecret:     "test-signing-secret",
		SessionTTL:    time.Hour,
	})

	_, err := m.Login("admin@puff.com", "dev-only")
	assert.NoError(t, err)

	_, err = m.Login("admin@puff.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsWhenNoSecretConfigured(t *testing.T) {
	m := NewManager(config.AuthConfig{
		AdminUsername: "admin@puff.com",
		SessionTTL:    time.Hour,
	})

	_, err := m.Login("admin@puff.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager(testConfig(t))

	issued := time.Now()
	m.now = func() time.Time { return issued }
	token, err := m.Login("admin@puff.com", "s3cret")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbageAndForeignTokens(t *testing.T) {
	m := NewManager(testConfig(t))

	_, err := m.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewManager(config.AuthConfig{
		AdminUsername: "admin@puff.com",
		AdminPassword: "dev-only",
		JWTSecret:     "a-different-secret",
		SessionTTL:    time.Hour,
	})
	foreign, err := other.Login("admin@puff.com", "dev-only")
	require.NoError(t, err)

	_, err = m.Verify(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
