// Package auth gates the administrative surface behind a single configured
// credential and expiring, server-verifiable session tokens.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/safar/storefront/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid session token")
)

const issuer = "storefront-api"

type Manager struct {
	username     string
	passwordHash string
	password     string
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewManager builds the session gate from configuration. The admin secret is
// expected as a bcrypt hash; a plain ADMIN_PASSWORD is honored as a
// development fallback and compared in constant time. When no signing secret
// is configured a random one is generated, which invalidates outstanding
// tokens on restart.
func NewManager(cfg config.AuthConfig) *Manager {
	secret := cfg.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
	}
	return &Manager{
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
		password:     cfg.AdminPassword,
		secret:       []byte(secret),
		ttl:          cfg.SessionTTL,
		now:          time.Now,
	}
}

// Login checks the credential pair and issues a signed session token.
func (m *Manager) Login(username, password string) (string, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.username)) == 1

	var passwordOK bool
	switch {
	case m.passwordHash != "":
		passwordOK = bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password)) == nil
	case m.password != "":
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) == 1
	}

	if !usernameOK || !passwordOK {
		return "", ErrInvalidCredentials
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   m.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify validates a session token and returns the authenticated principal.
func (m *Manager) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
