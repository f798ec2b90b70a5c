package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/maydeploy/event-feedback-app/internal/session"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidSession  = errors.New("invalid or expired session")
)

// tokenMaxAge is the hard cap on a session token's life. The server-side
// session slides its 30-minute expiry on activity, but the signed token
// itself is never valid past this age.
const tokenMaxAge = 12 * time.Hour

// AuthService manages the admin's authenticated session. Login verifies the
// shared password and mints a signed token carrying only a server-side
// session ID; the session store is the source of truth for liveness.
type AuthService interface {
	// Login verifies the password and returns a signed session token
	Login(ctx context.Context, password string) (string, error)
	// Authenticate validates a token and slides its session's expiry
	Authenticate(ctx context.Context, token string) error
	// Logout destroys the token's session; unparseable tokens are ignored
	Logout(ctx context.Context, token string) error
}

// authService implements AuthService
type authService struct {
	passwordHash string
	secret       []byte
	sessions     session.Store
}

// NewAuthService creates a new AuthService
func NewAuthService(passwordHash, secret string, sessions session.Store) AuthService {
	return &authService{
		passwordHash: passwordHash,
		secret:       []byte(secret),
		sessions:     sessions,
	}
}

// Login verifies the password and returns a signed session token
func (s *authService) Login(ctx context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	sessionID, err := s.sessions.Create(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(tokenMaxAge).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Authenticate validates a token and slides its session's expiry
func (s *authService) Authenticate(ctx context.Context, token string) error {
	sessionID, err := s.parseSessionID(token)
	if err != nil {
		return ErrInvalidSession
	}

	live, err := s.sessions.Touch(ctx, sessionID)
	if err != nil {
		return err
	}
	if !live {
		return ErrInvalidSession
	}
	return nil
}

// Logout destroys the token's session. An unparseable token means there is
// no session to destroy, which is a successful logout.
func (s *authService) Logout(ctx context.Context, token string) error {
	sessionID, err := s.parseSessionID(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// parseSessionID verifies the token signature and extracts the session ID
func (s *authService) parseSessionID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSession
	}
	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", ErrInvalidSession
	}
	return sessionID, nil
}
