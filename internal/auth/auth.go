package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bomberosvinadelmar/portal-admin/internal/session"
)

type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO) (LoginResult, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	CurrentSession(ctx context.Context) (*session.UserSession, error)
	Logout(ctx context.Context) error
}

// CredentialVerifier is the single seam where real credential
// handling plugs in: given an identifier and secret it returns the
// matching principal as a ready session record, or nil. It never
// returns an error for a plain mismatch.
type CredentialVerifier interface {
	Verify(identifier, secret string) *session.UserSession
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(userID, email, role string) (string, error)
	GenerateRefreshToken(userID, email, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResult carries the issued tokens plus the persisted session.
type LoginResult struct {
	Tokens  AuthTokens           `json:"tokens"`
	Session *session.UserSession `json:"session"`
}

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrNoSession          = errors.New("no active session")
)

type ctxKey string

// ContextSessionKey carries the authenticated session through request
// contexts.
const ContextSessionKey ctxKey = "portalSession"

func ContextWithSession(ctx context.Context, sess *session.UserSession) context.Context {
	return context.WithValue(ctx, ContextSessionKey, sess)
}

func SessionFromContext(ctx context.Context) (*session.UserSession, bool) {
	sess, ok := ctx.Value(ContextSessionKey).(*session.UserSession)
	return sess, ok && sess != nil
}
