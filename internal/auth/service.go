package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bomberosvinadelmar/portal-admin/internal/session"
)

// Service authenticates principals through the verifier port, keeps
// the session record in the session store and issues JWT tokens for
// the HTTP surface.
type Service struct {
	verifier       CredentialVerifier
	sessions       *session.Store
	tokenGenerator TokenGeneratorAPI
	logger         *slog.Logger
}

func NewService(verifier CredentialVerifier, sessions *session.Store, tokenGen TokenGeneratorAPI, logger *slog.Logger) *Service {
	return &Service{
		verifier:       verifier,
		sessions:       sessions,
		tokenGenerator: tokenGen,
		logger:         logger,
	}
}

func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

// Authenticate validates the login form, consults the verifier and on
// success persists the session and returns tokens.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return LoginResult{}, err
	}

	sess := s.verifier.Verify(dto.Email, dto.Password)
	if sess == nil {
		s.logger.Warn("authentication rejected", "identifier", dto.Email)
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return LoginResult{}, fmt.Errorf("failed to persist session: %w", err)
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(sess.ID, sess.Email, sess.Role.String())
	if err != nil {
		return LoginResult{}, err
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(sess.ID, sess.Email, sess.Role.String())
	if err != nil {
		return LoginResult{}, err
	}

	s.logger.Info("principal authenticated", "user_id", sess.ID, "role", sess.Role)

	return LoginResult{
		Tokens:  AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken},
		Session: sess,
	}, nil
}

// RefreshTokens validates a refresh token and returns a new pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return AuthTokens{}, err
	}

	newRefreshToken, err := s.tokenGenerator.GenerateRefreshToken(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// CurrentSession loads the persisted session record.
func (s *Service) CurrentSession(ctx context.Context) (*session.UserSession, error) {
	sess, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil || !sess.IsAuthenticated {
		return nil, ErrNoSession
	}
	return sess, nil
}

// Logout clears the persisted session. Idempotent.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (j *JWTTokenGenerator) GenerateAccessToken(userID, email, role string) (string, error) {
	return j.signToken(userID, email, role, j.AccessTokenSecret, j.AccessTokenTTL)
}

func (j *JWTTokenGenerator) GenerateRefreshToken(userID, email, role string) (string, error) {
	return j.signToken(userID, email, role, j.RefreshTokenSecret, j.RefreshTokenTTL)
}

func (j *JWTTokenGenerator) signToken(userID, email, role string, secret []byte, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken validates a JWT token and returns claims.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		// Long-lived tokens were signed with the refresh secret.
		if claims, ok := token.Claims.(*Claims); ok {
			if time.Until(claims.ExpiresAt.Time) > j.AccessTokenTTL {
				return j.RefreshTokenSecret, nil
			}
		}
		return j.AccessTokenSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
