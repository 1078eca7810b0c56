package service

import (
	"errors"
	"time"

	"blogCPT/internal/apperr"
	"blogCPT/internal/config"
	"blogCPT/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the validated content of an identity token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

type TokenService interface {
	Issue(identity models.Identity) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

type tokenService struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

func NewTokenService(cfg *config.Config) TokenService {
	return NewTokenServiceWithClock(cfg.JWTSecretKey, cfg.TokenDuration, time.Now)
}

// NewTokenServiceWithClock is NewTokenService with an explicit clock.
func NewTokenServiceWithClock(secret string, duration time.Duration, now func() time.Time) TokenService {
	return &tokenService{
		secret:   []byte(secret),
		duration: duration,
		now:      now,
	}
}

// Issue signs an HS256 token whose subject is the identity's email.
func (s *tokenService) Issue(identity models.Identity) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.duration).Truncate(time.Second)

	claims := jwt.RegisteredClaims{
		Subject:   identity.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperr.Internal(err, "error while signing token")
	}

	return tokenString, expiresAt, nil
}

func (s *tokenService) Validate(tokenString string) (*TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperr.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, apperr.ErrTokenInvalidSignature
		default:
			return nil, apperr.ErrTokenMalformed
		}
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, apperr.ErrTokenMalformed
	}

	return &TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
