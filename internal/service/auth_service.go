package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"blogCPT/internal/apperr"
	"blogCPT/internal/config"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthToken is returned by login and register.
type AuthToken struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*AuthToken, error)
	IssueToken(user *models.User) (*AuthToken, error)
	ResolveIdentity(ctx context.Context, tokenString string) (*models.Identity, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	cfg      *config.Config

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	email := strings.TrimSpace(req.Email)

	_, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, apperr.ErrDuplicateEmail
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperr.Validation("password is too long")
		}
		return nil, apperr.Internal(err, "error while hashing password")
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
	}

	// a concurrent registration that slips past the lookup is caught by the
	// unique index and reported as ErrDuplicateEmail by the repository
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate fails with ErrInvalidCredentials for both unknown emails and
// wrong passwords, and runs a bcrypt comparison in both cases.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.placeholderHash(), []byte(password))
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthToken, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return s.IssueToken(user)
}

func (s *authService) IssueToken(user *models.User) (*AuthToken, error) {
	token, _, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return nil, err
	}

	return &AuthToken{
		Token:     token,
		ExpiresIn: int64(s.cfg.TokenDuration / time.Second),
	}, nil
}

// ResolveIdentity validates the token and reloads the user it names.
func (s *authService) ResolveIdentity(ctx context.Context, tokenString string) (*models.Identity, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Unauthenticated("user for token no longer exists")
		}
		return nil, err
	}

	identity := user.Identity()
	return &identity, nil
}

func (s *authService) placeholderHash() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("placeholder-password"), s.cfg.BcryptCost)
		if err != nil {
			hash, _ = bcrypt.GenerateFromPassword([]byte("placeholder-password"), bcrypt.DefaultCost)
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
