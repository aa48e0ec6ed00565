package service

import (
	"context"
	"errors"
	"strings"

	"github.com/pjavier1988/todo-api/internal/domain"
	"github.com/pjavier1988/todo-api/internal/repo"
	"github.com/pjavier1988/todo-api/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailRequired = errors.New("email address is required")
	ErrEmailTaken    = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot probe which addresses are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// TokenStore resolves an opaque bearer token to a user ID.
type TokenStore interface {
	GetUserID(ctx context.Context, token string) (int64, bool)
}

// UserService handles user accounts and credential verification.
type UserService struct {
	repo   repo.UserRepo
	tokens TokenStore
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo, tokens TokenStore) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Create creates a user account. Email is required and normalized; the
// password is bcrypt-hashed before storage. When password is empty the
// account is created without a usable password and cannot log in.
func (s *UserService) Create(ctx context.Context, email, password, name, lastName string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, ErrEmailRequired
	}
	var hash string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}
		hash = string(h)
	}
	u, err := s.repo.Create(ctx, domain.User{
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		LastName:     strings.TrimSpace(lastName),
		IsActive:     true,
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}
	return u, nil
}

// CreateSuperuser creates a user and marks it as staff and superuser.
func (s *UserService) CreateSuperuser(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.Create(ctx, email, password, "", "")
	if err != nil {
		return domain.User{}, err
	}
	return s.repo.SetSuperuser(ctx, u.ID)
}

// VerifyCredentials checks email and password; returns the user if valid.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if !u.IsActive || u.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// AuthenticateByToken resolves a previously issued bearer token to its user.
func (s *UserService) AuthenticateByToken(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, ErrInvalidToken
	}
	userID, ok := s.tokens.GetUserID(ctx, token)
	if !ok {
		return domain.User{}, ErrInvalidToken
	}
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}
	if !u.IsActive {
		return domain.User{}, ErrInvalidToken
	}
	return u, nil
}

// normalizeEmail lower-cases only the domain segment after the last "@",
// leaving the local part as submitted. This mirrors the long-standing
// behavior of the account system this service replaces.
func normalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
