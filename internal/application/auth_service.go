package application

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/kiddocare/auth-api/internal/domain/entity"
	repo "github.com/kiddocare/auth-api/internal/domain/repository"
	"github.com/kiddocare/auth-api/pkg/helpers"
)

var (
	ErrMissingFields    = errors.New("full name, email, password and role are required")
	ErrFullNameTooShort = errors.New("full name must be at least 2 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrRoleNotAllowed   = errors.New("invalid role, only 'parent' or 'doctor' allowed for registration")
	ErrEmailTaken       = errors.New("email already in use")
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRoleMismatch       = errors.New("this account does not have the selected role")
	ErrUserNotFound       = errors.New("user not found")
)

// Service orchestrates credential verification and token issuance.
type Service struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewService(repo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Role            string
}

type LoginInput struct {
	Email    string
	Password string
	Role     string // optional; when set it must match the stored role
}

// AuthResult is returned by both registration and login.
type AuthResult struct {
	AccessToken string         `json:"accessToken"`
	User        entity.Profile `json:"user"`
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Register creates a new user and issues an access token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := normalizeEmail(in.Email)
	if fullName == "" || email == "" || in.Password == "" || strings.TrimSpace(in.Role) == "" {
		return nil, ErrMissingFields
	}
	// The minimum length applies to the trimmed name, so padding cannot
	// smuggle a one-character name past the handler's binding check.
	if utf8.RuneCountInString(fullName) < 2 {
		return nil, ErrFullNameTooShort
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	// Only parent and doctor may self-register.
	role := entity.NormalizeRole(in.Role)
	if !role.AllowedForRegistration() {
		return nil, ErrRoleNotAllowed
	}

	// Best-effort pre-check; the unique email index is the authority.
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		FullName:     fullName,
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			// Lost the race between pre-check and insert.
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID.Hex(), "role": u.Role}).Info("user registered")

	return s.issue(u)
}

// Login verifies credentials, refreshes lastLogin and issues an access token.
func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if in.Role != "" && entity.NormalizeRole(in.Role) != u.Role {
		return nil, ErrRoleMismatch
	}

	if !helpers.CompareHashAndPassword(u.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.Repo.UpdateLastLogin(ctx, u.ID.Hex(), now); err != nil {
		return nil, err
	}
	u.LastLogin = &now

	return s.issue(u)
}

// GetProfile loads a user for the authenticated-profile endpoint.
func (s *Service) GetProfile(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) issue(u *entity.User) (*AuthResult, error) {
	token, _, err := s.JWT.GenerateAccessToken(u.ID.Hex(), string(u.Role))
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("generate access token failed")
		return nil, err
	}
	return &AuthResult{AccessToken: token, User: u.Profile()}, nil
}
