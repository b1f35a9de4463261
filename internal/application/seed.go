package application

import (
	"context"
	"errors"

	"github.com/kiddocare/auth-api/internal/domain/entity"
	repo "github.com/kiddocare/auth-api/internal/domain/repository"
	"github.com/kiddocare/auth-api/pkg/helpers"
)

const adminFullName = "Super Admin"

// EnsureAdmin idempotently creates the bootstrap admin account. It runs once
// at startup, before the server accepts traffic. Missing credentials disable
// seeding without failing startup.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		s.Logger.Info("admin credentials not configured, skipping seed")
		return nil
	}
	email = normalizeEmail(email)

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		s.Logger.Info("admin account already exists")
		return nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}

	u := &entity.User{
		FullName:     adminFullName,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			// Another instance won the race; the account exists.
			return nil
		}
		return err
	}
	s.Logger.WithField("email", email).Info("admin account created")
	return nil
}
