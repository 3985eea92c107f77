// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/c-jay69/hydraseo/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(
	ctx context.Context,
	email, password, name string,
) (*User, error) {
	hash, err := core.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Name:         name,
		Role:         RoleFree,
		CreditsUsed:  0,
		CreditsLimit: CreditsLimitForRole(RoleFree),
		Theme:        "dark",
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("email")
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) Authenticate(
	ctx context.Context,
	email, password string,
) (*User, error) {
	user, err := s.repo.GetByEmail(
		ctx,
		strings.ToLower(strings.TrimSpace(email)),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			// Burn a hash comparison so missing accounts take as long
			// as wrong passwords.
			//nolint:errcheck // result is discarded on purpose
			core.VerifyPasswordTimingSafe(password, nil)
			return nil, core.UnauthorizedError("invalid email or password")
		}
		return nil, err
	}

	valid, _, err := core.VerifyPasswordTimingSafe(password, &user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return nil, core.UnauthorizedError("invalid email or password")
	}

	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("user")
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	req UpdateProfileRequest,
) (*User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Theme != nil {
		user.Theme = *req.Theme
	}
	if req.BrandVoice != nil {
		user.BrandVoice = *req.BrandVoice
	}
	if req.WebsiteURL != nil {
		user.WebsiteURL = *req.WebsiteURL
	}
	if req.OnboardingCompleted != nil {
		user.OnboardingCompleted = *req.OnboardingCompleted
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	return s.repo.List(ctx, params)
}

// ChangeRole moves a user to a different plan and recalibrates their
// credit limit from the plan table. Usage is left untouched.
func (s *Service) ChangeRole(
	ctx context.Context,
	id uuid.UUID,
	role string,
) (*User, error) {
	if !ValidRole(role) {
		return nil, core.ValidationError("invalid role: " + role)
	}

	if err := s.repo.UpdatePlan(
		ctx, id, role, CreditsLimitForRole(role),
	); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("user")
		}
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *Service) ResetCredits(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.ResetCredits(ctx, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("user")
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("user")
		}
		return err
	}
	return nil
}

func (s *Service) ConsumeCredit(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {
	return s.repo.ConsumeCredit(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
