// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"fmt"

	"github.com/c-jay69/hydraseo/internal/core"
	"github.com/c-jay69/hydraseo/internal/user"
)

type Service struct {
	users  *user.Service
	tokens *TokenManager
}

func NewService(users *user.Service, tokens *TokenManager) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*TokenResponse, error) {
	u, err := s.users.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}

	return s.issueFor(u)
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*TokenResponse, error) {
	u, err := s.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return s.issueFor(u)
}

// AdminLogin runs the same credential path as Login but only admits
// users carrying the admin role.
func (s *Service) AdminLogin(
	ctx context.Context,
	req LoginRequest,
) (*TokenResponse, error) {
	u, err := s.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if !u.IsAdmin() {
		return nil, core.ForbiddenError("admin access required")
	}

	return s.issueFor(u)
}

func (s *Service) issueFor(u *user.User) (*TokenResponse, error) {
	token, err := s.tokens.Issue(
		u.ID.String(),
		u.Email,
		u.Role,
		u.IsAdmin(),
	)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokens.TokenTTL().Seconds()),
		User:        user.NewProfileResponse(u),
	}, nil
}
