// AngelaMos | 2026
// service.go

package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/c-jay69/hydraseo/internal/article"
	"github.com/c-jay69/hydraseo/internal/calendar"
	"github.com/c-jay69/hydraseo/internal/core"
	"github.com/c-jay69/hydraseo/internal/user"
)

const defaultDailyStatsDays = 30

type Service struct {
	users    *user.Service
	articles article.Repository
	events   *calendar.Service
}

func NewService(
	users *user.Service,
	articles article.Repository,
	events *calendar.Service,
) *Service {
	return &Service{
		users:    users,
		articles: articles,
		events:   events,
	}
}

type DashboardStats struct {
	TotalUsers    int `json:"total_users"`
	TotalArticles int `json:"total_articles"`
	ArticlesToday int `json:"articles_today"`
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalArticles, err := s.articles.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	daily, err := s.articles.DailyCounts(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("daily article counts: %w", err)
	}

	today := 0
	for _, d := range daily {
		today += d.Count
	}

	return &DashboardStats{
		TotalUsers:    totalUsers,
		TotalArticles: totalArticles,
		ArticlesToday: today,
	}, nil
}

func (s *Service) ListUsers(
	ctx context.Context,
	params user.ListUsersParams,
) ([]user.User, int, error) {
	return s.users.List(ctx, params)
}

func (s *Service) GetUser(
	ctx context.Context,
	id uuid.UUID,
) (*user.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) ChangeUserRole(
	ctx context.Context,
	id uuid.UUID,
	role string,
) (*user.User, error) {
	return s.users.ChangeRole(ctx, id, role)
}

func (s *Service) ResetUserCredits(ctx context.Context, id uuid.UUID) error {
	return s.users.ResetCredits(ctx, id)
}

// DeleteUser removes the account and everything it owns. Content goes
// first so a partial failure never leaves orphaned rows behind a
// missing user.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.articles.DeleteByUser(ctx, id); err != nil {
		return fmt.Errorf("delete user articles: %w", err)
	}

	if err := s.events.DeleteByUser(ctx, id); err != nil {
		return fmt.Errorf("delete user calendar events: %w", err)
	}

	return s.users.Delete(ctx, id)
}

func (s *Service) ListArticles(
	ctx context.Context,
	params article.ListArticlesParams,
) ([]article.Article, int, error) {
	params.Normalize()
	return s.articles.List(ctx, params)
}

func (s *Service) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	err := s.articles.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("article")
		}
		return err
	}
	return nil
}

func (s *Service) DailyStats(
	ctx context.Context,
	days int,
) ([]article.DailyCount, error) {
	if days < 1 {
		days = defaultDailyStatsDays
	}
	return s.articles.DailyCounts(ctx, days)
}
