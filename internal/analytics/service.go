// AngelaMos | 2026
// service.go

package analytics

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/c-jay69/hydraseo/internal/article"
	"github.com/c-jay69/hydraseo/internal/user"
)

const recentActivityLimit = 5

type Service struct {
	articles article.Repository
	users    *user.Service
}

func NewService(articles article.Repository, users *user.Service) *Service {
	return &Service{
		articles: articles,
		users:    users,
	}
}

type Activity struct {
	Type  string    `json:"type"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

type Overview struct {
	TotalArticles     int            `json:"total_articles"`
	PublishedArticles int            `json:"published_articles"`
	DraftArticles     int            `json:"draft_articles"`
	TotalWords        int            `json:"total_words"`
	AvgSEOScore       float64        `json:"avg_seo_score"`
	CreditsUsed       int            `json:"credits_used"`
	CreditsRemaining  int            `json:"credits_remaining"`
	ArticlesByStatus  map[string]int `json:"articles_by_status"`
	RecentActivity    []Activity     `json:"recent_activity"`
}

func (s *Service) Overview(
	ctx context.Context,
	userID uuid.UUID,
) (*Overview, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals, err := s.articles.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.articles.StatusCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int, len(statusCounts))
	for _, sc := range statusCounts {
		byStatus[sc.Status] = sc.Count
	}

	recent, err := s.articles.RecentlyUpdated(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	activity := make([]Activity, 0, len(recent))
	for _, a := range recent {
		activity = append(activity, Activity{
			Type:  "article",
			Title: a.Title,
			Date:  a.UpdatedAt,
		})
	}

	return &Overview{
		TotalArticles:     totals.TotalArticles,
		PublishedArticles: byStatus[article.StatusPublished],
		DraftArticles:     byStatus[article.StatusDraft],
		TotalWords:        totals.TotalWords,
		AvgSEOScore:       math.Round(totals.AvgSEOScore*10) / 10,
		CreditsUsed:       u.CreditsUsed,
		CreditsRemaining:  u.CreditsRemaining(),
		ArticlesByStatus:  byStatus,
		RecentActivity:    activity,
	}, nil
}
