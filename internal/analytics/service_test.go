// AngelaMos | 2026
// service_test.go

package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-jay69/hydraseo/internal/article"
	"github.com/c-jay69/hydraseo/internal/core"
	"github.com/c-jay69/hydraseo/internal/user"
)

type fakeArticleRepo struct {
	totals *article.Totals
	counts []article.StatusCount
	recent []article.Article
}

func (f *fakeArticleRepo) Create(_ context.Context, _ *article.Article) error {
	return nil
}

func (f *fakeArticleRepo) GetByID(
	_ context.Context, _ uuid.UUID,
) (*article.Article, error) {
	return nil, fmt.Errorf("get article: %w", core.ErrNotFound)
}

func (f *fakeArticleRepo) GetByOwner(
	_ context.Context, _, _ uuid.UUID,
) (*article.Article, error) {
	return nil, fmt.Errorf("get article: %w", core.ErrNotFound)
}

func (f *fakeArticleRepo) Update(_ context.Context, _ *article.Article) error {
	return nil
}

func (f *fakeArticleRepo) DeleteByOwner(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

func (f *fakeArticleRepo) DeleteByID(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeArticleRepo) DeleteByUser(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeArticleRepo) List(
	_ context.Context, _ article.ListArticlesParams,
) ([]article.Article, int, error) {
	return nil, 0, nil
}

func (f *fakeArticleRepo) StatusCounts(
	_ context.Context, _ uuid.UUID,
) ([]article.StatusCount, error) {
	return f.counts, nil
}

func (f *fakeArticleRepo) Totals(
	_ context.Context, _ uuid.UUID,
) (*article.Totals, error) {
	return f.totals, nil
}

func (f *fakeArticleRepo) RecentlyUpdated(
	_ context.Context, _ uuid.UUID, limit int,
) ([]article.Article, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeArticleRepo) DailyCounts(
	_ context.Context, _ int,
) ([]article.DailyCount, error) {
	return nil, nil
}

func (f *fakeArticleRepo) Count(_ context.Context) (int, error) {
	return 0, nil
}

type fakeUserRepo struct {
	user *user.User
}

func (f *fakeUserRepo) Create(_ context.Context, _ *user.User) error {
	return nil
}

func (f *fakeUserRepo) GetByID(
	_ context.Context, id uuid.UUID,
) (*user.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	u := *f.user
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(
	_ context.Context, _ string,
) (*user.User, error) {
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, _ *user.User) error {
	return nil
}

func (f *fakeUserRepo) UpdatePlan(
	_ context.Context, _ uuid.UUID, _ string, _ int,
) error {
	return nil
}

func (f *fakeUserRepo) ConsumeCredit(
	_ context.Context, _ uuid.UUID,
) (bool, error) {
	return true, nil
}

func (f *fakeUserRepo) ResetCredits(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeUserRepo) List(
	_ context.Context, _ user.ListUsersParams,
) ([]user.User, int, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int, error) {
	return 0, nil
}

func TestOverview(t *testing.T) {
	u := &user.User{
		ID:           uuid.New(),
		CreditsUsed:  3,
		CreditsLimit: 5,
	}

	now := time.Now().UTC()
	repo := &fakeArticleRepo{
		totals: &article.Totals{
			TotalArticles: 7,
			TotalWords:    10500,
			AvgSEOScore:   76.24,
		},
		counts: []article.StatusCount{
			{Status: article.StatusDraft, Count: 4},
			{Status: article.StatusPublished, Count: 2},
			{Status: article.StatusScheduled, Count: 1},
		},
		recent: []article.Article{
			{Title: "Newest", UpdatedAt: now},
			{Title: "Older", UpdatedAt: now.Add(-time.Hour)},
		},
	}

	svc := NewService(repo, user.NewService(&fakeUserRepo{user: u}))

	overview, err := svc.Overview(context.Background(), u.ID)
	require.NoError(t, err)

	assert.Equal(t, 7, overview.TotalArticles)
	assert.Equal(t, 2, overview.PublishedArticles)
	assert.Equal(t, 4, overview.DraftArticles)
	assert.Equal(t, 10500, overview.TotalWords)
	assert.InDelta(t, 76.2, overview.AvgSEOScore, 1e-9)
	assert.Equal(t, 3, overview.CreditsUsed)
	assert.Equal(t, 2, overview.CreditsRemaining)
	assert.Equal(t, map[string]int{
		"draft":     4,
		"published": 2,
		"scheduled": 1,
	}, overview.ArticlesByStatus)

	require.Len(t, overview.RecentActivity, 2)
	assert.Equal(t, "article", overview.RecentActivity[0].Type)
	assert.Equal(t, "Newest", overview.RecentActivity[0].Title)
	assert.Equal(t, now, overview.RecentActivity[0].Date)
}

func TestOverviewUnknownUser(t *testing.T) {
	svc := NewService(
		&fakeArticleRepo{totals: &article.Totals{}},
		user.NewService(&fakeUserRepo{}),
	)

	_, err := svc.Overview(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}
