// AngelaMos | 2026
// service_test.go

package article

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-jay69/hydraseo/internal/ai"
	"github.com/c-jay69/hydraseo/internal/core"
	"github.com/c-jay69/hydraseo/internal/user"
)

type fakeUserRepo struct {
	user     *user.User
	consumed int
}

func (f *fakeUserRepo) Create(_ context.Context, _ *user.User) error {
	return nil
}

func (f *fakeUserRepo) GetByID(
	_ context.Context,
	id uuid.UUID,
) (*user.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	u := *f.user
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(
	_ context.Context,
	_ string,
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
	_ context.Context,
	_ uuid.UUID,
) (bool, error) {
	if !f.user.HasCredits() {
		return false, nil
	}
	f.user.CreditsUsed++
	f.consumed++
	return true, nil
}

func (f *fakeUserRepo) ResetCredits(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeUserRepo) List(
	_ context.Context,
	_ user.ListUsersParams,
) ([]user.User, int, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int, error) {
	return 0, nil
}

type fakeArticleRepo struct {
	articles   map[uuid.UUID]*Article
	creates    int
	lastParams ListArticlesParams
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[uuid.UUID]*Article)}
}

func (f *fakeArticleRepo) Create(_ context.Context, a *Article) error {
	f.creates++
	stored := *a
	f.articles[a.ID] = &stored
	return nil
}

func (f *fakeArticleRepo) GetByID(
	_ context.Context,
	id uuid.UUID,
) (*Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, fmt.Errorf("get article: %w", core.ErrNotFound)
	}
	result := *a
	return &result, nil
}

func (f *fakeArticleRepo) GetByOwner(
	_ context.Context,
	id, userID uuid.UUID,
) (*Article, error) {
	a, ok := f.articles[id]
	if !ok || a.UserID != userID {
		return nil, fmt.Errorf("get article: %w", core.ErrNotFound)
	}
	result := *a
	return &result, nil
}

func (f *fakeArticleRepo) Update(_ context.Context, a *Article) error {
	if _, ok := f.articles[a.ID]; !ok {
		return fmt.Errorf("update article: %w", core.ErrNotFound)
	}
	stored := *a
	f.articles[a.ID] = &stored
	return nil
}

func (f *fakeArticleRepo) DeleteByOwner(
	_ context.Context,
	id, userID uuid.UUID,
) error {
	a, ok := f.articles[id]
	if !ok || a.UserID != userID {
		return fmt.Errorf("delete article: %w", core.ErrNotFound)
	}
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	if _, ok := f.articles[id]; !ok {
		return fmt.Errorf("delete article: %w", core.ErrNotFound)
	}
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleRepo) DeleteByUser(
	_ context.Context,
	userID uuid.UUID,
) error {
	for id, a := range f.articles {
		if a.UserID == userID {
			delete(f.articles, id)
		}
	}
	return nil
}

func (f *fakeArticleRepo) List(
	_ context.Context,
	params ListArticlesParams,
) ([]Article, int, error) {
	f.lastParams = params
	var result []Article
	for _, a := range f.articles {
		if params.UserID != nil && a.UserID != *params.UserID {
			continue
		}
		result = append(result, *a)
	}
	return result, len(result), nil
}

func (f *fakeArticleRepo) StatusCounts(
	_ context.Context,
	_ uuid.UUID,
) ([]StatusCount, error) {
	return nil, nil
}

func (f *fakeArticleRepo) Totals(
	_ context.Context,
	_ uuid.UUID,
) (*Totals, error) {
	return &Totals{}, nil
}

func (f *fakeArticleRepo) RecentlyUpdated(
	_ context.Context,
	_ uuid.UUID,
	_ int,
) ([]Article, error) {
	return nil, nil
}

func (f *fakeArticleRepo) DailyCounts(
	_ context.Context,
	_ int,
) ([]DailyCount, error) {
	return nil, nil
}

func (f *fakeArticleRepo) Count(_ context.Context) (int, error) {
	return len(f.articles), nil
}

// fakeModel replays scripted replies in call order.
type fakeModel struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeModel) GenerateContent(
	_ context.Context,
	_ string,
) (string, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("unexpected model call")
}

func newTestService(
	u *user.User,
	model *fakeModel,
) (*Service, *fakeArticleRepo, *fakeUserRepo) {
	userRepo := &fakeUserRepo{user: u}
	articleRepo := newFakeArticleRepo()
	svc := NewService(
		articleRepo,
		user.NewService(userRepo),
		ai.NewGenerator(model),
	)
	return svc, articleRepo, userRepo
}

func freeUser() *user.User {
	return &user.User{
		ID:           uuid.New(),
		Email:        "writer@example.com",
		Role:         user.RoleFree,
		CreditsUsed:  0,
		CreditsLimit: 5,
	}
}

func TestGenerateSuccess(t *testing.T) {
	u := freeUser()
	degraded := errors.New("secondary call failed")
	model := &fakeModel{
		responses: []string{"alpha beta gamma"},
		errs:      []error{nil, degraded, degraded},
	}
	svc, repo, userRepo := newTestService(u, model)

	a, err := svc.Generate(context.Background(), u.ID, CreateArticleRequest{
		Title:    "Test Article",
		Keywords: []string{"alpha"},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusDraft, a.Status)
	assert.Equal(t, "alpha beta gamma", a.Content)
	assert.Equal(t, 3, a.WordCount)
	assert.Equal(t, 70, a.SEOScore)
	assert.Equal(t, ai.ToneProfessional, a.Tone)
	assert.Equal(t, "en", a.Language)
	assert.NotNil(t, a.Keywords)

	stored, ok := repo.articles[a.ID]
	require.True(t, ok)
	assert.Equal(t, StatusDraft, stored.Status)
	assert.Equal(t, 1, userRepo.consumed)
}

func TestGenerateCreditGate(t *testing.T) {
	u := freeUser()
	u.CreditsUsed = 5

	svc, repo, userRepo := newTestService(u, &fakeModel{})

	_, err := svc.Generate(context.Background(), u.ID, CreateArticleRequest{
		Title: "Over Budget",
	})
	require.Error(t, err)

	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)
	assert.Equal(t, "CREDITS_EXHAUSTED", appErr.Code)

	// Gate fires before any row is written or credit spent.
	assert.Zero(t, repo.creates)
	assert.Zero(t, userRepo.consumed)
}

func TestGenerateUnlimitedPlanBypassesGate(t *testing.T) {
	u := freeUser()
	u.Role = user.RoleUnlimited
	u.CreditsUsed = 9999
	u.CreditsLimit = user.UnlimitedCredits

	fail := errors.New("degraded")
	model := &fakeModel{
		responses: []string{"content"},
		errs:      []error{nil, fail, fail},
	}
	svc, _, _ := newTestService(u, model)

	_, err := svc.Generate(context.Background(), u.ID, CreateArticleRequest{
		Title: "Still Generating",
	})
	assert.NoError(t, err)
}

func TestGenerateModelFailureKeepsDraftAndCredits(t *testing.T) {
	u := freeUser()
	model := &fakeModel{errs: []error{errors.New("model exploded")}}
	svc, repo, userRepo := newTestService(u, model)

	_, err := svc.Generate(context.Background(), u.ID, CreateArticleRequest{
		Title: "Doomed Article",
	})
	require.Error(t, err)

	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
	assert.Equal(t, "UPSTREAM_FAILURE", appErr.Code)

	// The placeholder row survives as a draft carrying the failure.
	require.Len(t, repo.articles, 1)
	for _, stored := range repo.articles {
		assert.Equal(t, StatusDraft, stored.Status)
		assert.Contains(t, stored.Content, "Generation failed:")
	}
	assert.Zero(t, userRepo.consumed)
}

func TestUpdateRecomputesWordCount(t *testing.T) {
	u := freeUser()
	svc, repo, _ := newTestService(u, &fakeModel{})

	a := &Article{ID: uuid.New(), UserID: u.ID, Status: StatusDraft}
	require.NoError(t, repo.Create(context.Background(), a))

	content := "one two three four"
	updated, err := svc.Update(
		context.Background(), u.ID, a.ID,
		UpdateArticleRequest{Content: &content},
	)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.WordCount)

	empty := ""
	updated, err = svc.Update(
		context.Background(), u.ID, a.ID,
		UpdateArticleRequest{Content: &empty},
	)
	require.NoError(t, err)
	assert.Zero(t, updated.WordCount)
}

func TestUpdatePublishSetsPublishedAtOnce(t *testing.T) {
	u := freeUser()
	svc, repo, _ := newTestService(u, &fakeModel{})

	a := &Article{ID: uuid.New(), UserID: u.ID, Status: StatusDraft}
	require.NoError(t, repo.Create(context.Background(), a))

	published := StatusPublished
	first, err := svc.Update(
		context.Background(), u.ID, a.ID,
		UpdateArticleRequest{Status: &published},
	)
	require.NoError(t, err)
	require.NotNil(t, first.PublishedAt)

	second, err := svc.Update(
		context.Background(), u.ID, a.ID,
		UpdateArticleRequest{Status: &published},
	)
	require.NoError(t, err)
	require.NotNil(t, second.PublishedAt)
	assert.Equal(t, *first.PublishedAt, *second.PublishedAt)
}

func TestGetNotFound(t *testing.T) {
	u := freeUser()
	svc, _, _ := newTestService(u, &fakeModel{})

	_, err := svc.Get(context.Background(), u.ID, uuid.New())
	require.Error(t, err)

	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestGetOtherUsersArticleNotFound(t *testing.T) {
	u := freeUser()
	svc, repo, _ := newTestService(u, &fakeModel{})

	other := &Article{ID: uuid.New(), UserID: uuid.New()}
	require.NoError(t, repo.Create(context.Background(), other))

	_, err := svc.Get(context.Background(), u.ID, other.ID)
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestListForcesOwnerScope(t *testing.T) {
	u := freeUser()
	svc, repo, _ := newTestService(u, &fakeModel{})

	_, _, err := svc.List(context.Background(), u.ID, ListArticlesParams{})
	require.NoError(t, err)
	require.NotNil(t, repo.lastParams.UserID)
	assert.Equal(t, u.ID, *repo.lastParams.UserID)
}
