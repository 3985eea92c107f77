// AngelaMos | 2026
// service.go

package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/c-jay69/hydraseo/internal/ai"
	"github.com/c-jay69/hydraseo/internal/core"
	"github.com/c-jay69/hydraseo/internal/user"
)

const defaultLanguage = "en"

type Service struct {
	repo      Repository
	users     *user.Service
	generator *ai.Generator
}

func NewService(
	repo Repository,
	users *user.Service,
	generator *ai.Generator,
) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		generator: generator,
	}
}

// Generate runs the full creation pipeline: credit gate, placeholder
// row, two model calls, SEO scoring, then a single atomic credit spend.
// A failed generation leaves the row in draft with the failure text as
// its content so the user keeps a visible trace of the attempt.
func (s *Service) Generate(
	ctx context.Context,
	userID uuid.UUID,
	req CreateArticleRequest,
) (*Article, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !u.HasCredits() {
		return nil, core.CreditsExhaustedError()
	}

	language := req.Language
	if language == "" {
		language = defaultLanguage
	}

	article := &Article{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    req.Title,
		Keywords: Keywords(req.Keywords),
		Status:   StatusGenerating,
		Tone:     ai.NormalizeTone(req.Tone),
		Language: language,
	}
	if req.TemplateID != "" {
		article.TemplateID = &req.TemplateID
	}
	if article.Keywords == nil {
		article.Keywords = Keywords{}
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}

	draft, err := s.generator.GenerateArticle(
		ctx,
		req.Title,
		req.Keywords,
		article.Tone,
		req.WordCountTarget,
		req.FunMode,
	)
	if err != nil {
		return nil, s.failGeneration(ctx, article, err)
	}

	targetKeyword := req.Title
	if len(req.Keywords) > 0 {
		targetKeyword = req.Keywords[0]
	}
	seo := s.generator.AnalyzeSEO(ctx, draft.Content, targetKeyword)

	article.Content = draft.Content
	article.MetaTitle = draft.MetaTitle
	article.MetaDescription = draft.MetaDescription
	article.WordCount = draft.WordCount
	article.SEOScore = seo.Score
	article.Status = StatusDraft

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, s.failGeneration(ctx, article, err)
	}

	consumed, err := s.users.ConsumeCredit(ctx, userID)
	if err != nil {
		slog.Error("failed to consume credit",
			"user_id", userID,
			"article_id", article.ID,
			"error", err,
		)
	} else if !consumed {
		slog.Warn("credit limit reached during concurrent generation",
			"user_id", userID,
			"article_id", article.ID,
		)
	}

	return article, nil
}

// failGeneration records the failure on the article itself and returns
// the error the handler should surface. The draft row survives with
// the failure text as content; credits are never spent on failures.
func (s *Service) failGeneration(
	ctx context.Context,
	article *Article,
	cause error,
) error {
	article.Status = StatusDraft
	article.Content = fmt.Sprintf("Generation failed: %v", cause)

	if err := s.repo.Update(ctx, article); err != nil {
		slog.Error("failed to record generation failure",
			"article_id", article.ID,
			"error", err,
		)
	}

	return core.UpstreamError(cause)
}

func (s *Service) Get(
	ctx context.Context,
	userID, articleID uuid.UUID,
) (*Article, error) {
	article, err := s.repo.GetByOwner(ctx, articleID, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("article")
		}
		return nil, err
	}
	return article, nil
}

func (s *Service) List(
	ctx context.Context,
	userID uuid.UUID,
	params ListArticlesParams,
) ([]Article, int, error) {
	params.UserID = &userID
	return s.repo.List(ctx, params)
}

func (s *Service) Update(
	ctx context.Context,
	userID, articleID uuid.UUID,
	req UpdateArticleRequest,
) (*Article, error) {
	article, err := s.Get(ctx, userID, articleID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
		article.WordCount = CountWords(*req.Content)
	}
	if req.MetaTitle != nil {
		article.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		article.MetaDescription = *req.MetaDescription
	}
	if req.Keywords != nil {
		article.Keywords = Keywords(*req.Keywords)
	}
	if req.Status != nil {
		article.Status = *req.Status
		if *req.Status == StatusPublished && article.PublishedAt == nil {
			now := time.Now().UTC()
			article.PublishedAt = &now
		}
	}
	if req.ScheduledAt != nil {
		article.ScheduledAt = req.ScheduledAt
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *Service) Delete(
	ctx context.Context,
	userID, articleID uuid.UUID,
) error {
	if err := s.repo.DeleteByOwner(ctx, articleID, userID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("article")
		}
		return err
	}
	return nil
}

func (s *Service) Export(
	ctx context.Context,
	userID, articleID uuid.UUID,
	format string,
) (*ExportResponse, error) {
	article, err := s.Get(ctx, userID, articleID)
	if err != nil {
		return nil, err
	}

	return Export(article, format)
}
