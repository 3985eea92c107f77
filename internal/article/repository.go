// AngelaMos | 2026
// repository.go

package article

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/c-jay69/hydraseo/internal/core"
)

type Repository interface {
	Create(ctx context.Context, article *Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	GetByOwner(ctx context.Context, id, userID uuid.UUID) (*Article, error)
	Update(ctx context.Context, article *Article) error
	DeleteByOwner(ctx context.Context, id, userID uuid.UUID) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	List(ctx context.Context, params ListArticlesParams) ([]Article, int, error)
	StatusCounts(ctx context.Context, userID uuid.UUID) ([]StatusCount, error)
	Totals(ctx context.Context, userID uuid.UUID) (*Totals, error)
	RecentlyUpdated(ctx context.Context, userID uuid.UUID, limit int) ([]Article, error)
	DailyCounts(ctx context.Context, days int) ([]DailyCount, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const articleColumns = `id, user_id, title, content, meta_title,
       meta_description, keywords, status, tone, language, word_count,
       seo_score, plagiarism_score, template_id, scheduled_at,
       published_at, created_at, updated_at`

func (r *repository) Create(ctx context.Context, article *Article) error {
	query := `
		INSERT INTO articles (id, user_id, title, content, meta_title,
		                      meta_description, keywords, status, tone,
		                      language, word_count, seo_score, template_id,
		                      scheduled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, article, query,
		article.ID,
		article.UserID,
		article.Title,
		article.Content,
		article.MetaTitle,
		article.MetaDescription,
		article.Keywords,
		article.Status,
		article.Tone,
		article.Language,
		article.WordCount,
		article.SEOScore,
		article.TemplateID,
		article.ScheduledAt,
	)
	if err != nil {
		return fmt.Errorf("create article: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*Article, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM articles WHERE id = $1",
		articleColumns,
	)

	var article Article
	err := r.db.GetContext(ctx, &article, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get article: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	return &article, nil
}

func (r *repository) GetByOwner(
	ctx context.Context,
	id, userID uuid.UUID,
) (*Article, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM articles WHERE id = $1 AND user_id = $2",
		articleColumns,
	)

	var article Article
	err := r.db.GetContext(ctx, &article, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get article: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	return &article, nil
}

func (r *repository) Update(ctx context.Context, article *Article) error {
	query := `
		UPDATE articles
		SET title = $2, content = $3, meta_title = $4,
		    meta_description = $5, keywords = $6, status = $7,
		    word_count = $8, seo_score = $9, plagiarism_score = $10,
		    scheduled_at = $11, published_at = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &article.UpdatedAt, query,
		article.ID,
		article.Title,
		article.Content,
		article.MetaTitle,
		article.MetaDescription,
		article.Keywords,
		article.Status,
		article.WordCount,
		article.SEOScore,
		article.PlagiarismScore,
		article.ScheduledAt,
		article.PublishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update article: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	return nil
}

func (r *repository) DeleteByOwner(
	ctx context.Context,
	id, userID uuid.UUID,
) error {
	query := `DELETE FROM articles WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete article: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM articles WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete article: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) DeleteByUser(
	ctx context.Context,
	userID uuid.UUID,
) error {
	query := `DELETE FROM articles WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("delete user articles: %w", err)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListArticlesParams,
) ([]Article, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, "TRUE")

	if params.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, *params.UserID)
		argIdx++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR content ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM articles WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		articleColumns, whereClause, argIdx, argIdx+1)

	args = append(args, params.Limit, params.Skip)

	var articles []Article
	if err := r.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}

	return articles, total, nil
}

func (r *repository) StatusCounts(
	ctx context.Context,
	userID uuid.UUID,
) ([]StatusCount, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM articles
		WHERE user_id = $1
		GROUP BY status`

	var counts []StatusCount
	if err := r.db.SelectContext(ctx, &counts, query, userID); err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}

	return counts, nil
}

func (r *repository) Totals(
	ctx context.Context,
	userID uuid.UUID,
) (*Totals, error) {
	query := `
		SELECT COUNT(*) AS total_articles,
		       COALESCE(SUM(word_count), 0) AS total_words,
		       COALESCE(AVG(seo_score), 0) AS avg_seo_score
		FROM articles
		WHERE user_id = $1`

	var totals Totals
	if err := r.db.GetContext(ctx, &totals, query, userID); err != nil {
		return nil, fmt.Errorf("article totals: %w", err)
	}

	return &totals, nil
}

func (r *repository) RecentlyUpdated(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT $2`, articleColumns)

	var articles []Article
	if err := r.db.SelectContext(
		ctx, &articles, query, userID, limit,
	); err != nil {
		return nil, fmt.Errorf("recent articles: %w", err)
	}

	return articles, nil
}

func (r *repository) DailyCounts(
	ctx context.Context,
	days int,
) ([]DailyCount, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, COUNT(*) AS count
		FROM articles
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 day')
		GROUP BY day
		ORDER BY day`

	var counts []DailyCount
	if err := r.db.SelectContext(ctx, &counts, query, days); err != nil {
		return nil, fmt.Errorf("daily counts: %w", err)
	}

	return counts, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM articles")
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return total, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
