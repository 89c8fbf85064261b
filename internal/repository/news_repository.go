package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brunosduarte/sindestiva-api/internal/domain"
)

// PostgresNewsRepository implements NewsRepository using PostgreSQL.
type PostgresNewsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNewsRepository creates a new PostgresNewsRepository.
func NewPostgresNewsRepository(pool *pgxpool.Pool) *PostgresNewsRepository {
	return &PostgresNewsRepository{pool: pool}
}

const newsColumns = `n.id, n.title, n.content, n.summary, n.image_url, n.published,
	n.publish_date, n.tags, n.author_id, u.name, n.created_at, n.updated_at`

func scanNews(row pgx.Row) (*domain.News, error) {
	var n domain.News
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Summary, &n.ImageURL, &n.Published,
		&n.PublishDate, &n.Tags, &n.AuthorID, &n.AuthorName, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan news: %w", err)
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return &n, nil
}

// Create inserts a new article with the author reference fixed to the given
// author id.
func (r *PostgresNewsRepository) Create(ctx context.Context, news *domain.News) (*domain.News, error) {
	id := news.ID
	if id == "" {
		id = uuid.New().String()
	}
	tags := news.Tags
	if tags == nil {
		tags = []string{}
	}

	var insertedID string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO news (id, title, content, summary, image_url, published, publish_date, tags, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id`,
		id, news.Title, news.Content, news.Summary, news.ImageURL,
		news.Published, news.PublishDate, tags, news.AuthorID,
	).Scan(&insertedID)
	if err != nil {
		return nil, fmt.Errorf("insert news: %w", err)
	}

	return r.FindByID(ctx, insertedID)
}

// FindByID returns the article with the given id joined with the author's
// name, or nil when absent.
func (r *PostgresNewsRepository) FindByID(ctx context.Context, id string) (*domain.News, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+newsColumns+`
		FROM news n
		JOIN users u ON u.id = n.author_id
		WHERE n.id = $1`, id)
	return scanNews(row)
}

// Update applies a partial update. The author_id column is deliberately not
// updatable: authorship is fixed at creation.
func (r *PostgresNewsRepository) Update(ctx context.Context, id string, update domain.NewsUpdate) (*domain.News, error) {
	sets := make([]string, 0, 8)
	args := make([]interface{}, 0, 8)
	argNum := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argNum))
		args = append(args, value)
		argNum++
	}

	if update.Title != nil {
		appendSet("title", *update.Title)
	}
	if update.Content != nil {
		appendSet("content", *update.Content)
	}
	if update.Summary != nil {
		appendSet("summary", *update.Summary)
	}
	if update.ImageURL != nil {
		appendSet("image_url", *update.ImageURL)
	}
	if update.Published != nil {
		appendSet("published", *update.Published)
	}
	if update.PublishDate != nil {
		appendSet("publish_date", *update.PublishDate)
	}
	if update.Tags != nil {
		appendSet("tags", update.Tags)
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE news SET %s WHERE id = $%d RETURNING id", strings.Join(sets, ", "), argNum)

	var updatedID string
	err := r.pool.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update news: %w", err)
	}

	return r.FindByID(ctx, updatedID)
}

// Delete removes the article, reporting whether it existed.
func (r *PostgresNewsRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM news WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete news: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// buildListQuery translates a NewsFilter into a WHERE clause shared by the
// page query and the count query.
func buildListQuery(filter domain.NewsFilter) (string, []interface{}) {
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)
	argNum := 1

	if filter.Published != nil {
		conditions = append(conditions, fmt.Sprintf("n.published = $%d", argNum))
		args = append(args, *filter.Published)
		argNum++
	}
	if filter.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("n.author_id = $%d", argNum))
		args = append(args, filter.AuthorID)
		argNum++
	}
	if filter.Tag != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(n.tags)", argNum))
		args = append(args, filter.Tag)
		argNum++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(n.title ILIKE $%d OR n.content ILIKE $%d OR n.summary ILIKE $%d)", argNum, argNum, argNum))
		args = append(args, "%"+filter.Search+"%")
		argNum++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List returns a page of articles matching the filter plus the total count
// of matches. sortKey must be one of the domain sort constants; anything
// else falls back to publish_date.
func (r *PostgresNewsRepository) List(ctx context.Context, filter domain.NewsFilter, page, limit int, sortKey string) ([]domain.News, int, error) {
	where, args := buildListQuery(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM news n" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count news: %w", err)
	}

	orderBy := "n.publish_date"
	if sortKey == domain.SortByCreatedAt {
		orderBy = "n.created_at"
	}

	query := fmt.Sprintf(`
		SELECT `+newsColumns+`
		FROM news n
		JOIN users u ON u.id = n.author_id
		%s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d`,
		where, orderBy, len(args)+1, len(args)+2)
	args = append(args, limit, domain.Offset(page, limit))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query news: %w", err)
	}
	defer rows.Close()

	items := make([]domain.News, 0, limit)
	for rows.Next() {
		var n domain.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Summary, &n.ImageURL, &n.Published,
			&n.PublishDate, &n.Tags, &n.AuthorID, &n.AuthorName, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan news: %w", err)
		}
		if n.Tags == nil {
			n.Tags = []string{}
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read news: %w", err)
	}

	return items, total, nil
}
