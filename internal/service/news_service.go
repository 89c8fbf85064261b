package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brunosduarte/sindestiva-api/internal/domain"
	"github.com/brunosduarte/sindestiva-api/internal/logger"
	"github.com/brunosduarte/sindestiva-api/internal/policy"
	"github.com/brunosduarte/sindestiva-api/internal/repository"
	"github.com/brunosduarte/sindestiva-api/internal/validator"
)

// NewsService implements the article lifecycle on top of the article store
// and the authorization policy.
type NewsService struct {
	news repository.NewsRepository
}

// NewNewsService creates a new NewsService.
func NewNewsService(news repository.NewsRepository) *NewsService {
	return &NewsService{news: news}
}

// Create stores a new article. The author is forced to the authenticated
// caller, published defaults to true and the publish date to now.
func (s *NewsService) Create(ctx context.Context, claims domain.Claims, input validator.NewsInput) (*domain.News, error) {
	published := true
	if input.Published != nil {
		published = *input.Published
	}
	publishDate := time.Now()
	if input.PublishDate != nil {
		publishDate = *input.PublishDate
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	news, err := s.news.Create(ctx, &domain.News{
		Title:       input.Title,
		Content:     input.Content,
		Summary:     input.Summary,
		ImageURL:    input.ImageURL,
		Published:   published,
		PublishDate: publishDate,
		Tags:        tags,
		AuthorID:    claims.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}

	logger.WithUserID(claims.UserID).Info("news created", slog.String("news_id", news.ID))

	return news, nil
}

// Update mutates an article after checking the ownership policy: only the
// author or an admin may proceed, and the article must exist.
func (s *NewsService) Update(ctx context.Context, claims domain.Claims, id string, input validator.NewsUpdateInput) (*domain.News, error) {
	existing, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.CanMutateNews(claims, existing.AuthorID); err != nil {
		return nil, err
	}

	updated, err := s.news.Update(ctx, id, domain.NewsUpdate{
		Title:       input.Title,
		Content:     input.Content,
		Summary:     input.Summary,
		ImageURL:    input.ImageURL,
		Published:   input.Published,
		PublishDate: input.PublishDate,
		Tags:        input.Tags,
	})
	if err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return updated, nil
}

// Delete removes an article after checking the ownership policy.
func (s *NewsService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	existing, err := s.news.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := policy.CanMutateNews(claims, existing.AuthorID); err != nil {
		return err
	}

	deleted, err := s.news.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}

	logger.WithUserID(claims.UserID).Info("news deleted", slog.String("news_id", id))

	return nil
}

// GetPublished returns an article on the public read path. Unpublished
// articles are indistinguishable from absent ones.
func (s *NewsService) GetPublished(ctx context.Context, id string) (*domain.News, error) {
	news, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if err := policy.VisibleToPublic(news); err != nil {
		return nil, err
	}
	return news, nil
}

// ListPublished returns a page of published articles ordered by publish
// date descending, optionally narrowed by tag and free-text search.
func (s *NewsService) ListPublished(ctx context.Context, tag, search string, page, limit int) ([]domain.News, domain.Pagination, error) {
	page, limit = domain.NormalizePage(page, limit)
	filter := policy.PublicListFilter(tag, search)

	items, total, err := s.news.List(ctx, filter, page, limit, domain.SortByPublishDate)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list news: %w", err)
	}

	return items, domain.NewPagination(total, page, limit), nil
}

// ListOwn returns a page of the caller's own articles, drafts included,
// ordered by creation descending.
func (s *NewsService) ListOwn(ctx context.Context, claims domain.Claims, tag, search string, page, limit int) ([]domain.News, domain.Pagination, error) {
	page, limit = domain.NormalizePage(page, limit)
	filter := policy.OwnListFilter(claims, tag, search)

	items, total, err := s.news.List(ctx, filter, page, limit, domain.SortByCreatedAt)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list own news: %w", err)
	}

	return items, domain.NewPagination(total, page, limit), nil
}
