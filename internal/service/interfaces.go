package service

import (
	"context"

	"github.com/brunosduarte/sindestiva-api/internal/domain"
	"github.com/brunosduarte/sindestiva-api/internal/validator"
)

// AuthServiceInterface defines the account and session operations.
// Used for dependency injection and mocking in tests.
type AuthServiceInterface interface {
	// Register creates an editor account and issues a session token.
	Register(ctx context.Context, input validator.RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input validator.LoginInput) (*domain.User, string, error)
	// GetProfile returns the account behind the given user id.
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, userID string, input validator.UpdateProfileInput) (*domain.User, error)
	// ChangePassword re-verifies the current password and stores a new one.
	ChangePassword(ctx context.Context, userID string, input validator.ChangePasswordInput) error
	// ListUsers returns a page of accounts, newest first.
	ListUsers(ctx context.Context, page, limit int) ([]domain.User, domain.Pagination, error)
}

// NewsServiceInterface defines the article lifecycle operations.
// Used for dependency injection and mocking in tests.
type NewsServiceInterface interface {
	// Create stores a new article authored by the caller.
	Create(ctx context.Context, claims domain.Claims, input validator.NewsInput) (*domain.News, error)
	// Update mutates an article subject to the ownership policy.
	Update(ctx context.Context, claims domain.Claims, id string, input validator.NewsUpdateInput) (*domain.News, error)
	// Delete removes an article subject to the ownership policy.
	Delete(ctx context.Context, claims domain.Claims, id string) error
	// GetPublished returns a published article; unpublished or absent
	// articles yield domain.ErrNotFound.
	GetPublished(ctx context.Context, id string) (*domain.News, error)
	// ListPublished returns a page of published articles, newest publish
	// date first.
	ListPublished(ctx context.Context, tag, search string, page, limit int) ([]domain.News, domain.Pagination, error)
	// ListOwn returns a page of the caller's own articles in any publish
	// state, newest first.
	ListOwn(ctx context.Context, claims domain.Claims, tag, search string, page, limit int) ([]domain.News, domain.Pagination, error)
}
