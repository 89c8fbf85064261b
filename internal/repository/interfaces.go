package repository

import (
	"context"

	"github.com/brunosduarte/sindestiva-api/internal/domain"
)

// UserRepository defines the user directory contract. Implementations must
// surface unique-email violations as domain.ErrDuplicateEmail so no caller
// depends on a specific database's error codes.
type UserRepository interface {
	// Create inserts a new user and returns it with store-assigned fields.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns the user with the given email, or nil.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns the user with the given id, or nil.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update applies a partial profile update and returns the updated user,
	// or nil when the user does not exist.
	Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error)
	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	// List returns a page of users ordered by creation descending, plus the
	// total count.
	List(ctx context.Context, page, limit int) ([]domain.User, int, error)
}

// NewsRepository defines the article store contract.
type NewsRepository interface {
	// Create inserts a new article and returns it with store-assigned fields.
	Create(ctx context.Context, news *domain.News) (*domain.News, error)
	// FindByID returns the article with the given id, or nil.
	FindByID(ctx context.Context, id string) (*domain.News, error)
	// Update applies a partial update and returns the updated article, or nil
	// when the article does not exist. The author reference is immutable.
	Update(ctx context.Context, id string, update domain.NewsUpdate) (*domain.News, error)
	// Delete removes the article, reporting whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
	// List returns a page of articles matching the filter, sorted by sortKey
	// descending, plus the total count of matches.
	List(ctx context.Context, filter domain.NewsFilter, page, limit int, sortKey string) ([]domain.News, int, error)
}
