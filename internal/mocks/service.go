package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/brunosduarte/sindestiva-api/internal/domain"
	"github.com/brunosduarte/sindestiva-api/internal/validator"
)

// AuthService is a mock of service.AuthServiceInterface.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, input validator.RegisterInput) (*domain.User, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *AuthService) Login(ctx context.Context, input validator.LoginInput) (*domain.User, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *AuthService) UpdateProfile(ctx context.Context, userID string, input validator.UpdateProfileInput) (*domain.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *AuthService) ChangePassword(ctx context.Context, userID string, input validator.ChangePasswordInput) error {
	args := m.Called(ctx, userID, input)
	return args.Error(0)
}

func (m *AuthService) ListUsers(ctx context.Context, page, limit int) ([]domain.User, domain.Pagination, error) {
	args := m.Called(ctx, page, limit)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Get(1).(domain.Pagination), args.Error(2)
}

// NewsService is a mock of service.NewsServiceInterface.
type NewsService struct {
	mock.Mock
}

func (m *NewsService) Create(ctx context.Context, claims domain.Claims, input validator.NewsInput) (*domain.News, error) {
	args := m.Called(ctx, claims, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.News), args.Error(1)
}

func (m *NewsService) Update(ctx context.Context, claims domain.Claims, id string, input validator.NewsUpdateInput) (*domain.News, error) {
	args := m.Called(ctx, claims, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.News), args.Error(1)
}

func (m *NewsService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	args := m.Called(ctx, claims, id)
	return args.Error(0)
}

func (m *NewsService) GetPublished(ctx context.Context, id string) (*domain.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.News), args.Error(1)
}

func (m *NewsService) ListPublished(ctx context.Context, tag, search string, page, limit int) ([]domain.News, domain.Pagination, error) {
	args := m.Called(ctx, tag, search, page, limit)
	var items []domain.News
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.News)
	}
	return items, args.Get(1).(domain.Pagination), args.Error(2)
}

func (m *NewsService) ListOwn(ctx context.Context, claims domain.Claims, tag, search string, page, limit int) ([]domain.News, domain.Pagination, error) {
	args := m.Called(ctx, claims, tag, search, page, limit)
	var items []domain.News
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.News)
	}
	return items, args.Get(1).(domain.Pagination), args.Error(2)
}
