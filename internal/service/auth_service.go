package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brunosduarte/sindestiva-api/internal/auth"
	"github.com/brunosduarte/sindestiva-api/internal/domain"
	"github.com/brunosduarte/sindestiva-api/internal/logger"
	"github.com/brunosduarte/sindestiva-api/internal/policy"
	"github.com/brunosduarte/sindestiva-api/internal/repository"
	"github.com/brunosduarte/sindestiva-api/internal/validator"
)

// AuthService implements account management and session issuance on top of
// the user directory and the credential primitives.
type AuthService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new account and issues a session token. The role is
// always editor regardless of anything the client sent; the store's unique
// constraint resolves registration races, surfacing as ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, input validator.RegisterInput) (*domain.User, string, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         policy.RegistrationRole(),
		Active:       true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	logger.WithUserID(user.ID).Info("user registered", slog.String("role", user.Role))

	return user, token, nil
}

// Login verifies the credentials and issues a session token. A deactivated
// account fails even with a valid password and never receives a token.
func (s *AuthService) Login(ctx context.Context, input validator.LoginInput) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}

	passwordOK := user != nil && s.hasher.Verify(input.Password, user.PasswordHash)
	if err := policy.CanLogin(user, passwordOK); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}

	return user, token, nil
}

// GetProfile returns the account behind the given user id.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// UpdateProfile applies a partial profile update. The repository contract
// only exposes name and email, so passwords and roles cannot leak through
// this path.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input validator.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.Update(ctx, userID, domain.UserUpdate{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// ChangePassword re-verifies the current password before storing the new
// one. A wrong current password leaves the old credential untouched.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, input validator.ChangePasswordInput) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if user == nil {
		return domain.ErrNotFound
	}

	if !s.hasher.Verify(input.CurrentPassword, user.PasswordHash) {
		return domain.ErrWrongPassword
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	logger.WithUserID(userID).Info("password changed")
	return nil
}

// ListUsers returns a page of accounts ordered by creation descending. The
// admin gate lives in the middleware; this method only paginates.
func (s *AuthService) ListUsers(ctx context.Context, page, limit int) ([]domain.User, domain.Pagination, error) {
	page, limit = domain.NormalizePage(page, limit)

	users, total, err := s.users.List(ctx, page, limit)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list users: %w", err)
	}

	return users, domain.NewPagination(total, page, limit), nil
}
