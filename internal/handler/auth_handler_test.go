package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brunosduarte/sindestiva-api/internal/domain"
	"github.com/brunosduarte/sindestiva-api/internal/middleware"
	"github.com/brunosduarte/sindestiva-api/internal/mocks"
	"github.com/brunosduarte/sindestiva-api/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withClaims injects claims the way the Authenticate middleware would.
func withClaims(claims domain.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, claims)
		c.Next()
	}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRegister(t *testing.T) {
	t.Run("valid registration returns 201 with user and token", func(t *testing.T) {
		authService := &mocks.AuthService{}
		h := NewAuthHandler(authService, true)

		authService.On("Register", mock.Anything, validator.RegisterInput{
			Name:     "Ana",
			Email:    "ana@x.com",
			Password: "secret1",
		}).Return(&domain.User{
			ID:    "u1",
			Name:  "Ana",
			Email: "ana@x.com",
			Role:  domain.RoleEditor,
		}, "signed-token", nil)

		router := gin.New()
		router.POST("/auth/register", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			jsonBody(t, gin.H{"name": "Ana", "email": "ana@x.com", "password": "secret1"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "signed-token", body["token"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "editor", user["role"])
		assert.NotContains(t, user, "password_hash")
	})

	t.Run("role in request body is ignored", func(t *testing.T) {
		authService := &mocks.AuthService{}
		h := NewAuthHandler(authService, true)

		// RegisterInput carries no role field, so the admin value the
		// client sent never reaches the service
		authService.On("Register", mock.Anything, validator.RegisterInput{
			Name:     "Eve",
			Email:    "eve@x.com",
			Password: "secret1",
		}).Return(&domain.User{ID: "u2", Role: domain.RoleEditor}, "tok", nil)

		router := gin.New()
		router.POST("/auth/register", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			jsonBody(t, gin.H{"name": "Eve", "email": "eve@x.com", "password": "secret1", "role": "admin"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		user := decodeBody(t, w)["user"].(map[string]interface{})
		assert.Equal(t, "editor", user["role"])
		authService.AssertExpectations(t)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		authService := &mocks.AuthService{}
		h := NewAuthHandler(authService, true)

		authService.On("Register", mock.Anything, mock.Anything).
			Return(nil, "", domain.ErrDuplicateEmail)

		router := gin.New()
		router.POST("/auth/register", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			jsonBody(t, gin.H{"name": "Ana", "email": "ana@x.com", "password": "secret1"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("validation failure returns 400 without calling the service", func(t *testing.T) {
		authService := &mocks.AuthService{}
		h := NewAuthHandler(authService, true)

		router := gin.New()
		router.POST("/auth/register", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			jsonBody(t, gin.H{"name": "Ana", "email": "not-an-email", "password": "secret1"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		authService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials return 200 with token", func(t *testing.T) {
		authService := &mocks.AuthService{}
		h := NewAuthHandler(authService, true)

		authService.On("Login", mock.Anything, validator.LoginInput{
			Email:    "ana@x.com",
			Password: "secret1",
		}).Return(&domain.User{ID: "u1", Email: "ana@x.com"}, "signed-token", nil)

		router := gin.New()
		router.POST("/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			jsonBody(t, gin.H{"email": "ana@x.com", "password": "secret1"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "signed-token", decodeBody(t, w)["token"])
	})

	t.Run("invalid credentials return 401", func(t *testing.T) {
		authService := &mocks.AuthService{}
		h := NewAuthHandler(authService, true)

		authService.On("Login", mock.Anything, mock.Anything).
			Return(nil, "", domain.ErrInvalidCredentials)

		router := gin.New()
		router.POST("/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			jsonBody(t, gin.H{"email": "ana@x.com", "password": "wrong"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deactivated user returns 401", func(t *testing.T) {
		authService := &mocks.AuthService{}
		h := NewAuthHandler(authService, true)

		authService.On("Login", mock.Anything, mock.Anything).
			Return(nil, "", domain.ErrUserDeactivated)

		router := gin.New()
		router.POST("/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			jsonBody(t, gin.H{"email": "ana@x.com", "password": "secret1"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetProfile(t *testing.T) {
	authService := &mocks.AuthService{}
	h := NewAuthHandler(authService, true)

	authService.On("GetProfile", mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Name: "Ana"}, nil)

	router := gin.New()
	router.GET("/auth/profile", withClaims(domain.Claims{UserID: "u1", Role: domain.RoleEditor}), h.GetProfile)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "Ana", user["name"])
}

func TestChangePassword(t *testing.T) {
	t.Run("wrong current password returns 400", func(t *testing.T) {
		authService := &mocks.AuthService{}
		h := NewAuthHandler(authService, true)

		authService.On("ChangePassword", mock.Anything, "u1", mock.Anything).
			Return(domain.ErrWrongPassword)

		router := gin.New()
		router.PUT("/auth/change-password", withClaims(domain.Claims{UserID: "u1"}), h.ChangePassword)

		req := httptest.NewRequest(http.MethodPut, "/auth/change-password",
			jsonBody(t, gin.H{"currentPassword": "wrong", "newPassword": "secret2"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success returns 200", func(t *testing.T) {
		authService := &mocks.AuthService{}
		h := NewAuthHandler(authService, true)

		authService.On("ChangePassword", mock.Anything, "u1", validator.ChangePasswordInput{
			CurrentPassword: "secret1",
			NewPassword:     "secret2",
		}).Return(nil)

		router := gin.New()
		router.PUT("/auth/change-password", withClaims(domain.Claims{UserID: "u1"}), h.ChangePassword)

		req := httptest.NewRequest(http.MethodPut, "/auth/change-password",
			jsonBody(t, gin.H{"currentPassword": "secret1", "newPassword": "secret2"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestListUsers(t *testing.T) {
	authService := &mocks.AuthService{}
	h := NewAuthHandler(authService, true)

	authService.On("ListUsers", mock.Anything, 2, 5).Return([]domain.User{
		{ID: "u1"}, {ID: "u2"},
	}, domain.NewPagination(12, 2, 5), nil)

	router := gin.New()
	router.GET("/auth/users", withClaims(domain.Claims{UserID: "admin", Role: domain.RoleAdmin}), h.ListUsers)

	req := httptest.NewRequest(http.MethodGet, "/auth/users?page=2&limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(12), pagination["total"])
	assert.Equal(t, float64(3), pagination["totalPages"])
}

func TestInternalErrorRedaction(t *testing.T) {
	boom := errors.New("pq: connection refused")

	t.Run("development mode exposes details", func(t *testing.T) {
		authService := &mocks.AuthService{}
		h := NewAuthHandler(authService, true)

		authService.On("GetProfile", mock.Anything, "u1").Return(nil, boom)

		router := gin.New()
		router.GET("/auth/profile", withClaims(domain.Claims{UserID: "u1"}), h.GetProfile)

		req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})

	t.Run("production mode redacts details", func(t *testing.T) {
		authService := &mocks.AuthService{}
		h := NewAuthHandler(authService, false)

		authService.On("GetProfile", mock.Anything, "u1").Return(nil, boom)

		router := gin.New()
		router.GET("/auth/profile", withClaims(domain.Claims{UserID: "u1"}), h.GetProfile)

		req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
		assert.Contains(t, w.Body.String(), "internal server error")
	})
}
