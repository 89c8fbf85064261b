package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brunosduarte/sindestiva-api/internal/domain"
	"github.com/brunosduarte/sindestiva-api/internal/metrics"
	"github.com/brunosduarte/sindestiva-api/internal/middleware"
	"github.com/brunosduarte/sindestiva-api/internal/service"
	"github.com/brunosduarte/sindestiva-api/internal/validator"
)

// AuthHandler handles account and session HTTP requests.
type AuthHandler struct {
	authService service.AuthServiceInterface
	dev         bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthServiceInterface, dev bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		dev:         dev,
	}
}

// UserResponse represents a user in API responses. The password hash never
// appears here.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// toUserResponse converts a domain.User to a UserResponse.
func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Active:    user.Active,
		CreatedAt: user.CreatedAt.Format(TimeFormat),
		UpdatedAt: user.UpdatedAt.Format(TimeFormat),
	}
}

// Register handles POST /auth/register
//
//	@Summary	Register a new account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		input	body	validator.RegisterInput	true	"registration payload"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	map[string]string
//	@Failure	409		{object}	map[string]string
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input validator.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		metrics.ObserveAuthAttempt("register", "failure")
		respondError(c, err, h.dev)
		return
	}

	metrics.ObserveAuthAttempt("register", "success")
	c.JSON(http.StatusCreated, gin.H{
		"user":  toUserResponse(user),
		"token": token,
	})
}

// Login handles POST /auth/login
//
//	@Summary	Log in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		input	body	validator.LoginInput	true	"credentials"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	401		{object}	map[string]string
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input validator.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		metrics.ObserveAuthAttempt("login", "failure")
		respondError(c, err, h.dev)
		return
	}

	metrics.ObserveAuthAttempt("login", "success")
	c.JSON(http.StatusOK, gin.H{
		"user":  toUserResponse(user),
		"token": token,
	})
}

// GetProfile handles GET /auth/profile
//
//	@Summary	Get the authenticated user's profile
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	UserResponse
//	@Failure	401	{object}	map[string]string
//	@Router		/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err, h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

// UpdateProfile handles PUT /auth/profile
//
//	@Summary	Update the authenticated user's profile
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		input	body	validator.UpdateProfileInput	true	"profile fields"
//	@Success	200		{object}	UserResponse
//	@Failure	409		{object}	map[string]string
//	@Router		/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var input validator.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), claims.UserID, input)
	if err != nil {
		respondError(c, err, h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

// ChangePassword handles PUT /auth/change-password
//
//	@Summary	Change the authenticated user's password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		input	body	validator.ChangePasswordInput	true	"current and new password"
//	@Success	200		{object}	map[string]string
//	@Failure	400		{object}	map[string]string
//	@Router		/auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var input validator.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), claims.UserID, input); err != nil {
		respondError(c, err, h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// ListUsers handles GET /auth/users (admin only; gate is in the middleware)
//
//	@Summary	List user accounts
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query	int	false	"page number"
//	@Param		limit	query	int	false	"page size"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	403		{object}	map[string]string
//	@Router		/auth/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, pagination, err := h.authService.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err, h.dev)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      responses,
		"pagination": pagination,
	})
}
