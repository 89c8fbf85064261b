package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brunosduarte/sindestiva-api/internal/domain"
	"github.com/brunosduarte/sindestiva-api/internal/metrics"
	"github.com/brunosduarte/sindestiva-api/internal/middleware"
	"github.com/brunosduarte/sindestiva-api/internal/service"
	"github.com/brunosduarte/sindestiva-api/internal/validator"
)

// NewsHandler handles news-article HTTP requests.
type NewsHandler struct {
	newsService service.NewsServiceInterface
	dev         bool
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsServiceInterface, dev bool) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		dev:         dev,
	}
}

// NewsResponse represents an article in API responses.
type NewsResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Published   bool     `json:"published"`
	PublishDate string   `json:"publish_date"`
	Tags        []string `json:"tags"`
	AuthorID    string   `json:"author_id"`
	AuthorName  string   `json:"author_name,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// toNewsResponse converts a domain.News to a NewsResponse.
func toNewsResponse(news *domain.News) NewsResponse {
	return NewsResponse{
		ID:          news.ID,
		Title:       news.Title,
		Content:     news.Content,
		Summary:     news.Summary,
		ImageURL:    news.ImageURL,
		Published:   news.Published,
		PublishDate: news.PublishDate.Format(TimeFormat),
		Tags:        news.Tags,
		AuthorID:    news.AuthorID,
		AuthorName:  news.AuthorName,
		CreatedAt:   news.CreatedAt.Format(TimeFormat),
		UpdatedAt:   news.UpdatedAt.Format(TimeFormat),
	}
}

func toNewsResponses(items []domain.News) []NewsResponse {
	responses := make([]NewsResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toNewsResponse(&items[i]))
	}
	return responses
}

// listQuery extracts the shared pagination/filter query parameters.
func listQuery(c *gin.Context) (page, limit int, tag, search string) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit, c.Query("tag"), c.Query("search")
}

// List handles GET /news - public listing, published articles only.
//
//	@Summary	List published news
//	@Tags		news
//	@Produce	json
//	@Param		page	query	int		false	"page number"
//	@Param		limit	query	int		false	"page size"
//	@Param		tag		query	string	false	"tag filter"
//	@Param		search	query	string	false	"free-text search"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/news [get]
func (h *NewsHandler) List(c *gin.Context) {
	page, limit, tag, search := listQuery(c)

	items, pagination, err := h.newsService.ListPublished(c.Request.Context(), tag, search, page, limit)
	if err != nil {
		respondError(c, err, h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"news":       toNewsResponses(items),
		"pagination": pagination,
	})
}

// Get handles GET /news/:id - public read, published articles only.
//
//	@Summary	Get a published news article
//	@Tags		news
//	@Produce	json
//	@Param		id	path	string	true	"article id"
//	@Success	200	{object}	NewsResponse
//	@Failure	404	{object}	map[string]string
//	@Router		/news/{id} [get]
func (h *NewsHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	news, err := h.newsService.GetPublished(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, h.dev)
		return
	}

	c.JSON(http.StatusOK, toNewsResponse(news))
}

// ListMine handles GET /news/my - the caller's own articles, drafts included.
//
//	@Summary	List the caller's own news
//	@Tags		news
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query	int		false	"page number"
//	@Param		limit	query	int		false	"page size"
//	@Param		tag		query	string	false	"tag filter"
//	@Param		search	query	string	false	"free-text search"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	401		{object}	map[string]string
//	@Router		/news/my [get]
func (h *NewsHandler) ListMine(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	page, limit, tag, search := listQuery(c)

	items, pagination, err := h.newsService.ListOwn(c.Request.Context(), claims, tag, search, page, limit)
	if err != nil {
		respondError(c, err, h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"news":       toNewsResponses(items),
		"pagination": pagination,
	})
}

// Create handles POST /news
//
//	@Summary	Create a news article
//	@Tags		news
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		input	body	validator.NewsInput	true	"article payload"
//	@Success	201		{object}	NewsResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	401		{object}	map[string]string
//	@Router		/news [post]
func (h *NewsHandler) Create(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var input validator.NewsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news, err := h.newsService.Create(c.Request.Context(), claims, input)
	if err != nil {
		metrics.ObserveNewsEvent("create", "failure")
		respondError(c, err, h.dev)
		return
	}

	metrics.ObserveNewsEvent("create", "success")
	c.JSON(http.StatusCreated, toNewsResponse(news))
}

// Update handles PUT /news/:id
//
//	@Summary	Update a news article
//	@Tags		news
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path	string						true	"article id"
//	@Param		input	body	validator.NewsUpdateInput	true	"fields to change"
//	@Success	200		{object}	NewsResponse
//	@Failure	403		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/news/{id} [put]
func (h *NewsHandler) Update(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	var input validator.NewsUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news, err := h.newsService.Update(c.Request.Context(), claims, id, input)
	if err != nil {
		metrics.ObserveNewsEvent("update", "failure")
		respondError(c, err, h.dev)
		return
	}

	metrics.ObserveNewsEvent("update", "success")
	c.JSON(http.StatusOK, toNewsResponse(news))
}

// Delete handles DELETE /news/:id
//
//	@Summary	Delete a news article
//	@Tags		news
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"article id"
//	@Success	200	{object}	map[string]string
//	@Failure	403	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/news/{id} [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), claims, id); err != nil {
		metrics.ObserveNewsEvent("delete", "failure")
		respondError(c, err, h.dev)
		return
	}

	metrics.ObserveNewsEvent("delete", "success")
	c.JSON(http.StatusOK, gin.H{"message": "news deleted"})
}
