package domain

import "time"

// News represents a news article published on the union's website.
type News struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Published   bool      `json:"published"`
	PublishDate time.Time `json:"publish_date"`
	Tags        []string  `json:"tags"`
	AuthorID    string    `json:"author_id"`
	AuthorName  string    `json:"author_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewsUpdate holds the mutable article fields. The author reference is set at
// creation time and cannot be changed through the update path.
type NewsUpdate struct {
	Title       *string
	Content     *string
	Summary     *string
	ImageURL    *string
	Published   *bool
	PublishDate *time.Time
	Tags        []string
}

// NewsFilter describes an article listing query. A nil Published means "any
// publish state"; the owner's listing relies on that to include drafts.
type NewsFilter struct {
	Published *bool
	AuthorID  string
	Tag       string
	Search    string
}

// News sort orders.
const (
	SortByPublishDate = "publish_date"
	SortByCreatedAt   = "created_at"
)
