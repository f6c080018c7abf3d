package models

import "time"

var (
	FirestoreNewsCollection = "news"
)

// News is a campus-wide announcement. Published items are readable without
// authentication. At most one item may be visible (featured) at a time; the
// repository enforces that inside a transaction.
type News struct {
	ID          string    `json:"id" mapstructure:"id"`
	Title       string    `json:"title" mapstructure:"title"`
	Body        string    `json:"body" mapstructure:"body"`
	AuthorID    string    `json:"authorID" mapstructure:"authorID"`
	IsPublished bool      `json:"isPublished" mapstructure:"isPublished"`
	IsVisible   bool      `json:"isVisible" mapstructure:"isVisible"`
	CreatedAt   time.Time `json:"createdAt" mapstructure:"createdAt"`
}

type CreateNewsRequest struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	IsPublished bool   `json:"isPublished"`
	Author      *User  `json:"-"`
}

type EditNewsRequest struct {
	NewsID      string `json:"newsID,omitempty"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	IsPublished bool   `json:"isPublished"`
}

type DeleteNewsRequest struct {
	NewsID string `json:"newsID,omitempty"`
}

// SetNewsVisibilityRequest is the parameter struct for the SetNewsVisibility function.
type SetNewsVisibilityRequest struct {
	NewsID    string `json:"newsID,omitempty"`
	IsVisible bool   `json:"isVisible"`
}
