package document

import (
	"time"

	"github.com/google/uuid"
)

// Document is a user-owned stored document. Content is opaque UTF-8 text;
// generated documents land here with the rendered text as Content.
type Document struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Type       string    `json:"type"`
	Tags       []string  `json:"tags"`
	IsTemplate bool      `json:"isTemplate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateRequest carries the fields accepted when storing a document.
type CreateRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Type    string   `json:"type"`
	Tags    []string `json:"tags"`
}

// UpdateRequest carries the mutable document fields.
type UpdateRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}
