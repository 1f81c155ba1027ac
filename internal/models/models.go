package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a shared, named label. Tags are global (not owned per-user) and
// are created lazily the first time a name is used.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkRow is a bookmark as returned by the remote store: scalar columns
// plus the joined tag rows from the nested fetch.
type BookmarkRow struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url"`
	IsArchived  bool       `json:"is_archived"`
	IsPinned    bool       `json:"is_pinned"`
	ViewCount   int        `json:"view_count"`
	LastVisited *time.Time `json:"last_visited,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Tags        []Tag      `json:"tags,omitempty"`
}

// Bookmark is the client-side cache model: the same scalars with the joined
// tag rows flattened to plain names.
type Bookmark struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url"`
	IsArchived  bool       `json:"is_archived"`
	IsPinned    bool       `json:"is_pinned"`
	ViewCount   int        `json:"view_count"`
	LastVisited *time.Time `json:"last_visited,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Tags        []string   `json:"tags,omitempty"`
}

// Flatten converts a remote row into the cache model, collapsing the joined
// tag rows into their names. Display order is preserved from the row.
func (r BookmarkRow) Flatten() Bookmark {
	b := Bookmark{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		IsArchived:  r.IsArchived,
		IsPinned:    r.IsPinned,
		ViewCount:   r.ViewCount,
		LastVisited: r.LastVisited,
		CreatedAt:   r.CreatedAt,
	}
	for _, t := range r.Tags {
		b.Tags = append(b.Tags, t.Name)
	}
	return b
}

// User is the authenticated account as reported by the backend.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// APIResponse is the envelope used by the auth endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
