package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account. The API key is the opaque bearer credential handed
// out at registration and login.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	APIKey       string    `json:"-" gorm:"size:64;not null;uniqueIndex"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Bookmark is one saved link owned by exactly one user. Tag associations
// live in the bookmark_tags join table; deleting a bookmark removes its
// join rows.
type Bookmark struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	URL         string     `json:"url" gorm:"type:text;not null"`
	IsArchived  bool       `json:"is_archived" gorm:"default:false;index"`
	IsPinned    bool       `json:"is_pinned" gorm:"default:false"`
	ViewCount   int        `json:"view_count" gorm:"default:0"`
	LastVisited *time.Time `json:"last_visited,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time  `json:"-"`

	User User  `json:"-" gorm:"foreignKey:UserID"`
	Tags []Tag `json:"tags" gorm:"many2many:bookmark_tags;"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Tag is globally unique by name and shared across users.
type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`

	Bookmarks []Bookmark `json:"-" gorm:"many2many:bookmark_tags;"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Request DTOs

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateBookmarkRequest struct {
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	URL         string    `json:"url" binding:"required"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

type AttachTagRequest struct {
	TagID uuid.UUID `json:"tag_id" binding:"required"`
}
