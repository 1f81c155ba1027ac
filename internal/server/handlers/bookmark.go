package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/denizaydn/linkmark-cli/internal/server/middleware"
	"github.com/denizaydn/linkmark-cli/internal/server/models"
)

// ListBookmarks returns the caller's bookmarks with their tags, newest
// first. A user_id query parameter, when present, must match the caller.
func (h *Handler) ListBookmarks(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if q := c.Query("user_id"); q != "" && q != user.ID.String() {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot read another user's bookmarks"})
		return
	}

	var list []models.Bookmark
	err := h.db.Preload("Tags").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve bookmarks"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// CreateBookmark inserts one bookmark row for the caller. Tag rows and
// join rows are created through their own endpoints.
func (h *Handler) CreateBookmark(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req models.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID != uuid.Nil && req.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot create bookmarks for another user"})
		return
	}

	bookmark := models.Bookmark{
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	}
	if err := h.db.Create(&bookmark).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create bookmark"})
		return
	}

	c.JSON(http.StatusCreated, bookmark)
}

// ownedBookmark fetches the row and enforces ownership.
func (h *Handler) ownedBookmark(c *gin.Context) (*models.Bookmark, bool) {
	user := middleware.CurrentUser(c)

	var bookmark models.Bookmark
	if err := h.db.First(&bookmark, "id = ? AND user_id = ?", c.Param("id"), user.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bookmark not found"})
		return nil, false
	}
	return &bookmark, true
}

// updatableColumns guards the partial update against stray keys.
var updatableColumns = map[string]bool{
	"title":        true,
	"description":  true,
	"url":          true,
	"is_archived":  true,
	"is_pinned":    true,
	"view_count":   true,
	"last_visited": true,
}

// UpdateBookmark applies a partial column map to a bookmark.
func (h *Handler) UpdateBookmark(c *gin.Context) {
	bookmark, ok := h.ownedBookmark(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for col := range fields {
		if !updatableColumns[col] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown column: " + col})
			return
		}
	}
	if len(fields) == 0 {
		c.JSON(http.StatusOK, bookmark)
		return
	}

	if err := h.db.Model(bookmark).Updates(fields).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update bookmark"})
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// DeleteBookmark removes the bookmark and its join rows.
func (h *Handler) DeleteBookmark(c *gin.Context) {
	bookmark, ok := h.ownedBookmark(c)
	if !ok {
		return
	}

	if err := h.db.Select("Tags").Delete(bookmark).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete bookmark"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "bookmark deleted"})
}

// AttachTag inserts one bookmark-tag join row.
func (h *Handler) AttachTag(c *gin.Context) {
	bookmark, ok := h.ownedBookmark(c)
	if !ok {
		return
	}

	var req models.AttachTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tag models.Tag
	if err := h.db.First(&tag, "id = ?", req.TagID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return
	}

	if err := h.db.Model(bookmark).Association("Tags").Append(&tag); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to attach tag"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "tag attached"})
}

// ClearTags deletes every join row for the bookmark, leaving the tag rows
// themselves in place.
func (h *Handler) ClearTags(c *gin.Context) {
	bookmark, ok := h.ownedBookmark(c)
	if !ok {
		return
	}

	if err := h.db.Model(bookmark).Association("Tags").Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear tags"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "tags cleared"})
}
