package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/denizaydn/linkmark-cli/internal/server/models"
)

// ListTags returns all tags, or the single tag matching an exact ?name=
// lookup (still as a list, which keeps the lookup shape uniform).
func (h *Handler) ListTags(c *gin.Context) {
	query := h.db.Order("name ASC")
	if name := c.Query("name"); name != "" {
		query = query.Where("name = ?", name)
	}

	var tags []models.Tag
	if err := query.Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tags"})
		return
	}

	c.JSON(http.StatusOK, tags)
}

// CreateTag inserts a tag, reusing the existing row when the name is
// already taken. The unique index makes concurrent creations of the same
// name collapse to one row.
func (h *Handler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag := models.Tag{Name: req.Name}
	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tag"})
		return
	}

	// On conflict the generated ID is not the stored one; re-read by name.
	if err := h.db.First(&tag, "name = ?", req.Name).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tag"})
		return
	}

	c.JSON(http.StatusCreated, tag)
}
