package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/denizaydn/linkmark-cli/internal/server/models"
)

// Handler bundles the route handlers around one database handle.
type Handler struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func newAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func authPayload(u models.User) gin.H {
	return gin.H{
		"success": true,
		"data": gin.H{
			"api_key": u.APIKey,
			"user_id": u.ID,
		},
	}
}

func authError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// Register creates an account and returns its API key.
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authError(c, http.StatusBadRequest, err.Error())
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		authError(c, http.StatusConflict, "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		authError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	apiKey, err := newAPIKey()
	if err != nil {
		authError(c, http.StatusInternalServerError, "failed to issue API key")
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		APIKey:       apiKey,
	}
	if err := h.db.Create(&user).Error; err != nil {
		authError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	c.JSON(http.StatusCreated, authPayload(user))
}

// Login verifies credentials and returns the account's API key.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, "email = ?", req.Email).Error; err != nil {
		authError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		authError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	c.JSON(http.StatusOK, authPayload(user))
}
