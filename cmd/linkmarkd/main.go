package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/denizaydn/linkmark-cli/internal/server/config"
	"github.com/denizaydn/linkmark-cli/internal/server/database"
	"github.com/denizaydn/linkmark-cli/internal/server/handlers"
	"github.com/denizaydn/linkmark-cli/internal/server/middleware"
	"github.com/denizaydn/linkmark-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log)

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	h := handlers.New(db.DB)

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(500, gin.H{"message": "database unreachable"})
			return
		}
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Auth endpoints live at the root, outside /v1
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	v1 := r.Group("/v1")
	v1.Use(middleware.Auth(db.DB))
	{
		v1.GET("/bookmarks", h.ListBookmarks)
		v1.POST("/bookmarks", h.CreateBookmark)
		v1.PUT("/bookmarks/:id", h.UpdateBookmark)
		v1.DELETE("/bookmarks/:id", h.DeleteBookmark)
		v1.POST("/bookmarks/:id/tags", h.AttachTag)
		v1.DELETE("/bookmarks/:id/tags", h.ClearTags)

		v1.GET("/tags", h.ListTags)
		v1.POST("/tags", h.CreateTag)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logrus.WithField("addr", addr).Info("linkmarkd listening")
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
