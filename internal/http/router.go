package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ekaraca/wordbank/internal/database"
)

// RouterConfig carries all dependencies the router needs, improving
// testability and keeping the parameter count down.
type RouterConfig struct {
	Database       *database.Database
	WordStore      WordStore
	CategoryStore  CategoryStore
	AllowedOrigins []string
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(CORSMiddleware(cfg.AllowedOrigins))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	wordsController := NewWordsController(cfg.WordStore)
	categoriesController := NewCategoriesController(cfg.CategoryStore)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the German Word Bank API!",
		})
	})

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Word endpoints
	router.POST("/words/", wordsController.CreateWord)
	router.GET("/words/", wordsController.ListWords)
	router.GET("/words/:id", wordsController.GetWord)
	router.PUT("/words/:id", wordsController.UpdateWord)
	router.DELETE("/words/:id", wordsController.DeleteWord)

	// Category endpoints
	router.POST("/categories/", categoriesController.CreateCategory)
	router.GET("/categories/", categoriesController.ListCategories)

	return router
}
