package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bibliotheque-backend/internal/shared/middleware"
	"bibliotheque-backend/internal/shared/response"
	"bibliotheque-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupBookRoutes(router, c)
	setupAuthorRoutes(router, c)

	// Unmatched routes produce a generic 404.
	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Ressource non trouvée")
	})

	return router
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(router *gin.Engine, c *container.Container) {
	books := router.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/search", c.BookHandler.SearchBooks)
		books.GET("/available", c.BookHandler.AvailableBooks)
		books.GET("/stock", c.BookHandler.BooksByStock)
		books.GET("/stats/genres", c.BookHandler.GenreStats)
		books.GET("/genre/:genre", c.BookHandler.BooksByGenre)
		books.GET("/language/:langue", c.BookHandler.BooksByLanguage)
		books.GET("/:id", c.BookHandler.GetBook)
		books.POST("", c.BookHandler.CreateBook)
		books.PATCH("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
		books.POST("/:id/borrow", c.BookHandler.BorrowBook)
		books.POST("/:id/return", c.BookHandler.ReturnBook)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(router *gin.Engine, c *container.Container) {
	authors := router.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.ListAuthors)
		authors.GET("/stats/books-after-1900", c.AuthorHandler.BooksAfter1900Stats)
		authors.GET("/:id", c.AuthorHandler.GetAuthor)
		authors.POST("", c.AuthorHandler.CreateAuthor)
		authors.PATCH("/:id", c.AuthorHandler.UpdateAuthor)
		authors.DELETE("/:id", c.AuthorHandler.DeleteAuthor)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
		}
		health["database"] = dbStatus

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
