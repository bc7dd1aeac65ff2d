package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bibliotheque-backend/internal/domains/book/model"
	"bibliotheque-backend/internal/domains/book/service"
	"bibliotheque-backend/internal/shared/response"
)

// Handler - HTTP handlers for the book domain
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListBooks - GET /books
// Query params: _id, genres, allGenres, excludeGenres, langue, titre,
// auteur, search, page, limit (see the filter table in model/filter.go).
func (h *Handler) ListBooks(c *gin.Context) {
	query := flattenQuery(c)

	books, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		// A rejected predicate is a client error, never retried.
		response.BadRequest(c, err.Error())
		return
	}

	response.List(c, model.ToBookResponses(books))
}

// SearchBooks - GET /books/search?titre=
func (h *Handler) SearchBooks(c *gin.Context) {
	titre := c.Query("titre")
	if titre == "" {
		titre = c.Query("title")
	}

	books, err := h.service.SearchByTitle(c.Request.Context(), titre)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, model.ToBookResponses(books))
}

// AvailableBooks - GET /books/available
func (h *Handler) AvailableBooks(c *gin.Context) {
	books, err := h.service.Available(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, model.ToBookResponses(books))
}

// BooksByGenre - GET /books/genre/:genre
func (h *Handler) BooksByGenre(c *gin.Context) {
	books, err := h.service.ByGenre(c.Request.Context(), c.Param("genre"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, model.ToBookResponses(books))
}

// BooksByLanguage - GET /books/language/:langue
func (h *Handler) BooksByLanguage(c *gin.Context) {
	books, err := h.service.ByLanguage(c.Request.Context(), c.Param("langue"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, model.ToBookResponses(books))
}

// BooksByStock - GET /books/stock?stock=N
func (h *Handler) BooksByStock(c *gin.Context) {
	minStock, err := strconv.Atoi(c.Query("stock"))
	if err != nil {
		response.BadRequest(c, "Paramètre stock invalide")
		return
	}

	books, err := h.service.ByMinStock(c.Request.Context(), minStock)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, model.ToBookResponses(books))
}

// GenreStats - GET /books/stats/genres
func (h *Handler) GenreStats(c *gin.Context) {
	counts, err := h.service.CountPerGenre(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, counts)
}

// GetBook - GET /books/:id
func (h *Handler) GetBook(c *gin.Context) {
	book, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, model.ToBookResponse(*book))
}

// CreateBook - POST /books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	book, err := h.service.Create(c.Request.Context(), &req)
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusCreated, model.ToBookResponse(*book))
}

// UpdateBook - PATCH /books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	book, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, model.ToBookResponse(*book))
}

// DeleteBook - DELETE /books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if model.HandleBookError(c, err) {
		return
	}

	response.WithMessage(c, http.StatusOK, "Livre supprimé avec succès")
}

// BorrowBook - POST /books/:id/borrow
func (h *Handler) BorrowBook(c *gin.Context) {
	book, err := h.service.Borrow(c.Request.Context(), c.Param("id"))
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, model.ToBookResponse(*book))
}

// ReturnBook - POST /books/:id/return
func (h *Handler) ReturnBook(c *gin.Context) {
	book, err := h.service.Return(c.Request.Context(), c.Param("id"))
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, model.ToBookResponse(*book))
}

// flattenQuery keeps the first value of each query parameter, matching the
// flat map the filter builder expects.
func flattenQuery(c *gin.Context) map[string]string {
	query := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}
	return query
}
