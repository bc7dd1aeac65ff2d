package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bibliotheque-backend/internal/domains/author/model"
	"bibliotheque-backend/internal/domains/author/service"
	"bibliotheque-backend/internal/shared/response"
)

// Handler - HTTP handlers for the author domain
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListAuthors - GET /authors
func (h *Handler) ListAuthors(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, authors)
}

// BooksAfter1900Stats - GET /authors/stats/books-after-1900
func (h *Handler) BooksAfter1900Stats(c *gin.Context) {
	stats, err := h.service.BooksAfter1900(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, stats)
}

// GetAuthor - GET /authors/:id
func (h *Handler) GetAuthor(c *gin.Context) {
	author, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if model.HandleAuthorError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, author)
}

// CreateAuthor - POST /authors
func (h *Handler) CreateAuthor(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	author, err := h.service.Create(c.Request.Context(), &req)
	if model.HandleAuthorError(c, err) {
		return
	}

	response.JSON(c, http.StatusCreated, author)
}

// UpdateAuthor - PATCH /authors/:id
func (h *Handler) UpdateAuthor(c *gin.Context) {
	var req model.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	author, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if model.HandleAuthorError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, author)
}

// DeleteAuthor - DELETE /authors/:id
// Non-cascading: books referencing the author are left untouched.
func (h *Handler) DeleteAuthor(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if model.HandleAuthorError(c, err) {
		return
	}

	response.WithMessage(c, http.StatusOK, "Auteur supprimé avec succès")
}
