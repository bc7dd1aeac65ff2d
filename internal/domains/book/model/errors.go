package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"bibliotheque-backend/internal/shared/response"
	"bibliotheque-backend/pkg/logger"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrBookNotAvailable = errors.New("book not available in stock")
	ErrInvalidBookID    = errors.New("invalid book id")
	ErrInvalidFilter    = errors.New("invalid filter parameter")
)

var bookErrorMap = map[error]struct {
	Status  int
	Message string
}{
	ErrBookNotFound:     {Status: http.StatusNotFound, Message: "Livre non trouvé"},
	ErrBookNotAvailable: {Status: http.StatusBadRequest, Message: "Livre non disponible en stock"},
	ErrInvalidBookID:    {Status: http.StatusBadRequest, Message: "Identifiant de livre invalide"},
}

// HandleBookError translates a service error into an HTTP response with a
// {message} body. Returns true when a response was written.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range bookErrorMap {
		if errors.Is(err, sentinel) {
			response.WithMessage(c, cfg.Status, cfg.Message)
			return true
		}
	}

	// Schema constraint violations carry their own message.
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, err.Error())
		return true
	}
	var verr validation.Error
	if errors.As(err, &verr) {
		response.BadRequest(c, err.Error())
		return true
	}

	// Uniqueness violations on titre/isbn surface the store message.
	if mongo.IsDuplicateKeyError(err) {
		response.BadRequest(c, err.Error())
		return true
	}

	logger.Error("book handler: unexpected error", err)
	response.InternalServerError(c, err.Error())
	return true
}
