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
	ErrAuthorNotFound  = errors.New("author not found")
	ErrInvalidAuthorID = errors.New("invalid author id")
)

var authorErrorMap = map[error]struct {
	Status  int
	Message string
}{
	ErrAuthorNotFound:  {Status: http.StatusNotFound, Message: "Auteur non trouvé"},
	ErrInvalidAuthorID: {Status: http.StatusBadRequest, Message: "Identifiant d'auteur invalide"},
}

// HandleAuthorError translates a service error into an HTTP response with
// a {message} body. Returns true when a response was written.
func HandleAuthorError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range authorErrorMap {
		if errors.Is(err, sentinel) {
			response.WithMessage(c, cfg.Status, cfg.Message)
			return true
		}
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, err.Error())
		return true
	}

	if mongo.IsDuplicateKeyError(err) {
		response.BadRequest(c, err.Error())
		return true
	}

	logger.Error("author handler: unexpected error", err)
	response.InternalServerError(c, err.Error())
	return true
}
