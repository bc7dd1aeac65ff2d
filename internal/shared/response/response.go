package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the body returned for every error and for confirmation-only
// successes (e.g. delete). Clients always get {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}

// ListEnvelope wraps the book listing result set.
type ListEnvelope struct {
	Data interface{} `json:"data"`
}

func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func List(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, ListEnvelope{Data: data})
}

func WithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Message{Message: message})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	WithMessage(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	WithMessage(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	WithMessage(c, http.StatusInternalServerError, message)
}
