package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"referral-service/internal/store"
)

// HTTPError is a handled, client-facing failure carrying its status code
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// ErrorHandler is the single error-to-status boundary. Handlers attach
// errors with c.Error and return; after the chain runs, the last error is
// classified here. HTTPErrors and known store sentinels keep their status,
// everything else becomes a generic 500 with the cause logged server-side
// only.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}
		err := last.Err

		var httpErr *HTTPError
		switch {
		case errors.As(err, &httpErr):
			c.JSON(httpErr.Status, gin.H{"error": httpErr.Message})
		case errors.Is(err, store.ErrUniqueViolation):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, store.ErrForeignKeyViolation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			log.Printf("internal error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}

// recoverToJSON turns panics into the same opaque 500 body as unexpected
// errors
func recoverToJSON(c *gin.Context, err any) {
	log.Printf("panic recovered: %v", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
