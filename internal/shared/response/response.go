package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gaming-collection-backend/internal/shared/query"
)

// Body is the envelope shared by every endpoint:
// {success, message, data|pagination} on success,
// {success:false, message, error?, errors?} on failure.
type Body struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       interface{}       `json:"data,omitempty"`
	Count      *int              `json:"count,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
	Error      string            `json:"error,omitempty"`
	Errors     []string          `json:"errors,omitempty"`
}

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Body{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List responds with a paginated collection.
func List(c *gin.Context, message string, data interface{}, pagination *query.Pagination) {
	c.JSON(http.StatusOK, Body{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// Collection responds with an unpaginated slice plus its length, the shape
// the convenience lookups (/active, /search/:term, /by-status) use.
func Collection(c *gin.Context, message string, data interface{}, count int) {
	c.JSON(http.StatusOK, Body{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Body{
		Success: false,
		Message: message,
	})
}

// ValidationFailed reports the complete list of violated constraints.
func ValidationFailed(c *gin.Context, errors []string) {
	c.JSON(http.StatusBadRequest, Body{
		Success: false,
		Message: "validation error",
		Errors:  errors,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Body{
		Success: false,
		Message: message,
	})
}

// Internal responds 500. The raw error is only exposed outside release
// mode; production callers get the generic message.
func Internal(c *gin.Context, message string, err error) {
	body := Body{
		Success: false,
		Message: message,
	}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		body.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
