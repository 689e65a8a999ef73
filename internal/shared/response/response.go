package response

import (
	"net/http"

	"bepl-backend/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Response is the JSON envelope shared by every endpoint.
type Response struct {
	Success    bool                  `json:"success"`
	Data       interface{}           `json:"data,omitempty"`
	Message    string                `json:"message,omitempty"`
	Error      string                `json:"error,omitempty"`
	Errors     []apperror.FieldError `json:"errors,omitempty"`
	Pagination *Pagination           `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes pages = ceil(total/limit).
func NewPagination(page, limit int, total int64) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// showDetails controls whether internal error detail reaches clients.
var showDetails = true

// SetShowDetails is called once at startup (false in production).
func SetShowDetails(show bool) {
	showDetails = show
}

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithPagination(c *gin.Context, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

// Error writes a failure envelope with a plain message.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// HandleError maps err to its status and writes the envelope.
func HandleError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	status := appErr.Status()

	resp := Response{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Errors,
	}

	if status >= http.StatusInternalServerError {
		log.Error().
			Err(appErr.Err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	if showDetails && appErr.Err != nil {
		resp.Error = appErr.Err.Error()
	}

	c.JSON(status, resp)
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}
