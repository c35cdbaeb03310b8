package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carcatalog-api/repositories"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

func SendValidationError(c *gin.Context, err string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "Validation failed",
		Message: err,
		Code:    http.StatusBadRequest,
	})
}

func SendPaginated(c *gin.Context, data interface{}, page, size int, total int64) {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:       data,
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	})
}

// RespondError is the single translation point from the domain error
// taxonomy to HTTP statuses: NotFound -> 404, DuplicateName and
// InvalidArgument -> 400, anything else -> 500.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		SendError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, repositories.ErrDuplicateName),
		errors.Is(err, repositories.ErrInvalidArgument):
		SendError(c, http.StatusBadRequest, err.Error())
	default:
		SendError(c, http.StatusInternalServerError, "Internal server error")
	}
}
