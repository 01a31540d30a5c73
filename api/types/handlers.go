package types

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/internal/services/links"
	"github.com/killallgit/catalog-api/internal/services/timestamps"
	"github.com/killallgit/catalog-api/internal/services/videos"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + paramName,
		})
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Errors:  []string{err.Error()},
		})
		return false
	}
	return true
}

// SendData sends a success response wrapping the payload in the data envelope
func SendData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// SendCreated sends a created response wrapping the payload in the data envelope
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, DataResponse{Data: data})
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
}

// SendServiceError maps a service-layer error to its HTTP response.
// Validation errors carry the service's own message so the caller sees what
// was wrong; everything else gets the supplied fallback message.
func SendServiceError(c *gin.Context, err error, notFoundMessage, fallbackMessage string) {
	switch {
	case isValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Errors:  []string{err.Error()},
		})
	case isNotFound(err):
		SendNotFound(c, notFoundMessage)
	case isConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
	default:
		SendInternalError(c, fallbackMessage)
	}
}

func isValidation(err error) bool {
	return errors.Is(err, videos.ErrValidation) ||
		errors.Is(err, timestamps.ErrValidation) ||
		errors.Is(err, links.ErrValidation)
}

func isNotFound(err error) bool {
	return errors.Is(err, videos.ErrNotFound) ||
		errors.Is(err, timestamps.ErrNotFound) ||
		errors.Is(err, links.ErrNotFound)
}

func isConflict(err error) bool {
	return errors.Is(err, videos.ErrAlreadyExists)
}
