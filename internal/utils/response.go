package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Flash categories shown alongside a message.
const (
	CategoryPrimary = "primary"
	CategoryInfo    = "info"
	CategorySuccess = "success"
	CategoryWarning = "warning"
	CategoryDanger  = "danger"
)

// ResponseData represents the structure of a standard API response.
type ResponseData struct {
	Status   int         `json:"status"`
	Message  string      `json:"message"`
	Category string      `json:"category,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// Success sends a standard success response.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, ResponseData{
		Status:  http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Flash sends a response carrying a user-facing message and its category.
func Flash(c *gin.Context, statusCode int, category, message string, data interface{}) {
	c.JSON(statusCode, ResponseData{
		Status:   statusCode,
		Message:  message,
		Category: category,
		Data:     data,
	})
}

// Error sends a standard error response.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	c.JSON(statusCode, ResponseData{
		Status:  statusCode,
		Message: "An error occurred",
		Error:   errorMessage,
	})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}

// SeeOther redirects the client to location after a successful form post.
func SeeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
