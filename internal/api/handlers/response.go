package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope every handler returns, matching the
// rest of the backend's API conventions.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *AppError   `json:"error,omitempty"`
}

// AppError is the structured error body returned on failure.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func sendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func sendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func sendError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{Success: false, Error: &AppError{Code: code, Message: message}})
}

func sendValidationError(c *gin.Context, message string) {
	sendError(c, http.StatusBadRequest, "validation_error", message)
}

func sendNotFound(c *gin.Context, message string) {
	sendError(c, http.StatusNotFound, "not_found", message)
}

func sendInternalError(c *gin.Context, message string) {
	sendError(c, http.StatusInternalServerError, "internal_error", message)
}
