package http

import (
	"net/http"

	charmlog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondError sends an error response with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 response.
// The actual error is not exposed to the client.
func respondInternalError(c *gin.Context, logger *charmlog.Logger, err error, context string) {
	logger.Error("internal error", "context", context, "err", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
