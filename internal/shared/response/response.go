package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every failed request
type ErrorBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// MessageBody carries a confirmation without a record
type MessageBody struct {
	Message string `json:"message"`
}

// Success responses
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

// Error responses
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details interface{}) {
	c.JSON(statusCode, ErrorBody{
		Error:   message,
		Details: details,
	})
}
