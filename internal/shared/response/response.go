package response

import (
	"github.com/gin-gonic/gin"
)

// The API speaks the same minimal JSON dialect everywhere: payloads are
// returned as-is, confirmations and failures are {"message": "..."}.

type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes a payload unchanged.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes a confirmation message.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

// Error writes a failure message. Internal errors must pass a generic
// message here; the real error goes to the log, never to the client.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

// AbortError writes a failure and stops the handler chain. For middleware.
func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, MessageBody{Message: message})
}
