package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success bodies are the bare DTOs; only errors get a structured wrapper.

func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, gin.H{
		"error": map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
