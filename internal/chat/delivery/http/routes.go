package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	messages := rg.Group("/messages")
	{
		messages.POST("", h.SendMessage)
	}
}
