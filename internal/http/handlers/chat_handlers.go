package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// ChatHandlers serves the ArogyaMitra wellness chatbot
type ChatHandlers struct {
	responder domain.ChatResponder
}

// NewChatHandlers creates new chat handlers
func NewChatHandlers(responder domain.ChatResponder) *ChatHandlers {
	return &ChatHandlers{responder: responder}
}

// ChatMessageRequest represents a chatbot message
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// Message answers a wellness question
func (h *ChatHandlers) Message(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := h.responder.Reply(req.Message)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"text":        reply.Text,
			"suggestions": reply.Suggestions,
		},
	})
}
