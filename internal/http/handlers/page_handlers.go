package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandlers renders the navigable views. The server is API-first, so a
// view is a JSON document the client shell hydrates; what matters here is
// which views a visitor can reach, which the route guard decides.
type PageHandlers struct{}

// NewPageHandlers creates new page handlers
func NewPageHandlers() *PageHandlers {
	return &PageHandlers{}
}

// View returns a handler rendering the named view with the visitor context
// the guard resolved.
func (h *PageHandlers) View(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := gin.H{"view": name}
		if userID, ok := c.Get("user_id"); ok {
			payload["user_id"] = userID
		}
		if role, ok := c.Get("user_role"); ok {
			payload["role"] = role
		}
		c.JSON(http.StatusOK, gin.H{"data": payload})
	}
}

// Login renders the sign-in view. The redirect parameter set by the guard
// rides along so the client can return the visitor after sign-in.
func (h *PageHandlers) Login(c *gin.Context) {
	payload := gin.H{"view": "login"}
	if redirect := c.Query("redirect"); redirect != "" {
		payload["redirect"] = redirect
	}
	c.JSON(http.StatusOK, gin.H{"data": payload})
}
