package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// PolicyHandlers manages authorization policies at runtime
type PolicyHandlers struct {
	policySvc domain.PolicyService
}

// NewPolicyHandlers creates new policy handlers
func NewPolicyHandlers(policySvc domain.PolicyService) *PolicyHandlers {
	return &PolicyHandlers{policySvc: policySvc}
}

// policyReq is one grant: a role from the closed enum, a resource path and
// an action pattern.
type policyReq struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

func (r policyReq) role(c *gin.Context) (domain.Role, bool) {
	role, err := domain.ParseRole(r.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be patient or practitioner"})
		return domain.RoleNone, false
	}
	return role, true
}

// List returns all policies
func (h *PolicyHandlers) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.policySvc.GetPolicies()})
}

// Add creates a grant
func (h *PolicyHandlers) Add(c *gin.Context) {
	var r policyReq
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, ok := r.role(c)
	if !ok {
		return
	}
	if err := h.policySvc.AddPolicy(role, r.Resource, r.Action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not added"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Remove deletes a grant
func (h *PolicyHandlers) Remove(c *gin.Context) {
	var r policyReq
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, ok := r.role(c)
	if !ok {
		return
	}
	if err := h.policySvc.RemovePolicy(role, r.Resource, r.Action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not removed"})
		return
	}
	c.Status(http.StatusNoContent)
}
