package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Manthan2549/panchveda-wellness-hub/internal/config"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/http/handlers"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/http/middleware"
)

// BuildRouter assembles the full route table: the public auth and chat
// endpoints, the guarded page routes declared in the route rules file, and
// the policy-managed admin surface.
func BuildRouter(
	ah *handlers.AuthHandlers,
	ch *handlers.ChatHandlers,
	ph *handlers.PolicyHandlers,
	pages *handlers.PageHandlers,
	guard *middleware.Guard,
	jwt gin.HandlerFunc,
	cb *middleware.CasbinMW,
	routes []config.RouteRule,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/otp/send", ah.SendOTP)
	auth.POST("/otp/verify", ah.VerifyOTP)
	auth.POST("/refresh", ah.Refresh)

	// The chatbot answers without sign-in, mirroring the public landing page.
	r.POST("/chat/message", ch.Message)

	// The login view is public; the guard sends visitors here with the
	// requested path in the redirect parameter.
	r.GET(middleware.LoginPath, pages.Login)

	// Guarded views come from configuration, one route per rule.
	for _, rule := range routes {
		r.GET(rule.Path, guard.Require(rule.Roles...), pages.View(rule.View))
	}

	v := r.Group("/").Use(jwt)
	v.GET("/auth/me", ah.Me)
	v.POST("/auth/logout", ah.Logout)

	adm := r.Group("/admin").Use(jwt, cb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
