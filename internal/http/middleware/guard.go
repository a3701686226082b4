package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/authstate"
)

// LoginPath is where unauthenticated visitors are sent. The originally
// requested path travels along in the redirect query parameter so the login
// flow can return the visitor afterwards.
const LoginPath = "/login"

// AccessTokenCookie carries the access token for browser navigation, where
// an Authorization header is not available.
const AccessTokenCookie = "pv_access_token"

// Decision is the outcome of evaluating a guarded request.
type Decision int

const (
	// DecisionAllow renders the protected view unchanged.
	DecisionAllow Decision = iota
	// DecisionLoading suspends the verdict while auth state is resolving.
	DecisionLoading
	// DecisionLogin redirects to the login page, preserving the requested path.
	DecisionLogin
	// DecisionLanding redirects to the role-appropriate dashboard.
	DecisionLanding
)

// Evaluate is the guard's decision table, a pure function of the auth
// snapshot and the route's role constraint. The order is strict: the loading
// gate comes first so a still-authenticating visitor is never redirected,
// then the authentication check, then the role constraint.
func Evaluate(st authstate.State, allowed []domain.Role) Decision {
	if st.Loading {
		return DecisionLoading
	}
	if st.User == nil {
		return DecisionLogin
	}
	if len(allowed) > 0 && !st.Role.In(allowed) {
		return DecisionLanding
	}
	return DecisionAllow
}

// Guard protects the page routes. Per request it locates the visitor's
// session, consults the auth-state manager for a resolved snapshot, and
// renders, redirects, or asks the client to retry while resolution is in
// flight.
type Guard struct {
	tokenSvc    domain.TokenService
	sessionRepo domain.SessionRepository
	states      *authstate.Manager
}

// NewGuard creates a route guard.
func NewGuard(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository, states *authstate.Manager) *Guard {
	return &Guard{
		tokenSvc:    tokenSvc,
		sessionRepo: sessionRepo,
		states:      states,
	}
}

// Require returns middleware admitting only the given roles. With no roles,
// any authenticated visitor passes.
func (g *Guard) Require(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := g.resolveState(c)

		switch Evaluate(st, allowed) {
		case DecisionLoading:
			c.Header("Retry-After", "1")
			c.JSON(http.StatusAccepted, gin.H{"status": "loading"})
			c.Abort()
		case DecisionLogin:
			g.redirectToLogin(c)
		case DecisionLanding:
			c.Redirect(http.StatusFound, st.Role.LandingPath())
			c.Abort()
		default:
			c.Set("user_id", st.User.UserID)
			c.Set("user_role", st.Role)
			c.Set("session_id", st.User.ID)
			c.Next()
		}
	}
}

// resolveState derives the auth snapshot for this request. No valid token or
// session yields a settled signed-out state; a session the manager is not
// yet tracking is registered, which starts its role resolution and reports
// loading until it completes.
func (g *Guard) resolveState(c *gin.Context) authstate.State {
	signedOut := authstate.State{}

	token := extractToken(c)
	if token == "" {
		return signedOut
	}

	claims, err := g.tokenSvc.ValidateAccessToken(token)
	if err != nil || claims.SessionID == "" {
		return signedOut
	}

	if st, ok := g.states.Snapshot(claims.SessionID); ok {
		return st
	}

	// The manager has no entry, e.g. after a restart. Rehydrate from the
	// session store and let the provider resolve the role.
	sess, err := g.sessionRepo.FindByID(c.Request.Context(), claims.SessionID)
	if err != nil || sess == nil {
		return signedOut
	}
	g.states.SessionStarted(c.Request.Context(), sess)

	if st, ok := g.states.Snapshot(claims.SessionID); ok {
		return st
	}
	return signedOut
}

func (g *Guard) redirectToLogin(c *gin.Context) {
	target := LoginPath + "?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// extractToken pulls the access token from a Bearer Authorization header or
// the session cookie. A header carrying some other scheme is not ours to
// interpret; the cookie still identifies the browser session.
func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}
