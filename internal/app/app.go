package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/authstate"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/config"
	httpx "github.com/Manthan2549/panchveda-wellness-hub/internal/http"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/http/handlers"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/http/middleware"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/infrastructure/auth"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/infrastructure/database"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/infrastructure/notifications"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/infrastructure/repositories"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	notificationSvc := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)

	accountRepo := repositories.NewAccountRepository(gdb)
	profileRepo := repositories.NewProfileRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb)

	// Auth-state manager: tracks a resolved user+role snapshot per session
	// and feeds the route guard.
	states := authstate.NewManager(profileRepo)
	defer states.Close()

	otpConfig := services.OTPConfig{
		Length:       cfg.OTP_Length,
		TTL:          cfg.OTP_TTL,
		MaxAttempts:  cfg.OTP_MaxAttempts,
		ResendWindow: cfg.OTP_ResendWindow,
	}
	otpSvc := services.NewOTPService(notificationSvc, rdb, otpConfig)

	policySvc := services.NewPolicyService(cas.E)
	chatSvc := services.NewChatService()

	authSvc := services.NewAuthService(
		accountRepo, profileRepo, sessionRepo,
		passwordSvc, tokenSvc, otpSvc, states,
		services.AuthConfig{
			AccessTTL:   cfg.AccessTTL,
			SessionTTL:  cfg.SessionTTL,
			RememberTTL: cfg.RememberTTL,
		},
	)

	authH := handlers.NewAuthHandlers(authSvc, otpSvc, accountRepo)
	chatH := handlers.NewChatHandlers(chatSvc)
	polH := handlers.NewPolicyHandlers(policySvc)
	pages := handlers.NewPageHandlers()

	guard := middleware.NewGuard(tokenSvc, sessionRepo, states)
	jwtMW := middleware.AuthMiddleware(tokenSvc, sessionRepo)
	casbinMW := middleware.NewCasbinMW(services.NewCasbinEnforcerWrapper(cas.E))

	r := httpx.BuildRouter(authH, chatH, polH, pages, guard, jwtMW, casbinMW, cfg.RouteRules)

	if len(policySvc.GetPolicies()) == 0 {
		seed := []struct {
			role             domain.Role
			resource, action string
		}{
			{domain.RolePractitioner, "/admin/policies", "(GET|POST|DELETE)"},
			{domain.RolePatient, "/auth/me", "GET"},
			{domain.RolePatient, "/auth/logout", "POST"},
			{domain.RolePractitioner, "/auth/me", "GET"},
			{domain.RolePractitioner, "/auth/logout", "POST"},
		}
		for _, s := range seed {
			if err := policySvc.AddPolicy(s.role, s.resource, s.action); err != nil {
				return err
			}
		}
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
