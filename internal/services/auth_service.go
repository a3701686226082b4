package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	accountRepo domain.AccountRepository
	profileRepo domain.ProfileRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	notifier    domain.SessionNotifier

	accessTTL   time.Duration
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

// AuthConfig carries the session lifetimes
type AuthConfig struct {
	AccessTTL   time.Duration
	SessionTTL  time.Duration
	RememberTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo domain.AccountRepository,
	profileRepo domain.ProfileRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	notifier domain.SessionNotifier,
	cfg AuthConfig,
) domain.AuthService {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		notifier:    notifier,
		accessTTL:   cfg.AccessTTL,
		sessionTTL:  cfg.SessionTTL,
		rememberTTL: cfg.RememberTTL,
	}
}

// Register implements domain.AuthService. It creates the account, seeds the
// profile row that fixes the role, and starts phone verification.
func (s *AuthServiceImpl) Register(ctx context.Context, email, phone, password, fullName string, role domain.Role) (*domain.Account, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrAccountExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	profile := &domain.Profile{
		UserID:   account.ID,
		Role:     role,
		FullName: fullName,
		Phone:    phone,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if _, err := s.otpSvc.Generate(ctx, phone, account.ID); err != nil {
		return nil, fmt.Errorf("failed to send OTP: %w", err)
	}

	return account, nil
}

// Login implements domain.AuthService. A remembered sign-in extends the
// session lifetime; a missing profile row degrades to a role-less session
// rather than a failure.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string, rememberMe bool) (*domain.AuthResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, domain.ErrAccountInactive
	}
	if !account.PhoneVerified {
		return nil, domain.ErrPhoneNotVerified
	}

	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	role := domain.RoleNone
	profile, err := s.profileRepo.FindByUserID(ctx, account.ID)
	if err == nil && profile != nil {
		role = profile.Role
	}

	ttl := s.sessionTTL
	if rememberMe {
		ttl = s.rememberTTL
	}
	session := &domain.Session{
		ID:         fmt.Sprintf("sess_%d_%d", account.ID, time.Now().UnixNano()),
		UserID:     account.ID,
		RememberMe: rememberMe,
		ExpiresAt:  time.Now().Add(ttl),
		CreatedAt:  time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.notifier.SessionStarted(ctx, session)

	accessToken, err := s.tokenSvc.GenerateAccessToken(account.ID, role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.GenerateRefreshToken(account.ID, role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.AuthResult{
		Account:      account,
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// RefreshToken implements domain.AuthService
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	session, err := s.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	if session.ExpiresAt.Before(time.Now()) {
		return nil, domain.ErrSessionExpired
	}

	account, err := s.accountRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	role := domain.RoleNone
	profile, err := s.profileRepo.FindByUserID(ctx, account.ID)
	if err == nil && profile != nil {
		role = profile.Role
	}

	s.notifier.SessionRefreshed(ctx, session)

	accessToken, err := s.tokenSvc.GenerateAccessToken(account.ID, role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		Account:      account,
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService. The notifier observes the sign-out
// before the call returns, so derived auth state clears synchronously.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.notifier.SessionEnded(ctx, sessionID)
	return nil
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.Profile, error) {
	return s.profileRepo.FindByUserID(ctx, userID)
}
