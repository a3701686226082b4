package services

import (
	"context"
	"testing"
	"time"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/mocks"
)

func testAuthConfig() AuthConfig {
	return AuthConfig{
		AccessTTL:   15 * time.Minute,
		SessionTTL:  24 * time.Hour,
		RememberTTL: 30 * 24 * time.Hour,
	}
}

func activeAccount() *domain.Account {
	return &domain.Account{
		ID:            1,
		Email:         "asha@example.com",
		Phone:         "+911234567890",
		PasswordHash:  "hashed_password123",
		IsActive:      true,
		PhoneVerified: true,
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		role          domain.Role
		setupMocks    func(*mocks.MockAccountRepository, *mocks.MockProfileRepository, *mocks.MockOTPService)
		expectedError error
	}{
		{
			name:  "successful patient registration",
			email: "asha@example.com",
			role:  domain.RolePatient,
			setupMocks: func(accounts *mocks.MockAccountRepository, profiles *mocks.MockProfileRepository, otp *mocks.MockOTPService) {
				accounts.CreateFunc = func(_ context.Context, account *domain.Account) error {
					account.ID = 1
					return nil
				}
			},
		},
		{
			name:  "successful practitioner registration",
			email: "rao@example.com",
			role:  domain.RolePractitioner,
			setupMocks: func(accounts *mocks.MockAccountRepository, profiles *mocks.MockProfileRepository, otp *mocks.MockOTPService) {
				accounts.CreateFunc = func(_ context.Context, account *domain.Account) error {
					account.ID = 2
					return nil
				}
			},
		},
		{
			name:  "duplicate email",
			email: "asha@example.com",
			role:  domain.RolePatient,
			setupMocks: func(accounts *mocks.MockAccountRepository, profiles *mocks.MockProfileRepository, otp *mocks.MockOTPService) {
				accounts.FindByEmailFunc = func(_ context.Context, _ string) (*domain.Account, error) {
					return activeAccount(), nil
				}
			},
			expectedError: domain.ErrAccountExists,
		},
		{
			name:          "unknown role rejected",
			email:         "asha@example.com",
			role:          domain.Role("admin"),
			setupMocks:    func(*mocks.MockAccountRepository, *mocks.MockProfileRepository, *mocks.MockOTPService) {},
			expectedError: domain.ErrInvalidRole,
		},
		{
			name:          "empty role rejected",
			email:         "asha@example.com",
			role:          domain.RoleNone,
			setupMocks:    func(*mocks.MockAccountRepository, *mocks.MockProfileRepository, *mocks.MockOTPService) {},
			expectedError: domain.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := mocks.NewMockAccountRepository()
			profiles := mocks.NewMockProfileRepository()
			otp := mocks.NewMockOTPService()
			tt.setupMocks(accounts, profiles, otp)

			var createdProfile *domain.Profile
			profiles.CreateFunc = func(_ context.Context, p *domain.Profile) error {
				createdProfile = p
				return nil
			}

			svc := NewAuthService(
				accounts, profiles, mocks.NewMockSessionRepository(),
				mocks.NewMockPasswordService(), mocks.NewMockTokenService(),
				otp, mocks.NewMockSessionNotifier(), testAuthConfig(),
			)

			account, err := svc.Register(context.Background(), tt.email, "+911234567890", "password123", "Asha Verma", tt.role)
			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if account.PasswordHash != "hashed_password123" {
				t.Errorf("expected hashed password, got %q", account.PasswordHash)
			}
			if createdProfile == nil {
				t.Fatal("expected profile row to be created")
			}
			if createdProfile.Role != tt.role {
				t.Errorf("expected profile role %q, got %q", tt.role, createdProfile.Role)
			}
			if createdProfile.UserID != account.ID {
				t.Errorf("expected profile bound to account %d, got %d", account.ID, createdProfile.UserID)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		rememberMe    bool
		setupMocks    func(*mocks.MockAccountRepository, *mocks.MockProfileRepository)
		expectedRole  domain.Role
		expectedError error
	}{
		{
			name:     "successful login with patient profile",
			password: "password123",
			setupMocks: func(accounts *mocks.MockAccountRepository, profiles *mocks.MockProfileRepository) {
				accounts.FindByEmailFunc = func(_ context.Context, _ string) (*domain.Account, error) {
					return activeAccount(), nil
				}
				profiles.FindByUserIDFunc = func(_ context.Context, _ uint) (*domain.Profile, error) {
					return &domain.Profile{UserID: 1, Role: domain.RolePatient}, nil
				}
			},
			expectedRole: domain.RolePatient,
		},
		{
			name:     "missing profile degrades to role-less session",
			password: "password123",
			setupMocks: func(accounts *mocks.MockAccountRepository, profiles *mocks.MockProfileRepository) {
				accounts.FindByEmailFunc = func(_ context.Context, _ string) (*domain.Account, error) {
					return activeAccount(), nil
				}
			},
			expectedRole: domain.RoleNone,
		},
		{
			name:          "unknown email",
			password:      "password123",
			setupMocks:    func(*mocks.MockAccountRepository, *mocks.MockProfileRepository) {},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "wrong",
			setupMocks: func(accounts *mocks.MockAccountRepository, profiles *mocks.MockProfileRepository) {
				accounts.FindByEmailFunc = func(_ context.Context, _ string) (*domain.Account, error) {
					return activeAccount(), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "inactive account",
			password: "password123",
			setupMocks: func(accounts *mocks.MockAccountRepository, profiles *mocks.MockProfileRepository) {
				accounts.FindByEmailFunc = func(_ context.Context, _ string) (*domain.Account, error) {
					account := activeAccount()
					account.IsActive = false
					return account, nil
				}
			},
			expectedError: domain.ErrAccountInactive,
		},
		{
			name:     "unverified phone",
			password: "password123",
			setupMocks: func(accounts *mocks.MockAccountRepository, profiles *mocks.MockProfileRepository) {
				accounts.FindByEmailFunc = func(_ context.Context, _ string) (*domain.Account, error) {
					account := activeAccount()
					account.PhoneVerified = false
					return account, nil
				}
			},
			expectedError: domain.ErrPhoneNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := mocks.NewMockAccountRepository()
			profiles := mocks.NewMockProfileRepository()
			sessions := mocks.NewMockSessionRepository()
			notifier := mocks.NewMockSessionNotifier()
			tt.setupMocks(accounts, profiles)

			var createdSession *domain.Session
			sessions.CreateFunc = func(_ context.Context, s *domain.Session) error {
				createdSession = s
				return nil
			}

			var tokenRole domain.Role
			tokens := mocks.NewMockTokenService()
			tokens.GenerateAccessTokenFunc = func(_ uint, role domain.Role, _ string) (string, error) {
				tokenRole = role
				return "mock_access_token", nil
			}

			svc := NewAuthService(
				accounts, profiles, sessions,
				mocks.NewMockPasswordService(), tokens,
				mocks.NewMockOTPService(), notifier, testAuthConfig(),
			)

			result, err := svc.Login(context.Background(), "asha@example.com", tt.password, tt.rememberMe)
			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if len(notifier.Recorded()) != 0 {
					t.Error("expected no session transitions on failed login")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.AccessToken != "mock_access_token" {
				t.Errorf("unexpected access token %q", result.AccessToken)
			}
			if tokenRole != tt.expectedRole {
				t.Errorf("expected token role %q, got %q", tt.expectedRole, tokenRole)
			}
			if createdSession == nil {
				t.Fatal("expected session to be created")
			}

			events := notifier.Recorded()
			if len(events) != 1 || events[0].Kind != "started" {
				t.Fatalf("expected one started transition, got %+v", events)
			}
			if events[0].SessionID != createdSession.ID {
				t.Errorf("notifier saw session %q, created %q", events[0].SessionID, createdSession.ID)
			}
		})
	}
}

func TestAuthService_Login_RememberMeExtendsSession(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	accounts.FindByEmailFunc = func(_ context.Context, _ string) (*domain.Account, error) {
		return activeAccount(), nil
	}

	sessions := mocks.NewMockSessionRepository()
	var createdSession *domain.Session
	sessions.CreateFunc = func(_ context.Context, s *domain.Session) error {
		createdSession = s
		return nil
	}

	svc := NewAuthService(
		accounts, mocks.NewMockProfileRepository(), sessions,
		mocks.NewMockPasswordService(), mocks.NewMockTokenService(),
		mocks.NewMockOTPService(), mocks.NewMockSessionNotifier(), testAuthConfig(),
	)

	_, err := svc.Login(context.Background(), "asha@example.com", "password123", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if createdSession == nil {
		t.Fatal("expected session to be created")
	}
	if !createdSession.RememberMe {
		t.Error("expected session to be marked remembered")
	}
	if until := time.Until(createdSession.ExpiresAt); until < 29*24*time.Hour {
		t.Errorf("expected ~30d session lifetime, got %v", until)
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	accounts.FindByIDFunc = func(_ context.Context, _ uint) (*domain.Account, error) {
		return activeAccount(), nil
	}
	profiles := mocks.NewMockProfileRepository()
	profiles.FindByUserIDFunc = func(_ context.Context, _ uint) (*domain.Profile, error) {
		return &domain.Profile{UserID: 1, Role: domain.RolePractitioner}, nil
	}
	sessions := mocks.NewMockSessionRepository()
	sessions.FindByIDFunc = func(_ context.Context, sessionID string) (*domain.Session, error) {
		return &domain.Session{ID: sessionID, UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}, nil
	}
	tokens := mocks.NewMockTokenService()
	tokens.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
		if token != "valid_refresh" {
			return nil, domain.ErrTokenInvalid
		}
		return &domain.TokenClaims{UserID: 1, Role: domain.RolePractitioner, SessionID: "sess_1_1"}, nil
	}
	notifier := mocks.NewMockSessionNotifier()

	svc := NewAuthService(
		accounts, profiles, sessions,
		mocks.NewMockPasswordService(), tokens,
		mocks.NewMockOTPService(), notifier, testAuthConfig(),
	)

	result, err := svc.RefreshToken(context.Background(), "valid_refresh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SessionID != "sess_1_1" {
		t.Errorf("expected session sess_1_1, got %q", result.SessionID)
	}

	events := notifier.Recorded()
	if len(events) != 1 || events[0].Kind != "refreshed" {
		t.Fatalf("expected one refreshed transition, got %+v", events)
	}

	if _, err := svc.RefreshToken(context.Background(), "garbage"); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_RefreshToken_SessionGone(t *testing.T) {
	tokens := mocks.NewMockTokenService()
	tokens.ValidateRefreshTokenFunc = func(string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: 1, SessionID: "sess_gone"}, nil
	}

	svc := NewAuthService(
		mocks.NewMockAccountRepository(), mocks.NewMockProfileRepository(),
		mocks.NewMockSessionRepository(),
		mocks.NewMockPasswordService(), tokens,
		mocks.NewMockOTPService(), mocks.NewMockSessionNotifier(), testAuthConfig(),
	)

	if _, err := svc.RefreshToken(context.Background(), "valid_refresh"); err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	sessions := mocks.NewMockSessionRepository()
	var deletedID string
	sessions.DeleteFunc = func(_ context.Context, sessionID string) error {
		deletedID = sessionID
		return nil
	}
	notifier := mocks.NewMockSessionNotifier()

	svc := NewAuthService(
		mocks.NewMockAccountRepository(), mocks.NewMockProfileRepository(), sessions,
		mocks.NewMockPasswordService(), mocks.NewMockTokenService(),
		mocks.NewMockOTPService(), notifier, testAuthConfig(),
	)

	if err := svc.Logout(context.Background(), "sess_1_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletedID != "sess_1_1" {
		t.Errorf("expected session sess_1_1 deleted, got %q", deletedID)
	}

	// The ended transition is delivered before Logout returns.
	events := notifier.Recorded()
	if len(events) != 1 || events[0].Kind != "ended" || events[0].SessionID != "sess_1_1" {
		t.Fatalf("expected one ended transition for sess_1_1, got %+v", events)
	}
}
