package domain

import "context"

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByPhone(ctx context.Context, phone string) (*Account, error)
	FindByID(ctx context.Context, id uint) (*Account, error)
	Update(ctx context.Context, account *Account) error
	ActivatePhone(ctx context.Context, userID uint) error
}

// ProfileRepository defines profile data access operations. Profiles are
// created once at sign-up and only ever read afterwards.
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	FindByUserID(ctx context.Context, userID uint) (*Profile, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, phone, password, fullName string, role Role) (*Account, error)
	Login(ctx context.Context, email, password string, rememberMe bool) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
}

// SessionSource is the read side of the session store as seen by the
// auth-state provider: a best-effort synchronous read of the current
// session plus push notifications for session transitions. A nil session
// in the callback means signed out.
type SessionSource interface {
	CurrentSession() *Session
	OnSessionChange(fn func(*Session)) (unsubscribe func())
}

// SessionNotifier receives session lifecycle transitions from the auth
// service so that derived auth state can be kept current.
type SessionNotifier interface {
	SessionStarted(ctx context.Context, session *Session)
	SessionRefreshed(ctx context.Context, session *Session)
	SessionEnded(ctx context.Context, sessionID string)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, role Role, sessionID string) (string, error)
	GenerateRefreshToken(userID uint, role Role, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// OTPService defines OTP operations
type OTPService interface {
	Generate(ctx context.Context, phone string, userID uint) (*OTPRequest, error)
	Verify(ctx context.Context, phone, code string, userID uint) (bool, error)
	CanResend(ctx context.Context, phone string) (bool, int64, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// PolicyService manages route permissions. Permissions are granted to roles,
// never to individual accounts, so every operation takes a Role from the
// closed enum rather than a free-form subject string.
type PolicyService interface {
	AddPolicy(role Role, resource, action string) error
	RemovePolicy(role Role, resource, action string) error
	CheckPermission(role Role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// ChatResponder answers wellness questions from a fixed keyword table
type ChatResponder interface {
	Reply(message string) *ChatReply
}

// ChatReply is a canned chatbot answer with follow-up suggestions
type ChatReply struct {
	Text        string   `json:"text"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      Role   `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// CasbinEnforcer defines the methods we need from the Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
