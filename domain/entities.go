package domain

import "time"

// Account represents an authentication account (credentials and contact info)
type Account struct {
	ID            uint
	Email         string
	Phone         string
	PasswordHash  string `gorm:"column:password"`
	IsActive      bool
	PhoneVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Profile associates an account with its role and display attributes.
// The role is chosen at sign-up and never changes afterwards; there is at
// most one profile per account.
type Profile struct {
	UserID    uint
	Role      Role
	FullName  string
	AvatarURL string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session represents an authenticated session held in the session store
type Session struct {
	ID         string
	UserID     uint
	RememberMe bool
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// AuthResult represents the outcome of a successful sign-in or refresh
type AuthResult struct {
	Account      *Account
	Profile      *Profile
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresIn    int64
}

// AuthRequest represents sign-in credentials
type AuthRequest struct {
	Email      string
	Password   string
	RememberMe bool
}

// OTPRequest represents phone verification data
type OTPRequest struct {
	Phone     string
	Code      string
	UserID    uint
	ExpiresAt time.Time
	Attempts  int
}
