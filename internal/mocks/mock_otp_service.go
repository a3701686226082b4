package mocks

import (
	"context"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	GenerateFunc  func(ctx context.Context, phone string, userID uint) (*domain.OTPRequest, error)
	VerifyFunc    func(ctx context.Context, phone, code string, userID uint) (bool, error)
	CanResendFunc func(ctx context.Context, phone string) (bool, int64, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

func (m *MockOTPService) Generate(ctx context.Context, phone string, userID uint) (*domain.OTPRequest, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, phone, userID)
	}
	return &domain.OTPRequest{Phone: phone, UserID: userID, Code: "123456"}, nil
}

func (m *MockOTPService) Verify(ctx context.Context, phone, code string, userID uint) (bool, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, phone, code, userID)
	}
	return true, nil
}

func (m *MockOTPService) CanResend(ctx context.Context, phone string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, phone)
	}
	return true, 0, nil
}

var _ domain.OTPService = (*MockOTPService)(nil)
