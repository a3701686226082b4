package mocks

import (
	"context"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// MockProfileRepository implements domain.ProfileRepository for testing
type MockProfileRepository struct {
	CreateFunc       func(ctx context.Context, profile *domain.Profile) error
	FindByUserIDFunc func(ctx context.Context, userID uint) (*domain.Profile, error)
}

// NewMockProfileRepository creates a new MockProfileRepository with default behaviors
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{}
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Profile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrProfileNotFound
}

var _ domain.ProfileRepository = (*MockProfileRepository)(nil)
