package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// ProfileRepositoryImpl implements domain.ProfileRepository using GORM
type ProfileRepositoryImpl struct {
	db *gorm.DB
}

// DBProfile represents the database model for Profile (with GORM tags).
// The role column is written once at sign-up and never updated.
type DBProfile struct {
	UserID    uint   `gorm:"primaryKey"`
	Role      string `gorm:"index;size:32"`
	FullName  string `gorm:"size:255"`
	AvatarURL string `gorm:"size:512"`
	Phone     string `gorm:"size:32"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBProfile) TableName() string {
	return "profiles"
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) domain.ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Create implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *domain.Profile) error {
	var existing DBProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == nil {
		return domain.ErrProfileExists
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(r.domainToDB(profile)).Error
}

// FindByUserID implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.Profile, error) {
	var dbProfile DBProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbProfile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProfile), nil
}

func (r *ProfileRepositoryImpl) domainToDB(profile *domain.Profile) *DBProfile {
	return &DBProfile{
		UserID:    profile.UserID,
		Role:      string(profile.Role),
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
		Phone:     profile.Phone,
	}
}

func (r *ProfileRepositoryImpl) dbToDomain(dbProfile *DBProfile) *domain.Profile {
	return &domain.Profile{
		UserID:    dbProfile.UserID,
		Role:      domain.Role(dbProfile.Role),
		FullName:  dbProfile.FullName,
		AvatarURL: dbProfile.AvatarURL,
		Phone:     dbProfile.Phone,
		CreatedAt: dbProfile.CreatedAt,
		UpdatedAt: dbProfile.UpdatedAt,
	}
}
