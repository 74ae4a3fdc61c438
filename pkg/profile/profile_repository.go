package profile

import (
	"context"

	"gorm.io/gorm"

	"plateful-backend/entities"
)

type (
	ProfileRepository interface {
		GetByID(ctx context.Context, id string) (*entities.Profile, error)
		GetByUsername(ctx context.Context, username string) (*entities.Profile, error)
		GetByEmail(ctx context.Context, email string) (*entities.Profile, error)
		Create(ctx context.Context, profile *entities.Profile) error
		Update(ctx context.Context, id string, updates map[string]interface{}) error
		CountByUsername(ctx context.Context, username string) (int64, error)
	}

	profileRepository struct {
		db *gorm.DB
	}
)

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*entities.Profile, error) {
	var profile entities.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*entities.Profile, error) {
	var profile entities.Profile
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	var profile entities.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.Profile{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *profileRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Profile{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
