package like

import (
	"context"

	"gorm.io/gorm"

	"plateful-backend/entities"
)

type (
	LikeRepository interface {
		GetByRecipe(ctx context.Context, recipeID string) ([]*entities.Like, error)
		GetByUser(ctx context.Context, userID string) ([]*entities.Like, error)
		Count(ctx context.Context, recipeID string) (int64, error)
		HasLiked(ctx context.Context, recipeID, userID string) (bool, error)
		Create(ctx context.Context, like *entities.Like) error
		Delete(ctx context.Context, recipeID, userID string) error
	}

	likeRepository struct {
		db *gorm.DB
	}
)

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) GetByRecipe(ctx context.Context, recipeID string) ([]*entities.Like, error) {
	var likes []*entities.Like
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at desc").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likeRepository) GetByUser(ctx context.Context, userID string) ([]*entities.Like, error) {
	var likes []*entities.Like
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likeRepository) Count(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *likeRepository) HasLiked(ctx context.Context, recipeID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) Create(ctx context.Context, like *entities.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) Delete(ctx context.Context, recipeID, userID string) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&entities.Like{}).Error
}
