package comment

import (
	"context"

	"gorm.io/gorm"

	"plateful-backend/entities"
)

type (
	CommentRepository interface {
		GetByRecipe(ctx context.Context, recipeID string) ([]*entities.Comment, error)
		GetByID(ctx context.Context, id string) (*entities.Comment, error)
		Count(ctx context.Context, recipeID string) (int64, error)
		Create(ctx context.Context, comment *entities.Comment) error
		Update(ctx context.Context, comment *entities.Comment) error
		Delete(ctx context.Context, id string) error
	}

	commentRepository struct {
		db *gorm.DB
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) GetByRecipe(ctx context.Context, recipeID string) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Order("created_at desc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Count(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Comment{}).Where("recipe_id = ?", recipeID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) Update(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Comment{}).Error
}
