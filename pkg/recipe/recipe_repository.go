package recipe

import (
	"context"

	"gorm.io/gorm"

	"plateful-backend/domain"
	"plateful-backend/entities"
)

type (
	RecipeRepository interface {
		Create(ctx context.Context, recipe *entities.Recipe) error
		GetByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetAll(ctx context.Context) ([]*entities.Recipe, error)
		GetByUser(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetByCategory(ctx context.Context, category string) ([]*entities.Recipe, error)
		GetByDifficulty(ctx context.Context, difficulty string) ([]*entities.Recipe, error)
		Search(ctx context.Context, query string) ([]*entities.Recipe, error)
		GetFiltered(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error)
		GetLatest(ctx context.Context, limit int) ([]*entities.Recipe, error)
		Update(ctx context.Context, recipe *entities.Recipe) error
		Delete(ctx context.Context, id string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetAll(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetByCategory(ctx context.Context, category string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetByDifficulty(ctx context.Context, difficulty string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("difficulty = ?", difficulty).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Search(ctx context.Context, query string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetFiltered runs the server-side phase of the filtered search. The
// ingredient filter is not applied here: array columns are scanned in
// memory by the service afterwards.
func (r *recipeRepository) GetFiltered(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error) {
	query := r.db.WithContext(ctx).Model(&entities.Recipe{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.MaxCookingTime > 0 {
		query = query.Where("cooking_time <= ?", filter.MaxCookingTime)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var recipes []*entities.Recipe
	if err := query.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetLatest(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Update(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}
