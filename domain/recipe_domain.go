package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadCover     = "cover image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadCover     = "failed to upload cover image"

	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrNotRecipeOwner       = errors.New("you do not have permission to modify this recipe")
	ErrTitleRequired        = errors.New("title is required")
	ErrIngredientsRequired  = errors.New("at least one ingredient is required")
	ErrInstructionsRequired = errors.New("at least one instruction is required")
)

type (
	// RecipeFilter carries the validated filter input for the two-phase
	// recipe query. Ingredient is applied in memory after the store
	// returns; the rest become query predicates.
	RecipeFilter struct {
		Category       string `json:"category"`
		Difficulty     string `json:"difficulty"`
		MaxCookingTime int    `json:"max_cooking_time"`
		Search         string `json:"search"`
		Ingredient     string `json:"ingredient"`
	}

	CreateRecipeRequest struct {
		Title          string   `json:"title"`
		Description    string   `json:"description"`
		Ingredients    []string `json:"ingredients"`
		Instructions   []string `json:"instructions"`
		Difficulty     string   `json:"difficulty"`
		CookingTime    int      `json:"cooking_time" validate:"omitempty,min=1"`
		Category       string   `json:"category"`
		CoverImagePath string   `json:"cover_image_path"`
	}

	UpdateRecipeRequest struct {
		Title          string   `json:"title"`
		Description    string   `json:"description"`
		Ingredients    []string `json:"ingredients"`
		Instructions   []string `json:"instructions"`
		Difficulty     string   `json:"difficulty"`
		CookingTime    int      `json:"cooking_time" validate:"omitempty,min=1"`
		Category       string   `json:"category"`
		CoverImagePath string   `json:"cover_image_path"`
	}

	RecipeResponse struct {
		ID             string    `json:"id"`
		UserID         string    `json:"user_id"`
		Title          string    `json:"title"`
		Description    string    `json:"description,omitempty"`
		Ingredients    []string  `json:"ingredients"`
		Instructions   []string  `json:"instructions"`
		Difficulty     string    `json:"difficulty,omitempty"`
		CookingTime    int       `json:"cooking_time,omitempty"`
		Category       string    `json:"category,omitempty"`
		CoverImagePath string    `json:"cover_image_path,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Author       *ProfileResponse `json:"author,omitempty"`
		LikeCount    int64            `json:"like_count"`
		CommentCount int64            `json:"comment_count"`
		HasLiked     bool             `json:"has_liked"`
	}

	UploadCoverResponse struct {
		CoverImagePath string `json:"cover_image_path"`
	}
)
