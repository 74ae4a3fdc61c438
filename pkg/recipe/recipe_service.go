package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plateful-backend/domain"
	"plateful-backend/entities"
	"plateful-backend/internal/utils/storage"
	"plateful-backend/pkg/profile"
	"plateful-backend/pkg/viewcache"
)

const detailCacheTTL = 5 * time.Minute

type (
	RecipeService interface {
		GetWithFilters(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeResponse, error)
		GetLatest(ctx context.Context, limit int) ([]domain.RecipeResponse, error)
		GetByUser(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetDetail(ctx context.Context, recipeID, userID string) (domain.RecipeDetailResponse, error)
		Create(ctx context.Context, userID string, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		Update(ctx context.Context, userID, recipeID string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		Delete(ctx context.Context, userID, recipeID string) error
		UploadCoverImage(ctx context.Context, userID string, file *multipart.FileHeader) (domain.UploadCoverResponse, error)
	}

	// LikeCounter and CommentCounter are the slices of the social
	// repositories the detail view needs.
	LikeCounter interface {
		Count(ctx context.Context, recipeID string) (int64, error)
		HasLiked(ctx context.Context, recipeID, userID string) (bool, error)
	}

	CommentCounter interface {
		Count(ctx context.Context, recipeID string) (int64, error)
	}

	recipeService struct {
		recipeRepository  RecipeRepository
		profileRepository profile.ProfileRepository
		likes             LikeCounter
		comments          CommentCounter
		uploader          storage.Uploader
		views             viewcache.Cache
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	profileRepository profile.ProfileRepository,
	likes LikeCounter,
	comments CommentCounter,
	uploader storage.Uploader,
	views viewcache.Cache,
) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		profileRepository: profileRepository,
		likes:             likes,
		comments:          comments,
		uploader:          uploader,
		views:             views,
	}
}

// GetWithFilters dispatches single-predicate filters to the dedicated
// repository reads and anything composite to the two-phase filtered
// query. Query failures degrade to an empty result, they are never
// surfaced to the caller.
func (s *recipeService) GetWithFilters(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeResponse, error) {
	var (
		recipes []*entities.Recipe
		err     error
	)

	switch {
	case filter == (domain.RecipeFilter{}):
		recipes, err = s.recipeRepository.GetAll(ctx)
	case filter == (domain.RecipeFilter{Category: filter.Category}):
		recipes, err = s.recipeRepository.GetByCategory(ctx, filter.Category)
	case filter == (domain.RecipeFilter{Difficulty: filter.Difficulty}):
		recipes, err = s.recipeRepository.GetByDifficulty(ctx, filter.Difficulty)
	case filter == (domain.RecipeFilter{Search: filter.Search}):
		recipes, err = s.recipeRepository.Search(ctx, filter.Search)
	default:
		recipes, err = s.recipeRepository.GetFiltered(ctx, filter)
	}
	if err != nil {
		return []domain.RecipeResponse{}, nil
	}

	recipes = FilterByIngredient(recipes, filter.Ingredient)
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) GetLatest(ctx context.Context, limit int) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetLatest(ctx, limit)
	if err != nil {
		return []domain.RecipeResponse{}, nil
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) GetByUser(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetByUser(ctx, userID)
	if err != nil {
		return []domain.RecipeResponse{}, nil
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) GetDetail(ctx context.Context, recipeID, userID string) (domain.RecipeDetailResponse, error) {
	var detail domain.RecipeDetailResponse

	if payload, err := s.views.Get(ctx, recipePath(recipeID)); err == nil && payload != nil {
		if json.Unmarshal(payload, &detail) == nil {
			detail.HasLiked = s.hasLiked(ctx, recipeID, userID)
			return detail, nil
		}
	}

	recipe, err := s.recipeRepository.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail, domain.ErrRecipeNotFound
		}
		return detail, err
	}

	detail.RecipeResponse = toRecipeResponse(recipe)

	if author, err := s.profileRepository.GetByID(ctx, recipe.UserID.String()); err == nil {
		authorRes := domain.ProfileResponse{
			ID:       author.ID.String(),
			FullName: author.FullName,
			Email:    author.Email,
			Bio:      author.Bio,
		}
		if author.Username != nil {
			authorRes.Username = *author.Username
		}
		detail.Author = &authorRes
	}

	if count, err := s.likes.Count(ctx, recipeID); err == nil {
		detail.LikeCount = count
	}
	if count, err := s.comments.Count(ctx, recipeID); err == nil {
		detail.CommentCount = count
	}

	// HasLiked is per-viewer and stays out of the cached payload.
	if payload, err := json.Marshal(detail); err == nil {
		_ = s.views.Set(ctx, recipePath(recipeID), payload, detailCacheTTL)
	}

	detail.HasLiked = s.hasLiked(ctx, recipeID, userID)
	return detail, nil
}

func (s *recipeService) Create(ctx context.Context, userID string, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.RecipeResponse{}, domain.ErrTitleRequired
	}
	ingredients := cleanList(req.Ingredients)
	if len(ingredients) == 0 {
		return domain.RecipeResponse{}, domain.ErrIngredientsRequired
	}
	instructions := cleanList(req.Instructions)
	if len(instructions) == 0 {
		return domain.RecipeResponse{}, domain.ErrInstructionsRequired
	}

	cookingTime := 0
	if req.CookingTime > 0 {
		cookingTime = req.CookingTime
	}

	recipe := &entities.Recipe{
		ID:             uuid.New(),
		UserID:         userUUID, // owner is always the caller
		Title:          title,
		Description:    strings.TrimSpace(req.Description),
		Ingredients:    ingredients,
		Instructions:   instructions,
		Difficulty:     NormalizeDifficulty(req.Difficulty),
		CookingTime:    cookingTime,
		Category:       strings.TrimSpace(req.Category),
		CoverImagePath: strings.TrimSpace(req.CoverImagePath),
		CreatedAt:      time.Now(),
	}

	if err := s.recipeRepository.Create(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	_ = s.views.Invalidate(ctx, "/dashboard")
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) Update(ctx context.Context, userID, recipeID string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	// Ownership is checked before any field validation.
	recipe, err := s.recipeRepository.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	if recipe.UserID.String() != userID {
		return domain.RecipeResponse{}, domain.ErrNotRecipeOwner
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.RecipeResponse{}, domain.ErrTitleRequired
	}
	ingredients := cleanList(req.Ingredients)
	if len(ingredients) == 0 {
		return domain.RecipeResponse{}, domain.ErrIngredientsRequired
	}
	instructions := cleanList(req.Instructions)
	if len(instructions) == 0 {
		return domain.RecipeResponse{}, domain.ErrInstructionsRequired
	}

	recipe.Title = title
	recipe.Description = strings.TrimSpace(req.Description)
	recipe.Ingredients = ingredients
	recipe.Instructions = instructions
	recipe.Difficulty = NormalizeDifficulty(req.Difficulty)
	recipe.CookingTime = 0
	if req.CookingTime > 0 {
		recipe.CookingTime = req.CookingTime
	}
	recipe.Category = strings.TrimSpace(req.Category)
	recipe.CoverImagePath = strings.TrimSpace(req.CoverImagePath)

	if err := s.recipeRepository.Update(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	_ = s.views.Invalidate(ctx, "/dashboard", recipePath(recipeID))
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) Delete(ctx context.Context, userID, recipeID string) error {
	recipe, err := s.recipeRepository.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if recipe.UserID.String() != userID {
		return domain.ErrNotRecipeOwner
	}

	if err := s.recipeRepository.Delete(ctx, recipeID); err != nil {
		return err
	}

	_ = s.views.Invalidate(ctx, "/dashboard", recipePath(recipeID))
	return nil
}

func (s *recipeService) UploadCoverImage(ctx context.Context, userID string, file *multipart.FileHeader) (domain.UploadCoverResponse, error) {
	path, err := s.uploader.UploadFile(ctx, file, "recipes/covers/"+userID)
	if err != nil {
		return domain.UploadCoverResponse{}, err
	}
	return domain.UploadCoverResponse{CoverImagePath: path}, nil
}

func (s *recipeService) hasLiked(ctx context.Context, recipeID, userID string) bool {
	if userID == "" {
		return false
	}
	liked, err := s.likes.HasLiked(ctx, recipeID, userID)
	if err != nil {
		return false
	}
	return liked
}

func recipePath(recipeID string) string {
	return "/recipes/" + recipeID
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:             recipe.ID.String(),
		UserID:         recipe.UserID.String(),
		Title:          recipe.Title,
		Description:    recipe.Description,
		Ingredients:    recipe.Ingredients,
		Instructions:   recipe.Instructions,
		Difficulty:     recipe.Difficulty,
		CookingTime:    recipe.CookingTime,
		Category:       recipe.Category,
		CoverImagePath: recipe.CoverImagePath,
		CreatedAt:      recipe.CreatedAt,
	}
}

func toRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}
	return result
}
