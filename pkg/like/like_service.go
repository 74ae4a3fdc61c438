package like

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plateful-backend/domain"
	"plateful-backend/entities"
	"plateful-backend/pkg/recipe"
	"plateful-backend/pkg/viewcache"
)

type (
	LikeService interface {
		Toggle(ctx context.Context, recipeID, userID string) (domain.ToggleLikeResponse, error)
		GetState(ctx context.Context, recipeID, userID string) (domain.LikeStateResponse, error)
		GetLikedRecipeIDs(ctx context.Context, userID string) ([]string, error)
	}

	likeService struct {
		likeRepository   LikeRepository
		recipeRepository recipe.RecipeRepository
		views            viewcache.Cache
	}
)

func NewLikeService(likeRepository LikeRepository, recipeRepository recipe.RecipeRepository, views viewcache.Cache) LikeService {
	return &likeService{
		likeRepository:   likeRepository,
		recipeRepository: recipeRepository,
		views:            views,
	}
}

// Toggle removes the like when one exists and creates it otherwise.
// Any authenticated user may like any recipe; there is no owner check.
// The existence check and the mutation are separate statements, so two
// racing calls for the same pair are not atomic.
func (s *likeService) Toggle(ctx context.Context, recipeID, userID string) (domain.ToggleLikeResponse, error) {
	if _, err := s.recipeRepository.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleLikeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ToggleLikeResponse{}, err
	}

	liked, err := s.likeRepository.HasLiked(ctx, recipeID, userID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	if liked {
		if err := s.likeRepository.Delete(ctx, recipeID, userID); err != nil {
			return domain.ToggleLikeResponse{}, err
		}
	} else {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return domain.ToggleLikeResponse{}, domain.ErrParseUUID
		}
		recipeUUID, err := uuid.Parse(recipeID)
		if err != nil {
			return domain.ToggleLikeResponse{}, domain.ErrParseUUID
		}

		like := &entities.Like{
			UserID:    userUUID,
			RecipeID:  recipeUUID,
			CreatedAt: time.Now(),
		}
		if err := s.likeRepository.Create(ctx, like); err != nil {
			return domain.ToggleLikeResponse{}, err
		}
	}

	count, err := s.likeRepository.Count(ctx, recipeID)
	if err != nil {
		count = 0
	}

	_ = s.views.Invalidate(ctx, "/recipes/"+recipeID, "/dashboard")

	return domain.ToggleLikeResponse{
		Liked:     !liked,
		LikeCount: count,
	}, nil
}

func (s *likeService) GetState(ctx context.Context, recipeID, userID string) (domain.LikeStateResponse, error) {
	count, err := s.likeRepository.Count(ctx, recipeID)
	if err != nil {
		return domain.LikeStateResponse{}, err
	}

	hasLiked := false
	if userID != "" {
		if liked, err := s.likeRepository.HasLiked(ctx, recipeID, userID); err == nil {
			hasLiked = liked
		}
	}

	return domain.LikeStateResponse{
		LikeCount: count,
		HasLiked:  hasLiked,
	}, nil
}

func (s *likeService) GetLikedRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	likes, err := s.likeRepository.GetByUser(ctx, userID)
	if err != nil {
		return []string{}, nil
	}

	ids := make([]string, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.RecipeID.String())
	}
	return ids, nil
}
