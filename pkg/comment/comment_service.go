package comment

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plateful-backend/domain"
	"plateful-backend/entities"
	"plateful-backend/pkg/recipe"
	"plateful-backend/pkg/viewcache"
)

type (
	CommentService interface {
		GetByRecipe(ctx context.Context, recipeID string) ([]domain.CommentResponse, error)
		Create(ctx context.Context, recipeID, userID string, req domain.CreateCommentRequest) (domain.CommentResponse, error)
		Update(ctx context.Context, commentID, userID string, req domain.UpdateCommentRequest) (domain.CommentResponse, error)
		Delete(ctx context.Context, commentID, userID string) error
	}

	commentService struct {
		commentRepository CommentRepository
		recipeRepository  recipe.RecipeRepository
		views             viewcache.Cache
	}
)

func NewCommentService(commentRepository CommentRepository, recipeRepository recipe.RecipeRepository, views viewcache.Cache) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		recipeRepository:  recipeRepository,
		views:             views,
	}
}

func (s *commentService) GetByRecipe(ctx context.Context, recipeID string) ([]domain.CommentResponse, error) {
	comments, err := s.commentRepository.GetByRecipe(ctx, recipeID)
	if err != nil {
		return []domain.CommentResponse{}, nil
	}

	responses := make([]domain.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, toCommentResponse(c))
	}
	return responses, nil
}

func (s *commentService) Create(ctx context.Context, recipeID, userID string, req domain.CreateCommentRequest) (domain.CommentResponse, error) {
	if _, err := s.recipeRepository.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CommentResponse{}, err
	}

	content, err := validateContent(req.Content)
	if err != nil {
		return domain.CommentResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	now := time.Now()
	comment := &entities.Comment{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipeUUID,
		Content:  content,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.commentRepository.Create(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	_ = s.views.Invalidate(ctx, "/recipes/"+recipeID)

	return toCommentResponse(comment), nil
}

// Update only touches the content. The author check happens against the
// stored row, never against anything the caller sends.
func (s *commentService) Update(ctx context.Context, commentID, userID string, req domain.UpdateCommentRequest) (domain.CommentResponse, error) {
	comment, err := s.commentRepository.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrCommentNotFound
		}
		return domain.CommentResponse{}, err
	}

	if comment.UserID.String() != userID {
		return domain.CommentResponse{}, domain.ErrNotCommentAuthor
	}

	content, err := validateContent(req.Content)
	if err != nil {
		return domain.CommentResponse{}, err
	}

	comment.Content = content
	comment.UpdatedAt = time.Now()

	if err := s.commentRepository.Update(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	_ = s.views.Invalidate(ctx, "/recipes/"+comment.RecipeID.String())

	return toCommentResponse(comment), nil
}

func (s *commentService) Delete(ctx context.Context, commentID, userID string) error {
	comment, err := s.commentRepository.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if comment.UserID.String() != userID {
		return domain.ErrNotCommentAuthor
	}

	if err := s.commentRepository.Delete(ctx, commentID); err != nil {
		return err
	}

	_ = s.views.Invalidate(ctx, "/recipes/"+comment.RecipeID.String())

	return nil
}

// validateContent trims first, so whitespace padding neither rescues an
// empty comment nor pushes a valid one over the length limit. The limit
// counts characters, not bytes.
func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", domain.ErrCommentContentRequired
	}
	if utf8.RuneCountInString(content) > domain.MaxCommentLength {
		return "", domain.ErrCommentTooLong
	}
	return content, nil
}

func toCommentResponse(c *entities.Comment) domain.CommentResponse {
	return domain.CommentResponse{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		RecipeID:  c.RecipeID.String(),
		Content:   c.Content,
		Edited:    !c.UpdatedAt.Equal(c.CreatedAt),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
