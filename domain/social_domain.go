package domain

import (
	"errors"
	"time"
)

const MaxCommentLength = 2000

var (
	MessageSuccessToggleLike  = "like toggled successfully"
	MessageSuccessGetLikes    = "success get likes"
	MessageSuccessGetComments = "success get comments"
	MessageSuccessAddComment  = "comment added successfully"
	MessageSuccessEditComment = "comment updated successfully"
	MessageSuccessDelComment  = "comment deleted successfully"

	MessageFailedToggleLike  = "failed to toggle like"
	MessageFailedGetLikes    = "failed to get likes"
	MessageFailedGetComments = "failed to get comments"
	MessageFailedAddComment  = "failed to create comment"
	MessageFailedEditComment = "failed to update comment"
	MessageFailedDelComment  = "failed to delete comment"

	ErrCommentNotFound        = errors.New("comment not found")
	ErrNotCommentAuthor       = errors.New("you do not have permission to modify this comment")
	ErrCommentContentRequired = errors.New("comment content is required")
	ErrCommentTooLong         = errors.New("comment must be less than 2000 characters")
)

type (
	CreateCommentRequest struct {
		Content string `json:"content"`
	}

	UpdateCommentRequest struct {
		Content string `json:"content"`
	}

	CommentResponse struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		RecipeID  string    `json:"recipe_id"`
		Content   string    `json:"content"`
		Edited    bool      `json:"edited"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	ToggleLikeResponse struct {
		Liked     bool  `json:"liked"`
		LikeCount int64 `json:"like_count"`
	}

	LikeStateResponse struct {
		LikeCount int64 `json:"like_count"`
		HasLiked  bool  `json:"has_liked"`
	}
)
