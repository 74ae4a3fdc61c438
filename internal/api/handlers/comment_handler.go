package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"plateful-backend/domain"
	"plateful-backend/internal/api/presenters"
	"plateful-backend/pkg/comment"
)

type (
	CommentHandler interface {
		GetComments(c *fiber.Ctx) error
		CreateComment(c *fiber.Ctx) error
		UpdateComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
	}

	commentHandler struct {
		commentService comment.CommentService
	}
)

func NewCommentHandler(commentService comment.CommentService) CommentHandler {
	return &commentHandler{commentService: commentService}
}

func (h *commentHandler) GetComments(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.commentService.GetByRecipe(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func (h *commentHandler) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.CreateCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.commentService.Create(c.Context(), recipeID, userID, *req)
	if err != nil {
		code := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrRecipeNotFound) {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedAddComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

func (h *commentHandler) UpdateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")
	req := new(domain.UpdateCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.commentService.Update(c.Context(), commentID, userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, commentErrorCode(err), domain.MessageFailedEditComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEditComment)
}

func (h *commentHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")

	if err := h.commentService.Delete(c.Context(), commentID, userID); err != nil {
		return presenters.ErrorResponse(c, commentErrorCode(err), domain.MessageFailedDelComment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDelComment)
}

func commentErrorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrCommentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotCommentAuthor):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}
