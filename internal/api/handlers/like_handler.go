package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"plateful-backend/domain"
	"plateful-backend/internal/api/presenters"
	"plateful-backend/pkg/like"
)

type (
	LikeHandler interface {
		ToggleLike(c *fiber.Ctx) error
		GetLikeState(c *fiber.Ctx) error
		GetMyLikes(c *fiber.Ctx) error
	}

	likeHandler struct {
		likeService like.LikeService
	}
)

func NewLikeHandler(likeService like.LikeService) LikeHandler {
	return &likeHandler{likeService: likeService}
}

func (h *likeHandler) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.likeService.Toggle(c.Context(), recipeID, userID)
	if err != nil {
		code := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrRecipeNotFound) {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

func (h *likeHandler) GetLikeState(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.likeService.GetState(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLikes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLikes)
}

func (h *likeHandler) GetMyLikes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	ids, err := h.likeService.GetLikedRecipeIDs(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLikes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"recipe_ids": ids}, fiber.StatusOK, domain.MessageSuccessGetLikes)
}
