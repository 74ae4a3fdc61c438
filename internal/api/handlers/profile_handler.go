package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"plateful-backend/domain"
	"plateful-backend/internal/api/presenters"
	"plateful-backend/pkg/profile"
)

type (
	ProfileHandler interface {
		Me(c *fiber.Ctx) error
		UpdateMe(c *fiber.Ctx) error
		GetByUsername(c *fiber.Ctx) error
		CheckUsername(c *fiber.Ctx) error
	}

	profileHandler struct {
		profileService profile.ProfileService
		validator      *validator.Validate
	}
)

func NewProfileHandler(profileService profile.ProfileService, validator *validator.Validate) ProfileHandler {
	return &profileHandler{
		profileService: profileService,
		validator:      validator,
	}
}

func (h *profileHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.profileService.GetCurrent(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *profileHandler) UpdateMe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateProfileRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfile, err)
	}

	res, err := h.profileService.UpdateCurrent(c.Context(), userID, *req)
	if err != nil {
		code := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrUsernameTaken) {
			code = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedUpdateProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProfile)
}

func (h *profileHandler) GetByUsername(c *fiber.Ctx) error {
	username := c.Params("username")

	res, err := h.profileService.GetByUsername(c.Context(), username)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *profileHandler) CheckUsername(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckUsername, nil)
	}

	available, err := h.profileService.IsUsernameAvailable(c.Context(), username)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckUsername, err)
	}

	return presenters.SuccessResponse(c, domain.UsernameAvailabilityResponse{
		Username:  username,
		Available: available,
	}, fiber.StatusOK, domain.MessageSuccessCheckUsername)
}
