package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"plateful-backend/domain"
	"plateful-backend/internal/api/presenters"
	"plateful-backend/pkg/recipe"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetLatest(c *fiber.Ctx) error
		GetMyRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		UploadCoverImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	maxCookingTime, err := strconv.Atoi(c.Query("max_cooking_time", "0"))
	if err != nil || maxCookingTime < 0 {
		maxCookingTime = 0
	}

	filter := domain.RecipeFilter{
		Category:       strings.TrimSpace(c.Query("category")),
		Difficulty:     recipe.NormalizeDifficulty(c.Query("difficulty")),
		MaxCookingTime: maxCookingTime,
		Search:         strings.TrimSpace(c.Query("search")),
		Ingredient:     strings.TrimSpace(c.Query("ingredient")),
	}

	recipes, err := h.recipeService.GetWithFilters(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"count":   len(recipes),
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetLatest(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "6"))
	if err != nil || limit < 1 {
		limit = 6
	}

	recipes, err := h.recipeService.GetLatest(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetMyRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recipes, err := h.recipeService.GetByUser(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.recipeService.GetDetail(c.Context(), recipeID, userID)
	if err != nil {
		code := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrRecipeNotFound) {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req, err := h.parseRecipeRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.Create(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	req, err := h.parseRecipeRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.Update(c.Context(), userID, recipeID, domain.UpdateRecipeRequest(*req))
	if err != nil {
		return presenters.ErrorResponse(c, recipeErrorCode(err), domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.Delete(c.Context(), userID, recipeID); err != nil {
		return presenters.ErrorResponse(c, recipeErrorCode(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) UploadCoverImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("cover_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.UploadCoverImage(c.Context(), userID, file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadCover, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadCover)
}

// parseRecipeRequest accepts either a JSON body or form data. Forms
// submit the list fields as indexed keys (ingredients[0], ingredients[1],
// ...) the way the web client serializes them.
func (h *recipeHandler) parseRecipeRequest(c *fiber.Ctx) (*domain.CreateRecipeRequest, error) {
	req := new(domain.CreateRecipeRequest)

	if c.Is("json") {
		if err := c.BodyParser(req); err != nil {
			return nil, err
		}
		return req, nil
	}

	cookingTime, err := strconv.Atoi(c.FormValue("cooking_time", "0"))
	if err != nil || cookingTime < 0 {
		cookingTime = 0
	}

	req.Title = c.FormValue("title")
	req.Description = c.FormValue("description")
	req.Ingredients = indexedFormValues(c, "ingredients")
	req.Instructions = indexedFormValues(c, "instructions")
	req.Difficulty = c.FormValue("difficulty")
	req.CookingTime = cookingTime
	req.Category = c.FormValue("category")
	req.CoverImagePath = c.FormValue("cover_image_path")

	return req, nil
}

// indexedFormValues collects field[0], field[1], ... until the first
// missing index. Blank entries are skipped, not treated as terminators,
// since forms keep empty rows the user never filled in.
func indexedFormValues(c *fiber.Ctx, field string) []string {
	var values []string
	for i := 0; ; i++ {
		key := fmt.Sprintf("%s[%d]", field, i)
		if !formHasKey(c, key) {
			break
		}
		if v := strings.TrimSpace(c.FormValue(key)); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func formHasKey(c *fiber.Ctx, key string) bool {
	if c.FormValue(key) != "" {
		return true
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		_, ok := form.Value[key]
		return ok
	}
	return len(c.Request().PostArgs().Peek(key)) > 0 || c.Request().PostArgs().Has(key)
}

func recipeErrorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotRecipeOwner):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}
