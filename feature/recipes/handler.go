package recipes

import (
	"fmt"

	"pantry-planner/core/kitchen"
	"pantry-planner/core/logger"
	"pantry-planner/core/middleware/identity"
	"pantry-planner/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for recipes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the recipe routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/recipes")
	group.Get("/public", h.HandleListPublic)
	group.Get("/mine", identity.Require(), h.HandleListMine)
	group.Get("/:id", h.HandleGet)
	group.Post("/", identity.Require(), h.HandleCreate)
	group.Delete("/:id", identity.Require(), h.HandleDelete)
}

// HandleListPublic lists public recipes.
// @Summary List Public Recipes
// @Description Lists every public recipe in insertion order. q filters by name or description.
// @Tags recipes
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} recipes.View
// @Failure 422 {object} map[string]string "Broken Ingredient Reference"
// @Router /recipes/public [get]
func (h *Handler) HandleListPublic(c *fiber.Ctx) error {
	views, err := h.service.ListPublic(c.Context(), c.Query("q"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list public recipes", zap.Error(err))
		return server.RespondError(c, err, "failed to list recipes")
	}
	return c.JSON(views)
}

// HandleListMine lists the caller's recipes.
// @Summary List My Recipes
// @Tags recipes
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} recipes.View
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /recipes/mine [get]
func (h *Handler) HandleListMine(c *fiber.Ctx) error {
	views, err := h.service.ListMine(c.Context(), identity.UserID(c), c.Query("q"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list recipes", zap.Error(err))
		return server.RespondError(c, err, "failed to list recipes")
	}
	return c.JSON(views)
}

// HandleGet returns one recipe.
// @Summary Get Recipe
// @Description Returns a recipe with resolved ingredient lines. Private recipes are only visible to their owner.
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} recipes.View
// @Failure 404 {object} map[string]string "Not Found"
// @Router /recipes/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	view, err := h.service.Get(c.Context(), identity.UserID(c), c.Params("id"))
	if err != nil {
		return server.RespondError(c, err, "failed to load recipe")
	}
	return c.JSON(view)
}

// HandleCreate creates a recipe owned by the caller.
// @Summary Create Recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body kitchen.Recipe true "Recipe"
// @Success 201 {object} recipes.View
// @Failure 400 {object} map[string]string "Invalid Recipe"
// @Failure 409 {object} map[string]string "Already Exists"
// @Router /recipes [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var rec kitchen.Recipe
	if err := c.BodyParser(&rec); err != nil {
		return server.RespondError(c, fmt.Errorf("%w: %v", kitchen.ErrInvalid, err), "")
	}

	view, err := h.service.Create(c.Context(), identity.UserID(c), &rec)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Recipe rejected", zap.Error(err))
		return server.RespondError(c, err, "failed to create recipe")
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// HandleDelete deletes one of the caller's recipes.
// @Summary Delete Recipe
// @Tags recipes
// @Param id path string true "Recipe ID"
// @Success 204
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not The Owner"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /recipes/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), identity.UserID(c), c.Params("id")); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Recipe not deleted", zap.Error(err))
		return server.RespondError(c, err, "failed to delete recipe")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
