package catalog

import (
	"fmt"

	"pantry-planner/core/kitchen"
	"pantry-planner/core/logger"
	"pantry-planner/core/middleware/identity"
	"pantry-planner/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the ingredient catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/ingredients")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/", identity.Require(), h.HandleCreate)
}

// HandleList lists the catalog.
// @Summary List Ingredients
// @Description Lists catalog ingredients in insertion order. q filters by name, ignoring case.
// @Tags catalog
// @Produce json
// @Param q query string false "Name search"
// @Success 200 {array} kitchen.Ingredient
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /ingredients [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context(), c.Query("q"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list ingredients", zap.Error(err))
		return server.RespondError(c, err, "failed to list ingredients")
	}
	return c.JSON(items)
}

// HandleGet returns one ingredient.
// @Summary Get Ingredient
// @Tags catalog
// @Produce json
// @Param id path string true "Ingredient ID"
// @Success 200 {object} kitchen.Ingredient
// @Failure 404 {object} map[string]string "Not Found"
// @Router /ingredients/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	ing, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return server.RespondError(c, err, "failed to load ingredient")
	}
	return c.JSON(ing)
}

// HandleCreate adds an ingredient.
// @Summary Create Ingredient
// @Description Adds an ingredient to the catalog. The id is generated when omitted.
// @Tags catalog
// @Accept json
// @Produce json
// @Param ingredient body kitchen.Ingredient true "Ingredient"
// @Success 201 {object} kitchen.Ingredient
// @Failure 400 {object} map[string]string "Invalid Ingredient"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Already Exists"
// @Router /ingredients [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var ing kitchen.Ingredient
	if err := c.BodyParser(&ing); err != nil {
		return server.RespondError(c, fmt.Errorf("%w: %v", kitchen.ErrInvalid, err), "")
	}

	if err := h.service.Create(c.Context(), &ing); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Ingredient rejected", zap.Error(err))
		return server.RespondError(c, err, "failed to create ingredient")
	}
	return c.Status(fiber.StatusCreated).JSON(ing)
}
