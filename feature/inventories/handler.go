package inventories

import (
	"fmt"

	"pantry-planner/core/kitchen"
	"pantry-planner/core/logger"
	"pantry-planner/core/middleware/identity"
	"pantry-planner/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventories.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateRequest is the body of POST /inventories.
type CreateRequest struct {
	ID    string                  `json:"id"`
	Name  string                  `json:"name"`
	Items []kitchen.InventoryItem `json:"items"`
}

// ItemRequest is the body of PUT /inventories/:id/items/:ingredient.
type ItemRequest struct {
	Quantity float64 `json:"quantity"`
}

// RegisterRoutes registers the inventory routes. Every route needs a caller.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventories", identity.Require())
	group.Get("/mine", h.HandleListMine)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Delete("/:id", h.HandleDelete)
	group.Put("/:id/items/:ingredient", h.HandleSetItem)
	group.Delete("/:id/items/:ingredient", h.HandleRemoveItem)
}

// HandleListMine lists the caller's inventories.
// @Summary List My Inventories
// @Tags inventories
// @Produce json
// @Success 200 {array} inventories.View
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /inventories/mine [get]
func (h *Handler) HandleListMine(c *fiber.Ctx) error {
	views, err := h.service.ListMine(c.Context(), identity.UserID(c))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list inventories", zap.Error(err))
		return server.RespondError(c, err, "failed to list inventories")
	}
	return c.JSON(views)
}

// HandleGet returns one of the caller's inventories.
// @Summary Get Inventory
// @Tags inventories
// @Produce json
// @Param id path string true "Inventory ID"
// @Param q query string false "Ingredient name search"
// @Success 200 {object} inventories.View
// @Failure 403 {object} map[string]string "Not The Owner"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventories/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	view, err := h.service.Get(c.Context(), identity.UserID(c), c.Params("id"), c.Query("q"))
	if err != nil {
		return server.RespondError(c, err, "failed to load inventory")
	}
	return c.JSON(view)
}

// HandleCreate creates an inventory owned by the caller.
// @Summary Create Inventory
// @Tags inventories
// @Accept json
// @Produce json
// @Param inventory body inventories.CreateRequest true "Inventory"
// @Success 201 {object} inventories.View
// @Failure 400 {object} map[string]string "Invalid Inventory"
// @Router /inventories [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return server.RespondError(c, fmt.Errorf("%w: %v", kitchen.ErrInvalid, err), "")
	}

	inv := kitchen.NewInventory(req.ID, req.Name, "")
	for _, item := range req.Items {
		if _, dup := inv.Items[item.IngredientID]; dup {
			return server.RespondError(c, fmt.Errorf("%w: ingredient %s listed twice", kitchen.ErrInvalid, item.IngredientID), "")
		}
		inv.Put(kitchen.InventoryItem{IngredientID: item.IngredientID, Quantity: item.Quantity})
	}

	view, err := h.service.Create(c.Context(), identity.UserID(c), inv)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Inventory rejected", zap.Error(err))
		return server.RespondError(c, err, "failed to create inventory")
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// HandleSetItem sets the on-hand quantity of one ingredient.
// @Summary Set Inventory Item
// @Tags inventories
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param ingredient path string true "Ingredient ID"
// @Param item body inventories.ItemRequest true "Quantity"
// @Success 200 {object} inventories.View
// @Failure 400 {object} map[string]string "Invalid Quantity"
// @Failure 403 {object} map[string]string "Not The Owner"
// @Router /inventories/{id}/items/{ingredient} [put]
func (h *Handler) HandleSetItem(c *fiber.Ctx) error {
	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return server.RespondError(c, fmt.Errorf("%w: %v", kitchen.ErrInvalid, err), "")
	}

	view, err := h.service.SetItem(c.Context(), identity.UserID(c), c.Params("id"), c.Params("ingredient"), req.Quantity)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Inventory item rejected", zap.Error(err))
		return server.RespondError(c, err, "failed to update inventory")
	}
	return c.JSON(view)
}

// HandleRemoveItem removes one ingredient.
// @Summary Remove Inventory Item
// @Tags inventories
// @Param id path string true "Inventory ID"
// @Param ingredient path string true "Ingredient ID"
// @Success 204
// @Failure 403 {object} map[string]string "Not The Owner"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventories/{id}/items/{ingredient} [delete]
func (h *Handler) HandleRemoveItem(c *fiber.Ctx) error {
	err := h.service.RemoveItem(c.Context(), identity.UserID(c), c.Params("id"), c.Params("ingredient"))
	if err != nil {
		return server.RespondError(c, err, "failed to update inventory")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDelete deletes one of the caller's inventories.
// @Summary Delete Inventory
// @Tags inventories
// @Param id path string true "Inventory ID"
// @Success 204
// @Failure 403 {object} map[string]string "Not The Owner"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventories/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), identity.UserID(c), c.Params("id")); err != nil {
		return server.RespondError(c, err, "failed to delete inventory")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
