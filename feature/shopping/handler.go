package shopping

import (
	"bytes"
	"fmt"

	"pantry-planner/core/kitchen"
	"pantry-planner/core/logger"
	"pantry-planner/core/middleware/identity"
	"pantry-planner/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for shopping lists.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the shopping list routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/shopping-list", identity.Require())
	group.Get("/", h.HandleGenerate)
	group.Get("/export", h.HandleExport)
}

// HandleGenerate returns the shopping list for a recipe and an inventory.
// @Summary Generate Shopping List
// @Description Lists what must be bought to cook the recipe with the inventory, in recipe order, with prices and total.
// @Tags shopping
// @Produce json
// @Param recipe query string true "Recipe ID"
// @Param inventory query string true "Inventory ID"
// @Success 200 {object} shopping.Response
// @Failure 403 {object} map[string]string "Inventory Not Owned"
// @Failure 404 {object} map[string]string "Recipe Or Inventory Not Found"
// @Failure 422 {object} map[string]string "Could Not Generate Shopping List"
// @Router /shopping-list [get]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	resp, err := h.generate(c)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(resp)
}

// HandleExport downloads the shopping list as CSV or XLSX.
// @Summary Export Shopping List
// @Tags shopping
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param recipe query string true "Recipe ID"
// @Param inventory query string true "Inventory ID"
// @Param format query string false "csv or xlsx" Enums(csv, xlsx)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Unsupported Format"
// @Router /shopping-list/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	format := c.Query("format", FormatCSV)
	if format != FormatCSV && format != FormatXLSX {
		return server.RespondError(c, fmt.Errorf("%w: unsupported export format %q", kitchen.ErrInvalid, format), "")
	}

	resp, err := h.generate(c)
	if err != nil {
		return h.respondError(c, err)
	}

	var buf bytes.Buffer
	if err := Export(&buf, resp.ShoppingList, format, resp.Currency); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Shopping list export failed", zap.Error(err))
		return server.RespondError(c, err, "failed to export shopping list")
	}

	c.Attachment(fmt.Sprintf("shopping-%s-%s.%s", resp.RecipeID, resp.InventoryID, format))
	c.Set(fiber.HeaderContentType, ContentType(format))
	return c.Send(buf.Bytes())
}

func (h *Handler) generate(c *fiber.Ctx) (*Response, error) {
	return h.service.Generate(c.Context(), identity.UserID(c), c.Query("recipe"), c.Query("inventory"))
}

// respondError reports integrity failures with a fixed message and the cause as detail.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	if server.ErrorStatus(err) == fiber.StatusUnprocessableEntity {
		l.Error("Shopping list integrity failure", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "could not generate shopping list",
			"detail": err.Error(),
		})
	}
	l.Warn("Shopping list rejected", zap.Error(err))
	return server.RespondError(c, err, "failed to generate shopping list")
}
