package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/ellavondegurechaff/godcs/web/models"
	"github.com/ellavondegurechaff/godcs/web/utils"
)

// HandleShopItems lists active shop items
func (app *WebApp) HandleShopItems(c *fiber.Ctx) error {
	items, err := app.Shop.Items(c.Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, items, "")
}

// HandlePurchase buys a shop item for one of the caller's servers
func (app *WebApp) HandlePurchase(c *fiber.Ctx) error {
	var req webmodels.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "Invalid request body", nil)
	}
	if req.ItemID == "" {
		return utils.SendUnprocessableEntity(c, "item_id is required", nil)
	}

	result, err := app.Shop.Purchase(c.Context(), c.Params("id"), req.ItemID, utils.UserID(c))
	if err != nil {
		return sendServiceError(c, err)
	}

	return utils.SendCreated(c, result, "Purchase complete")
}

// HandleServerPurchases lists a server's purchase history for its owner
func (app *WebApp) HandleServerPurchases(c *fiber.Ctx) error {
	purchases, err := app.Shop.ServerPurchases(c.Context(), c.Params("id"), utils.UserID(c))
	if err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, purchases, "")
}

// HandleMyThemes lists theme purchases owned by the caller
func (app *WebApp) HandleMyThemes(c *fiber.Ctx) error {
	purchases, err := app.Shop.MyThemePurchases(c.Context(), utils.UserID(c))
	if err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, purchases, "")
}

// HandleApplyTheme re-applies a previously purchased theme
func (app *WebApp) HandleApplyTheme(c *fiber.Ctx) error {
	var req webmodels.ApplyThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "Invalid request body", nil)
	}
	if req.ThemeKey == "" {
		return utils.SendUnprocessableEntity(c, "theme_key is required", nil)
	}

	if err := app.Shop.ApplyTheme(c.Context(), c.Params("id"), req.ThemeKey, utils.UserID(c)); err != nil {
		return sendServiceError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"theme": req.ThemeKey}, "Theme applied")
}
