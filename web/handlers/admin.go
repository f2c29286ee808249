package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	webmodels "github.com/ellavondegurechaff/godcs/web/models"
	"github.com/ellavondegurechaff/godcs/web/utils"
)

// HandleAdminVerify sets or clears a server's verified badge
func (app *WebApp) HandleAdminVerify(c *fiber.Ctx) error {
	return app.handleAdminFlag(c, app.Admin.SetVerified)
}

// HandleAdminPromote sets or clears a server's promoted placement
func (app *WebApp) HandleAdminPromote(c *fiber.Ctx) error {
	return app.handleAdminFlag(c, app.Admin.SetPromoted)
}

// HandleAdminPin sets or clears a server's pinned placement
func (app *WebApp) HandleAdminPin(c *fiber.Ctx) error {
	return app.handleAdminFlag(c, app.Admin.SetPinned)
}

func (app *WebApp) handleAdminFlag(c *fiber.Ctx, set func(ctx context.Context, serverID string, enabled bool, callerID string) error) error {
	var req webmodels.FlagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "Invalid request body", nil)
	}

	if err := set(c.Context(), c.Params("id"), req.Enabled, utils.UserID(c)); err != nil {
		return sendServiceError(c, err)
	}

	return utils.SendSuccess(c, nil, "Server updated")
}

// HandleAdminCredits grants or removes server credits
func (app *WebApp) HandleAdminCredits(c *fiber.Ctx) error {
	var req webmodels.CreditsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "Invalid request body", nil)
	}

	if err := app.Admin.AddCredits(c.Context(), c.Params("id"), req.Amount, utils.UserID(c)); err != nil {
		return sendServiceError(c, err)
	}

	return utils.SendSuccess(c, nil, "Credits updated")
}

// HandleAdminDeleteServer removes any listing regardless of ownership
func (app *WebApp) HandleAdminDeleteServer(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := app.Admin.DeleteServer(c.Context(), id, utils.UserID(c)); err != nil {
		return sendServiceError(c, err)
	}
	app.cleanupAvatar(c.Context(), id)
	return utils.SendNoContent(c)
}

// HandleAdminSweep runs the bump expiry sweep on demand. Role checks
// happen in the admin route group middleware.
func (app *WebApp) HandleAdminSweep(c *fiber.Ctx) error {
	report, err := app.Sweeper.Run(c.Context())
	if err != nil {
		return sendServiceError(c, err)
	}

	return utils.SendSuccess(c, report, "")
}
