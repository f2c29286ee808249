package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ellavondegurechaff/godcs/web/utils"
)

// HandleDiscordPreview resolves live guild metadata for an invite link,
// used by the listing form before a server is saved
func (app *WebApp) HandleDiscordPreview(c *fiber.Ctx) error {
	invite := c.Query("invite")
	if invite == "" {
		return utils.SendBadRequest(c, "invite query parameter is required", nil)
	}

	meta, err := app.Dcs.GuildPreview(c.Context(), invite)
	if err != nil {
		return sendServiceError(c, err)
	}
	if meta == nil {
		return utils.SendNotFound(c, "No guild found for that invite")
	}

	return utils.SendSuccess(c, meta, "")
}
