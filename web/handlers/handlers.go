package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ellavondegurechaff/godcs/dcslist/database"
	"github.com/ellavondegurechaff/godcs/dcslist/database/repositories"
	"github.com/ellavondegurechaff/godcs/dcslist/directory"
	"github.com/ellavondegurechaff/godcs/dcslist/services"
	webmodels "github.com/ellavondegurechaff/godcs/web/models"
	"github.com/ellavondegurechaff/godcs/web/utils"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	DB       *database.DB
	Listings *directory.ListingService
	Votes    *directory.VoteService
	Shop     *directory.ShopService
	Admin    *directory.AdminService
	Sweeper  *directory.Sweeper
	Dcs      *services.DcsService
	Avatars  *services.AvatarService
	Version  string
}

// sendServiceError maps domain errors onto the API error envelope
func sendServiceError(c *fiber.Ctx, err error) error {
	var insufficient *directory.InsufficientCreditsError
	var inactive *directory.ItemInactiveError

	switch {
	case errors.Is(err, directory.ErrNotAuthenticated):
		return utils.SendUnauthorized(c, "Authentication required")
	case errors.Is(err, directory.ErrNotAuthorized):
		return utils.SendForbidden(c, err.Error())
	case errors.As(err, &insufficient):
		return utils.SendUnprocessableEntity(c, insufficient.Error(), map[string]string{
			"required":  formatInt64(insufficient.Required),
			"available": formatInt64(insufficient.Available),
		})
	case errors.As(err, &inactive):
		return utils.SendUnprocessableEntity(c, inactive.Error(), nil)
	case repositories.IsNotFound(err):
		return utils.SendNotFound(c, "Resource not found")
	case repositories.IsConflict(err):
		return utils.SendConflict(c, err.Error(), nil)
	case errors.Is(err, directory.ErrUpstreamUnavailable):
		return utils.SendError(c, fiber.StatusBadGateway, "UPSTREAM_UNAVAILABLE",
			"Discord metadata service unavailable", nil)
	default:
		return utils.SendInternalServerError(c, "Something went wrong")
	}
}

func formatInt64(n int64) string {
	return strconv.FormatInt(n, 10)
}

// cleanupAvatar removes a deleted listing's stored avatar. Best effort:
// the listing row is already gone, so a failed object delete only leaves
// an orphaned file behind.
func (app *WebApp) cleanupAvatar(ctx context.Context, serverID string) {
	if app.Avatars == nil {
		return
	}
	if err := app.Avatars.Delete(ctx, serverID); err != nil {
		slog.Warn("Failed to delete avatar for removed listing",
			slog.String("server_id", serverID),
			slog.String("error", err.Error()))
	}
}

// HandleHealth reports service and dependency status
func (app *WebApp) HandleHealth(c *fiber.Ctx) error {
	components := map[string]webmodels.ComponentHealth{
		"database": {Status: "up"},
	}

	status := "ok"
	if err := app.DB.Ping(c.Context()); err != nil {
		components["database"] = webmodels.ComponentHealth{
			Status:  "down",
			Message: err.Error(),
		}
		status = "degraded"
	}

	return utils.SendJSON(c, fiber.StatusOK, webmodels.HealthCheck{
		Status:     status,
		Timestamp:  time.Now(),
		Version:    app.Version,
		Components: components,
	})
}
