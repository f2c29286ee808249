package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ellavondegurechaff/godcs/web/middleware"
)

// RegisterRoutes wires every API route onto the fiber app
func RegisterRoutes(app *fiber.App, webApp *WebApp, auth *middleware.Authenticator) {
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.LoggingMiddleware())
	app.Use(middleware.RateLimit(middleware.NewRateLimiter(120, time.Minute)))

	app.Get("/health", webApp.HandleHealth)

	api := app.Group("/api/v1")

	servers := api.Group("/servers")
	servers.Get("/", middleware.OptionalAuth(auth), webApp.HandleListServers)
	servers.Post("/", middleware.AuthRequired(auth), webApp.HandleCreateServer)
	servers.Get("/:id", middleware.OptionalAuth(auth), webApp.HandleGetServer)
	servers.Patch("/:id", middleware.AuthRequired(auth), webApp.HandleUpdateServer)
	servers.Delete("/:id", middleware.AuthRequired(auth), webApp.HandleDeleteServer)
	servers.Post("/:id/vote", middleware.AuthRequired(auth), webApp.HandleToggleVote)
	servers.Post("/:id/joins", middleware.AuthRequired(auth), webApp.HandleMemberJoin)
	servers.Post("/:id/purchases", middleware.AuthRequired(auth), webApp.HandlePurchase)
	servers.Get("/:id/purchases", middleware.AuthRequired(auth), webApp.HandleServerPurchases)
	servers.Post("/:id/theme", middleware.AuthRequired(auth), webApp.HandleApplyTheme)
	servers.Post("/:id/avatar", middleware.AuthRequired(auth), webApp.HandleUploadAvatar)

	me := api.Group("/me", middleware.AuthRequired(auth))
	me.Get("/servers", webApp.HandleMyServers)
	me.Get("/themes", webApp.HandleMyThemes)

	api.Get("/shop/items", webApp.HandleShopItems)
	api.Get("/discord/preview", webApp.HandleDiscordPreview)

	admin := api.Group("/admin", middleware.AuthRequired(auth), middleware.AdminRequired(webApp.Admin))
	admin.Post("/servers/:id/verify", webApp.HandleAdminVerify)
	admin.Post("/servers/:id/promote", webApp.HandleAdminPromote)
	admin.Post("/servers/:id/pin", webApp.HandleAdminPin)
	admin.Post("/servers/:id/credits", webApp.HandleAdminCredits)
	admin.Delete("/servers/:id", webApp.HandleAdminDeleteServer)
	admin.Post("/sweep", webApp.HandleAdminSweep)
}
