package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	dbmodels "github.com/ellavondegurechaff/godcs/dcslist/database/models"
	"github.com/ellavondegurechaff/godcs/dcslist/directory"
	webmodels "github.com/ellavondegurechaff/godcs/web/models"
	"github.com/ellavondegurechaff/godcs/web/utils"
)

// HandleListServers serves the directory listing with search and filters
func (app *WebApp) HandleListServers(c *fiber.Ctx) error {
	query := directory.ListQuery{
		Search:  c.Query("search"),
		Refresh: c.QueryBool("refresh"),
	}

	if rating := c.Query("age_rating"); rating != "" {
		ar := dbmodels.AgeRating(rating)
		if !dbmodels.ValidAgeRating(ar) {
			return utils.SendBadRequest(c, "Unknown age rating", map[string]string{
				"age_rating": rating,
			})
		}
		query.AgeRating = ar
	}

	servers, err := app.Listings.List(c.Context(), query)
	if err != nil {
		return sendServiceError(c, err)
	}

	return utils.SendSuccess(c, webmodels.NewServerViews(servers), "")
}

// HandleGetServer serves a single listing with its vote count
func (app *WebApp) HandleGetServer(c *fiber.Ctx) error {
	id := c.Params("id")

	server, err := app.Listings.Get(c.Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	votes, err := app.Votes.Count(c.Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	data := fiber.Map{
		"server":     webmodels.NewServerView(server),
		"vote_count": votes,
	}

	if userID := utils.UserID(c); userID != "" {
		hasVoted, err := app.Votes.HasVoted(c.Context(), id, userID)
		if err != nil {
			return sendServiceError(c, err)
		}
		data["has_voted"] = hasVoted
	}

	return utils.SendSuccess(c, data, "")
}

// HandleMyServers lists the caller's own servers
func (app *WebApp) HandleMyServers(c *fiber.Ctx) error {
	servers, err := app.Listings.MyServers(c.Context(), utils.UserID(c))
	if err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, webmodels.NewServerViews(servers), "")
}

// HandleCreateServer registers a new listing owned by the caller
func (app *WebApp) HandleCreateServer(c *fiber.Ctx) error {
	var req webmodels.CreateServerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "Invalid request body", nil)
	}

	if req.Name == "" {
		return utils.SendUnprocessableEntity(c, "Server name is required", nil)
	}

	params := directory.CreateServerParams{
		Name:               req.Name,
		Description:        req.Description,
		AvatarURL:          req.AvatarURL,
		InviteLink:         req.InviteLink,
		AgeRating:          dbmodels.AgeRating(req.AgeRating),
		WebhookURL:         req.WebhookURL,
		WebhookOnMilestone: req.WebhookOnMilestone,
		WebhookOnJoin:      req.WebhookOnJoin,
		MilestoneThreshold: req.MilestoneThreshold,
	}

	server, err := app.Listings.Create(c.Context(), params, utils.UserID(c))
	if err != nil {
		return sendServiceError(c, err)
	}

	return utils.SendCreated(c, webmodels.NewServerView(server), "Server listed")
}

// HandleUpdateServer edits a listing's owner-editable fields
func (app *WebApp) HandleUpdateServer(c *fiber.Ctx) error {
	var req webmodels.UpdateServerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "Invalid request body", nil)
	}

	params := directory.UpdateServerParams{
		Name:               req.Name,
		Description:        req.Description,
		AvatarURL:          req.AvatarURL,
		InviteLink:         req.InviteLink,
		WebhookURL:         req.WebhookURL,
		WebhookOnMilestone: req.WebhookOnMilestone,
		WebhookOnJoin:      req.WebhookOnJoin,
		MilestoneThreshold: req.MilestoneThreshold,
	}

	if req.AgeRating != nil {
		ar := dbmodels.AgeRating(*req.AgeRating)
		if !dbmodels.ValidAgeRating(ar) {
			return utils.SendBadRequest(c, "Unknown age rating", map[string]string{
				"age_rating": *req.AgeRating,
			})
		}
		params.AgeRating = &ar
	}

	server, err := app.Listings.Update(c.Context(), c.Params("id"), params, utils.UserID(c))
	if err != nil {
		return sendServiceError(c, err)
	}

	return utils.SendSuccess(c, webmodels.NewServerView(server), "Server updated")
}

// HandleDeleteServer removes a listing, its votes and purchase history
func (app *WebApp) HandleDeleteServer(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := app.Listings.Delete(c.Context(), id, utils.UserID(c)); err != nil {
		return sendServiceError(c, err)
	}
	app.cleanupAvatar(c.Context(), id)
	return utils.SendNoContent(c)
}

// HandleMemberJoin accepts a join event from the owner's integration
func (app *WebApp) HandleMemberJoin(c *fiber.Ctx) error {
	var req webmodels.MemberJoinRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "Invalid request body", nil)
	}
	if req.Username == "" {
		return utils.SendBadRequest(c, "Username is required", nil)
	}

	if err := app.Listings.ReportJoin(c.Context(), c.Params("id"), req.Username, utils.UserID(c)); err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, nil, "Join recorded")
}

// HandleToggleVote toggles the caller's vote on a server
func (app *WebApp) HandleToggleVote(c *fiber.Ctx) error {
	result, err := app.Votes.Toggle(c.Context(), c.Params("id"), utils.UserID(c))
	if err != nil {
		return sendServiceError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"action":          result.Action,
		"vote_count":      result.VoteCount,
		"credits_awarded": result.CreditsAwarded,
	}, "")
}

// HandleUploadAvatar stores an owner-provided avatar and records its URL
func (app *WebApp) HandleUploadAvatar(c *fiber.Ctx) error {
	id := c.Params("id")
	callerID := utils.UserID(c)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return utils.SendBadRequest(c, "Avatar file is required", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.SendBadRequest(c, "Could not read avatar file", nil)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.SendBadRequest(c, "Could not read avatar file", nil)
	}

	url, err := app.Avatars.Upload(c.Context(), id, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return utils.SendInternalServerError(c, "Avatar upload failed")
	}

	if _, err := app.Listings.Update(c.Context(), id, directory.UpdateServerParams{
		AvatarURL: &url,
	}, callerID); err != nil {
		return sendServiceError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"avatar_url": url}, "Avatar updated")
}
