package migration

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
)

func convertServer(ms MongoServer) *models.Server {
	now := time.Now()

	createdAt := ms.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := ms.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	threshold := int(ms.MilestoneThreshold)
	if threshold <= 0 {
		threshold = 1000
	}

	// Stale bumps are dropped at conversion time rather than imported and
	// left for the first sweep.
	bumped := ms.Bumped && ms.BumpExpires.After(now)
	bumpExpires := ms.BumpExpires
	if !bumped {
		bumpExpires = time.Time{}
	}

	return &models.Server{
		ID:                 ms.ID.Hex(),
		OwnerID:            ms.OwnerID,
		Name:               cleanseString(ms.Name),
		Description:        cleanseString(ms.Description),
		AvatarURL:          ms.AvatarURL,
		InviteLink:         ms.InviteLink,
		AgeRating:          convertAgeRating(ms.AgeRating),
		MemberCount:        int(ms.MemberCount),
		OnlineCount:        int(ms.OnlineCount),
		IsVerified:         ms.Verified,
		Credits:            ms.Credits,
		IsPromoted:         ms.Promoted,
		IsPinned:           ms.Pinned,
		IsBumped:           bumped,
		BumpExpiresAt:      bumpExpires,
		Theme:              ms.Theme,
		WebhookURL:         ms.WebhookURL,
		WebhookOnMilestone: ms.WebhookOnMilestone,
		WebhookOnJoin:      ms.WebhookOnJoin,
		MilestoneThreshold: threshold,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}

func convertVote(mv MongoVote) *models.ServerVote {
	votedAt := mv.VotedAt
	if votedAt.IsZero() {
		votedAt = time.Now()
	}
	return &models.ServerVote{
		ID:        mv.ID.Hex(),
		ServerID:  mv.ServerID.Hex(),
		UserID:    mv.UserID,
		CreatedAt: votedAt,
	}
}

func convertAgeRating(raw string) models.AgeRating {
	rating := models.AgeRating(strings.ToLower(strings.TrimSpace(raw)))
	if models.ValidAgeRating(rating) {
		return rating
	}
	return models.AgeRatingAllAges
}

// cleanseString strips invalid UTF-8 and control characters that the old
// collection accumulated over the years
func cleanseString(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
}
