package models

import (
	"time"

	"github.com/uptrace/bun"
)

// AgeRating classifies a listed server's target audience.
type AgeRating string

const (
	AgeRatingAllAges AgeRating = "all_ages"
	AgeRatingUnder18 AgeRating = "under_18"
	AgeRating18Plus  AgeRating = "18_plus"
	AgeRatingNSFW    AgeRating = "nsfw"
)

// ValidAgeRating reports whether r is one of the known ratings.
func ValidAgeRating(r AgeRating) bool {
	switch r {
	case AgeRatingAllAges, AgeRatingUnder18, AgeRating18Plus, AgeRatingNSFW:
		return true
	}
	return false
}

// Server is a listed Discord community, not a compute server.
type Server struct {
	bun.BaseModel `bun:"table:servers,alias:s"`

	ID          string    `bun:"id,pk"`
	OwnerID     string    `bun:"owner_id,notnull"`
	Name        string    `bun:"name,notnull"`
	Description string    `bun:"description"`
	AvatarURL   string    `bun:"avatar_url"`
	InviteLink  string    `bun:"invite_link"`
	AgeRating   AgeRating `bun:"age_rating,notnull,default:'all_ages'"`

	// Counts may be overlaid with live values from the metadata proxy at
	// display time. The stored values are the fallback, never discarded.
	MemberCount int `bun:"member_count,notnull,default:0"`
	OnlineCount int `bun:"online_count,notnull,default:0"`

	IsVerified bool  `bun:"is_verified,notnull,default:false"`
	Credits    int64 `bun:"credits,notnull,default:0"`

	// Perk flags. IsBumped may be stale=true in storage between sweeps;
	// callers must derive effective bump status via EffectivelyBumped.
	IsPromoted    bool      `bun:"is_promoted,notnull,default:false"`
	IsPinned      bool      `bun:"is_pinned,notnull,default:false"`
	IsBumped      bool      `bun:"is_bumped,notnull,default:false"`
	BumpExpiresAt time.Time `bun:"bump_expires_at,nullzero"`

	Theme string `bun:"theme"`

	// Webhook notification settings, owner-configured.
	WebhookURL         string `bun:"webhook_url"`
	WebhookOnMilestone bool   `bun:"webhook_on_milestone,notnull,default:false"`
	WebhookOnJoin      bool   `bun:"webhook_on_join,notnull,default:false"`
	MilestoneThreshold int    `bun:"milestone_threshold,notnull,default:1000"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// EffectivelyBumped reports whether the server's bump is live at now.
// The stored flag alone is not trustworthy between expiry sweeps.
func (s *Server) EffectivelyBumped(now time.Time) bool {
	return s.IsBumped && s.BumpExpiresAt.After(now)
}
