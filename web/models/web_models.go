package models

import (
	"time"

	dbmodels "github.com/ellavondegurechaff/godcs/dcslist/database/models"
)

// ServerView is the public JSON shape of a listed server
type ServerView struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	InviteLink  string `json:"invite_link,omitempty"`
	AgeRating   string `json:"age_rating"`

	MemberCount int `json:"member_count"`
	OnlineCount int `json:"online_count"`

	IsVerified bool  `json:"is_verified"`
	Credits    int64 `json:"credits"`

	IsPromoted    bool       `json:"is_promoted"`
	IsPinned      bool       `json:"is_pinned"`
	IsBumped      bool       `json:"is_bumped"`
	BumpExpiresAt *time.Time `json:"bump_expires_at,omitempty"`

	Theme string `json:"theme,omitempty"`

	WebhookURL         string `json:"webhook_url,omitempty"`
	WebhookOnMilestone bool   `json:"webhook_on_milestone"`
	WebhookOnJoin      bool   `json:"webhook_on_join"`
	MilestoneThreshold int    `json:"milestone_threshold"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewServerView converts a stored server into its public shape
func NewServerView(s *dbmodels.Server) *ServerView {
	view := &ServerView{
		ID:                 s.ID,
		OwnerID:            s.OwnerID,
		Name:               s.Name,
		Description:        s.Description,
		AvatarURL:          s.AvatarURL,
		InviteLink:         s.InviteLink,
		AgeRating:          string(s.AgeRating),
		MemberCount:        s.MemberCount,
		OnlineCount:        s.OnlineCount,
		IsVerified:         s.IsVerified,
		Credits:            s.Credits,
		IsPromoted:         s.IsPromoted,
		IsPinned:           s.IsPinned,
		IsBumped:           s.IsBumped,
		Theme:              s.Theme,
		WebhookURL:         s.WebhookURL,
		WebhookOnMilestone: s.WebhookOnMilestone,
		WebhookOnJoin:      s.WebhookOnJoin,
		MilestoneThreshold: s.MilestoneThreshold,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
	if !s.BumpExpiresAt.IsZero() {
		t := s.BumpExpiresAt
		view.BumpExpiresAt = &t
	}
	return view
}

// NewServerViews converts a ranked slice in order
func NewServerViews(servers []*dbmodels.Server) []*ServerView {
	views := make([]*ServerView, len(servers))
	for i, s := range servers {
		views[i] = NewServerView(s)
	}
	return views
}

// CreateServerRequest is the POST /servers body
type CreateServerRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	AvatarURL          string `json:"avatar_url"`
	InviteLink         string `json:"invite_link"`
	AgeRating          string `json:"age_rating"`
	WebhookURL         string `json:"webhook_url"`
	WebhookOnMilestone bool   `json:"webhook_on_milestone"`
	WebhookOnJoin      bool   `json:"webhook_on_join"`
	MilestoneThreshold int    `json:"milestone_threshold"`
}

// UpdateServerRequest is the PATCH /servers/:id body; nil fields are
// left unchanged
type UpdateServerRequest struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	AvatarURL          *string `json:"avatar_url"`
	InviteLink         *string `json:"invite_link"`
	AgeRating          *string `json:"age_rating"`
	WebhookURL         *string `json:"webhook_url"`
	WebhookOnMilestone *bool   `json:"webhook_on_milestone"`
	WebhookOnJoin      *bool   `json:"webhook_on_join"`
	MilestoneThreshold *int    `json:"milestone_threshold"`
}

// PurchaseRequest is the POST /servers/:id/purchases body
type PurchaseRequest struct {
	ItemID string `json:"item_id"`
}

// ApplyThemeRequest is the POST /servers/:id/theme body
type ApplyThemeRequest struct {
	ThemeKey string `json:"theme_key"`
}

// MemberJoinRequest is the POST /servers/:id/joins body
type MemberJoinRequest struct {
	Username string `json:"username"`
}

// CreditsRequest is the admin credits adjustment body
type CreditsRequest struct {
	Amount int64 `json:"amount"`
}

// FlagRequest toggles an admin-managed server flag
type FlagRequest struct {
	Enabled bool `json:"enabled"`
}
