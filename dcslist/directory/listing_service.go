package directory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"
)

const metadataRefreshLimit = 8

// ListQuery filters the public server list.
type ListQuery struct {
	Search    string
	AgeRating models.AgeRating // empty = all ratings
	Refresh   bool             // overlay live counts from the metadata proxy
}

// CreateServerParams carries the owner-settable fields of a new listing.
type CreateServerParams struct {
	Name               string
	Description        string
	AvatarURL          string
	InviteLink         string
	AgeRating          models.AgeRating
	WebhookURL         string
	WebhookOnMilestone bool
	WebhookOnJoin      bool
	MilestoneThreshold int
}

// UpdateServerParams carries owner-editable profile fields; nil means
// leave unchanged. Perk flags and credits are not reachable from here.
type UpdateServerParams struct {
	Name               *string
	Description        *string
	AvatarURL          *string
	InviteLink         *string
	AgeRating          *models.AgeRating
	WebhookURL         *string
	WebhookOnMilestone *bool
	WebhookOnJoin      *bool
	MilestoneThreshold *int
}

// ListingService owns server listing CRUD, search/filtering, ranking, and
// display-time metadata refresh.
type ListingService struct {
	servers  ServerStore
	roles    RoleStore
	metadata MetadataProvider
	notifier Notifier
	now      func() time.Time
}

func NewListingService(servers ServerStore, roles RoleStore, metadata MetadataProvider, notifier Notifier) *ListingService {
	return &ListingService{
		servers:  servers,
		roles:    roles,
		metadata: metadata,
		notifier: notifier,
		now:      time.Now,
	}
}

// List returns the ranked, filtered public server list. Live member and
// online counts are overlaid from the metadata proxy when requested;
// expired bumps are normalized away regardless of sweep lag.
func (s *ListingService) List(ctx context.Context, query ListQuery) ([]*models.Server, error) {
	servers, err := s.servers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if query.Refresh {
		s.refreshCounts(ctx, servers)
	}

	now := s.now()
	NormalizeBumps(servers, now)
	servers = filterServers(servers, query)

	return Rank(servers, now), nil
}

// refreshCounts overlays live guild counts on top of the stored values.
// Proxy failures are logged and skipped: the stored counts stand.
func (s *ListingService) refreshCounts(ctx context.Context, servers []*models.Server) {
	if s.metadata == nil {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(metadataRefreshLimit)

	for _, server := range servers {
		if server.InviteLink == "" {
			continue
		}
		server := server
		g.Go(func() error {
			meta, err := s.metadata.GuildPreview(gctx, server.InviteLink)
			if err != nil {
				slog.Debug("Metadata refresh failed, keeping stored counts",
					slog.String("type", "dcs"),
					slog.String("server_id", server.ID),
					slog.Any("error", err))
				return nil
			}
			if meta == nil {
				return nil
			}

			previous := server.MemberCount
			server.MemberCount = meta.MemberCount
			server.OnlineCount = meta.OnlineCount

			if err := s.servers.UpdateCounts(gctx, server.ID, meta.MemberCount, meta.OnlineCount); err != nil {
				slog.Warn("Failed to persist refreshed counts",
					slog.String("server_id", server.ID),
					slog.Any("error", err))
			}

			if s.notifier != nil && server.WebhookOnMilestone &&
				crossedMilestone(previous, meta.MemberCount, server.MilestoneThreshold) {
				s.notifier.NotifyMilestone(gctx, server, meta.MemberCount)
			}
			return nil
		})
	}

	g.Wait()
}

// crossedMilestone reports whether the count moved from below the
// threshold to at-or-above it.
func crossedMilestone(previous, current, threshold int) bool {
	return threshold > 0 && previous < threshold && current >= threshold
}

// filterServers applies the search and age-rating filters. Search is a
// fuzzy match on name plus a substring match on description.
func filterServers(servers []*models.Server, query ListQuery) []*models.Server {
	filtered := servers
	if query.AgeRating != "" {
		byAge := filtered[:0:0]
		for _, s := range filtered {
			if s.AgeRating == query.AgeRating {
				byAge = append(byAge, s)
			}
		}
		filtered = byAge
	}

	search := strings.TrimSpace(query.Search)
	if search == "" {
		return filtered
	}

	names := make([]string, len(filtered))
	for i, s := range filtered {
		names[i] = s.Name
	}

	keep := make(map[int]bool, len(filtered))
	for _, match := range fuzzy.Find(search, names) {
		keep[match.Index] = true
	}
	lowered := strings.ToLower(search)
	for i, s := range filtered {
		if strings.Contains(strings.ToLower(s.Description), lowered) {
			keep[i] = true
		}
	}

	matched := filtered[:0:0]
	for i, s := range filtered {
		if keep[i] {
			matched = append(matched, s)
		}
	}
	return matched
}

// Get fetches a single server with normalized bump state.
func (s *ListingService) Get(ctx context.Context, id string) (*models.Server, error) {
	server, err := s.servers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	NormalizeBumps([]*models.Server{server}, s.now())
	return server, nil
}

// MyServers lists the caller's own servers, newest first.
func (s *ListingService) MyServers(ctx context.Context, callerID string) ([]*models.Server, error) {
	if callerID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.servers.GetByOwner(ctx, callerID)
}

// Create registers a new listing owned by callerID and grants them the
// serverowner role.
func (s *ListingService) Create(ctx context.Context, params CreateServerParams, callerID string) (*models.Server, error) {
	if callerID == "" {
		return nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("server name is required")
	}
	if params.AgeRating == "" {
		params.AgeRating = models.AgeRatingAllAges
	}
	if !models.ValidAgeRating(params.AgeRating) {
		return nil, fmt.Errorf("invalid age rating %q", params.AgeRating)
	}
	if params.MilestoneThreshold <= 0 {
		params.MilestoneThreshold = 1000
	}

	server := &models.Server{
		OwnerID:            callerID,
		Name:               params.Name,
		Description:        params.Description,
		AvatarURL:          params.AvatarURL,
		InviteLink:         params.InviteLink,
		AgeRating:          params.AgeRating,
		WebhookURL:         params.WebhookURL,
		WebhookOnMilestone: params.WebhookOnMilestone,
		WebhookOnJoin:      params.WebhookOnJoin,
		MilestoneThreshold: params.MilestoneThreshold,
	}

	if err := s.servers.Create(ctx, server); err != nil {
		return nil, err
	}

	if err := s.roles.Grant(ctx, callerID, models.AppRoleServerOwner); err != nil {
		slog.Warn("Failed to grant serverowner role",
			slog.String("user_id", callerID),
			slog.Any("error", err))
	}

	slog.Info("Server created",
		slog.String("type", "listing"),
		slog.String("server_id", server.ID),
		slog.String("name", server.Name))

	return server, nil
}

// Update edits a listing's profile fields. Only the owner or a site admin
// may edit.
func (s *ListingService) Update(ctx context.Context, id string, params UpdateServerParams, callerID string) (*models.Server, error) {
	server, err := s.authorizeOwnerOrAdmin(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, fmt.Errorf("server name is required")
		}
		server.Name = *params.Name
	}
	if params.Description != nil {
		server.Description = *params.Description
	}
	if params.AvatarURL != nil {
		server.AvatarURL = *params.AvatarURL
	}
	if params.InviteLink != nil {
		server.InviteLink = *params.InviteLink
	}
	if params.AgeRating != nil {
		if !models.ValidAgeRating(*params.AgeRating) {
			return nil, fmt.Errorf("invalid age rating %q", *params.AgeRating)
		}
		server.AgeRating = *params.AgeRating
	}
	if params.WebhookURL != nil {
		server.WebhookURL = *params.WebhookURL
	}
	if params.WebhookOnMilestone != nil {
		server.WebhookOnMilestone = *params.WebhookOnMilestone
	}
	if params.WebhookOnJoin != nil {
		server.WebhookOnJoin = *params.WebhookOnJoin
	}
	if params.MilestoneThreshold != nil && *params.MilestoneThreshold > 0 {
		server.MilestoneThreshold = *params.MilestoneThreshold
	}

	if err := s.servers.Update(ctx, server); err != nil {
		return nil, err
	}
	return server, nil
}

// ReportJoin records a member join event reported by the owner's
// integration and announces it over the listing's webhook when the
// owner opted in. Only the owner may report joins for a listing.
func (s *ListingService) ReportJoin(ctx context.Context, id, username, callerID string) error {
	if callerID == "" {
		return ErrNotAuthenticated
	}

	server, err := s.servers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if server.OwnerID != callerID {
		return fmt.Errorf("%w: only the owner can report joins", ErrNotAuthorized)
	}

	if s.notifier != nil {
		s.notifier.NotifyJoin(ctx, server, username)
	}
	return nil
}

// Delete removes a listing and its votes and purchases. Owner or admin.
func (s *ListingService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.authorizeOwnerOrAdmin(ctx, id, callerID); err != nil {
		return err
	}
	return s.servers.Delete(ctx, id)
}

func (s *ListingService) authorizeOwnerOrAdmin(ctx context.Context, id, callerID string) (*models.Server, error) {
	if callerID == "" {
		return nil, ErrNotAuthenticated
	}

	server, err := s.servers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if server.OwnerID == callerID {
		return server, nil
	}

	isAdmin, err := s.roles.HasRole(ctx, callerID, models.AppRoleOwner)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, ErrNotAuthorized
	}
	return server, nil
}
