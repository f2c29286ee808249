package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/ellavondegurechaff/godcs/dcslist/directory"
	lru "github.com/hashicorp/golang-lru"
)

const (
	defaultDcsBaseURL = "https://dcs.lol"
	dcsRequestTimeout = 10 * time.Second
	dcsCacheSize      = 2048
	dcsCacheTTL       = 5 * time.Minute
)

// Invite links arrive in several shapes: full discord.gg links, full
// discord.com/invite links, or a bare code.
var invitePatterns = []*regexp.Regexp{
	regexp.MustCompile(`discord\.gg/([a-zA-Z0-9-]+)`),
	regexp.MustCompile(`discord\.com/invite/([a-zA-Z0-9-]+)`),
	regexp.MustCompile(`^([a-zA-Z0-9-]+)$`),
}

// ExtractInviteCode pulls the invite code out of a Discord invite link.
// Returns "" when the link matches no known form.
func ExtractInviteCode(inviteLink string) string {
	if inviteLink == "" {
		return ""
	}
	for _, pattern := range invitePatterns {
		if match := pattern.FindStringSubmatch(inviteLink); match != nil {
			return match[1]
		}
	}
	return ""
}

// DcsService fetches live guild metadata from the dcs.lol proxy API. The
// proxy is never authoritative for stored data; every caller falls back to
// stored values when it fails.
type DcsService struct {
	baseURL string
	client  *http.Client
	cache   *lru.Cache
	now     func() time.Time
}

type cachedPreview struct {
	meta      *directory.Metadata
	fetchedAt time.Time
}

type dcsGuildResponse struct {
	Guild struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"guild"`
	ApproximateMemberCount   int `json:"approximate_member_count"`
	ApproximatePresenceCount int `json:"approximate_presence_count"`
}

func NewDcsService(baseURL string) *DcsService {
	if baseURL == "" {
		baseURL = defaultDcsBaseURL
	}
	cache, _ := lru.New(dcsCacheSize)
	return &DcsService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: dcsRequestTimeout},
		cache:   cache,
		now:     time.Now,
	}
}

// GuildPreview implements directory.MetadataProvider. Results are cached
// for five minutes per invite code. A proxy failure surfaces as
// ErrUpstreamUnavailable; an unknown invite yields nil, nil.
func (s *DcsService) GuildPreview(ctx context.Context, inviteLink string) (*directory.Metadata, error) {
	code := ExtractInviteCode(inviteLink)
	if code == "" {
		return nil, nil
	}

	if entry, ok := s.cache.Get(code); ok {
		cached := entry.(*cachedPreview)
		if s.now().Sub(cached.fetchedAt) < dcsCacheTTL {
			return cached.meta, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/v1/discord/%s", s.baseURL, code), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build dcs request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", directory.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		s.cache.Add(code, &cachedPreview{meta: nil, fetchedAt: s.now()})
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", directory.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body dcsGuildResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: bad response body: %v", directory.ErrUpstreamUnavailable, err)
	}

	guildID, _ := snowflake.Parse(body.Guild.ID)
	meta := &directory.Metadata{
		Name:        body.Guild.Name,
		Description: body.Guild.Description,
		MemberCount: body.ApproximateMemberCount,
		OnlineCount: body.ApproximatePresenceCount,
		GuildID:     guildID,
	}
	if body.Guild.Icon != "" {
		meta.Icon = fmt.Sprintf("%s/proxy/discord/icons/%s/%s", s.baseURL, body.Guild.ID, body.Guild.Icon)
	}

	s.cache.Add(code, &cachedPreview{meta: meta, fetchedAt: s.now()})
	return meta, nil
}

var _ directory.MetadataProvider = (*DcsService)(nil)
