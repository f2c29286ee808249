package directory

import (
	"sort"
	"time"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
)

// rankLess compares two servers by each perk flag in turn: pinned first,
// then promoted, then bumped and unexpired, then member count descending.
// Every flag participates independently, so a pinned and promoted server
// outranks one that is only pinned. Expiry is applied here, so a stale
// is_bumped flag in storage never ranks a server as bumped. Equal servers
// order by id ascending so the result is deterministic.
func rankLess(a, b *models.Server, now time.Time) bool {
	if a.IsPinned != b.IsPinned {
		return a.IsPinned
	}
	if a.IsPromoted != b.IsPromoted {
		return a.IsPromoted
	}
	if ab, bb := a.EffectivelyBumped(now), b.EffectivelyBumped(now); ab != bb {
		return ab
	}
	if a.MemberCount != b.MemberCount {
		return a.MemberCount > b.MemberCount
	}
	return a.ID < b.ID
}

// Rank orders servers for display. The input slice is not modified.
func Rank(servers []*models.Server, now time.Time) []*models.Server {
	ranked := make([]*models.Server, len(servers))
	copy(ranked, servers)

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankLess(ranked[i], ranked[j], now)
	})

	return ranked
}

// NormalizeBumps clears the bumped flag on servers whose bump expired
// before now, in place. Callers use this on display copies so stale
// storage flags never leak to clients between sweeps.
func NormalizeBumps(servers []*models.Server, now time.Time) {
	for _, s := range servers {
		if s.IsBumped && !s.BumpExpiresAt.After(now) {
			s.IsBumped = false
			s.BumpExpiresAt = time.Time{}
		}
	}
}
