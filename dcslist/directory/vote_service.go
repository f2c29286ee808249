package directory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
)

// VoteService toggles user votes on servers and reports vote state.
type VoteService struct {
	servers ServerStore
	votes   VoteStore
	ledger  Ledger
}

func NewVoteService(servers ServerStore, votes VoteStore, ledger Ledger) *VoteService {
	return &VoteService{
		servers: servers,
		votes:   votes,
		ledger:  ledger,
	}
}

// Toggle flips userID's vote on serverID. Adding the vote that completes a
// block of five awards the server one credit; removing a vote never does
// anything beyond decreasing the count.
func (s *VoteService) Toggle(ctx context.Context, serverID, userID string) (*models.VoteResult, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	// Resolve the server first so a dangling id fails as NotFound rather
	// than as a silent zero-count toggle.
	if _, err := s.servers.GetByID(ctx, serverID); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.ledger.ToggleVote(ctx, serverID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle vote: %w", err)
	}

	slog.Info("Vote toggled",
		slog.String("type", "vote"),
		slog.String("server_id", serverID),
		slog.String("action", result.Action),
		slog.Int("vote_count", result.VoteCount),
		slog.Int64("credits_awarded", result.CreditsAwarded),
		slog.Duration("took", time.Since(start)))

	return result, nil
}

// Count returns the server's current vote total.
func (s *VoteService) Count(ctx context.Context, serverID string) (int, error) {
	return s.votes.Count(ctx, serverID)
}

// HasVoted reports whether userID has an active vote on serverID.
func (s *VoteService) HasVoted(ctx context.Context, serverID, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.votes.HasVoted(ctx, serverID, userID)
}

// UserVotes lists the servers userID currently has votes on.
func (s *VoteService) UserVotes(ctx context.Context, userID string) ([]*models.ServerVote, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.votes.GetUserVotes(ctx, userID)
}
