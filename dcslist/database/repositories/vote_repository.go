package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
	"github.com/uptrace/bun"
)

type VoteRepository interface {
	Count(ctx context.Context, serverID string) (int, error)
	HasVoted(ctx context.Context, serverID, userID string) (bool, error)
	GetUserVotes(ctx context.Context, userID string) ([]*models.ServerVote, error)
}

type voteRepository struct {
	*BaseRepository
}

func NewVoteRepository(db *bun.DB) VoteRepository {
	return &voteRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *voteRepository) Count(ctx context.Context, serverID string) (int, error) {
	count, err := r.GetDB().NewSelect().
		Model((*models.ServerVote)(nil)).
		Where("server_id = ?", serverID).
		Count(ctx)
	if err != nil {
		return 0, r.HandleErrorWithID("count", "server_vote", serverID, err)
	}
	return count, nil
}

func (r *voteRepository) HasVoted(ctx context.Context, serverID, userID string) (bool, error) {
	exists, err := r.GetDB().NewSelect().
		Model((*models.ServerVote)(nil)).
		Where("server_id = ? AND user_id = ?", serverID, userID).
		Exists(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, r.HandleErrorWithID("has_voted", "server_vote", serverID, err)
	}
	return exists, nil
}

func (r *voteRepository) GetUserVotes(ctx context.Context, userID string) ([]*models.ServerVote, error) {
	var votes []*models.ServerVote
	err := r.GetDB().NewSelect().
		Model(&votes).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_user_votes", "server_vote", err)
	}
	return votes, nil
}
