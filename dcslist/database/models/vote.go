package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ServerVote is a single user's active vote on a server. The
// (server_id, user_id) pair is unique; voting again removes the row.
type ServerVote struct {
	bun.BaseModel `bun:"table:server_votes,alias:sv"`

	ID        string    `bun:"id,pk"`
	ServerID  string    `bun:"server_id,notnull,unique:server_votes_server_user_key"`
	UserID    string    `bun:"user_id,notnull,unique:server_votes_server_user_key"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// VoteResult describes the outcome of a vote toggle.
type VoteResult struct {
	Action         string `json:"action"` // "added" or "removed"
	VoteCount      int    `json:"vote_count"`
	CreditsAwarded int64  `json:"credits_awarded"`
}

const (
	VoteActionAdded   = "added"
	VoteActionRemoved = "removed"
)
