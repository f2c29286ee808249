package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Profile mirrors the auth provider's user record. The ID is the subject
// claim of the provider-issued token; this table never stores credentials.
type Profile struct {
	bun.BaseModel `bun:"table:profiles,alias:pr"`

	ID        string    `bun:"id,pk"`
	Username  string    `bun:"username,notnull"`
	AvatarURL string    `bun:"avatar_url"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
