package models

import (
	"github.com/uptrace/bun"
)

// AppRole is an application-level role. "owner" is the site operator role
// with admin powers; "serverowner" marks users who have listed a server.
type AppRole string

const (
	AppRoleOwner       AppRole = "owner"
	AppRoleServerOwner AppRole = "serverowner"
)

type UserRole struct {
	bun.BaseModel `bun:"table:user_roles,alias:ur"`

	UserID string  `bun:"user_id,pk"`
	Role   AppRole `bun:"role,pk"`
}
