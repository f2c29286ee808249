package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Purchase records a shop item applied to a server. ExpiresAt is derived
// from the item's duration at purchase time and is nil for permanent perks.
type Purchase struct {
	bun.BaseModel `bun:"table:purchases,alias:p"`

	ID          string     `bun:"id,pk"`
	ServerID    string     `bun:"server_id,notnull"`
	ItemID      string     `bun:"item_id,notnull"`
	PurchasedAt time.Time  `bun:"purchased_at,notnull,default:current_timestamp"`
	ExpiresAt   *time.Time `bun:"expires_at"`
	IsActive    bool       `bun:"is_active,notnull,default:true"`

	Item   *ShopItem `bun:"rel:belongs-to,join:item_id=id"`
	Server *Server   `bun:"rel:belongs-to,join:server_id=id"`
}

// PurchaseResult is returned to the caller after a successful purchase.
type PurchaseResult struct {
	Item      *ShopItem  `json:"item"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
