package models

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

// ShopItemType distinguishes what a purchase does to a server.
type ShopItemType string

const (
	ShopItemTypeBump      ShopItemType = "bump"
	ShopItemTypePromotion ShopItemType = "promotion"
	ShopItemTypeTheme     ShopItemType = "theme"
)

// ShopItem is a purchasable perk. DurationHours is honored for bump items
// only; promotion and theme effects are permanent regardless of it.
type ShopItem struct {
	bun.BaseModel `bun:"table:shop_items,alias:si"`

	ID            string          `bun:"id,pk"`
	Name          string          `bun:"name,notnull"`
	Description   string          `bun:"description"`
	Type          ShopItemType    `bun:"type,notnull"`
	Price         int64           `bun:"price,notnull"`
	DurationHours *int            `bun:"duration_hours"`
	ThemeData     json.RawMessage `bun:"theme_data,type:jsonb"`
	IsActive      bool            `bun:"is_active,notnull,default:true"`
	CreatedAt     time.Time       `bun:"created_at,notnull,default:current_timestamp"`
}
