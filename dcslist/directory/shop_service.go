package directory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
	"github.com/google/uuid"
)

// ShopService validates and applies shop purchases against server credit
// balances.
type ShopService struct {
	servers   ServerStore
	items     ShopItemStore
	purchases PurchaseStore
	ledger    Ledger
	now       func() time.Time
}

func NewShopService(servers ServerStore, items ShopItemStore, purchases PurchaseStore, ledger Ledger) *ShopService {
	return &ShopService{
		servers:   servers,
		items:     items,
		purchases: purchases,
		ledger:    ledger,
		now:       time.Now,
	}
}

// Items returns the purchasable catalog, cheapest first.
func (s *ShopService) Items(ctx context.Context) ([]*models.ShopItem, error) {
	return s.items.GetActive(ctx)
}

// Purchase buys itemID for serverID on behalf of callerID. Preconditions
// are checked in order: ownership, balance, item active. On success the
// purchase row, the debit, and the perk apply as one transaction.
func (s *ShopService) Purchase(ctx context.Context, serverID, itemID, callerID string) (*models.PurchaseResult, error) {
	if callerID == "" {
		return nil, ErrNotAuthenticated
	}

	server, err := s.servers.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if server.OwnerID != callerID {
		return nil, fmt.Errorf("%w: you can only purchase for your own servers", ErrNotAuthorized)
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, &ItemInactiveError{ItemID: itemID}
	}

	if server.Credits < item.Price {
		return nil, &InsufficientCreditsError{
			Required:  item.Price,
			Available: server.Credits,
		}
	}

	now := s.now()
	var expiresAt *time.Time
	if item.DurationHours != nil && *item.DurationHours > 0 {
		exp := now.Add(time.Duration(*item.DurationHours) * time.Hour)
		expiresAt = &exp
	}

	params := PurchaseParams{
		PurchaseID: uuid.NewString(),
		ServerID:   serverID,
		Item:       item,
		ExpiresAt:  expiresAt,
		Now:        now,
	}
	if item.Type == models.ShopItemTypeTheme {
		params.ThemeKey = DeriveThemeKey(item.Name)
	}

	if err := s.ledger.ExecutePurchase(ctx, params); err != nil {
		return nil, err
	}

	slog.Info("Purchase completed",
		slog.String("type", "shop"),
		slog.String("server_id", serverID),
		slog.String("item", item.Name),
		slog.String("item_type", string(item.Type)),
		slog.Int64("price", item.Price))

	return &models.PurchaseResult{Item: item, ExpiresAt: expiresAt}, nil
}

// ServerPurchases lists active purchases for a server; only its owner may
// see them.
func (s *ShopService) ServerPurchases(ctx context.Context, serverID, callerID string) ([]*models.Purchase, error) {
	if callerID == "" {
		return nil, ErrNotAuthenticated
	}

	server, err := s.servers.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if server.OwnerID != callerID {
		return nil, ErrNotAuthorized
	}

	return s.purchases.GetActiveByServer(ctx, serverID)
}

// MyThemePurchases returns the caller's owned theme purchases across all
// their servers, so a previously bought theme can be re-applied for free.
func (s *ShopService) MyThemePurchases(ctx context.Context, callerID string) ([]*models.Purchase, error) {
	if callerID == "" {
		return nil, ErrNotAuthenticated
	}

	servers, err := s.servers.GetByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if len(servers) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(servers))
	for _, server := range servers {
		ids = append(ids, server.ID)
	}

	purchases, err := s.purchases.GetActiveByServers(ctx, ids)
	if err != nil {
		return nil, err
	}

	themes := purchases[:0]
	for _, p := range purchases {
		if p.Item != nil && p.Item.Type == models.ShopItemTypeTheme {
			themes = append(themes, p)
		}
	}
	return themes, nil
}

// ApplyTheme sets an already-owned theme on one of the caller's servers.
// The key must match one of the caller's active theme purchases, so a
// request cannot apply a theme nobody paid for.
func (s *ShopService) ApplyTheme(ctx context.Context, serverID, themeKey, callerID string) error {
	if callerID == "" {
		return ErrNotAuthenticated
	}

	server, err := s.servers.GetByID(ctx, serverID)
	if err != nil {
		return err
	}
	if server.OwnerID != callerID {
		return ErrNotAuthorized
	}

	owned, err := s.MyThemePurchases(ctx, callerID)
	if err != nil {
		return err
	}
	for _, p := range owned {
		if p.Item != nil && DeriveThemeKey(p.Item.Name) == themeKey {
			return s.servers.SetTheme(ctx, serverID, themeKey)
		}
	}
	return fmt.Errorf("%w: theme %q has not been purchased", ErrNotAuthorized, themeKey)
}

// DeriveThemeKey turns a theme item's display name into the server theme
// key: lowercased, a trailing "theme" word stripped, whitespace collapsed
// to hyphens. "Ocean Breeze Theme" becomes "ocean-breeze". Only the final
// word is stripped, so a name like "Themed Night" keeps its stem.
func DeriveThemeKey(itemName string) string {
	key := strings.ToLower(strings.TrimSpace(itemName))
	key = strings.TrimSuffix(key, " theme")
	return strings.Join(strings.Fields(key), "-")
}
