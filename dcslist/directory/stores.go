package directory

//go:generate mockgen -source=stores.go -destination=stores_mock_test.go -package=directory

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
)

// ServerStore is the persistence surface the directory services need for
// server rows. Satisfied by repositories.ServerRepository.
type ServerStore interface {
	GetByID(ctx context.Context, id string) (*models.Server, error)
	GetAll(ctx context.Context) ([]*models.Server, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*models.Server, error)
	Create(ctx context.Context, server *models.Server) error
	Update(ctx context.Context, server *models.Server) error
	UpdateCounts(ctx context.Context, id string, memberCount, onlineCount int) error
	SetVerified(ctx context.Context, id string, verified bool) error
	SetPromoted(ctx context.Context, id string, promoted bool) error
	SetPinned(ctx context.Context, id string, pinned bool) error
	SetTheme(ctx context.Context, id string, theme string) error
	AddCredits(ctx context.Context, id string, amount int64) error
	Delete(ctx context.Context, id string) error
}

// VoteStore provides read access to votes. Mutation goes through the Ledger
// so the toggle and credit accrual share a transaction.
type VoteStore interface {
	Count(ctx context.Context, serverID string) (int, error)
	HasVoted(ctx context.Context, serverID, userID string) (bool, error)
	GetUserVotes(ctx context.Context, userID string) ([]*models.ServerVote, error)
}

// ShopItemStore provides read access to the shop catalog.
type ShopItemStore interface {
	GetByID(ctx context.Context, id string) (*models.ShopItem, error)
	GetActive(ctx context.Context) ([]*models.ShopItem, error)
}

// PurchaseStore provides read access to purchase records.
type PurchaseStore interface {
	GetActiveByServer(ctx context.Context, serverID string) ([]*models.Purchase, error)
	GetActiveByServers(ctx context.Context, serverIDs []string) ([]*models.Purchase, error)
}

// RoleStore answers role membership questions.
type RoleStore interface {
	HasRole(ctx context.Context, userID string, role models.AppRole) (bool, error)
	Grant(ctx context.Context, userID string, role models.AppRole) error
}

// PurchaseParams is the unit of work handed to the Ledger for a purchase.
// Preconditions (ownership, balance, item active) are checked by the
// ShopService before the ledger runs; the ledger re-guards the debit.
type PurchaseParams struct {
	PurchaseID string
	ServerID   string
	Item       *models.ShopItem
	ExpiresAt  *time.Time
	ThemeKey   string
	Now        time.Time
}

// Ledger executes the multi-step economic mutations as single transactions.
// Implemented by TxManager over bun.
type Ledger interface {
	// ToggleVote removes the (serverID, userID) vote if present, otherwise
	// inserts it, recounts, and awards one credit when the new total
	// completes a block of five. Credits are never retracted on removal.
	ToggleVote(ctx context.Context, serverID, userID string) (*models.VoteResult, error)

	// ExecutePurchase inserts the purchase row, debits the server's
	// credits conditionally, and applies the perk, atomically.
	ExecutePurchase(ctx context.Context, params PurchaseParams) error

	// ExpireBumps clears is_bumped/bump_expires_at on every server whose
	// bump expired before now and reports which servers were touched.
	ExpireBumps(ctx context.Context, now time.Time) ([]models.ExpiredServer, error)
}

// Metadata is the live guild snapshot from the Discord metadata proxy.
type Metadata struct {
	Name        string
	Description string
	Icon        string
	MemberCount int
	OnlineCount int
	GuildID     snowflake.ID
}

// MetadataProvider refreshes display-time guild data. A nil result with a
// nil error means the proxy had nothing; errors must be treated as
// fail-open by callers.
type MetadataProvider interface {
	GuildPreview(ctx context.Context, inviteLink string) (*Metadata, error)
}

// Notifier delivers best-effort owner notifications. Implementations must
// never propagate delivery failures into the calling operation.
type Notifier interface {
	NotifyMilestone(ctx context.Context, server *models.Server, memberCount int)
	NotifyJoin(ctx context.Context, server *models.Server, username string)
}
