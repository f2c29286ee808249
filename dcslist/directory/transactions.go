package directory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
	"github.com/ellavondegurechaff/godcs/dcslist/database/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	defaultTxTimeout = 30 * time.Second

	// voteCreditBlock is the number of votes that earns a server one
	// credit. Accrual is one-way: removing a vote never retracts credits.
	voteCreditBlock = 5
)

// TransactionOptions configures transaction behavior
type TransactionOptions struct {
	IsolationLevel sql.IsolationLevel
	Timeout        time.Duration
}

// StandardTransactionOptions returns default transaction options
func StandardTransactionOptions() *TransactionOptions {
	return &TransactionOptions{
		IsolationLevel: sql.LevelReadCommitted,
		Timeout:        defaultTxTimeout,
	}
}

// SerializableTransactionOptions returns serializable isolation level options for critical operations
func SerializableTransactionOptions() *TransactionOptions {
	return &TransactionOptions{
		IsolationLevel: sql.LevelSerializable,
		Timeout:        defaultTxTimeout,
	}
}

// TxManager implements Ledger: every multi-step economic mutation runs as
// one transaction so a partial failure never leaves a server debited
// without its perk, or vice versa.
type TxManager struct {
	db *bun.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *bun.DB) *TxManager {
	return &TxManager{db: db}
}

// WithTransaction executes a function within a database transaction
func (tm *TxManager) WithTransaction(ctx context.Context, opts *TransactionOptions, fn func(context.Context, bun.Tx) error) error {
	if opts == nil {
		opts = StandardTransactionOptions()
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	tx, err := tm.db.BeginTx(timeoutCtx, &sql.TxOptions{
		Isolation: opts.IsolationLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(timeoutCtx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CreditsForVoteCount returns the credits earned by the vote that brought a
// server's total to count: one credit whenever a block of five completes.
func CreditsForVoteCount(count int) int64 {
	if count > 0 && count%voteCreditBlock == 0 {
		return 1
	}
	return 0
}

// ToggleVote flips the (serverID, userID) vote and accrues credits when an
// insert completes a block of five, all within one transaction.
func (tm *TxManager) ToggleVote(ctx context.Context, serverID, userID string) (*models.VoteResult, error) {
	var result models.VoteResult

	err := tm.WithTransaction(ctx, StandardTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*models.ServerVote)(nil)).
			Where("server_id = ? AND user_id = ?", serverID, userID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to remove vote: %w", err)
		}

		removed, _ := res.RowsAffected()
		if removed > 0 {
			result.Action = models.VoteActionRemoved
		} else {
			vote := &models.ServerVote{
				ID:        uuid.NewString(),
				ServerID:  serverID,
				UserID:    userID,
				CreatedAt: time.Now(),
			}
			if _, err := tx.NewInsert().Model(vote).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert vote: %w", err)
			}
			result.Action = models.VoteActionAdded
		}

		count, err := tx.NewSelect().
			Model((*models.ServerVote)(nil)).
			Where("server_id = ?", serverID).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count votes: %w", err)
		}
		result.VoteCount = count

		// Accrual only on insert; removals never claw credits back.
		if result.Action == models.VoteActionAdded {
			if award := CreditsForVoteCount(count); award > 0 {
				if _, err := tx.NewUpdate().
					Model((*models.Server)(nil)).
					Set("credits = credits + ?", award).
					Set("updated_at = ?", time.Now()).
					Where("id = ?", serverID).
					Exec(ctx); err != nil {
					return fmt.Errorf("failed to award vote credits: %w", err)
				}
				result.CreditsAwarded = award
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ExecutePurchase applies a validated purchase as one serializable unit:
// purchase row, conditional credit debit, perk side effect.
func (tm *TxManager) ExecutePurchase(ctx context.Context, params PurchaseParams) error {
	return tm.WithTransaction(ctx, SerializableTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		purchase := &models.Purchase{
			ID:          params.PurchaseID,
			ServerID:    params.ServerID,
			ItemID:      params.Item.ID,
			PurchasedAt: params.Now,
			ExpiresAt:   params.ExpiresAt,
			IsActive:    true,
		}
		if _, err := tx.NewInsert().Model(purchase).Exec(ctx); err != nil {
			return fmt.Errorf("failed to record purchase: %w", err)
		}

		// Guarded debit: a concurrent spend between the service's balance
		// check and this statement surfaces as zero rows, not a negative
		// balance.
		res, err := tx.NewUpdate().
			Model((*models.Server)(nil)).
			Set("credits = credits - ?", params.Item.Price).
			Set("updated_at = ?", params.Now).
			Where("id = ?", params.ServerID).
			Where("credits >= ?", params.Item.Price).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to debit credits: %w", err)
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			var balance int64
			if err := tx.NewSelect().
				Model((*models.Server)(nil)).
				Column("credits").
				Where("id = ?", params.ServerID).
				Scan(ctx, &balance); err != nil {
				return fmt.Errorf("failed to read balance after rejected debit: %w", err)
			}
			return &InsufficientCreditsError{Required: params.Item.Price, Available: balance}
		}

		perk := tx.NewUpdate().
			Model((*models.Server)(nil)).
			Set("updated_at = ?", params.Now).
			Where("id = ?", params.ServerID)

		switch params.Item.Type {
		case models.ShopItemTypeBump:
			exp := params.Now
			if params.ExpiresAt != nil {
				exp = *params.ExpiresAt
			}
			perk = perk.
				Set("is_bumped = TRUE").
				Set("bump_expires_at = ?", exp)
		case models.ShopItemTypePromotion:
			// Promotions are permanent until unset, even if the item
			// carries a duration.
			perk = perk.Set("is_promoted = TRUE")
		case models.ShopItemTypeTheme:
			perk = perk.Set("theme = ?", params.ThemeKey)
		default:
			return fmt.Errorf("unknown shop item type %q", params.Item.Type)
		}

		if _, err := perk.Exec(ctx); err != nil {
			return fmt.Errorf("failed to apply %s perk: %w", params.Item.Type, err)
		}

		return nil
	})
}

// ExpireBumps clears expired bump flags. Idempotent and safe to run
// concurrently with purchases: a re-bump after the sweep's read simply sets
// the flags forward again.
func (tm *TxManager) ExpireBumps(ctx context.Context, now time.Time) ([]models.ExpiredServer, error) {
	expired := []models.ExpiredServer{}

	err := tm.WithTransaction(ctx, StandardTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		var servers []*models.Server
		if err := tx.NewSelect().
			Model(&servers).
			Column("s.id", "s.name").
			Where("is_bumped = TRUE").
			Where("bump_expires_at < ?", now).
			Scan(ctx); err != nil {
			return fmt.Errorf("failed to fetch expired bumps: %w", err)
		}

		if len(servers) == 0 {
			return nil
		}

		ids := make([]string, 0, len(servers))
		for _, s := range servers {
			ids = append(ids, s.ID)
			expired = append(expired, models.ExpiredServer{ID: s.ID, Name: s.Name})
		}

		if _, err := tx.NewUpdate().
			Model((*models.Server)(nil)).
			Set("is_bumped = FALSE").
			Set("bump_expires_at = NULL").
			Where("id IN (?)", bun.In(ids)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear expired bumps: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return expired, nil
}

var _ Ledger = (*TxManager)(nil)
var _ ServerStore = (repositories.ServerRepository)(nil)
