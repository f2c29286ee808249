package repositories

import (
	"context"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
	"github.com/uptrace/bun"
)

type PurchaseRepository interface {
	GetActiveByServer(ctx context.Context, serverID string) ([]*models.Purchase, error)
	GetActiveByServers(ctx context.Context, serverIDs []string) ([]*models.Purchase, error)
}

type purchaseRepository struct {
	*BaseRepository
}

func NewPurchaseRepository(db *bun.DB) PurchaseRepository {
	return &purchaseRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *purchaseRepository) GetActiveByServer(ctx context.Context, serverID string) ([]*models.Purchase, error) {
	var purchases []*models.Purchase
	err := r.GetDB().NewSelect().
		Model(&purchases).
		Where("p.server_id = ?", serverID).
		Where("p.is_active = TRUE").
		Relation("Item").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get_active_by_server", "purchase", serverID, err)
	}
	return purchases, nil
}

func (r *purchaseRepository) GetActiveByServers(ctx context.Context, serverIDs []string) ([]*models.Purchase, error) {
	if len(serverIDs) == 0 {
		return nil, nil
	}

	var purchases []*models.Purchase
	err := r.GetDB().NewSelect().
		Model(&purchases).
		Where("p.server_id IN (?)", bun.In(serverIDs)).
		Where("p.is_active = TRUE").
		Relation("Item").
		Relation("Server").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_active_by_servers", "purchase", err)
	}
	return purchases, nil
}
