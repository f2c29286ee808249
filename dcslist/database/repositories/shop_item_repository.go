package repositories

import (
	"context"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
	"github.com/uptrace/bun"
)

type ShopItemRepository interface {
	GetByID(ctx context.Context, id string) (*models.ShopItem, error)
	GetActive(ctx context.Context) ([]*models.ShopItem, error)
	GetByType(ctx context.Context, itemType models.ShopItemType) ([]*models.ShopItem, error)
}

type shopItemRepository struct {
	*BaseRepository
}

func NewShopItemRepository(db *bun.DB) ShopItemRepository {
	return &shopItemRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *shopItemRepository) GetByID(ctx context.Context, id string) (*models.ShopItem, error) {
	var item models.ShopItem
	err := r.GetDB().NewSelect().
		Model(&item).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "shop_item", id, err)
	}
	return &item, nil
}

func (r *shopItemRepository) GetActive(ctx context.Context) ([]*models.ShopItem, error) {
	var items []*models.ShopItem
	err := r.GetDB().NewSelect().
		Model(&items).
		Where("is_active = TRUE").
		Order("price ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_active", "shop_item", err)
	}
	return items, nil
}

func (r *shopItemRepository) GetByType(ctx context.Context, itemType models.ShopItemType) ([]*models.ShopItem, error) {
	var items []*models.ShopItem
	err := r.GetDB().NewSelect().
		Model(&items).
		Where("type = ?", itemType).
		Where("is_active = TRUE").
		Order("price ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_type", "shop_item", err)
	}
	return items, nil
}
