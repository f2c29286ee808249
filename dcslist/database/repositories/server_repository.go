package repositories

import (
	"context"
	"time"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type ServerRepository interface {
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

type serverRepository struct {
	*BaseRepository
}

func NewServerRepository(db *bun.DB) ServerRepository {
	return &serverRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *serverRepository) GetByID(ctx context.Context, id string) (*models.Server, error) {
	var server models.Server
	err := r.GetDB().NewSelect().
		Model(&server).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "server", id, err)
	}
	return &server, nil
}

func (r *serverRepository) GetAll(ctx context.Context) ([]*models.Server, error) {
	var servers []*models.Server
	err := r.GetDB().NewSelect().
		Model(&servers).
		Order("member_count DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_all", "server", err)
	}
	return servers, nil
}

func (r *serverRepository) GetByOwner(ctx context.Context, ownerID string) ([]*models.Server, error) {
	var servers []*models.Server
	err := r.GetDB().NewSelect().
		Model(&servers).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_owner", "server", err)
	}
	return servers, nil
}

func (r *serverRepository) Create(ctx context.Context, server *models.Server) error {
	if server.ID == "" {
		server.ID = uuid.NewString()
	}
	now := time.Now()
	server.CreatedAt = now
	server.UpdatedAt = now

	_, err := r.GetDB().NewInsert().
		Model(server).
		Exec(ctx)
	return r.HandleErrorWithID("create", "server", server.ID, err)
}

func (r *serverRepository) Update(ctx context.Context, server *models.Server) error {
	server.UpdatedAt = time.Now()
	res, err := r.GetDB().NewUpdate().
		Model(server).
		WherePK().
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("update", "server", server.ID, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return &NotFoundError{Entity: "server", ID: server.ID}
	}
	return nil
}

func (r *serverRepository) UpdateCounts(ctx context.Context, id string, memberCount, onlineCount int) error {
	_, err := r.GetDB().NewUpdate().
		Model((*models.Server)(nil)).
		Set("member_count = ?", memberCount).
		Set("online_count = ?", onlineCount).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return r.HandleErrorWithID("update_counts", "server", id, err)
}

func (r *serverRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	return r.setFlag(ctx, id, "is_verified", verified)
}

func (r *serverRepository) SetPromoted(ctx context.Context, id string, promoted bool) error {
	return r.setFlag(ctx, id, "is_promoted", promoted)
}

func (r *serverRepository) SetPinned(ctx context.Context, id string, pinned bool) error {
	return r.setFlag(ctx, id, "is_pinned", pinned)
}

func (r *serverRepository) setFlag(ctx context.Context, id, column string, value bool) error {
	res, err := r.GetDB().NewUpdate().
		Model((*models.Server)(nil)).
		Set(column+" = ?", value).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("set_"+column, "server", id, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return &NotFoundError{Entity: "server", ID: id}
	}
	return nil
}

func (r *serverRepository) SetTheme(ctx context.Context, id string, theme string) error {
	res, err := r.GetDB().NewUpdate().
		Model((*models.Server)(nil)).
		Set("theme = ?", theme).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("set_theme", "server", id, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return &NotFoundError{Entity: "server", ID: id}
	}
	return nil
}

// AddCredits applies a relative credit adjustment. Negative amounts are
// rejected at the database level if they would take the balance below zero.
func (r *serverRepository) AddCredits(ctx context.Context, id string, amount int64) error {
	res, err := r.GetDB().NewUpdate().
		Model((*models.Server)(nil)).
		Set("credits = credits + ?", amount).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Where("credits + ? >= 0", amount).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("add_credits", "server", id, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return &NotFoundError{Entity: "server", ID: id}
	}
	return nil
}

// Delete removes the server and its dependent votes and purchases.
func (r *serverRepository) Delete(ctx context.Context, id string) error {
	return r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.ServerVote)(nil)).
			Where("server_id = ?", id).
			Exec(ctx); err != nil {
			return r.HandleErrorWithID("delete_votes", "server", id, err)
		}

		if _, err := tx.NewDelete().
			Model((*models.Purchase)(nil)).
			Where("server_id = ?", id).
			Exec(ctx); err != nil {
			return r.HandleErrorWithID("delete_purchases", "server", id, err)
		}

		res, err := tx.NewDelete().
			Model((*models.Server)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return r.HandleErrorWithID("delete", "server", id, err)
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			return &NotFoundError{Entity: "server", ID: id}
		}
		return nil
	})
}
