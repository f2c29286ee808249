package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
	"github.com/uptrace/bun"
)

type UserRoleRepository interface {
	HasRole(ctx context.Context, userID string, role models.AppRole) (bool, error)
	Grant(ctx context.Context, userID string, role models.AppRole) error
	Revoke(ctx context.Context, userID string, role models.AppRole) error
}

type userRoleRepository struct {
	*BaseRepository
}

func NewUserRoleRepository(db *bun.DB) UserRoleRepository {
	return &userRoleRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *userRoleRepository) HasRole(ctx context.Context, userID string, role models.AppRole) (bool, error) {
	exists, err := r.GetDB().NewSelect().
		Model((*models.UserRole)(nil)).
		Where("user_id = ? AND role = ?", userID, role).
		Exists(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, r.HandleErrorWithID("has_role", "user_role", userID, err)
	}
	return exists, nil
}

func (r *userRoleRepository) Grant(ctx context.Context, userID string, role models.AppRole) error {
	_, err := r.GetDB().NewInsert().
		Model(&models.UserRole{UserID: userID, Role: role}).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	return r.HandleErrorWithID("grant", "user_role", userID, err)
}

func (r *userRoleRepository) Revoke(ctx context.Context, userID string, role models.AppRole) error {
	_, err := r.GetDB().NewDelete().
		Model((*models.UserRole)(nil)).
		Where("user_id = ? AND role = ?", userID, role).
		Exec(ctx)
	return r.HandleErrorWithID("revoke", "user_role", userID, err)
}
