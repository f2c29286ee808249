package directory

import (
	"context"
	"log/slog"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
)

// AdminService gates the site-operator actions behind the owner role.
type AdminService struct {
	servers ServerStore
	roles   RoleStore
}

func NewAdminService(servers ServerStore, roles RoleStore) *AdminService {
	return &AdminService{servers: servers, roles: roles}
}

// IsAdmin reports whether userID holds the site operator role.
func (s *AdminService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.roles.HasRole(ctx, userID, models.AppRoleOwner)
}

func (s *AdminService) authorize(ctx context.Context, callerID string) error {
	if callerID == "" {
		return ErrNotAuthenticated
	}
	isAdmin, err := s.roles.HasRole(ctx, callerID, models.AppRoleOwner)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrNotAuthorized
	}
	return nil
}

// SetVerified toggles the admin-controlled verified badge.
func (s *AdminService) SetVerified(ctx context.Context, serverID string, verified bool, callerID string) error {
	if err := s.authorize(ctx, callerID); err != nil {
		return err
	}
	if err := s.servers.SetVerified(ctx, serverID, verified); err != nil {
		return err
	}
	s.logAction("verify", serverID, callerID, slog.Bool("verified", verified))
	return nil
}

// SetPromoted toggles the permanent promotion flag.
func (s *AdminService) SetPromoted(ctx context.Context, serverID string, promoted bool, callerID string) error {
	if err := s.authorize(ctx, callerID); err != nil {
		return err
	}
	if err := s.servers.SetPromoted(ctx, serverID, promoted); err != nil {
		return err
	}
	s.logAction("promote", serverID, callerID, slog.Bool("promoted", promoted))
	return nil
}

// SetPinned toggles the admin-only pin, the highest ranking tier.
func (s *AdminService) SetPinned(ctx context.Context, serverID string, pinned bool, callerID string) error {
	if err := s.authorize(ctx, callerID); err != nil {
		return err
	}
	if err := s.servers.SetPinned(ctx, serverID, pinned); err != nil {
		return err
	}
	s.logAction("pin", serverID, callerID, slog.Bool("pinned", pinned))
	return nil
}

// AddCredits grants (or, negative, removes) credits on a server. The store
// refuses adjustments that would take the balance below zero.
func (s *AdminService) AddCredits(ctx context.Context, serverID string, amount int64, callerID string) error {
	if err := s.authorize(ctx, callerID); err != nil {
		return err
	}
	if err := s.servers.AddCredits(ctx, serverID, amount); err != nil {
		return err
	}
	s.logAction("credits", serverID, callerID, slog.Int64("amount", amount))
	return nil
}

// DeleteServer removes any listing, cascading votes and purchases.
func (s *AdminService) DeleteServer(ctx context.Context, serverID, callerID string) error {
	if err := s.authorize(ctx, callerID); err != nil {
		return err
	}
	if err := s.servers.Delete(ctx, serverID); err != nil {
		return err
	}
	s.logAction("delete", serverID, callerID)
	return nil
}

func (s *AdminService) logAction(action, serverID, callerID string, attrs ...any) {
	base := []any{
		slog.String("type", "admin"),
		slog.String("action", action),
		slog.String("server_id", serverID),
		slog.String("admin_id", callerID),
	}
	slog.Info("Admin action", append(base, attrs...)...)
}
