package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
)

// AdminUserReader loads users for admin checks.
type AdminUserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// AdminService gates the operator-only surface.
type AdminService struct {
	users AdminUserReader
}

// NewAdminService creates a new AdminService.
func NewAdminService(users AdminUserReader) *AdminService {
	return &AdminService{users: users}
}

// Verify returns ErrAdminRequired unless the user is an admin.
func (s *AdminService) Verify(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for admin check", "user_id", userID, "error", err)
		return err
	}
	if user == nil || !user.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}

// VerifyOperator gates operations that change cluster capacity: the caller
// must be an admin on the enterprise tier.
func (s *AdminService) VerifyOperator(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for operator check", "user_id", userID, "error", err)
		return err
	}
	if user == nil || !user.IsAdmin {
		return ErrAdminRequired
	}
	if user.SubscriptionTier != models.TierEnterprise {
		return ErrEnterpriseRequired
	}
	return nil
}
