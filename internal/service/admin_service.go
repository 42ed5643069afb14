//go:generate mockery --name AdminService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"
	"vocab_forge/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// apiLogStatsLimit caps how many raw audit rows the stats endpoint returns.
const apiLogStatsLimit = 200

// AdminService covers the moderation surface. Every method assumes the actor
// has already passed the admin gate.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*model.UserResponse, error)
	GetUserDetail(ctx context.Context, userID uuid.UUID) (*model.AdminUserDetailResponse, error)
	DeleteUser(ctx context.Context, actor *model.User, userID uuid.UUID) error
	SetUserBlocked(ctx context.Context, actor *model.User, userID uuid.UUID, blocked bool) (*model.User, error)
	GetUserList(ctx context.Context, userID, listID uuid.UUID) (*model.ListDetailResponse, error)
	GetAPILogStats(ctx context.Context) (*model.APILogStatsResponse, error)
}

type adminService struct {
	db         *gorm.DB
	userRepo   repository.UserRepository
	listRepo   repository.ListRepository
	entryRepo  repository.EntryRepository
	apiLogRepo repository.APILogRepository
}

func NewAdminService(db *gorm.DB, userRepo repository.UserRepository, listRepo repository.ListRepository, entryRepo repository.EntryRepository, apiLogRepo repository.APILogRepository) AdminService {
	return &adminService{
		db:         db,
		userRepo:   userRepo,
		listRepo:   listRepo,
		entryRepo:  entryRepo,
		apiLogRepo: apiLogRepo,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]*model.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	responses := make([]*model.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, model.NewUserResponse(u))
	}
	return responses, nil
}

func (s *adminService) GetUserDetail(ctx context.Context, userID uuid.UUID) (*model.AdminUserDetailResponse, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	lists, err := s.listRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	numEntries, err := s.entryRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return &model.AdminUserDetailResponse{
		User:       model.NewUserResponse(user),
		Lists:      lists,
		NumEntries: numEntries,
	}, nil
}

func (s *adminService) DeleteUser(ctx context.Context, actor *model.User, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if actor.UserID == userID {
		return model.NewAppError("FORBIDDEN", "Administrators cannot delete their own account here.", "", model.ErrForbidden)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			return err
		}
		if target.IsAdmin {
			return model.NewAppError("FORBIDDEN", "Administrator accounts cannot be deleted.", "", model.ErrForbidden)
		}
		if err := s.entryRepo.DeleteByUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.listRepo.DeleteByUser(ctx, tx, userID); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, tx, userID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrForbidden) {
			return err
		}
		logger.Error("Transaction failed for DeleteUser", "error", err, "user_id", userID.String())
		return model.ErrInternalServer
	}

	logger.Info("User deleted by administrator", "user_id", userID, "actor_id", actor.UserID)
	return nil
}

func (s *adminService) SetUserBlocked(ctx context.Context, actor *model.User, userID uuid.UUID, blocked bool) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	if actor.UserID == userID {
		return nil, model.NewAppError("FORBIDDEN", "Administrators cannot block their own account.", "", model.ErrForbidden)
	}

	target, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if target.IsAdmin {
		return nil, model.NewAppError("FORBIDDEN", "Administrator accounts cannot be blocked.", "", model.ErrForbidden)
	}
	if target.IsBlocked == blocked {
		return target, nil
	}

	if err := s.userRepo.Update(ctx, s.db, userID, map[string]interface{}{"is_blocked": blocked}); err != nil {
		logger.Error("Failed to update block flag", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}
	target.IsBlocked = blocked

	logger.Info("User block flag changed", "user_id", userID, "blocked", blocked, "actor_id", actor.UserID)
	return target, nil
}

func (s *adminService) GetUserList(ctx context.Context, userID, listID uuid.UUID) (*model.ListDetailResponse, error) {
	list, err := s.listRepo.FindByID(ctx, s.db, listID)
	if err != nil {
		return nil, err
	}
	// The route binds the list to a specific account; a mismatch is a 404,
	// not a permission error.
	if list.UserID != userID {
		return nil, model.ErrNotFound
	}
	entries, err := s.entryRepo.FindByList(ctx, s.db, listID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return &model.ListDetailResponse{List: list, Entries: entries}, nil
}

func (s *adminService) GetAPILogStats(ctx context.Context) (*model.APILogStatsResponse, error) {
	logs, err := s.apiLogRepo.FindRecent(ctx, s.db, apiLogStatsLimit)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	total, successful, failed, err := s.apiLogRepo.CountTotals(ctx, s.db)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	byName, err := s.apiLogRepo.StatsByAPIName(ctx, s.db)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return &model.APILogStatsResponse{
		Logs:            logs,
		TotalCalls:      total,
		SuccessfulCalls: successful,
		FailedCalls:     failed,
		CallsByAPIName:  byName,
	}, nil
}
