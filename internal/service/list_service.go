//go:generate mockery --name ListService --output ./mocks --outpkg mocks --case=underscore
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

type ListService interface {
	SaveList(ctx context.Context, user *model.User, req *model.SaveListRequest) (*model.SaveListResponse, error)
	GetLists(ctx context.Context, user *model.User) ([]*model.VocabularyList, error)
	GetListDetail(ctx context.Context, actor *model.User, listID uuid.UUID) (*model.ListDetailResponse, error)
	RenameList(ctx context.Context, actor *model.User, listID uuid.UUID, req *model.RenameListRequest) (*model.VocabularyList, error)
	DeleteList(ctx context.Context, actor *model.User, listID uuid.UUID) error
	UpdateEntry(ctx context.Context, actor *model.User, entryID uuid.UUID, req *model.UpdateEntryRequest) (*model.VocabularyEntry, error)
	DeleteEntry(ctx context.Context, actor *model.User, entryID uuid.UUID) error
}

type listService struct {
	db        *gorm.DB
	listRepo  repository.ListRepository
	entryRepo repository.EntryRepository
}

func NewListService(db *gorm.DB, listRepo repository.ListRepository, entryRepo repository.EntryRepository) ListService {
	return &listService{
		db:        db,
		listRepo:  listRepo,
		entryRepo: entryRepo,
	}
}

// canAccess reports whether the actor may operate on a resource owned by
// ownerID. Administrators may operate on anything.
func canAccess(actor *model.User, ownerID uuid.UUID) bool {
	return actor.IsAdmin || actor.UserID == ownerID
}

func (s *listService) SaveList(ctx context.Context, user *model.User, req *model.SaveListRequest) (*model.SaveListResponse, error) {
	logger := middleware.GetLogger(ctx)

	var resp *model.SaveListResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list *model.VocabularyList
		isNewList := false

		if req.ExistingListID != nil {
			existing, err := s.listRepo.FindByID(ctx, tx, *req.ExistingListID)
			if err != nil {
				return err
			}
			if existing.UserID != user.UserID {
				return model.ErrForbidden
			}
			list = existing
		} else {
			if req.ListName == "" {
				return model.NewAppError("INVALID_INPUT", "A list name is required when no existing list is chosen.", "list_name", model.ErrInvalidInput)
			}
			// Fast path. The unique constraint on (user_id, name) stays
			// authoritative under concurrent saves.
			exists, err := s.listRepo.CheckNameExists(ctx, tx, user.UserID, req.ListName, nil)
			if err != nil {
				return model.ErrInternalServer
			}
			if exists {
				return model.NewAppError("CONFLICT", "A list with this name already exists.", "list_name", model.ErrConflict)
			}
			list = &model.VocabularyList{
				ListID: uuid.New(),
				Name:   req.ListName,
				UserID: user.UserID,
			}
			if err := s.listRepo.Create(ctx, tx, list); err != nil {
				return err
			}
			isNewList = true
		}

		entries := make([]*model.VocabularyEntry, 0, len(req.Words))
		for _, item := range req.Words {
			entries = append(entries, &model.VocabularyEntry{
				EntryID:      uuid.New(),
				OriginalWord: item.OriginalWord,
				WordType:     item.WordType,
				IPA:          item.IPA,
				DefinitionEN: item.DefinitionEN,
				DefinitionVI: item.DefinitionVI,
				ExampleEN:    item.ExampleEN,
				ListID:       list.ListID,
				UserID:       user.UserID,
			})
		}
		if err := s.entryRepo.CreateBatch(ctx, tx, entries); err != nil {
			return err
		}

		resp = &model.SaveListResponse{
			ListID:    list.ListID,
			ListName:  list.Name,
			IsNewList: isNewList,
			NumSaved:  len(entries),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrNotFound) ||
			errors.Is(err, model.ErrForbidden) || errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		logger.Error("Transaction failed for SaveList", "error", err, "user_id", user.UserID.String())
		return nil, model.ErrInternalServer
	}
	return resp, nil
}

func (s *listService) GetLists(ctx context.Context, user *model.User) ([]*model.VocabularyList, error) {
	lists, err := s.listRepo.FindByUser(ctx, s.db, user.UserID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return lists, nil
}

func (s *listService) GetListDetail(ctx context.Context, actor *model.User, listID uuid.UUID) (*model.ListDetailResponse, error) {
	list, err := s.listRepo.FindByID(ctx, s.db, listID)
	if err != nil {
		return nil, err
	}
	if !canAccess(actor, list.UserID) {
		return nil, model.ErrForbidden
	}
	entries, err := s.entryRepo.FindByList(ctx, s.db, listID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return &model.ListDetailResponse{List: list, Entries: entries}, nil
}

func (s *listService) RenameList(ctx context.Context, actor *model.User, listID uuid.UUID, req *model.RenameListRequest) (*model.VocabularyList, error) {
	logger := middleware.GetLogger(ctx)

	var renamed *model.VocabularyList
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := s.listRepo.FindByID(ctx, tx, listID)
		if err != nil {
			return err
		}
		if !canAccess(actor, list.UserID) {
			return model.ErrForbidden
		}
		if list.Name == req.NewName {
			renamed = list
			return nil
		}
		exists, err := s.listRepo.CheckNameExists(ctx, tx, list.UserID, req.NewName, &listID)
		if err != nil {
			return model.ErrInternalServer
		}
		if exists {
			return model.NewAppError("CONFLICT", "A list with this name already exists.", "new_name", model.ErrConflict)
		}
		if err := s.listRepo.Update(ctx, tx, listID, map[string]interface{}{"name": req.NewName}); err != nil {
			return err
		}
		list.Name = req.NewName
		renamed = list
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrForbidden) {
			return nil, err
		}
		logger.Error("Transaction failed for RenameList", "error", err, "list_id", listID.String())
		return nil, model.ErrInternalServer
	}
	return renamed, nil
}

func (s *listService) DeleteList(ctx context.Context, actor *model.User, listID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := s.listRepo.FindByID(ctx, tx, listID)
		if err != nil {
			return err
		}
		if !canAccess(actor, list.UserID) {
			return model.ErrForbidden
		}
		// Children first so a partial failure rolls back with the parent.
		if err := s.entryRepo.DeleteByList(ctx, tx, listID); err != nil {
			return err
		}
		return s.listRepo.Delete(ctx, tx, listID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrForbidden) {
			return err
		}
		logger.Error("Transaction failed for DeleteList", "error", err, "list_id", listID.String())
		return model.ErrInternalServer
	}
	return nil
}

func (s *listService) UpdateEntry(ctx context.Context, actor *model.User, entryID uuid.UUID, req *model.UpdateEntryRequest) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.VocabularyEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := s.entryRepo.FindByID(ctx, tx, entryID)
		if err != nil {
			return err
		}
		if !canAccess(actor, entry.UserID) {
			return model.ErrForbidden
		}

		updates := map[string]interface{}{}
		if req.WordType != nil {
			updates["word_type"] = *req.WordType
			entry.WordType = req.WordType
		}
		if req.DefinitionEN != nil {
			updates["definition_en"] = *req.DefinitionEN
			entry.DefinitionEN = req.DefinitionEN
		}
		if req.DefinitionVI != nil {
			updates["definition_vi"] = *req.DefinitionVI
			entry.DefinitionVI = req.DefinitionVI
		}
		if req.ExampleEN != nil {
			updates["example_en"] = *req.ExampleEN
			entry.ExampleEN = req.ExampleEN
		}
		if err := s.entryRepo.Update(ctx, tx, entryID, updates); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrForbidden) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateEntry", "error", err, "entry_id", entryID.String())
		return nil, model.ErrInternalServer
	}
	return updated, nil
}

func (s *listService) DeleteEntry(ctx context.Context, actor *model.User, entryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := s.entryRepo.FindByID(ctx, tx, entryID)
		if err != nil {
			return err
		}
		if !canAccess(actor, entry.UserID) {
			return model.ErrForbidden
		}
		return s.entryRepo.Delete(ctx, tx, entryID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrForbidden) {
			return err
		}
		logger.Error("Transaction failed for DeleteEntry", "error", err, "entry_id", entryID.String())
		return model.ErrInternalServer
	}
	return nil
}
