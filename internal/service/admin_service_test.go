// internal/service/admin_service_test.go
package service

import (
	"context"
	"testing"

	"vocab_forge/internal/model"
	"vocab_forge/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAdminService(db *gorm.DB) AdminService {
	return NewAdminService(db,
		repository.NewGormUserRepository(),
		repository.NewGormListRepository(),
		repository.NewGormEntryRepository(),
		repository.NewGormAPILogRepository(),
	)
}

func Test_adminService_ListUsers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestAdminService(db)

	createTestUser(t, db, "a@example.com", "secret1", false)
	createTestUser(t, db, "b@example.com", "secret2", true)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func Test_adminService_GetUserDetail(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestAdminService(db)
	listSvc := newTestListService(db)

	user := createTestUser(t, db, "a@example.com", "secret1", false)
	saveTestList(t, listSvc, user, "Animals", "cat", "dog")

	detail, err := svc.GetUserDetail(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, detail.User.UserID)
	assert.Len(t, detail.Lists, 1)
	assert.EqualValues(t, 2, detail.NumEntries)

	_, err = svc.GetUserDetail(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_adminService_SetUserBlocked(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestAdminService(db)

	admin := createTestUser(t, db, "admin@example.com", "secret1", true)
	peer := createTestUser(t, db, "peer@example.com", "secret2", true)
	user := createTestUser(t, db, "user@example.com", "secret3", false)

	// Self-moderation is off limits.
	_, err := svc.SetUserBlocked(ctx, admin, admin.UserID, true)
	assert.ErrorIs(t, err, model.ErrForbidden)

	// So is blocking a fellow administrator.
	_, err = svc.SetUserBlocked(ctx, admin, peer.UserID, true)
	assert.ErrorIs(t, err, model.ErrForbidden)

	blocked, err := svc.SetUserBlocked(ctx, admin, user.UserID, true)
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked)

	// Setting the same state again is a no-op.
	same, err := svc.SetUserBlocked(ctx, admin, user.UserID, true)
	require.NoError(t, err)
	assert.True(t, same.IsBlocked)

	unblocked, err := svc.SetUserBlocked(ctx, admin, user.UserID, false)
	require.NoError(t, err)
	assert.False(t, unblocked.IsBlocked)
}

func Test_adminService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestAdminService(db)
	listSvc := newTestListService(db)

	admin := createTestUser(t, db, "admin@example.com", "secret1", true)
	peer := createTestUser(t, db, "peer@example.com", "secret2", true)
	user := createTestUser(t, db, "user@example.com", "secret3", false)
	saveTestList(t, listSvc, user, "Animals", "cat", "dog")

	assert.ErrorIs(t, svc.DeleteUser(ctx, admin, admin.UserID), model.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteUser(ctx, admin, peer.UserID), model.ErrForbidden)

	require.NoError(t, svc.DeleteUser(ctx, admin, user.UserID))

	var users, lists, entries int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&model.VocabularyList{}).Count(&lists).Error)
	require.NoError(t, db.Model(&model.VocabularyEntry{}).Count(&entries).Error)
	assert.EqualValues(t, 2, users)
	assert.Zero(t, lists)
	assert.Zero(t, entries)

	assert.ErrorIs(t, svc.DeleteUser(ctx, admin, user.UserID), model.ErrNotFound)
}

func Test_adminService_GetUserList(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestAdminService(db)
	listSvc := newTestListService(db)

	user := createTestUser(t, db, "user@example.com", "secret1", false)
	other := createTestUser(t, db, "other@example.com", "secret2", false)
	resp := saveTestList(t, listSvc, user, "Animals", "cat")

	detail, err := svc.GetUserList(ctx, user.UserID, resp.ListID)
	require.NoError(t, err)
	assert.Len(t, detail.Entries, 1)

	// A list id that belongs to someone else does not resolve under this user.
	_, err = svc.GetUserList(ctx, other.UserID, resp.ListID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_adminService_GetAPILogStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestAdminService(db)

	ok := true
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&model.APILog{APIName: "dictionary_api", Success: ok}).Error)
	}
	require.NoError(t, db.Create(&model.APILog{APIName: "translation_api", Success: false}).Error)

	stats, err := svc.GetAPILogStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalCalls)
	assert.EqualValues(t, 3, stats.SuccessfulCalls)
	assert.EqualValues(t, 1, stats.FailedCalls)
	assert.Len(t, stats.Logs, 4)

	byName := map[string]model.APINameStat{}
	for _, stat := range stats.CallsByAPIName {
		byName[stat.APIName] = stat
	}
	assert.EqualValues(t, 3, byName["dictionary_api"].Successful)
	assert.EqualValues(t, 1, byName["translation_api"].Failed)
}
