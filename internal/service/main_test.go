package service

import (
	"testing"

	"vocab_forge/internal/model"
	"vocab_forge/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open test database")

	// Every pooled connection to :memory: would get its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.VocabularyList{},
		&model.VocabularyEntry{},
		&model.APILog{},
	)
	require.NoError(t, err, "failed to migrate test database")
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, password string, isAdmin bool) *model.User {
	t.Helper()
	name := "Test User"
	user := &model.User{
		UserID:  uuid.New(),
		Name:    &name,
		Email:   email,
		IsAdmin: isAdmin,
	}
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		hashStr := string(hashed)
		user.PasswordHash = &hashStr
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newTestListService(db *gorm.DB) ListService {
	return NewListService(db, repository.NewGormListRepository(), repository.NewGormEntryRepository())
}
