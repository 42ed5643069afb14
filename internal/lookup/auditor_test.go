// internal/lookup/auditor_test.go
package lookup

import (
	"context"
	"strings"
	"testing"

	"vocab_forge/internal/model"
	"vocab_forge/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuditorTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.APILog{}))
	return db
}

func Test_gormAuditor_Record_TruncatesLongFields(t *testing.T) {
	db := setupAuditorTestDB(t)
	auditor := NewGormAuditor(db, repository.NewGormAPILogRepository())

	details := "q=" + strings.Repeat("a", 10000)
	errMsg := strings.Repeat("e", 2000)
	auditor.Record(context.Background(), &model.APILog{
		APIName:        APINameTranslator,
		RequestDetails: &details,
		ErrorMessage:   &errMsg,
	})

	var stored model.APILog
	require.NoError(t, db.First(&stored).Error)
	require.NotNil(t, stored.RequestDetails)
	assert.Len(t, *stored.RequestDetails, maxRequestDetailsLen)
	require.NotNil(t, stored.ErrorMessage)
	assert.Len(t, *stored.ErrorMessage, maxErrorMessageLen)
}

func Test_gormAuditor_Record_ShortFieldsUntouched(t *testing.T) {
	db := setupAuditorTestDB(t)
	auditor := NewGormAuditor(db, repository.NewGormAPILogRepository())

	details := "word=cat"
	auditor.Record(context.Background(), &model.APILog{
		APIName:        APINameDictionary,
		Success:        true,
		RequestDetails: &details,
	})

	var stored model.APILog
	require.NoError(t, db.First(&stored).Error)
	require.NotNil(t, stored.RequestDetails)
	assert.Equal(t, "word=cat", *stored.RequestDetails)
	assert.Nil(t, stored.ErrorMessage)
	assert.True(t, stored.Success)
}
