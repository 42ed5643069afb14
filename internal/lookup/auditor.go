//go:generate mockery --name Auditor --output ./mocks --outpkg mocks --case=underscore
package lookup

import (
	"context"

	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"
	"vocab_forge/internal/repository"

	"gorm.io/gorm"
)

// Audit rows keep a bounded excerpt, never the full payload.
const (
	maxRequestDetailsLen = 100
	maxErrorMessageLen   = 500
)

// Auditor records one audit row per outbound API call. Implementations must
// never propagate their own failures to the caller.
type Auditor interface {
	Record(ctx context.Context, entry *model.APILog)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

type gormAuditor struct {
	db   *gorm.DB
	repo repository.APILogRepository
}

func NewGormAuditor(db *gorm.DB, repo repository.APILogRepository) Auditor {
	return &gormAuditor{db: db, repo: repo}
}

func (a *gormAuditor) Record(ctx context.Context, entry *model.APILog) {
	if entry.RequestDetails != nil {
		trimmed := truncate(*entry.RequestDetails, maxRequestDetailsLen)
		entry.RequestDetails = &trimmed
	}
	if entry.ErrorMessage != nil {
		trimmed := truncate(*entry.ErrorMessage, maxErrorMessageLen)
		entry.ErrorMessage = &trimmed
	}
	if err := a.repo.Create(ctx, a.db, entry); err != nil {
		// The lookup result matters more than the audit row. Log and move on.
		middleware.GetLogger(ctx).Error("Failed to persist API audit record",
			"error", err,
			"api_name", entry.APIName,
		)
	}
}
