package model

import (
	"time"

	"github.com/google/uuid"
)

// APILog is one audit record for an outbound external call. Append-only;
// written on success and failure alike.
type APILog struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	APIName        string     `gorm:"size:100;not null;index" json:"api_name"`
	Timestamp      time.Time  `gorm:"autoCreateTime;not null;index" json:"timestamp"`
	Success        bool       `gorm:"not null" json:"success"`
	StatusCode     *int       `json:"status_code,omitempty"`
	ErrorMessage   *string    `gorm:"type:text" json:"error_message,omitempty"`
	RequestDetails *string    `gorm:"type:text" json:"request_details,omitempty"`
	UserID         *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
}

func (APILog) TableName() string {
	return "api_logs"
}

// APINameStat aggregates outcomes for one adapter.
type APINameStat struct {
	APIName    string `json:"api_name"`
	Count      int64  `json:"count"`
	Successful int64  `json:"successful"`
	Failed     int64  `json:"failed"`
}

// APILogStatsResponse is the admin audit-log page data.
type APILogStatsResponse struct {
	Logs            []*APILog     `json:"logs"`
	TotalCalls      int64         `json:"total_calls"`
	SuccessfulCalls int64         `json:"successful_calls"`
	FailedCalls     int64         `json:"failed_calls"`
	CallsByAPIName  []APINameStat `json:"calls_by_api_name"`
}
