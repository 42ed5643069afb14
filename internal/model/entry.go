package model

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyEntry is one enriched word stored under a list. UserID is
// denormalized from the owning list for direct per-user queries and must
// always agree with it. OriginalWord is immutable after creation.
type VocabularyEntry struct {
	EntryID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"entry_id"`
	OriginalWord string    `gorm:"size:200;not null" json:"original_word"`
	WordType     *string   `gorm:"size:50" json:"word_type,omitempty"`
	IPA          *string   `gorm:"size:100" json:"ipa,omitempty"`
	DefinitionEN *string   `gorm:"type:text" json:"definition_en,omitempty"`
	DefinitionVI *string   `gorm:"type:text" json:"definition_vi,omitempty"`
	ExampleEN    *string   `gorm:"type:text" json:"example_en,omitempty"`
	AddedAt      time.Time `gorm:"autoCreateTime" json:"added_at"`
	ListID       uuid.UUID `gorm:"type:uuid;not null;index" json:"list_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (VocabularyEntry) TableName() string {
	return "vocabulary_entries"
}

// UpdateEntryRequest edits the enrichment fields of an entry. The
// original word is deliberately absent.
type UpdateEntryRequest struct {
	WordType     *string `json:"word_type,omitempty" validate:"omitempty,max=50"`
	DefinitionEN *string `json:"definition_en,omitempty"`
	DefinitionVI *string `json:"definition_vi,omitempty"`
	ExampleEN    *string `json:"example_en,omitempty"`
}
