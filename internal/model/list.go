package model

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyList is a named collection of entries owned by one user.
// Name is unique per owner; the compound index is the authoritative
// guard, the application pre-check only gives a nicer error.
type VocabularyList struct {
	ListID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"list_id"`
	Name      string    `gorm:"size:150;not null;uniqueIndex:uq_list_owner_name" json:"name"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_list_owner_name;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (VocabularyList) TableName() string {
	return "vocabulary_lists"
}

// SaveEntryItem is one enriched word selected by the user for saving.
type SaveEntryItem struct {
	OriginalWord string  `json:"original_word" validate:"required,max=200"`
	WordType     *string `json:"word_type,omitempty"`
	IPA          *string `json:"ipa,omitempty"`
	DefinitionEN *string `json:"definition_en,omitempty"`
	DefinitionVI *string `json:"definition_vi,omitempty"`
	ExampleEN    *string `json:"example_en,omitempty"`
}

// SaveListRequest commits enrichment results, either into a new list
// (ListName set) or an existing one (ExistingListID set).
type SaveListRequest struct {
	ListName       string          `json:"list_name"`
	ExistingListID *uuid.UUID      `json:"existing_list_id,omitempty"`
	Words          []SaveEntryItem `json:"words" validate:"required,min=1,dive"`
}

type SaveListResponse struct {
	ListID    uuid.UUID `json:"list_id"`
	ListName  string    `json:"list_name"`
	IsNewList bool      `json:"is_new_list"`
	NumSaved  int       `json:"num_saved"`
}

type RenameListRequest struct {
	NewName string `json:"new_name" validate:"required,min=1,max=100"`
}

// ListDetailResponse is a list together with its entries, oldest first.
type ListDetailResponse struct {
	List    *VocabularyList    `json:"list"`
	Entries []*VocabularyEntry `json:"entries"`
}
