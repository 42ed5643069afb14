package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. A user may hold a password credential, a Google
// identity, or both; a Google-only user is considered setup-incomplete
// until a password has been set.
type User struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name         *string   `gorm:"size:100" json:"name,omitempty"`
	DisplayName  *string   `gorm:"size:100" json:"display_name,omitempty"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash *string   `gorm:"size:256" json:"-"`
	GoogleID     *string   `gorm:"size:100;uniqueIndex" json:"-"`
	PictureURL   *string   `gorm:"size:255" json:"picture_url,omitempty"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	IsBlocked    bool      `gorm:"not null;default:false" json:"is_blocked"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// HasPassword reports whether account setup is complete.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

type ContextKey string

const (
	// UserContextKey holds the resolved *User for the current request.
	UserContextKey ContextKey = "currentUser"
)

// RegisterRequest is the body of the password-registration endpoint.
type RegisterRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6,max=72"`
	AgreeTerms bool   `json:"agree_terms" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// GoogleSignInRequest carries the verified profile handed over by the
// OAuth glue layer. The core never talks to Google itself.
type GoogleSignInRequest struct {
	GoogleID string  `json:"google_id" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Name     *string `json:"name,omitempty"`
	Picture  *string `json:"picture,omitempty"`
}

const (
	GoogleSignInStatusOK            = "ok"
	GoogleSignInStatusSetupRequired = "setup_required"
)

// GoogleSignInResponse either grants a session or hands back a
// short-lived setup token for the password-completion step.
type GoogleSignInResponse struct {
	Status      string `json:"status"`
	AccessToken string `json:"access_token,omitempty"`
	SetupToken  string `json:"setup_token,omitempty"`
}

type CompleteSetupRequest struct {
	SetupToken string `json:"setup_token" validate:"required"`
	Password   string `json:"password" validate:"required,min=6,max=72"`
	AgreeTerms bool   `json:"agree_terms" validate:"required"`
}

// UserResponse is the client view of an account.
type UserResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	Name        *string   `json:"name,omitempty"`
	DisplayName *string   `json:"display_name,omitempty"`
	Email       string    `json:"email"`
	PictureURL  *string   `json:"picture_url,omitempty"`
	IsAdmin     bool      `json:"is_admin"`
	IsBlocked   bool      `json:"is_blocked"`
	HasPassword bool      `json:"has_password"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		UserID:      u.UserID,
		Name:        u.Name,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		PictureURL:  u.PictureURL,
		IsAdmin:     u.IsAdmin,
		IsBlocked:   u.IsBlocked,
		HasPassword: u.HasPassword(),
		CreatedAt:   u.CreatedAt,
	}
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"max=100"`
}

// ChangePasswordRequest sets or replaces the password credential.
// CurrentPassword is required only when a password already exists.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}

// BlockUserRequest sets the moderation flag on an account.
type BlockUserRequest struct {
	Blocked bool `json:"blocked"`
}

// AdminUserDetailResponse is the moderation view of an account.
type AdminUserDetailResponse struct {
	User       *UserResponse     `json:"user"`
	Lists      []*VocabularyList `json:"lists"`
	NumEntries int64             `json:"num_entries"`
}

// ProfileResponse is the profile page data.
type ProfileResponse struct {
	User       *UserResponse `json:"user"`
	NumLists   int64         `json:"num_lists"`
	NumEntries int64         `json:"num_entries"`
	MemberFor  string        `json:"member_for"`
}

// DashboardResponse is the dashboard summary data.
type DashboardResponse struct {
	NumLists      int64              `json:"num_lists"`
	NumEntries    int64              `json:"num_entries"`
	RecentLists   []*VocabularyList  `json:"recent_lists"`
	RecentEntries []*VocabularyEntry `json:"recent_entries"`
}
