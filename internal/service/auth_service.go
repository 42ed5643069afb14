//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vocab_forge/internal/config"
	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"
	"vocab_forge/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService covers registration, sign-in, federated reconciliation and the
// account-facing profile operations.
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GoogleSignIn(ctx context.Context, req *model.GoogleSignInRequest) (*model.GoogleSignInResponse, error)
	CompleteGoogleSetup(ctx context.Context, req *model.CompleteSetupRequest) (*model.LoginResponse, error)
	ResolveUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	GetProfile(ctx context.Context, user *model.User) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, user *model.User, req *model.UpdateProfileRequest) (*model.User, error)
	ChangePassword(ctx context.Context, user *model.User, req *model.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, user *model.User) error
	GetDashboard(ctx context.Context, user *model.User) (*model.DashboardResponse, error)
}

type authService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	listRepo  repository.ListRepository
	entryRepo repository.EntryRepository
	cfg       *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, listRepo repository.ListRepository, entryRepo repository.EntryRepository, cfg *config.Config) AuthService {
	return &authService{
		db:        db,
		userRepo:  userRepo,
		listRepo:  listRepo,
		entryRepo: entryRepo,
		cfg:       cfg,
	}
}

// signToken issues an HS256 token for the given subject and purpose.
func (s *authService) signToken(userID uuid.UUID, purpose string, ttl time.Duration) (string, error) {
	claims := &model.TokenClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.App.Name,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}

func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "This email address is already in use.", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An error occurred while processing the password.", "", err)
		}
		passwordHash := string(hashedPassword)

		user := &model.User{
			UserID:       uuid.New(),
			Name:         &req.Name,
			Email:        req.Email,
			PasswordHash: &passwordHash,
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// The unique index can still fire under concurrent registration.
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation", "error", err)
				return model.NewAppError("DUPLICATE_EMAIL", "This email address is already in use.", "email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the account.", "", err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", newUser.UserID, "email", newUser.Email)
	return newUser, nil
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "The email address or password is incorrect.", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	// Accounts created through federated sign-in have no password until
	// setup completes.
	if !user.HasPassword() {
		logger.Warn("Login failed: account has no password", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "The email address or password is incorrect.", "", model.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "The email address or password is incorrect.", "", model.ErrUnauthorized)
	}

	if user.IsBlocked {
		logger.Warn("Login failed: account is blocked", "user_id", user.UserID)
		return nil, model.NewAppError("ACCOUNT_BLOCKED", "This account has been blocked.", "", model.ErrForbidden)
	}

	signedToken, err := s.signToken(user.UserID, model.TokenPurposeAccess, s.cfg.JWT.AccessTTL)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue the token.", "", err)
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.LoginResponse{AccessToken: signedToken}, nil
}

// GoogleSignIn reconciles a verified federated identity against local
// accounts. A known google_id signs straight in. A known email attaches the
// google_id to that account and signs in. An unknown identity gets a fresh
// account without a password plus a short-lived setup token.
func (s *authService) GoogleSignIn(ctx context.Context, req *model.GoogleSignInRequest) (*model.GoogleSignInResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	var user *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.userRepo.FindByGoogleID(ctx, tx, req.GoogleID)
		if err == nil {
			// A blocked account must be rejected before anything is written.
			if existing.IsBlocked {
				logger.Warn("Federated sign-in rejected: account is blocked", "user_id", existing.UserID)
				return model.NewAppError("ACCOUNT_BLOCKED", "This account has been blocked.", "", model.ErrForbidden)
			}
			user = existing
			return s.refreshGoogleProfile(ctx, tx, user, req)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		byEmail, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			if byEmail.IsBlocked {
				logger.Warn("Federated sign-in rejected: account is blocked", "user_id", byEmail.UserID)
				return model.NewAppError("ACCOUNT_BLOCKED", "This account has been blocked.", "", model.ErrForbidden)
			}
			// Same verified email, so attach the identity to the local account.
			updates := map[string]interface{}{"google_id": req.GoogleID}
			if byEmail.Name == nil && req.Name != nil {
				updates["name"] = *req.Name
				byEmail.Name = req.Name
			}
			if byEmail.PictureURL == nil && req.Picture != nil {
				updates["picture_url"] = *req.Picture
				byEmail.PictureURL = req.Picture
			}
			if err := s.userRepo.Update(ctx, tx, byEmail.UserID, updates); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to link the account.", "", err)
			}
			byEmail.GoogleID = &req.GoogleID
			user = byEmail
			logger.Info("Linked federated identity to existing account", "user_id", user.UserID)
			return nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		created := &model.User{
			UserID:     uuid.New(),
			Email:      req.Email,
			GoogleID:   &req.GoogleID,
			Name:       req.Name,
			PictureURL: req.Picture,
		}
		if err := s.userRepo.Create(ctx, tx, created); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_EMAIL", "This email address is already in use.", "email", model.ErrConflict)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the account.", "", err)
		}
		user = created
		logger.Info("Created account from federated identity", "user_id", user.UserID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !user.HasPassword() {
		setupToken, err := s.signToken(user.UserID, model.TokenPurposeGoogleSetup, s.cfg.JWT.SetupTokenTTL)
		if err != nil {
			logger.Error("Failed to sign setup token", "error", err, "user_id", user.UserID)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue the token.", "", err)
		}
		return &model.GoogleSignInResponse{
			Status:     model.GoogleSignInStatusSetupRequired,
			SetupToken: setupToken,
		}, nil
	}

	accessToken, err := s.signToken(user.UserID, model.TokenPurposeAccess, s.cfg.JWT.AccessTTL)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue the token.", "", err)
	}
	return &model.GoogleSignInResponse{
		Status:      model.GoogleSignInStatusOK,
		AccessToken: accessToken,
	}, nil
}

// refreshGoogleProfile keeps name and picture current on repeat sign-ins.
func (s *authService) refreshGoogleProfile(ctx context.Context, tx *gorm.DB, user *model.User, req *model.GoogleSignInRequest) error {
	updates := map[string]interface{}{}
	if req.Picture != nil && (user.PictureURL == nil || *user.PictureURL != *req.Picture) {
		updates["picture_url"] = *req.Picture
		user.PictureURL = req.Picture
	}
	if req.Name != nil && user.Name == nil {
		updates["name"] = *req.Name
		user.Name = req.Name
	}
	if len(updates) == 0 {
		return nil
	}
	if err := s.userRepo.Update(ctx, tx, user.UserID, updates); err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update the account.", "", err)
	}
	return nil
}

func (s *authService) CompleteGoogleSetup(ctx context.Context, req *model.CompleteSetupRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	claims := &model.TokenClaims{}
	token, err := jwt.ParseWithClaims(req.SetupToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil || !token.Valid || claims.Purpose != model.TokenPurposeGoogleSetup {
		logger.Warn("Setup token rejected", "error", err)
		return nil, model.NewAppError("INVALID_TOKEN", "The setup token is invalid or has expired.", "setup_token", model.ErrUnauthorized)
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return nil, model.NewAppError("INVALID_TOKEN", "The setup token carries no account identity.", "setup_token", model.ErrUnauthorized)
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, model.NewAppError("INVALID_TOKEN", "The setup token carries a malformed account identity.", "setup_token", model.ErrUnauthorized)
	}

	var user *model.User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "The account behind this token no longer exists.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}
		if found.IsBlocked {
			return model.NewAppError("ACCOUNT_BLOCKED", "This account has been blocked.", "", model.ErrForbidden)
		}
		user = found

		// A replayed setup token must not overwrite a password set earlier.
		if user.HasPassword() {
			logger.Info("Setup already completed", "user_id", user.UserID)
			return nil
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An error occurred while processing the password.", "", err)
		}
		passwordHash := string(hashedPassword)
		if err := s.userRepo.Update(ctx, tx, user.UserID, map[string]interface{}{"password_hash": passwordHash}); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to complete the account setup.", "", err)
		}
		user.PasswordHash = &passwordHash
		logger.Info("Federated account setup completed", "user_id", user.UserID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := s.signToken(user.UserID, model.TokenPurposeAccess, s.cfg.JWT.AccessTTL)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue the token.", "", err)
	}
	return &model.LoginResponse{AccessToken: accessToken}, nil
}

func (s *authService) ResolveUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.FindByID(ctx, s.db, userID)
}

func (s *authService) GetProfile(ctx context.Context, user *model.User) (*model.ProfileResponse, error) {
	numLists, err := s.listRepo.CountByUser(ctx, s.db, user.UserID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	numEntries, err := s.entryRepo.CountByUser(ctx, s.db, user.UserID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	days := int(time.Since(user.CreatedAt).Hours() / 24)
	memberFor := fmt.Sprintf("%d days", days)
	if days == 1 {
		memberFor = "1 day"
	}
	return &model.ProfileResponse{
		User:       model.NewUserResponse(user),
		NumLists:   numLists,
		NumEntries: numEntries,
		MemberFor:  memberFor,
	}, nil
}

func (s *authService) UpdateProfile(ctx context.Context, user *model.User, req *model.UpdateProfileRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	// An empty submission clears the display name.
	var displayName *string
	if trimmed := strings.TrimSpace(req.DisplayName); trimmed != "" {
		displayName = &trimmed
	}
	updates := map[string]interface{}{"display_name": displayName}
	user.DisplayName = displayName
	if err := s.userRepo.Update(ctx, s.db, user.UserID, updates); err != nil {
		logger.Error("Failed to update profile", "error", err, "user_id", user.UserID)
		return nil, model.ErrInternalServer
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, user *model.User, req *model.ChangePasswordRequest) error {
	logger := middleware.GetLogger(ctx)

	// Accounts that already hold a password must prove the current one.
	// Federated accounts without a password may set one directly.
	if user.HasPassword() {
		if req.CurrentPassword == "" {
			return model.NewAppError("INVALID_INPUT", "The current password is required.", "current_password", model.ErrInvalidInput)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			logger.Warn("Password change rejected: current password mismatch", "user_id", user.UserID)
			return model.NewAppError("AUTHENTICATION_FAILED", "The current password is incorrect.", "current_password", model.ErrUnauthorized)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "An error occurred while processing the password.", "", err)
	}
	if err := s.userRepo.Update(ctx, s.db, user.UserID, map[string]interface{}{"password_hash": string(hashedPassword)}); err != nil {
		logger.Error("Failed to change password", "error", err, "user_id", user.UserID)
		return model.ErrInternalServer
	}

	logger.Info("Password changed", "user_id", user.UserID)
	return nil
}

func (s *authService) DeleteAccount(ctx context.Context, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.entryRepo.DeleteByUser(ctx, tx, user.UserID); err != nil {
			return err
		}
		if err := s.listRepo.DeleteByUser(ctx, tx, user.UserID); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, tx, user.UserID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for DeleteAccount", "error", err, "user_id", user.UserID)
		return model.ErrInternalServer
	}

	logger.Info("Account deleted", "user_id", user.UserID)
	return nil
}

func (s *authService) GetDashboard(ctx context.Context, user *model.User) (*model.DashboardResponse, error) {
	numLists, err := s.listRepo.CountByUser(ctx, s.db, user.UserID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	numEntries, err := s.entryRepo.CountByUser(ctx, s.db, user.UserID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	recentLists, err := s.listRepo.FindRecentByUser(ctx, s.db, user.UserID, 3)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	recentEntries, err := s.entryRepo.FindRecentByUser(ctx, s.db, user.UserID, 5)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return &model.DashboardResponse{
		NumLists:      numLists,
		NumEntries:    numEntries,
		RecentLists:   recentLists,
		RecentEntries: recentEntries,
	}, nil
}
