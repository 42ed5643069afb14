// internal/handlers/auth_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"
	"vocab_forge/internal/service"
	"vocab_forge/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// Register creates an account with a password credential.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.RegisterRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		logger.Error("Error registering user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User registered successfully", slog.String("user_id", user.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewUserResponse(user), logger)
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GoogleSignIn reconciles a verified Google profile against local accounts.
func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GoogleSignIn"))

	var req model.GoogleSignInRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.GoogleSignIn(r.Context(), &req)
	if err != nil {
		logger.Error("Error during federated sign-in", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// CompleteGoogleSetup finishes federated onboarding by setting a password.
func (h *AuthHandler) CompleteGoogleSetup(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CompleteGoogleSetup"))

	var req model.CompleteSetupRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.CompleteGoogleSetup(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Me"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user), logger)
}
