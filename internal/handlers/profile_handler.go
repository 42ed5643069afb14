// internal/handlers/profile_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"
	"vocab_forge/internal/service"
	"vocab_forge/internal/webutil"
)

type ProfileHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewProfileHandler(s service.AuthService, logger *slog.Logger) *ProfileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileHandler{
		service: s,
		logger:  logger,
	}
}

// GetProfile returns the profile page data for the caller.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProfile"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), user)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

// UpdateProfile changes the caller's display name.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateProfile"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateProfileRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), user, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Profile updated", slog.String("user_id", user.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(updated), logger)
}

// ChangePassword sets or replaces the caller's password.
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ChangePassword"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.ChangePasswordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if err := h.service.ChangePassword(r.Context(), user, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Password changed", slog.String("user_id", user.UserID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAccount removes the caller's account and everything it owns.
func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteAccount"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteAccount(r.Context(), user); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Account deleted", slog.String("user_id", user.UserID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// GetDashboard returns the caller's dashboard summary.
func (h *ProfileHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDashboard"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	dashboard, err := h.service.GetDashboard(r.Context(), user)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, dashboard, logger)
}
