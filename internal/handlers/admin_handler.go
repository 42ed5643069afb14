// internal/handlers/admin_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"
	"vocab_forge/internal/service"
	"vocab_forge/internal/webutil"
)

type AdminHandler struct {
	service service.AdminService
	logger  *slog.Logger
}

func NewAdminHandler(s service.AdminService, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{
		service: s,
		logger:  logger,
	}
}

// ListUsers returns every account, newest first.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListUsers"))

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, users, logger)
}

// GetUser returns the moderation view of one account.
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetUser"))

	userID, ok := urlParamUUID(w, r, logger, "user_id")
	if !ok {
		return
	}

	detail, err := h.service.GetUserDetail(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// DeleteUser removes an account and everything it owns.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteUser"))

	actor, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	userID, ok := urlParamUUID(w, r, logger, "user_id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(r.Context(), actor, userID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User deleted", slog.String("user_id", userID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// BlockUser sets or clears the moderation flag on an account.
func (h *AdminHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "BlockUser"))

	actor, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	userID, ok := urlParamUUID(w, r, logger, "user_id")
	if !ok {
		return
	}

	var req model.BlockUserRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	user, err := h.service.SetUserBlocked(r.Context(), actor, userID, req.Blocked)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User block flag set", slog.String("user_id", userID.String()), slog.Bool("blocked", req.Blocked))
	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user), logger)
}

// GetUserList lets an administrator inspect a specific user's list.
func (h *AdminHandler) GetUserList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetUserList"))

	userID, ok := urlParamUUID(w, r, logger, "user_id")
	if !ok {
		return
	}
	listID, ok := urlParamUUID(w, r, logger, "list_id")
	if !ok {
		return
	}

	detail, err := h.service.GetUserList(r.Context(), userID, listID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// GetAPILogStats returns the external-call audit summary.
func (h *AdminHandler) GetAPILogStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAPILogStats"))

	stats, err := h.service.GetAPILogStats(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
