// internal/handlers/list_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"
	"vocab_forge/internal/service"
	"vocab_forge/internal/webutil"
)

type ListHandler struct {
	service service.ListService
	logger  *slog.Logger
}

func NewListHandler(s service.ListService, logger *slog.Logger) *ListHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListHandler{
		service: s,
		logger:  logger,
	}
}

// SaveList commits enriched words into a new or existing list.
func (h *ListHandler) SaveList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SaveList"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", user.UserID.String()))

	var req model.SaveListRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.SaveList(r.Context(), user, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("List saved", slog.String("list_id", resp.ListID.String()), slog.Int("num_saved", resp.NumSaved))
	status := http.StatusOK
	if resp.IsNewList {
		status = http.StatusCreated
	}
	webutil.RespondWithJSON(w, status, resp, logger)
}

// GetLists returns the caller's lists, newest first.
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLists"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	lists, err := h.service.GetLists(r.Context(), user)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, lists, logger)
}

// GetList returns one list with its entries.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetList"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	listID, ok := urlParamUUID(w, r, logger, "list_id")
	if !ok {
		return
	}

	detail, err := h.service.GetListDetail(r.Context(), user, listID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// RenameList changes a list's name.
func (h *ListHandler) RenameList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RenameList"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	listID, ok := urlParamUUID(w, r, logger, "list_id")
	if !ok {
		return
	}

	var req model.RenameListRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	list, err := h.service.RenameList(r.Context(), user, listID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("List renamed", slog.String("list_id", listID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, list, logger)
}

// DeleteList removes a list together with its entries.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteList"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	listID, ok := urlParamUUID(w, r, logger, "list_id")
	if !ok {
		return
	}

	if err := h.service.DeleteList(r.Context(), user, listID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("List deleted", slog.String("list_id", listID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// UpdateEntry edits the enrichment fields of one entry.
func (h *ListHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateEntry"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	entryID, ok := urlParamUUID(w, r, logger, "entry_id")
	if !ok {
		return
	}

	var req model.UpdateEntryRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	entry, err := h.service.UpdateEntry(r.Context(), user, entryID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Entry updated", slog.String("entry_id", entryID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

// DeleteEntry removes one entry.
func (h *ListHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteEntry"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	entryID, ok := urlParamUUID(w, r, logger, "entry_id")
	if !ok {
		return
	}

	if err := h.service.DeleteEntry(r.Context(), user, entryID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Entry deleted", slog.String("entry_id", entryID.String()))
	w.WriteHeader(http.StatusNoContent)
}
