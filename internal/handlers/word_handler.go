// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"
	"vocab_forge/internal/service"
	"vocab_forge/internal/webutil"
)

type WordHandler struct {
	service service.EnrichService
	logger  *slog.Logger
}

func NewWordHandler(s service.EnrichService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// Enrich runs the dictionary and translation pipeline over comma separated
// input words.
func (h *WordHandler) Enrich(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Enrich"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", user.UserID.String()))

	var req model.EnrichRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.EnrichWords(r.Context(), user.UserID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Words enriched", slog.Int("count", len(result.Order)))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
