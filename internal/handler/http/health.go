package http

import (
	"net/http"

	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	payload := map[string]string{
		"status":  "ok",
		"version": h.version,
	}

	if _, err := utils.WriteJSON(w, payload, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.health").Msg("error writing response")
	}
}
