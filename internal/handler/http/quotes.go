package http

import (
	"encoding/json"
	"net/http"

	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/internal/utils"
	"github.com/glowclean/quote-api/models"
	"github.com/go-chi/chi/v5"
)

// listQuotes handles GET /api/requests. Only admins may read quote requests;
// any other authenticated caller is rejected with 401.
func (h *Handler) listQuotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok || !caller.IsAdmin() {
		log.Warn().Str("uid", caller.UID).Msg("read access denied: caller is not an admin")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	documents, err := h.services.QuoteService.Quotes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listQuotes").Msg("error listing quote requests")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, documents, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listQuotes").Msg("error writing response")
	}
}

// getQuote handles GET /api/requests/{id}. A missing document is not an
// error: the response is a 200 with a JSON null body, so callers cannot
// probe which document IDs exist.
func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok || !caller.IsAdmin() {
		log.Warn().Str("uid", caller.UID).Msg("read access denied: caller is not an admin")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	data, err := h.services.QuoteService.Quote(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getQuote").Str("id", id).Msg("error getting quote request")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	// A nil map serializes to JSON null, which is exactly the contract for
	// an unknown document ID.
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getQuote").Msg("error writing response")
	}
}

// createQuote handles POST /api/requests. Unlike the read endpoints, an
// authenticated non-admin caller is rejected with 403 here: the identity is
// valid, the role just does not permit writes.
func (h *Handler) createQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok || !caller.IsAdmin() {
		log.Warn().Str("uid", caller.UID).Msg("write access denied: caller is not an admin")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	var req models.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createQuote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	document, err := h.services.QuoteService.CreateQuote(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createQuote").Msg("error creating quote request")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, document, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.createQuote").Msg("error writing response")
	}
}
