package http

import (
	"errors"
	"net/http"

	"github.com/glowclean/quote-api/internal/service"
	"github.com/glowclean/quote-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrTokenIsInvalid:      http.StatusUnauthorized,

	store.ErrExecutingQuery: http.StatusInternalServerError,
	store.ErrQuoteNotSaved:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
