package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"matchmaking_server/services"
)

// WriteJSONResponse writes a JSON payload with the given status code
func WriteJSONResponse(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// WriteErrorResponse maps the service error taxonomy onto HTTP status codes
// and writes a structured error body. Anything outside the taxonomy is a 500.
func WriteErrorResponse(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
	case errors.Is(err, services.ErrPaymentRequired):
		statusCode = http.StatusPaymentRequired
	case errors.Is(err, services.ErrInvalidTarget), errors.Is(err, services.ErrBadRequest):
		statusCode = http.StatusBadRequest
	case errors.Is(err, services.ErrForbidden):
		statusCode = http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		statusCode = http.StatusNotFound
	}
	WriteJSONResponse(w, statusCode, map[string]string{"error": err.Error()})
}
