package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/replicator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/replicator/internal/domain"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}
