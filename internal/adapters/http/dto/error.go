package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/replicator/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is a single entry of ErrorResponse.Errors: a field-level
// validation failure or one backend-reported message.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// Detail is err.Error() unchanged, so a workflow failure reaches the caller
// with exactly the message the backend or transport produced.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	var werr *domain.WorkflowError
	if errors.As(err, &werr) && werr.Kind == domain.KindBackend {
		resp.Errors = backendMessagesToDetails(werr.Operation, werr.Messages)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes a problem response with an explicit status, for
// failures raised by the HTTP layer itself rather than the domain.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	})
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
// The backend answered but refused: 502. The backend could not be reached
// or answered unintelligibly: 503.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBackend):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrTransport):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}

// backendMessagesToDetails keeps the backend's message order.
func backendMessagesToDetails(operation string, messages []string) []ErrorDetail {
	location := "backend"
	if operation != "" {
		location += "." + operation
	}
	details := make([]ErrorDetail, len(messages))
	for i, msg := range messages {
		details[i] = ErrorDetail{Location: location, Message: msg}
	}
	return details
}

// errorKind labels a per-run batch failure: "backend", "transport" or
// "error" for anything that is not a workflow failure.
func errorKind(err error) string {
	var werr *domain.WorkflowError
	if errors.As(err, &werr) {
		return werr.Kind.String()
	}
	return "error"
}
