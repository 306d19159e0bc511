// Package acl implements the Anti-Corruption Layer for the provisioning
// backend. The GraphQL exchange and its error classification live here;
// Railway-specific documents and translators live in acl/railway.
package acl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/replicator/internal/domain"
)

// maxResponseBodySize limits how much of a response body is read.
const maxResponseBodySize = 4 << 20 // 4 MB

// graphQLError is one entry of the response "errors" array. Only the
// message is used; locations, path and extensions are ignored.
type graphQLError struct {
	Message string `json:"message"`
}

// envelope is the GraphQL response body.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// ClassifyResponse reads a GraphQL response and either decodes its data into
// out or returns a *domain.WorkflowError.
//
// Any backend error message makes the result a backend failure, even when
// data is also present. A body that cannot be read or parsed, a non-2xx
// status without backend messages, and missing data are transport failures.
// A nil out skips data decoding.
func ClassifyResponse(operation string, resp *http.Response, out any) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return domain.NewTransportError(operation, fmt.Errorf("reading response: %w", err))
	}

	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if decodeErr == nil && len(env.Errors) > 0 {
		return domain.NewBackendError(operation, messages(env.Errors))
	}

	if !isSuccess(resp.StatusCode) {
		return domain.NewTransportError(operation, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if decodeErr != nil {
		return domain.NewTransportError(operation, fmt.Errorf("decoding response: %w", decodeErr))
	}

	if out == nil {
		return nil
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return domain.NewTransportError(operation, errors.New("response carried no data"))
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return domain.NewTransportError(operation, fmt.Errorf("decoding data: %w", err))
	}

	return nil
}

func messages(errs []graphQLError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
