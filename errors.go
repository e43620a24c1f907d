// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bassosimone/errclass"
)

// QueryError is a single structured error entry reported by the server.
type QueryError struct {
	// Code is the machine-readable error code.
	Code string `json:"code"`

	// Description is the human-readable error description.
	Description string `json:"description"`

	// Position is the path inside the submitted expression that the
	// error refers to.
	Position []string `json:"position"`
}

// QueryErrorResponse is a parsed server error: the HTTP status code
// plus the ordered error entries from the response body.
type QueryErrorResponse struct {
	// Status is the HTTP status code of the response.
	Status int

	// Errors holds the structured error entries, in wire order. Empty
	// when the error body could not be parsed.
	Errors []QueryError

	// Message is the fallback message used when the error body could
	// not be parsed. Empty otherwise.
	Message string
}

// Error implements the error interface.
func (r *QueryErrorResponse) Error() string {
	if r.Message != "" {
		return fmt.Sprintf("http status %d: %s", r.Status, r.Message)
	}
	descriptions := make([]string, 0, len(r.Errors))
	for _, entry := range r.Errors {
		descriptions = append(descriptions, fmt.Sprintf("%s: %s", entry.Code, entry.Description))
	}
	return fmt.Sprintf("http status %d: %s", r.Status, strings.Join(descriptions, "; "))
}

// The typed errors below form the fixed taxonomy callers match on with
// [errors.As]. Each one embeds the parsed [*QueryErrorResponse].

// BadRequest is the typed error for HTTP status 400.
type BadRequest struct{ *QueryErrorResponse }

// Unauthorized is the typed error for HTTP status 401.
type Unauthorized struct{ *QueryErrorResponse }

// PermissionDenied is the typed error for HTTP status 403.
type PermissionDenied struct{ *QueryErrorResponse }

// NotFound is the typed error for HTTP status 404.
type NotFound struct{ *QueryErrorResponse }

// InternalError is the typed error for HTTP status 500.
type InternalError struct{ *QueryErrorResponse }

// Unavailable is the typed error for HTTP status 503 and for
// connection-level failures reported by the transport.
type Unavailable struct{ *QueryErrorResponse }

// UnknownError is the typed error for any status without a dedicated
// mapping.
type UnknownError struct{ *QueryErrorResponse }

// Timeout reports a transport-level timeout.
type Timeout struct {
	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface.
func (e *Timeout) Error() string {
	return fmt.Sprintf("query timed out: %v", e.Err)
}

// Unwrap supports [errors.Is] and [errors.As].
func (e *Timeout) Unwrap() error {
	return e.Err
}

// IOError reports a malformed response body on an otherwise successful
// status. It is distinct from server-reported query errors.
type IOError struct {
	// Err is the underlying decoding error.
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("cannot decode response: %v", e.Err)
}

// Unwrap supports [errors.Is] and [errors.As].
func (e *IOError) Unwrap() error {
	return e.Err
}

// classifyResponse maps a non-success HTTP status plus the raw response
// body to exactly one typed error.
//
// When the body does not contain a parseable errors array we fall back
// on the status alone: 503 maps to [*Unavailable] and everything else
// maps to [*UnknownError], regardless of whether the status would
// otherwise have a dedicated mapping. Callers depend on this fallback,
// so we do not retry status-based classification here.
func classifyResponse(status int, body []byte) error {
	var parsed struct {
		Errors []QueryError `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fallbackError(status)
	}
	resp := &QueryErrorResponse{Status: status, Errors: parsed.Errors}
	switch status {
	case http.StatusBadRequest:
		return &BadRequest{resp}
	case http.StatusUnauthorized:
		return &Unauthorized{resp}
	case http.StatusForbidden:
		return &PermissionDenied{resp}
	case http.StatusNotFound:
		return &NotFound{resp}
	case http.StatusInternalServerError:
		return &InternalError{resp}
	case http.StatusServiceUnavailable:
		return &Unavailable{resp}
	default:
		return &UnknownError{resp}
	}
}

// fallbackError builds the fixed-message error used when the error
// body cannot be parsed. The parse failure itself never propagates.
func fallbackError(status int) error {
	if status == http.StatusServiceUnavailable {
		return &Unavailable{&QueryErrorResponse{
			Status:  status,
			Message: "service unavailable: unparseable response",
		}}
	}
	return &UnknownError{&QueryErrorResponse{
		Status:  status,
		Message: fmt.Sprintf("unknown error: unparseable response with status %d", status),
	}}
}

// mapTransportError reclassifies failures surfaced by the transport
// collaborator: connection-level failures become [*Unavailable] and
// timeouts become [*Timeout]. Anything else propagates unchanged.
func mapTransportError(err error) error {
	switch errclass.New(err) {
	case errclass.ECONNREFUSED,
		errclass.ECONNRESET,
		errclass.ECONNABORTED,
		errclass.EHOSTUNREACH,
		errclass.ENETUNREACH,
		errclass.ENETDOWN:
		return &Unavailable{&QueryErrorResponse{
			Status:  http.StatusServiceUnavailable,
			Message: fmt.Sprintf("cannot reach the server: %v", err),
		}}
	case errclass.ETIMEDOUT:
		return &Timeout{Err: err}
	default:
		return err
	}
}
