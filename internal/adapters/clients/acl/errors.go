// Package acl implements the Anti-Corruption Layer between the todo server's
// HTTP representation and domain types. Wire translators live in acl/todo;
// error mapping and the client adapter live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// capacityProblemType is the problem type the server uses for a full category.
const capacityProblemType = "/problems/capacity-exceeded"

// problemDetail represents an RFC 9457 Problem Details response from the
// todo server, including the capacity extension members.
type problemDetail struct {
	Type     string        `json:"type"`
	Detail   string        `json:"detail"`
	Errors   []errorDetail `json:"errors"`
	Category string        `json:"category"`
	Limit    int           `json:"limit"`
}

// errorDetail represents a single field-level error within a problem response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a failure response to a *ports.APIError. Message
// carries the server's problem detail verbatim (or the status text when the
// body is not a problem document); Err is the matching domain error so
// callers can branch with errors.Is and errors.As.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	cause := classify(resp.StatusCode, pd)
	if cause == nil && pd.Detail == "" {
		detail = fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, detail)
	}

	return &ports.APIError{
		Status:  resp.StatusCode,
		Message: detail,
		Err:     cause,
	}
}

func classify(status int, pd problemDetail) error {
	switch {
	case pd.Type == capacityProblemType:
		return &domain.CapacityError{Category: pd.Category, Limit: pd.Limit}

	case status == http.StatusNotFound:
		return domain.ErrNotFound

	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return domain.ErrValidation

	case status == http.StatusConflict:
		return domain.ErrConflict

	case status >= http.StatusInternalServerError:
		return domain.ErrUnavailable

	default:
		return nil
	}
}

// parseProblemDetail attempts to read and parse an RFC 9457 body from the
// response. Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError converts problem error details to a domain ValidationError.
// It strips the "body." prefix from locations to produce clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
