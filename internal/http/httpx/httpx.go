// Package httpx holds the JSON and RFC 7807 helpers shared by the handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/MrJamesThe3rd/obrafin/internal/importer"
	"github.com/MrJamesThe3rd/obrafin/internal/importer/sheet"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/masterdata"
	"github.com/MrJamesThe3rd/obrafin/internal/tree"
	"github.com/MrJamesThe3rd/obrafin/internal/validation"
)

// ProblemDetail is an RFC 7807 problem document.
type ProblemDetail struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Problem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ProblemDetail{Title: title, Status: status, Detail: detail}); err != nil {
		slog.Error("failed to encode problem", "error", err)
	}
}

func BadRequest(w http.ResponseWriter, detail string) {
	Problem(w, http.StatusBadRequest, "Bad Request", detail)
}

// RespondError maps domain errors onto problem responses.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tree.ErrNotFound),
		errors.Is(err, ledger.ErrNotFound),
		errors.Is(err, masterdata.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, validation.ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, tree.ErrDuplicateID):
		Problem(w, http.StatusConflict, "Duplicate", err.Error())
	case errors.Is(err, sheet.ErrUnknownFormat),
		errors.Is(err, sheet.ErrMalformedRow),
		errors.Is(err, importer.ErrUnresolved),
		errors.Is(err, importer.ErrCategory):
		Problem(w, http.StatusUnprocessableEntity, "Unprocessable Spreadsheet", err.Error())
	default:
		slog.Error("request failed", "error", err)
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// DecodeJSON decodes the request body into target, rejecting unknown fields.
func DecodeJSON(r *http.Request, target any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

// QueryDate parses an optional YYYY-MM-DD query parameter.
func QueryDate(r *http.Request, key string) (*time.Time, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("%s must be a YYYY-MM-DD date", key)
	}

	return &t, nil
}

// Date is a calendar date carried as YYYY-MM-DD in JSON. The zero value
// encodes as null.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a YYYY-MM-DD string: %w", err)
	}

	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}

	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return fmt.Errorf("date must be a YYYY-MM-DD string: %w", err)
	}

	*d = Date(t)

	return nil
}
