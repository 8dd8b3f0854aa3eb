package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/domain/message"
	"github.com/rpggio/polyglot/internal/domain/session"
)

// Error codes carried in error bodies.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeNotFound        = "MESSAGE_NOT_FOUND"
	CodeInvalidLanguage = "INVALID_LANGUAGE"
	CodeInternal        = "INTERNAL"
)

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// decodeBody parses an optional JSON body into dst. An empty body leaves
// dst untouched.
func decodeBody(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse error: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorBody{Code: code, Message: msg})
}

// writeDomainError maps domain errors to status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, message.ErrMessageNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, session.ErrInvalidLanguage):
		writeError(w, http.StatusBadRequest, CodeInvalidLanguage, err.Error())
	case errors.Is(err, activity.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, CodeInternal, err.Error())
	}
}
