package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/endlabel/pkg/errors"
)

// APIError is the JSON body of every error response.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string { return e.Code + ": " + e.Message }

func newAPIError(status int, code, message string, cause error) *APIError {
	e := &APIError{Status: status, Code: code, Message: message}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// fromError maps a pipeline error to a response by its error code.
func fromError(err error) *APIError {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
		if code == errors.ErrCodeInvalidFormat {
			status = http.StatusUnsupportedMediaType
		}
	case code == errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case code == errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}

	if code == "" {
		return newAPIError(status, string(errors.ErrCodeInternal), "internal error", nil)
	}
	if status == http.StatusInternalServerError {
		return newAPIError(status, string(code), errors.UserMessage(err), nil)
	}
	return newAPIError(status, string(code), errors.UserMessage(err), causeOf(err))
}

// causeOf returns the wrapped cause of a structured error.
func causeOf(err error) error {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Cause != nil {
		return e.Cause
	}
	return nil
}

func writeError(w http.ResponseWriter, e *APIError) {
	writeJSON(w, e.Status, e)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
