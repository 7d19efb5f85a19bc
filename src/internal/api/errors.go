package api

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/octetpost/octetpost/src/internal/errors"
	"github.com/octetpost/octetpost/src/internal/log"
)

// writeText writes a plain-text response with the given status code.
func writeText(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = io.WriteString(w, body)
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	writeText(w, http.StatusBadRequest, message)
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	writeText(w, http.StatusInternalServerError, message)
}

// writeDomainError maps a domain error code to its HTTP status.
func writeDomainError(w http.ResponseWriter, err error) {
	var domainErr *errors.Error
	if !stderrors.As(err, &domainErr) {
		log.Errorf("Unexpected error: %v", err)
		WriteInternalError(w, "Internal server error")
		return
	}

	switch domainErr.Code {
	case errors.ErrCodeManifest, errors.ErrCodeValidation:
		WriteInvalidRequest(w, domainErr.Detail())
	case errors.ErrCodeUnsupportedMediaType:
		w.WriteHeader(http.StatusUnsupportedMediaType)
	case errors.ErrCodeNotImplemented:
		writeText(w, http.StatusNotImplemented, domainErr.Detail())
	default:
		log.Errorf("Request failed: %v", err)
		WriteInternalError(w, "Internal server error")
	}
}
