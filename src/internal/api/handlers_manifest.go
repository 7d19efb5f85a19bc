package api

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/octetpost/octetpost/src/internal/errors"
)

// Manifest renders the orders of a manifest document.
// POST /5/manifest
func (h *Handler) Manifest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.Manifest.MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			writeText(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("manifest body exceeds %d bytes", maxErr.Limit))
			return
		}
		writeDomainError(w, errors.NewManifestError("failed to read request body", err))
		return
	}

	m, err := h.parser.Parse(r.Header.Get("Content-Type"), body)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.ObserveManifestOrders(m.Len())

	if m.IsEmpty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeText(w, http.StatusOK, h.parser.Render(m))
}
