package handlers

import (
	"net/http"

	"github.com/Silverados/sitenav/internal/export"
	"github.com/Silverados/sitenav/internal/httpserver/deps"
	"github.com/Silverados/sitenav/internal/logger"
)

// Export serves the document encoded as ?format=ts|json|yaml (default ts).
func Export(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("format")
		if raw == "" {
			raw = string(export.FormatTS)
		}
		format, err := export.ParseFormat(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		snap, ok := currentSnapshot(w, d)
		if !ok {
			return
		}
		if notModified(w, r, etag(snap.Digest, string(format))) {
			return
		}

		body, err := export.Encode(snap.Site, format)
		if err != nil {
			d.Logger.Error("failed to encode export",
				logger.String("format", string(format)),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.WriteHeader(http.StatusOK)
		writeBody(w, d, body)
	}
}
