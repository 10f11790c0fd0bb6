package handlers

import (
	"net/http"

	"github.com/Silverados/sitenav/internal/httpserver/deps"
	"github.com/Silverados/sitenav/internal/logger"
)

type reloadResponse struct {
	Triggered bool   `json:"triggered"`
	Message   string `json:"message"`
}

// Reload triggers a manual reload of the site document
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Reloader == nil {
			writeError(w, http.StatusServiceUnavailable, "reloading is not available")
			return
		}

		if !d.Reloader.Trigger() {
			d.Logger.Warn("site reload already pending",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusTooManyRequests, reloadResponse{
				Message: "reload already pending, please wait",
			})
			return
		}

		d.Logger.Info("manual site reload triggered via endpoint",
			logger.String("remote_ip", r.RemoteAddr))
		writeJSON(w, http.StatusAccepted, reloadResponse{
			Triggered: true,
			Message:   "reload triggered",
		})
	}
}
