package handlers

import (
	"math"
	"net/http"

	"github.com/Silverados/sitenav/internal/httpserver/deps"
)

type buildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
}

type healthzResponse struct {
	Status string    `json:"status"`
	Uptime float64   `json:"uptime_seconds"`
	Source string    `json:"source"`
	Build  buildInfo `json:"build"`
}

// Healthz is the liveness probe. It never depends on the document or on
// Redis; use /readyz for that.
func Healthz(d deps.Deps) http.HandlerFunc {
	build := buildInfo{
		Version:   d.Version,
		Commit:    d.Commit,
		BuildDate: d.BuildDate,
		GoVersion: d.GoVersion,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		uptime := d.Now().Sub(d.StartTime).Seconds()
		writeJSON(w, http.StatusOK, healthzResponse{
			Status: "ok",
			Uptime: math.Round(uptime*1000) / 1000,
			Source: d.SourceName,
			Build:  build,
		})
	}
}
