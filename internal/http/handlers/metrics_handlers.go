package handlers

import (
	"log/slog"
	"net/http"
)

// StatsHandler godoc
// @Summary Board-wide counters
// @Tags stats
// @Produce json
// @Success 200 {object} repo.Overview
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := metricsRepo.GetOverview()
	if err != nil {
		slog.Error("could not collect stats", "error", err)
		writeError(w, http.StatusInternalServerError, "could not collect stats")
		return
	}

	_ = writeJSON(w, http.StatusOK, overview)
}

// HealthHandler reports process and store liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if healthCheck != nil {
		if err := healthCheck(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	_ = writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
