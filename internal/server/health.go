package server

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"
)

// HealthResponse reports backend dependency status.
type HealthResponse struct {
	Sqlite string `json:"sqlite"`
	Remote string `json:"remote"` // "synced" once a sync has succeeded, "never" before
}

func handleHealth(logger *slog.Logger, db *sql.DB, svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		resp := HealthResponse{Sqlite: "ok", Remote: "never"}
		status := http.StatusOK

		if err := db.PingContext(ctx); err != nil {
			logger.Error("health check failed", "name", "sqlite", "error", err)
			resp.Sqlite = "error"
			status = http.StatusServiceUnavailable
		}
		if _, ok := svc.LastSync(); ok {
			resp.Remote = "synced"
		}

		writeJSON(w, status, resp)
	}
}
