package server

import (
	"net/http"
	"time"

	"github.com/ligafc/leaguehub/internal/league"
)

// StateResponse is the full reconciled snapshot plus sync metadata.
type StateResponse struct {
	league.AppState
	Synced   bool   `json:"synced"`
	LastSync string `json:"lastSync,omitempty"`
}

func handleState(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := StateResponse{AppState: svc.State()}
		if at, ok := svc.LastSync(); ok {
			resp.Synced = true
			resp.LastSync = at.UTC().Format(time.RFC3339)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
