package server

import (
	"errors"
	"net/http"

	"github.com/ligafc/leaguehub/internal/sheets"
)

// SyncResponse reports the outcome of a manual refresh.
type SyncResponse struct {
	Teams      int `json:"teams"`
	Challenges int `json:"challenges"`
	Reports    int `json:"reports"`
}

func handleSync(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Sync(r.Context()); err != nil {
			if errors.Is(err, sheets.ErrUnavailable) {
				writeError(w, http.StatusBadGateway, "sync unavailable, serving cached data")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		state := svc.State()
		writeJSON(w, http.StatusOK, SyncResponse{
			Teams:      len(state.Teams),
			Challenges: len(state.Challenges),
			Reports:    len(state.Reports),
		})
	}
}
