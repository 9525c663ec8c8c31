package server

import (
	"errors"
	"net/http"
	"sort"

	"github.com/ligafc/leaguehub/internal/league"
)

func handleListReports(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := svc.State()
		out := append([]league.MatchReport{}, state.Reports...)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Timestamp > out[j].Timestamp
		})
		writeJSON(w, http.StatusOK, out)
	}
}

func handleSubmitReport(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReportInput
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		report, err := svc.SubmitReport(r.Context(), req)
		if errors.Is(err, ErrBadRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, report)
	}
}
