package server

import (
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/ligafc/leaguehub/internal/league"
)

// ChallengeRequest creates a new challenge between two teams.
type ChallengeRequest struct {
	ChallengerTeamID string `json:"challengerTeamId"`
	ChallengedTeamID string `json:"challengedTeamId"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Message          string `json:"message"`
}

func handleListChallenges(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := svc.State()
		out := append([]league.Challenge{}, state.Challenges...)
		// Newest first; ties keep snapshot order.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
		writeJSON(w, http.StatusOK, out)
	}
}

func handleCreateChallenge(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChallengeRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		ch, err := svc.CreateChallenge(r.Context(), req.ChallengerTeamID, req.ChallengedTeamID, req.Date, req.Time, req.Message)
		if errors.Is(err, ErrBadRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, ch)
	}
}

func handleRespondChallenge(svc *Service, status league.ChallengeStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ch, err := svc.RespondChallenge(r.Context(), id, status)
		switch {
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, "challenge not found")
			return
		case errors.Is(err, ErrNotPending):
			writeError(w, http.StatusConflict, "challenge already answered")
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, ch)
	}
}
