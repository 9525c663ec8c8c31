package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ligafc/leaguehub/internal/league"
)

// AvailabilityRequest creates one weekly availability posting.
type AvailabilityRequest struct {
	TeamID    string `json:"teamId"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailabilityResponse echoes the stored entry plus the display times
// (the sheet may hold full timestamps; clients show HH:MM).
type AvailabilityResponse struct {
	league.Availability
	StartDisplay string `json:"startDisplay"`
	EndDisplay   string `json:"endDisplay"`
}

func availabilityResponse(a league.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		Availability: a,
		StartDisplay: league.FormatTime(a.StartTime),
		EndDisplay:   league.FormatTime(a.EndTime),
	}
}

func handleListAvailabilities(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := svc.State()
		out := make([]AvailabilityResponse, 0, len(state.Availabilities))
		for _, a := range state.Availabilities {
			out = append(out, availabilityResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleAddAvailability(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AvailabilityRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		avail, err := svc.AddAvailability(r.Context(), req.TeamID, req.Day, req.StartTime, req.EndTime)
		if errors.Is(err, ErrBadRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, availabilityResponse(avail))
	}
}

func handleRemoveAvailability(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := svc.RemoveAvailability(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "availability not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
