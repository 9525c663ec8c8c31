package server

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/ligafc/leaguehub/internal/league"
)

func handleListTeams(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.State().Teams)
	}
}

// TeamDetail is one team with its roster sorted by overall, best first.
type TeamDetail struct {
	league.Team
	PrimaryPositions map[string]string `json:"primaryPositions"`
}

func handleGetTeam(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "teamID")

		team, ok := svc.State().TeamByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}

		squad := append([]league.Player{}, team.Squad...)
		sort.SliceStable(squad, func(i, j int) bool {
			return squad[i].Overall > squad[j].Overall
		})
		team.Squad = squad

		primary := make(map[string]string, len(squad))
		for _, p := range squad {
			primary[p.ID] = league.PrimaryPosition(p.Position)
		}

		writeJSON(w, http.StatusOK, TeamDetail{Team: team, PrimaryPositions: primary})
	}
}
