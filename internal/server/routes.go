package server

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/ligafc/leaguehub/internal/league"
)

func addRoutes(r chi.Router, logger *slog.Logger, svc *Service, db *sql.DB) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("LeagueHub API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db, svc))

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", handleState(svc))
		r.Post("/sync", handleSync(svc))

		r.Get("/standings", handleStandings(svc))
		r.Get("/leaderboards", handleLeaderboards(svc))

		r.Get("/teams", handleListTeams(svc))
		r.Get("/teams/{teamID}", handleGetTeam(svc))

		r.Get("/availabilities", handleListAvailabilities(svc))
		r.Post("/availabilities", handleAddAvailability(svc))
		r.Delete("/availabilities/{id}", handleRemoveAvailability(svc))

		r.Get("/challenges", handleListChallenges(svc))
		r.Post("/challenges", handleCreateChallenge(svc))
		r.Post("/challenges/{id}/accept", handleRespondChallenge(svc, league.StatusAccepted))
		r.Post("/challenges/{id}/reject", handleRespondChallenge(svc, league.StatusRejected))

		r.Get("/reports", handleListReports(svc))
		r.Post("/reports", handleSubmitReport(svc))
	})
}
