package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/ligafc/leaguehub/internal/league"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "LeagueHub API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the amateur league hub: rosters, availabilities, challenges, match reports, standings and leaderboards.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the status of the local cache and the remote sync.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/state")
	getState.SetSummary("Full snapshot")
	getState.SetDescription("Returns the current reconciled snapshot with sync metadata.")
	getState.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getState)

	// POST /api/sync
	postSync, _ := r.NewOperationContext(http.MethodPost, "/api/sync")
	postSync.SetSummary("Manual refresh")
	postSync.SetDescription("Fetches the remote sheet and rebuilds the snapshot. On remote failure the cached snapshot stays untouched.")
	postSync.AddRespStructure(SyncResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSync.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(postSync)

	// GET /api/standings
	getStandings, _ := r.NewOperationContext(http.MethodGet, "/api/standings")
	getStandings.SetSummary("League table")
	getStandings.SetDescription("Ranked standings: points, then goal difference, goals for, wins.")
	getStandings.AddRespStructure([]league.TeamStanding{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getStandings)

	// GET /api/leaderboards
	getBoards, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboards")
	getBoards.SetSummary("Player leaderboards")
	getBoards.SetDescription("Top-10 rankings for goals, assists, cards and injuries, plus summary totals.")
	getBoards.AddRespStructure(Leaderboards{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getBoards)

	// GET /api/teams
	listTeams, _ := r.NewOperationContext(http.MethodGet, "/api/teams")
	listTeams.SetSummary("List teams")
	listTeams.AddRespStructure([]league.Team{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listTeams)

	// GET /api/teams/{teamID}
	getTeam, _ := r.NewOperationContext(http.MethodGet, "/api/teams/{teamID}")
	getTeam.SetSummary("Get team")
	getTeam.SetDescription("Returns one team with its roster sorted by overall rating.")
	getTeam.AddRespStructure(TeamDetail{}, openapi.WithHTTPStatus(http.StatusOK))
	getTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getTeam)

	// GET /api/availabilities
	listAvail, _ := r.NewOperationContext(http.MethodGet, "/api/availabilities")
	listAvail.SetSummary("List availabilities")
	listAvail.AddRespStructure([]AvailabilityResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listAvail)

	// POST /api/availabilities
	postAvail, _ := r.NewOperationContext(http.MethodPost, "/api/availabilities")
	postAvail.SetSummary("Post availability")
	postAvail.SetDescription("Creates a weekly availability slot and appends it to the remote sheet.")
	postAvail.AddReqStructure(AvailabilityRequest{})
	postAvail.AddRespStructure(AvailabilityResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postAvail.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postAvail)

	// DELETE /api/availabilities/{id}
	delAvail, _ := r.NewOperationContext(http.MethodDelete, "/api/availabilities/{id}")
	delAvail.SetSummary("Remove availability")
	delAvail.SetDescription("Removes a slot locally. The remote sheet keeps its row until the owner clears it there.")
	delAvail.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	delAvail.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(delAvail)

	// GET /api/challenges
	listChallenges, _ := r.NewOperationContext(http.MethodGet, "/api/challenges")
	listChallenges.SetSummary("List challenges")
	listChallenges.SetDescription("All challenges, newest first.")
	listChallenges.AddRespStructure([]league.Challenge{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listChallenges)

	// POST /api/challenges
	postChallenge, _ := r.NewOperationContext(http.MethodPost, "/api/challenges")
	postChallenge.SetSummary("Create challenge")
	postChallenge.AddReqStructure(ChallengeRequest{})
	postChallenge.AddRespStructure(league.Challenge{}, openapi.WithHTTPStatus(http.StatusCreated))
	postChallenge.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postChallenge)

	// POST /api/challenges/{id}/accept
	acceptChallenge, _ := r.NewOperationContext(http.MethodPost, "/api/challenges/{id}/accept")
	acceptChallenge.SetSummary("Accept challenge")
	acceptChallenge.SetDescription("Marks a pending challenge as accepted and pushes the status to the remote sheet.")
	acceptChallenge.AddRespStructure(league.Challenge{}, openapi.WithHTTPStatus(http.StatusOK))
	acceptChallenge.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	acceptChallenge.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(acceptChallenge)

	// POST /api/challenges/{id}/reject
	rejectChallenge, _ := r.NewOperationContext(http.MethodPost, "/api/challenges/{id}/reject")
	rejectChallenge.SetSummary("Reject challenge")
	rejectChallenge.AddRespStructure(league.Challenge{}, openapi.WithHTTPStatus(http.StatusOK))
	rejectChallenge.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	rejectChallenge.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(rejectChallenge)

	// GET /api/reports
	listReports, _ := r.NewOperationContext(http.MethodGet, "/api/reports")
	listReports.SetSummary("List match reports")
	listReports.SetDescription("All reports, newest first.")
	listReports.AddRespStructure([]league.MatchReport{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listReports)

	// POST /api/reports
	postReport, _ := r.NewOperationContext(http.MethodPost, "/api/reports")
	postReport.SetSummary("Submit match report")
	postReport.SetDescription("Records a played match with per-player stats. The summary and each stat line are appended to their sheet tabs.")
	postReport.AddReqStructure(ReportInput{})
	postReport.AddRespStructure(league.MatchReport{}, openapi.WithHTTPStatus(http.StatusCreated))
	postReport.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postReport)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
