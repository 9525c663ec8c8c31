package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ligafc/leaguehub/internal/league"
	"github.com/ligafc/leaguehub/internal/sheets"
	"github.com/ligafc/leaguehub/internal/store"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrNotPending = errors.New("challenge is not pending")
	ErrBadRequest = errors.New("bad request")
)

// Remote is the spreadsheet-backed source of truth.
type Remote interface {
	FetchData(ctx context.Context) (league.RawPayload, error)
	AppendRow(ctx context.Context, sheet string, row []any) error
	UpdateChallengeStatus(ctx context.Context, id string, status league.ChallengeStatus) error
}

// Service owns the current snapshot and coordinates the reconciler, the
// local cache and the remote source. Local mutations are optimistic: the
// snapshot and the cache are updated first, then the remote write goes out
// fire-and-forget — a remote failure is logged, never rolled back. The next
// full sync overwrites local state with whatever the remote reports.
type Service struct {
	mu       sync.RWMutex
	state    league.AppState
	synced   bool
	lastSync time.Time

	store  *store.SnapshotStore
	remote Remote
	logger *slog.Logger
	now    func() time.Time
}

func NewService(st *store.SnapshotStore, remote Remote, logger *slog.Logger) *Service {
	return &Service{
		state:  league.Empty(),
		store:  st,
		remote: remote,
		logger: logger,
		now:    time.Now,
	}
}

// Bootstrap loads the cached snapshot for instant rendering, then attempts a
// full sync. A failed sync is not fatal: the app keeps serving cached data.
func (s *Service) Bootstrap(ctx context.Context) error {
	cached, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// First start, nothing cached yet.
	case err != nil:
		return fmt.Errorf("loading cache: %w", err)
	default:
		s.mu.Lock()
		s.state = cached
		s.mu.Unlock()
		s.logger.Info("serving cached snapshot", "teams", len(cached.Teams), "reports", len(cached.Reports))
	}

	if err := s.Sync(ctx); err != nil {
		s.logger.Warn("initial sync failed, operating from cache", "error", err)
	}
	return nil
}

// Sync fetches the remote payload, reconciles it and swaps the snapshot. On
// any remote failure the previous snapshot stays untouched and the error is
// returned. Concurrent syncs are allowed; the last one to finish wins.
func (s *Service) Sync(ctx context.Context) error {
	raw, err := s.remote.FetchData(ctx)
	if err != nil {
		return err
	}

	state := league.Reconcile(raw, s.now)

	s.mu.Lock()
	s.state = state
	s.synced = true
	s.lastSync = s.now()
	s.mu.Unlock()

	if err := s.store.Save(ctx, state); err != nil {
		s.logger.Error("persisting snapshot", "error", err)
	}
	return nil
}

// State returns the current snapshot.
func (s *Service) State() league.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// LastSync reports whether a sync has succeeded and when.
func (s *Service) LastSync() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync, s.synced
}

// Standings computes the current league table.
func (s *Service) Standings() []league.TeamStanding {
	state := s.State()
	return league.ComputeStandings(state.Teams, state.Reports)
}

// Leaderboards bundles every player ranking plus the summary totals.
type Leaderboards struct {
	TopScorers   []league.PlayerRank  `json:"topScorers"`
	TopAssisters []league.PlayerRank  `json:"topAssisters"`
	YellowCards  []league.PlayerRank  `json:"yellowCards"`
	RedCards     []league.PlayerRank  `json:"redCards"`
	Injuries     []league.PlayerRank  `json:"injuries"`
	Summary      league.SummaryTotals `json:"summary"`
}

func (s *Service) Leaderboards() Leaderboards {
	state := s.State()
	return Leaderboards{
		TopScorers:   league.ComputeLeaderboard(state.Teams, state.Reports, league.StatGoals),
		TopAssisters: league.ComputeLeaderboard(state.Teams, state.Reports, league.StatAssists),
		YellowCards:  league.ComputeLeaderboard(state.Teams, state.Reports, league.StatYellowCards),
		RedCards:     league.ComputeLeaderboard(state.Teams, state.Reports, league.StatRedCards),
		Injuries:     league.ComputeLeaderboard(state.Teams, state.Reports, league.StatInjuries),
		Summary:      league.ComputeSummary(state.Reports),
	}
}

// AddAvailability creates a weekly availability posting.
func (s *Service) AddAvailability(ctx context.Context, teamID, day, start, end string) (league.Availability, error) {
	if teamID == "" {
		return league.Availability{}, fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}
	if !validDay(day) {
		return league.Availability{}, fmt.Errorf("%w: unknown day %q", ErrBadRequest, day)
	}

	avail := league.Availability{
		ID:        league.NewID(),
		TeamID:    teamID,
		Day:       day,
		StartTime: start,
		EndTime:   end,
	}

	s.mu.Lock()
	s.state.Availabilities = append(append([]league.Availability{}, s.state.Availabilities...), avail)
	state := s.state
	s.mu.Unlock()

	s.persist(ctx, state)
	s.fireAndForget("availability add", s.remote.AppendRow(ctx, sheets.SheetAvailabilities, sheets.AvailabilityRow(avail)))
	return avail, nil
}

// RemoveAvailability deletes a posting locally. The sheet has no delete
// operation, so removal is local-only and survives until the next sync
// re-imports whatever the remote still holds.
func (s *Service) RemoveAvailability(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := make([]league.Availability, 0, len(s.state.Availabilities))
	found := false
	for _, a := range s.state.Availabilities {
		if league.SameID(a.ID, id) {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if found {
		s.state.Availabilities = kept
	}
	state := s.state
	s.mu.Unlock()

	if !found {
		return ErrNotFound
	}
	s.persist(ctx, state)
	return nil
}

// CreateChallenge records a new pending challenge between two teams.
func (s *Service) CreateChallenge(ctx context.Context, challengerID, challengedID, date, timeOfDay, message string) (league.Challenge, error) {
	if challengerID == "" || challengedID == "" {
		return league.Challenge{}, fmt.Errorf("%w: both teams are required", ErrBadRequest)
	}
	if league.SameID(challengerID, challengedID) {
		return league.Challenge{}, fmt.Errorf("%w: a team cannot challenge itself", ErrBadRequest)
	}

	ch := league.Challenge{
		ID:               league.NewID(),
		ChallengerTeamID: challengerID,
		ChallengedTeamID: challengedID,
		Date:             date,
		Time:             timeOfDay,
		Message:          message,
		Status:           league.StatusPending,
		CreatedAt:        s.now().UnixMilli(),
	}

	s.mu.Lock()
	s.state.Challenges = append(append([]league.Challenge{}, s.state.Challenges...), ch)
	state := s.state
	s.mu.Unlock()

	s.persist(ctx, state)
	s.fireAndForget("challenge add", s.remote.AppendRow(ctx, sheets.SheetChallenges, sheets.ChallengeRow(ch)))
	return ch, nil
}

// RespondChallenge accepts or rejects a pending challenge. Responding to a
// challenge that has already left Pendente is a conflict.
func (s *Service) RespondChallenge(ctx context.Context, id string, status league.ChallengeStatus) (league.Challenge, error) {
	if status != league.StatusAccepted && status != league.StatusRejected {
		return league.Challenge{}, fmt.Errorf("%w: status must be %s or %s", ErrBadRequest, league.StatusAccepted, league.StatusRejected)
	}

	s.mu.Lock()
	idx := -1
	for i, c := range s.state.Challenges {
		if league.SameID(c.ID, id) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return league.Challenge{}, ErrNotFound
	}
	if s.state.Challenges[idx].Status != league.StatusPending {
		current := s.state.Challenges[idx]
		s.mu.Unlock()
		return current, ErrNotPending
	}

	updated := make([]league.Challenge, len(s.state.Challenges))
	copy(updated, s.state.Challenges)
	updated[idx].Status = status
	s.state.Challenges = updated
	ch := updated[idx]
	state := s.state
	s.mu.Unlock()

	s.persist(ctx, state)
	s.fireAndForget("challenge status", s.remote.UpdateChallengeStatus(ctx, ch.ID, status))
	return ch, nil
}

// ReportInput is the payload for submitting a match report.
type ReportInput struct {
	HomeTeamID     string                    `json:"homeTeamId"`
	AwayTeamID     string                    `json:"awayTeamId"`
	HomeScore      int                       `json:"homeScore"`
	AwayScore      int                       `json:"awayScore"`
	ReporterTeamID string                    `json:"reporterTeamId"`
	PlayerStats    []league.PlayerMatchStats `json:"playerStats"`
}

// SubmitReport records a played match with its per-player stats. The summary
// goes to the Reports tab and each stat line to the PlayerStats tab.
func (s *Service) SubmitReport(ctx context.Context, in ReportInput) (league.MatchReport, error) {
	if in.HomeTeamID == "" || in.AwayTeamID == "" || in.ReporterTeamID == "" {
		return league.MatchReport{}, fmt.Errorf("%w: home, away and reporter teams are required", ErrBadRequest)
	}
	if league.SameID(in.HomeTeamID, in.AwayTeamID) {
		return league.MatchReport{}, fmt.Errorf("%w: home and away must differ", ErrBadRequest)
	}
	if in.HomeScore < 0 || in.AwayScore < 0 {
		return league.MatchReport{}, fmt.Errorf("%w: scores cannot be negative", ErrBadRequest)
	}

	report := league.MatchReport{
		ID:             league.NewID(),
		HomeTeamID:     in.HomeTeamID,
		AwayTeamID:     in.AwayTeamID,
		HomeScore:      in.HomeScore,
		AwayScore:      in.AwayScore,
		ReporterTeamID: in.ReporterTeamID,
		Timestamp:      s.now().UnixMilli(),
		PlayerStats:    append([]league.PlayerMatchStats{}, in.PlayerStats...),
	}

	s.mu.Lock()
	s.state.Reports = append(append([]league.MatchReport{}, s.state.Reports...), report)
	state := s.state
	s.mu.Unlock()

	s.persist(ctx, state)
	s.fireAndForget("report add", s.remote.AppendRow(ctx, sheets.SheetReports, sheets.ReportRow(report)))
	for _, stat := range report.PlayerStats {
		s.fireAndForget("player stats add", s.remote.AppendRow(ctx, sheets.SheetPlayerStats, sheets.PlayerStatsRow(report.ID, stat)))
	}
	return report, nil
}

// persist writes the snapshot to the local cache after a mutation. Cache
// failure is logged, not surfaced: the in-memory state already moved on.
func (s *Service) persist(ctx context.Context, state league.AppState) {
	if err := s.store.Save(ctx, state); err != nil {
		s.logger.Error("persisting snapshot after mutation", "error", err)
	}
}

// fireAndForget logs a remote write failure and nothing else. The local
// update stands either way; the remote and local stores re-converge on the
// next full sync.
func (s *Service) fireAndForget(op string, err error) {
	if err != nil {
		s.logger.Error("remote write failed", "op", op, "error", err)
	}
}

func validDay(day string) bool {
	for _, d := range league.Days {
		if d == day {
			return true
		}
	}
	return false
}
