package league

import (
	"encoding/json"
	"strings"
	"time"
)

// Reconcile joins the flat sheet rows into one consistent snapshot. It is
// pure and deterministic: the same payload always produces the same
// snapshot, with input order preserved.
//
// The now func supplies the fallback for reports that arrive without a
// timestamp; pass time.Now in production.
func Reconcile(raw RawPayload, now func() time.Time) AppState {
	state := Empty()

	for _, rt := range raw.Teams {
		team := Team{
			ID:        rt.String("id"),
			Name:      rt.String("name"),
			President: rt.String("president"),
			Logo:      rt.String("logo"),
			Squad:     []Player{},
		}
		for _, rp := range raw.Players {
			// The sheet has emitted both spellings over time.
			if !SameID(rp.String("team_id", "teamId"), team.ID) {
				continue
			}
			team.Squad = append(team.Squad, Player{
				ID:       rp.String("id"),
				Name:     rp.String("name"),
				Overall:  rp.Int("overall"),
				Position: rp.String("position"),
				TeamID:   team.ID,
			})
		}
		state.Teams = append(state.Teams, team)
	}

	for _, ra := range raw.Availabilities {
		state.Availabilities = append(state.Availabilities, Availability{
			ID:        ra.String("id"),
			TeamID:    ra.String("teamId", "team_id"),
			Day:       ra.String("day"),
			StartTime: ra.String("startTime"),
			EndTime:   ra.String("endTime"),
		})
	}

	for _, rc := range raw.Challenges {
		state.Challenges = append(state.Challenges, Challenge{
			ID:               rc.String("id"),
			ChallengerTeamID: rc.String("challengerTeamId"),
			ChallengedTeamID: rc.String("challengedTeamId"),
			Date:             rc.String("date"),
			Time:             rc.String("time"),
			Message:          rc.String("message"),
			Status:           ChallengeStatus(rc.String("status")),
			CreatedAt:        rc.Int64("createdAt"),
		})
	}

	for _, rr := range raw.Reports {
		report := MatchReport{
			ID:             rr.String("id"),
			HomeTeamID:     rr.String("homeTeamId"),
			AwayTeamID:     rr.String("awayTeamId"),
			HomeScore:      rr.Int("homeScore"),
			AwayScore:      rr.Int("awayScore"),
			ReporterTeamID: rr.String("reporterTeamId"),
			Timestamp:      rr.Int64("timestamp"),
			PlayerStats:    matchStatsFor(rr, raw.PlayerStats),
		}
		if report.Timestamp == 0 {
			report.Timestamp = now().UnixMilli()
		}
		state.Reports = append(state.Reports, report)
	}

	return state
}

// matchStatsFor resolves the per-player stats for one report. The dedicated
// PlayerStats tab wins when it holds rows for this match; otherwise the
// legacy embedded column on the Reports tab is used as a fallback. The two
// sources are never mixed, and the result is never nil.
//
// TODO: drop the legacy branch once every report row has been migrated to
// the PlayerStats tab.
func matchStatsFor(report RawRecord, allStats []RawRecord) []PlayerMatchStats {
	matchID := report.String("id")

	stats := []PlayerMatchStats{}
	for _, rs := range allStats {
		if !SameID(rs.String("matchId", "matchid"), matchID) {
			continue
		}
		stats = append(stats, PlayerMatchStats{
			PlayerID:    rs.String("playerId", "playerid"),
			TeamID:      rs.String("teamId", "teamid"),
			Goals:       rs.Int("goals"),
			Assists:     rs.Int("assists"),
			YellowCards: rs.Int("yellowCards"),
			RedCards:    rs.Int("redCards"),
			Injury:      rs.Bool("injury"),
		})
	}
	if len(stats) > 0 {
		return stats
	}

	return legacyEmbeddedStats(report)
}

// legacyEmbeddedStats parses the pre-migration "playerStats" column, which
// held either a stringified JSON list or an already structured list. Any
// parse failure yields an empty list, never an error.
func legacyEmbeddedStats(report RawRecord) []PlayerMatchStats {
	v, ok := report.field("playerStats")
	if !ok || v == nil {
		return []PlayerMatchStats{}
	}

	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return []PlayerMatchStats{}
		}
		var parsed []PlayerMatchStats
		if err := json.Unmarshal([]byte(t), &parsed); err != nil || parsed == nil {
			return []PlayerMatchStats{}
		}
		return parsed
	case []any:
		stats := make([]PlayerMatchStats, 0, len(t))
		for _, e := range t {
			m, ok := e.(map[string]any)
			if !ok {
				continue
			}
			rs := RawRecord(m)
			stats = append(stats, PlayerMatchStats{
				PlayerID:    rs.String("playerId", "playerid"),
				TeamID:      rs.String("teamId", "teamid"),
				Goals:       rs.Int("goals"),
				Assists:     rs.Int("assists"),
				YellowCards: rs.Int("yellowCards"),
				RedCards:    rs.Int("redCards"),
				Injury:      rs.Bool("injury"),
			})
		}
		return stats
	}
	return []PlayerMatchStats{}
}
