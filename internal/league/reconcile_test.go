package league

import (
	"reflect"
	"testing"
	"time"
)

var fixedNow = func() time.Time { return time.UnixMilli(1700000000000) }

func TestReconcileLinksPlayersToTeams(t *testing.T) {
	raw := RawPayload{
		Teams: []RawRecord{
			{"id": "t1", "name": "Leões", "president": "Rafa"},
			{"id": float64(2), "name": "Tubarões"},
		},
		Players: []RawRecord{
			{"id": "p1", "name": "Zico", "team_id": "t1", "overall": float64(88)},
			{"id": "p2", "name": "Dida", "teamId": "t1", "overall": "81"},
			{"id": "p3", "name": "Nino", "teamid": "2"}, // lowercase spelling, numeric team id
			{"id": "p4", "name": "Solto", "team_id": "nope"},
		},
	}

	state := Reconcile(raw, fixedNow)

	if len(state.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(state.Teams))
	}

	leoes := state.Teams[0]
	if len(leoes.Squad) != 2 {
		t.Fatalf("Leões: expected 2 players, got %d", len(leoes.Squad))
	}
	if leoes.Squad[0].Name != "Zico" || leoes.Squad[0].Overall != 88 {
		t.Errorf("unexpected first player: %+v", leoes.Squad[0])
	}
	if leoes.Squad[1].Overall != 81 {
		t.Errorf("string overall not coerced: %+v", leoes.Squad[1])
	}

	tubaroes := state.Teams[1]
	if tubaroes.ID != "2" {
		t.Errorf("numeric team id not normalized: %q", tubaroes.ID)
	}
	if len(tubaroes.Squad) != 1 || tubaroes.Squad[0].Name != "Nino" {
		t.Errorf("numeric/string id join failed: %+v", tubaroes.Squad)
	}

	// p4 matches no team and appears in no roster.
	for _, team := range state.Teams {
		for _, p := range team.Squad {
			if p.ID == "p4" {
				t.Errorf("unmatched player ended up in roster of %s", team.Name)
			}
		}
	}
}

func TestReconcilePlayerInExactlyOneRoster(t *testing.T) {
	raw := RawPayload{
		Teams: []RawRecord{
			{"id": "t1", "name": "A"},
			{"id": "t2", "name": "B"},
		},
		Players: []RawRecord{
			{"id": "p1", "name": "Um", "team_id": "t1"},
			{"id": "p2", "name": "Dois", "team_id": "t2"},
		},
	}

	state := Reconcile(raw, fixedNow)

	seen := map[string]int{}
	for _, team := range state.Teams {
		for _, p := range team.Squad {
			seen[p.ID]++
			if !SameID(p.TeamID, team.ID) {
				t.Errorf("player %s carries team fk %q inside team %q", p.ID, p.TeamID, team.ID)
			}
		}
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("player %s appears in %d rosters", id, n)
		}
	}
}

func TestReconcileMatchStatsFromChildTable(t *testing.T) {
	raw := RawPayload{
		Reports: []RawRecord{
			{"id": "m1", "homeTeamId": "t1", "awayTeamId": "t2", "homeScore": float64(3), "awayScore": "1", "timestamp": float64(1000)},
		},
		PlayerStats: []RawRecord{
			{"matchId": "m1", "playerId": "p1", "teamId": "t1", "goals": float64(2), "injury": "TRUE"},
			{"matchid": float64(0), "playerId": "px"}, // different match
			{"matchid": "m1", "playerid": "p2", "teamid": "t2", "yellowCards": "1", "injury": false},
		},
	}

	state := Reconcile(raw, fixedNow)

	if len(state.Reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(state.Reports))
	}
	r := state.Reports[0]
	if r.HomeScore != 3 || r.AwayScore != 1 {
		t.Errorf("scores not coerced: %d-%d", r.HomeScore, r.AwayScore)
	}
	if len(r.PlayerStats) != 2 {
		t.Fatalf("expected 2 linked stats, got %d", len(r.PlayerStats))
	}
	if r.PlayerStats[0].Goals != 2 || !r.PlayerStats[0].Injury {
		t.Errorf("unexpected first stat: %+v", r.PlayerStats[0])
	}
	if r.PlayerStats[1].PlayerID != "p2" || r.PlayerStats[1].YellowCards != 1 {
		t.Errorf("lowercase spellings not accepted: %+v", r.PlayerStats[1])
	}
}

func TestReconcileLegacyEmbeddedStats(t *testing.T) {
	raw := RawPayload{
		Reports: []RawRecord{
			{"id": "m1", "playerStats": `[{"playerId":"p1","teamId":"t1","goals":2,"assists":1,"yellowCards":0,"redCards":0,"injury":false}]`, "timestamp": float64(1)},
			{"id": "m2", "playerStats": []any{
				map[string]any{"playerId": "p9", "teamId": "t2", "goals": float64(1), "injury": "true"},
			}, "timestamp": float64(2)},
			{"id": "m3", "playerStats": "{broken json", "timestamp": float64(3)},
			{"id": "m4", "timestamp": float64(4)},
		},
	}

	state := Reconcile(raw, fixedNow)

	if got := state.Reports[0].PlayerStats; len(got) != 1 || got[0].Goals != 2 {
		t.Errorf("stringified legacy stats: got %+v", got)
	}
	if got := state.Reports[1].PlayerStats; len(got) != 1 || got[0].PlayerID != "p9" || !got[0].Injury {
		t.Errorf("structured legacy stats: got %+v", got)
	}
	for _, r := range state.Reports[2:] {
		if r.PlayerStats == nil {
			t.Errorf("report %s: stats must never be nil", r.ID)
		}
		if len(r.PlayerStats) != 0 {
			t.Errorf("report %s: expected empty stats, got %+v", r.ID, r.PlayerStats)
		}
	}
}

func TestReconcileChildTableWinsOverLegacy(t *testing.T) {
	raw := RawPayload{
		Reports: []RawRecord{
			{"id": "m1", "playerStats": `[{"playerId":"legacy","goals":9}]`, "timestamp": float64(1)},
		},
		PlayerStats: []RawRecord{
			{"matchId": "m1", "playerId": "linked", "goals": float64(1)},
		},
	}

	state := Reconcile(raw, fixedNow)

	stats := state.Reports[0].PlayerStats
	if len(stats) != 1 || stats[0].PlayerID != "linked" {
		t.Fatalf("expected only linked stats, got %+v", stats)
	}
}

func TestReconcileMissingTimestampDefaultsToNow(t *testing.T) {
	raw := RawPayload{
		Reports: []RawRecord{
			{"id": "m1", "homeScore": "abc"},
		},
	}

	state := Reconcile(raw, fixedNow)

	r := state.Reports[0]
	if r.Timestamp != fixedNow().UnixMilli() {
		t.Errorf("expected now fallback, got %d", r.Timestamp)
	}
	if r.HomeScore != 0 {
		t.Errorf("malformed score must coerce to 0, got %d", r.HomeScore)
	}
}

func TestReconcileChallenges(t *testing.T) {
	raw := RawPayload{
		Challenges: []RawRecord{
			{"id": "c1", "challengerTeamId": float64(1), "challengedTeamId": "2", "status": "Pendente", "createdAt": "1699000000000", "message": "bora"},
		},
	}

	state := Reconcile(raw, fixedNow)

	c := state.Challenges[0]
	if c.ChallengerTeamID != "1" || c.ChallengedTeamID != "2" {
		t.Errorf("ids not normalized: %+v", c)
	}
	if c.Status != StatusPending {
		t.Errorf("expected Pendente, got %q", c.Status)
	}
	if c.CreatedAt != 1699000000000 {
		t.Errorf("createdAt not coerced: %d", c.CreatedAt)
	}
}

func TestReconcileIsDeterministic(t *testing.T) {
	raw := RawPayload{
		Teams:   []RawRecord{{"id": "t1", "name": "A"}, {"id": "t2", "name": "B"}},
		Players: []RawRecord{{"id": "p1", "team_id": "t1"}, {"id": "p2", "team_id": "t2"}},
		Reports: []RawRecord{
			{"id": "m1", "homeTeamId": "t1", "awayTeamId": "t2", "homeScore": float64(1), "awayScore": float64(0), "timestamp": float64(5)},
		},
		PlayerStats: []RawRecord{{"matchId": "m1", "playerId": "p1", "goals": float64(1)}},
	}

	first := Reconcile(raw, fixedNow)
	second := Reconcile(raw, fixedNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("reconciliation is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestReconcileEmptyPayload(t *testing.T) {
	state := Reconcile(RawPayload{}, fixedNow)

	if state.Teams == nil || state.Availabilities == nil || state.Challenges == nil || state.Reports == nil {
		t.Errorf("collections must never be nil: %+v", state)
	}
}
