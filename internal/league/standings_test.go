package league

import "testing"

func twoTeams() []Team {
	return []Team{
		{ID: "t1", Name: "Leões"},
		{ID: "t2", Name: "Tubarões"},
	}
}

func TestStandingsHomeWin(t *testing.T) {
	reports := []MatchReport{
		{ID: "m1", HomeTeamID: "t1", AwayTeamID: "t2", HomeScore: 3, AwayScore: 1},
	}

	rows := ComputeStandings(twoTeams(), reports)

	home := rows[0]
	if home.TeamID != "t1" {
		t.Fatalf("expected winner first, got %q", home.TeamID)
	}
	if home.Played != 1 || home.Wins != 1 || home.Points != 3 {
		t.Errorf("home: %+v", home)
	}
	if home.GoalsFor != 3 || home.GoalsAgainst != 1 || home.GoalDifference != 2 {
		t.Errorf("home goals: %+v", home)
	}

	away := rows[1]
	if away.Played != 1 || away.Losses != 1 || away.Points != 0 {
		t.Errorf("away: %+v", away)
	}
	if away.GoalsFor != 1 || away.GoalsAgainst != 3 || away.GoalDifference != -2 {
		t.Errorf("away goals: %+v", away)
	}
}

func TestStandingsDraw(t *testing.T) {
	reports := []MatchReport{
		{ID: "m1", HomeTeamID: "t1", AwayTeamID: "t2", HomeScore: 2, AwayScore: 2},
	}

	rows := ComputeStandings(twoTeams(), reports)

	for _, row := range rows {
		if row.Points != 1 || row.Played != 1 || row.Draws != 1 {
			t.Errorf("%s: %+v", row.Name, row)
		}
		if row.Wins != 0 || row.Losses != 0 || row.GoalDifference != 0 {
			t.Errorf("%s: %+v", row.Name, row)
		}
	}
}

func TestStandingsSkipsUnresolvableTeams(t *testing.T) {
	reports := []MatchReport{
		{ID: "m1", HomeTeamID: "t1", AwayTeamID: "ghost", HomeScore: 5, AwayScore: 0},
	}

	rows := ComputeStandings(twoTeams(), reports)

	for _, row := range rows {
		if row.Played != 0 {
			t.Errorf("report with unknown team must not count: %+v", row)
		}
	}
}

func TestStandingsTieBreakCascade(t *testing.T) {
	teams := []Team{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C"},
		{ID: "d", Name: "D"},
	}
	reports := []MatchReport{
		// A and B: 3 points each, A with better goal difference.
		{ID: "m1", HomeTeamID: "a", AwayTeamID: "d", HomeScore: 4, AwayScore: 0},
		{ID: "m2", HomeTeamID: "b", AwayTeamID: "c", HomeScore: 1, AwayScore: 0},
	}

	rows := ComputeStandings(teams, reports)

	if rows[0].TeamID != "a" || rows[1].TeamID != "b" {
		t.Errorf("goal difference tie-break failed: %v, %v", rows[0].TeamID, rows[1].TeamID)
	}

	// Equal points and GD: higher goals-for wins.
	reports = []MatchReport{
		{ID: "m1", HomeTeamID: "a", AwayTeamID: "c", HomeScore: 3, AwayScore: 3},
		{ID: "m2", HomeTeamID: "b", AwayTeamID: "d", HomeScore: 1, AwayScore: 1},
	}
	rows = ComputeStandings(teams, reports)
	if rows[0].TeamID != "a" {
		t.Errorf("goals-for tie-break failed: %q first", rows[0].TeamID)
	}

	// Full tie: stable by prior order.
	reports = []MatchReport{
		{ID: "m1", HomeTeamID: "a", AwayTeamID: "b", HomeScore: 1, AwayScore: 1},
	}
	rows = ComputeStandings(teams, reports)
	if rows[0].TeamID != "a" || rows[1].TeamID != "b" {
		t.Errorf("stable order broken: %q, %q", rows[0].TeamID, rows[1].TeamID)
	}
}

func TestStandingsNumericStringIDsJoin(t *testing.T) {
	teams := []Team{{ID: "1", Name: "Um"}, {ID: "2", Name: "Dois"}}
	reports := []MatchReport{
		{ID: "m1", HomeTeamID: " 1", AwayTeamID: "2", HomeScore: 2, AwayScore: 0},
	}

	rows := ComputeStandings(teams, reports)

	if rows[0].Points != 3 {
		t.Errorf("whitespace-normalized join failed: %+v", rows[0])
	}
}
