package league

import "sort"

// TeamStanding is one row of the league table.
type TeamStanding struct {
	TeamID         string `json:"teamId"`
	Name           string `json:"name"`
	Logo           string `json:"logo"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

// ComputeStandings folds every match report into a league table: 3 points
// for a win, 1 for a draw. Reports whose home or away team does not resolve
// against the team list are skipped entirely. The sort is descending by
// points, then goal difference, then goals for, then wins; remaining ties
// keep team-list order.
func ComputeStandings(teams []Team, reports []MatchReport) []TeamStanding {
	rows := make([]TeamStanding, len(teams))
	index := make(map[string]*TeamStanding, len(teams))
	for i, t := range teams {
		rows[i] = TeamStanding{TeamID: t.ID, Name: t.Name, Logo: t.Logo}
		index[normalizeID(t.ID)] = &rows[i]
	}

	for _, r := range reports {
		home := index[normalizeID(r.HomeTeamID)]
		away := index[normalizeID(r.AwayTeamID)]
		if home == nil || away == nil {
			continue
		}

		home.Played++
		away.Played++
		home.GoalsFor += r.HomeScore
		home.GoalsAgainst += r.AwayScore
		away.GoalsFor += r.AwayScore
		away.GoalsAgainst += r.HomeScore

		switch {
		case r.HomeScore > r.AwayScore:
			home.Wins++
			home.Points += 3
			away.Losses++
		case r.HomeScore < r.AwayScore:
			away.Wins++
			away.Points += 3
			home.Losses++
		default:
			home.Draws++
			away.Draws++
			home.Points++
			away.Points++
		}
	}

	for i := range rows {
		rows[i].GoalDifference = rows[i].GoalsFor - rows[i].GoalsAgainst
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Wins > b.Wins
	})

	return rows
}
