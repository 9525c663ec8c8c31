package league

import "sort"

// StatField selects which per-player statistic a leaderboard sums.
type StatField string

const (
	StatGoals       StatField = "goals"
	StatAssists     StatField = "assists"
	StatYellowCards StatField = "yellowCards"
	StatRedCards    StatField = "redCards"
	StatInjuries    StatField = "injuries" // counts matches with injury=true
)

// PlayerRank is one leaderboard entry.
type PlayerRank struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Value    int    `json:"value"`
}

const leaderboardSize = 10

// ComputeLeaderboard sums the chosen stat per player across every report and
// returns the top 10, descending by value with ties broken by ascending
// name. A zero contribution in a match never creates an entry on its own.
// Player ids that do not resolve against any roster keep their ranking with
// a placeholder name.
func ComputeLeaderboard(teams []Team, reports []MatchReport, field StatField) []PlayerRank {
	totals := make(map[string]int)
	order := make([]string, 0)

	for _, r := range reports {
		for _, s := range r.PlayerStats {
			v := 0
			switch field {
			case StatGoals:
				v = s.Goals
			case StatAssists:
				v = s.Assists
			case StatYellowCards:
				v = s.YellowCards
			case StatRedCards:
				v = s.RedCards
			case StatInjuries:
				if s.Injury {
					v = 1
				}
			}
			if v <= 0 {
				continue
			}
			id := normalizeID(s.PlayerID)
			if _, seen := totals[id]; !seen {
				order = append(order, id)
			}
			totals[id] += v
		}
	}

	ranks := make([]PlayerRank, 0, len(order))
	for _, id := range order {
		rank := PlayerRank{
			PlayerID: id,
			Name:     "Jogador Desconhecido",
			Team:     "N/A",
			Value:    totals[id],
		}
		if p, teamName, ok := findPlayer(teams, id); ok {
			rank.Name = p.Name
			rank.Team = teamName
		}
		ranks = append(ranks, rank)
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Value != ranks[j].Value {
			return ranks[i].Value > ranks[j].Value
		}
		return ranks[i].Name < ranks[j].Name
	})

	if len(ranks) > leaderboardSize {
		ranks = ranks[:leaderboardSize]
	}
	return ranks
}

// findPlayer resolves a player id against the flattened rosters.
func findPlayer(teams []Team, id string) (Player, string, bool) {
	for _, t := range teams {
		for _, p := range t.Squad {
			if SameID(p.ID, id) {
				return p, t.Name, true
			}
		}
	}
	return Player{}, "", false
}

// SummaryTotals are the aggregate figures shown under the leaderboards.
type SummaryTotals struct {
	TotalGoals    int     `json:"totalGoals"`
	Matches       int     `json:"matches"`
	GoalsPerMatch float64 `json:"goalsPerMatch"`
	TotalCards    int     `json:"totalCards"`
}

// ComputeSummary totals goals and cards across every report.
func ComputeSummary(reports []MatchReport) SummaryTotals {
	var s SummaryTotals
	s.Matches = len(reports)
	for _, r := range reports {
		s.TotalGoals += r.HomeScore + r.AwayScore
		for _, ps := range r.PlayerStats {
			s.TotalCards += ps.YellowCards + ps.RedCards
		}
	}
	if s.Matches > 0 {
		s.GoalsPerMatch = float64(s.TotalGoals) / float64(s.Matches)
	}
	return s
}
