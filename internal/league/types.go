// Package league holds the domain model for the championship: teams and
// rosters, weekly availability postings, match challenges and match reports,
// plus the reconciliation and aggregation logic that turns the loosely typed
// spreadsheet rows into a consistent snapshot.
package league

// ChallengeStatus is the lifecycle state of a challenge. The values are the
// exact strings stored in the sheet, in Portuguese, so they round-trip
// unchanged.
type ChallengeStatus string

const (
	StatusPending  ChallengeStatus = "Pendente"
	StatusAccepted ChallengeStatus = "Aceito"
	StatusRejected ChallengeStatus = "Recusado"
	StatusDone     ChallengeStatus = "Concluído"
)

// Days are the canonical day-of-week values, Monday first, as stored in the
// Availabilities sheet.
var Days = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado", "Domingo"}

type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Overall  int    `json:"overall"`
	Position string `json:"position"` // "/"-separated codes, first is primary
	TeamID   string `json:"team"`
}

type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	President string   `json:"president"`
	Squad     []Player `json:"squad"`
	Logo      string   `json:"logo"`
}

type Availability struct {
	ID        string `json:"id"`
	TeamID    string `json:"teamId"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"` // raw sheet value: "HH:MM" or a full timestamp
	EndTime   string `json:"endTime"`
}

type Challenge struct {
	ID               string          `json:"id"`
	ChallengerTeamID string          `json:"challengerTeamId"`
	ChallengedTeamID string          `json:"challengedTeamId"`
	Date             string          `json:"date"`
	Time             string          `json:"time"`
	Message          string          `json:"message"`
	Status           ChallengeStatus `json:"status"`
	CreatedAt        int64           `json:"createdAt"` // epoch milliseconds
}

type PlayerMatchStats struct {
	PlayerID    string `json:"playerId"`
	TeamID      string `json:"teamId"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	YellowCards int    `json:"yellowCards"`
	RedCards    int    `json:"redCards"`
	Injury      bool   `json:"injury"`
}

type MatchReport struct {
	ID             string             `json:"id"`
	HomeTeamID     string             `json:"homeTeamId"`
	AwayTeamID     string             `json:"awayTeamId"`
	HomeScore      int                `json:"homeScore"`
	AwayScore      int                `json:"awayScore"`
	ReporterTeamID string             `json:"reporterTeamId"`
	Timestamp      int64              `json:"timestamp"` // epoch milliseconds
	PlayerStats    []PlayerMatchStats `json:"playerStats"`
}

// AppState is one fully reconciled snapshot. Collections are never nil.
type AppState struct {
	Teams          []Team         `json:"teams"`
	Availabilities []Availability `json:"availabilities"`
	Challenges     []Challenge    `json:"challenges"`
	Reports        []MatchReport  `json:"reports"`
}

// Empty returns a snapshot with all collections allocated and empty.
func Empty() AppState {
	return AppState{
		Teams:          []Team{},
		Availabilities: []Availability{},
		Challenges:     []Challenge{},
		Reports:        []MatchReport{},
	}
}

// TeamByID resolves a team id against the snapshot. The boolean reports
// whether the id was found; callers render a placeholder on a miss.
func (s AppState) TeamByID(id string) (Team, bool) {
	for _, t := range s.Teams {
		if normalizeID(t.ID) == normalizeID(id) {
			return t, true
		}
	}
	return Team{}, false
}

// TeamName resolves a team id to its display name, or a placeholder when the
// id does not resolve.
func (s AppState) TeamName(id string) string {
	if t, ok := s.TeamByID(id); ok {
		return t.Name
	}
	return "Time Desconhecido"
}
