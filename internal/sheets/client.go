// Package sheets talks to the spreadsheet-backed remote source: a single
// Apps Script endpoint that serves every sheet tab as a flat JSON array and
// accepts appends and status updates via POST.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ligafc/leaguehub/internal/league"
)

// ErrUnavailable is returned for every read failure: network error, non-2xx
// status, malformed payload. Callers fall back to the local cache.
var ErrUnavailable = errors.New("remote source unavailable")

type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: "leaguehub/1.0",
	}
}

// FetchData downloads every sheet tab in one call. Any failure collapses to
// ErrUnavailable; a partial payload is never returned.
func (c *Client) FetchData(ctx context.Context) (league.RawPayload, error) {
	var payload league.RawPayload

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?action=getData", nil)
	if err != nil {
		return payload, fmt.Errorf("%w: building request: %w", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return league.RawPayload{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return league.RawPayload{}, fmt.Errorf("%w: reading body: %w", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return league.RawPayload{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return league.RawPayload{}, fmt.Errorf("%w: decoding payload: %w", ErrUnavailable, err)
	}
	return payload, nil
}

// AppendRow appends one positional row to a named sheet tab. The response
// body is not inspected; the Apps Script endpoint gives no useful status.
func (c *Client) AppendRow(ctx context.Context, sheet string, row []any) error {
	return c.post(ctx, map[string]any{
		"action": "addRow",
		"sheet":  sheet,
		"data":   row,
	})
}

// UpdateChallengeStatus updates one challenge row's status column remotely.
func (c *Client) UpdateChallengeStatus(ctx context.Context, id string, status league.ChallengeStatus) error {
	return c.post(ctx, map[string]any{
		"action": "updateStatus",
		"sheet":  "Challenges",
		"id":     id,
		"status": string(status),
	})
}

func (c *Client) post(ctx context.Context, body map[string]any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	// Fire-and-forget contract: drain and move on, success is assumed.
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// Sheet tab names, matching the remote spreadsheet.
const (
	SheetAvailabilities = "Availabilities"
	SheetChallenges     = "Challenges"
	SheetReports        = "Reports"
	SheetPlayerStats    = "PlayerStats"
)

// AvailabilityRow lays out an availability in sheet column order.
func AvailabilityRow(a league.Availability) []any {
	return []any{a.ID, a.TeamID, a.Day, a.StartTime, a.EndTime}
}

// ChallengeRow lays out a challenge in sheet column order.
func ChallengeRow(c league.Challenge) []any {
	return []any{c.ID, c.ChallengerTeamID, c.ChallengedTeamID, c.Date, c.Time, c.Message, string(c.Status), c.CreatedAt}
}

// ReportRow lays out a match report summary in sheet column order. Player
// stats go to their own tab, one row per player.
func ReportRow(r league.MatchReport) []any {
	return []any{r.ID, r.HomeTeamID, r.AwayTeamID, r.HomeScore, r.AwayScore, r.ReporterTeamID, r.Timestamp}
}

// PlayerStatsRow lays out one per-player stat line, keyed by the match id.
func PlayerStatsRow(matchID string, s league.PlayerMatchStats) []any {
	return []any{matchID, s.PlayerID, s.TeamID, s.Goals, s.Assists, s.YellowCards, s.RedCards, s.Injury}
}
