// leaguectl inspects the locally cached league snapshot from the command
// line: league table, player leaderboards and roster listings, without
// touching the remote sheet.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ligafc/leaguehub/internal/database"
	"github.com/ligafc/leaguehub/internal/league"
	"github.com/ligafc/leaguehub/internal/store"
)

type globals struct {
	DBPath string `help:"Path to the local cache database." env:"DB_PATH" default:"data/leaguehub.db"`
}

var cli struct {
	globals

	Standings standingsCmd `cmd:"" help:"Print the league table."`
	Leaders   leadersCmd   `cmd:"" help:"Print a player leaderboard."`
	Squad     squadCmd     `cmd:"" help:"Print one team's roster."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("leaguectl"),
		kong.Description("Inspect the cached league snapshot."),
	)
	kctx.FatalIfErrorf(kctx.Run(&cli.globals))
}

func loadSnapshot(g *globals) (league.AppState, error) {
	ctx := context.Background()

	db, err := database.Open(ctx, g.DBPath)
	if err != nil {
		return league.Empty(), err
	}
	defer db.Close()

	state, err := store.NewSnapshotStore(db).Load(ctx)
	if err != nil {
		return league.Empty(), fmt.Errorf("no cached snapshot at %s, run the server once: %w", g.DBPath, err)
	}
	return state, nil
}

type standingsCmd struct{}

func (c *standingsCmd) Run(g *globals) error {
	state, err := loadSnapshot(g)
	if err != nil {
		return err
	}

	rows := league.ComputeStandings(state.Teams, state.Reports)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"})
	for i, row := range rows {
		t.AppendRow(table.Row{
			i + 1, row.Name, row.Played, row.Wins, row.Draws, row.Losses,
			row.GoalsFor, row.GoalsAgainst, row.GoalDifference, row.Points,
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

type leadersCmd struct {
	Stat string `arg:"" enum:"goals,assists,yellowCards,redCards,injuries" default:"goals" help:"Statistic to rank by."`
}

func (c *leadersCmd) Run(g *globals) error {
	state, err := loadSnapshot(g)
	if err != nil {
		return err
	}

	ranks := league.ComputeLeaderboard(state.Teams, state.Reports, league.StatField(c.Stat))
	if len(ranks) == 0 {
		fmt.Println("no entries yet")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Player", "Team", c.Stat})
	for i, r := range ranks {
		t.AppendRow(table.Row{i + 1, r.Name, r.Team, r.Value})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

type squadCmd struct {
	Team string `arg:"" help:"Team id or name."`
}

func (c *squadCmd) Run(g *globals) error {
	state, err := loadSnapshot(g)
	if err != nil {
		return err
	}

	team, ok := state.TeamByID(c.Team)
	if !ok {
		for _, cand := range state.Teams {
			if cand.Name == c.Team {
				team, ok = cand, true
				break
			}
		}
	}
	if !ok {
		return fmt.Errorf("team %q not found", c.Team)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Player", "Pos", "Overall"})
	for _, p := range team.Squad {
		t.AppendRow(table.Row{p.Name, league.PrimaryPosition(p.Position), p.Overall})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
