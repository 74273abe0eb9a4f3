package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/uhj/teamstats/internal/model"
	"github.com/uhj/teamstats/internal/stats"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func rate(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// PrintPlayerTable renders per-player aggregates (one season or a whole
// career) with rates derived once from the summed counting stats.
func PrintPlayerTable(w io.Writer, aggs []model.PlayerAggregate) {
	table := newTable(w)
	table.Header(
		"NAME", "GP", "AB", "R", "H", "2B", "3B", "HR", "RBI", "BB", "K",
		"AVG", "OBP", "SLG", "OPS",
	)

	for _, a := range aggs {
		r := stats.Rates(a.BattingLine)
		table.Append(
			a.Name,
			strconv.Itoa(a.Games),
			strconv.Itoa(a.AtBats),
			strconv.Itoa(a.Runs),
			strconv.Itoa(a.Hits),
			strconv.Itoa(a.Doubles),
			strconv.Itoa(a.Triples),
			strconv.Itoa(a.HomeRuns),
			strconv.Itoa(a.RBIs),
			strconv.Itoa(a.Walks),
			strconv.Itoa(a.Strikeouts),
			rate(r.AVG),
			rate(r.OBP),
			rate(r.SLG),
			rate(r.OPS),
		)
	}
	table.Render()
}

// PrintCareerTable renders the all-time leaderboard plus active-year spans.
func PrintCareerTable(w io.Writer, aggs []model.PlayerAggregate) {
	table := newTable(w)
	table.Header(
		"NAME", "YEARS", "SEASONS", "GP", "AB", "H", "HR", "RBI", "BB",
		"AVG", "OBP", "SLG", "OPS",
	)

	for _, a := range aggs {
		r := stats.Rates(a.BattingLine)
		table.Append(
			a.Name,
			fmt.Sprintf("%d–%d", a.FirstYear, a.LastYear),
			strconv.Itoa(a.Seasons),
			strconv.Itoa(a.Games),
			strconv.Itoa(a.AtBats),
			strconv.Itoa(a.Hits),
			strconv.Itoa(a.HomeRuns),
			strconv.Itoa(a.RBIs),
			strconv.Itoa(a.Walks),
			rate(r.AVG),
			rate(r.OBP),
			rate(r.SLG),
			rate(r.OPS),
		)
	}
	table.Render()
}

// PrintGameBox renders one game's header line and per-player box score.
func PrintGameBox(w io.Writer, g model.ArchiveGame, rows []model.FactRow) {
	score := "—"
	if g.RunsFor != nil && g.RunsAgainst != nil {
		score = fmt.Sprintf("%d–%d", *g.RunsFor, *g.RunsAgainst)
	}
	fmt.Fprintf(w, "\n%d Game %d  |  %s  |  vs %s  |  %s  |  Score: %s\n\n",
		g.SeasonYear, g.GameNumber, g.GameDate, g.Opponent, g.Result, score)

	table := newTable(w)
	table.Header("NAME", "AB", "R", "H", "2B", "3B", "HR", "RBI", "BB", "K", "AVG", "OBP", "SLG", "OPS")
	for _, f := range rows {
		r := stats.Rates(f.BattingLine)
		table.Append(
			f.PlayerName,
			strconv.Itoa(f.AtBats),
			strconv.Itoa(f.Runs),
			strconv.Itoa(f.Hits),
			strconv.Itoa(f.Doubles),
			strconv.Itoa(f.Triples),
			strconv.Itoa(f.HomeRuns),
			strconv.Itoa(f.RBIs),
			strconv.Itoa(f.Walks),
			strconv.Itoa(f.Strikeouts),
			rate(r.AVG),
			rate(r.OBP),
			rate(r.SLG),
			rate(r.OPS),
		)
	}
	table.Render()
}

// PrintSeasonsList renders the combined live + archival season listing.
func PrintSeasonsList(w io.Writer, seasons []model.SeasonRef) {
	table := newTable(w)
	table.Header("ID", "YEAR", "NAME", "STORE")
	for _, s := range seasons {
		table.Append(
			strconv.FormatInt(s.ID, 10),
			strconv.Itoa(s.Year),
			s.Name,
			s.Store.String(),
		)
	}
	table.Render()
}

// PrintTeamLedger renders the all-time team totals and the per-season
// win/loss summary.
func PrintTeamLedger(w io.Writer, totals model.TeamTotals, seasons []model.SeasonSummary) {
	teamAvg := stats.BattingAverage(totals.Hits, totals.AtBats)
	fmt.Fprintf(w, "\nAll-time: %d seasons, %d games, %d players  |  AB %d  H %d  HR %d  RBI %d  |  AVG %.3f\n\n",
		totals.Seasons, totals.Games, totals.Players,
		totals.AtBats, totals.Hits, totals.HomeRuns, totals.RBIs, teamAvg)

	table := newTable(w)
	table.Header("YEAR", "GP", "W", "L", "PLAYERS", "AB", "H", "HR", "AVG")
	for _, s := range seasons {
		table.Append(
			strconv.Itoa(s.Year),
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Players),
			strconv.Itoa(s.AtBats),
			strconv.Itoa(s.Hits),
			strconv.Itoa(s.HomeRuns),
			rate(stats.BattingAverage(s.Hits, s.AtBats)),
		)
	}
	table.Render()
}
