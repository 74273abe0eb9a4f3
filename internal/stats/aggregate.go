package stats

import (
	"sort"
	"strings"

	"github.com/uhj/teamstats/internal/model"
)

// AggregatePlayers groups fact rows by player name and sums their counting
// stats. Works for one season's rows or the whole archive; rate stats are
// derived from the sums afterwards via Rates, never averaged per game.
//
// Output order matches the archival views: at-bats descending, then batting
// average descending, then name.
func AggregatePlayers(rows []model.FactRow) []model.PlayerAggregate {
	byName := make(map[string]*model.PlayerAggregate)
	seasonsByName := make(map[string]map[int]struct{})

	for _, r := range rows {
		agg, ok := byName[r.PlayerName]
		if !ok {
			agg = &model.PlayerAggregate{
				Name:      r.PlayerName,
				Gender:    r.Gender,
				FirstYear: r.SeasonYear,
				LastYear:  r.SeasonYear,
			}
			byName[r.PlayerName] = agg
			seasonsByName[r.PlayerName] = make(map[int]struct{})
		}
		agg.Games++
		agg.BattingLine.Add(r.BattingLine)
		if r.SeasonYear < agg.FirstYear {
			agg.FirstYear = r.SeasonYear
		}
		if r.SeasonYear > agg.LastYear {
			agg.LastYear = r.SeasonYear
		}
		seasonsByName[r.PlayerName][r.SeasonYear] = struct{}{}
	}

	out := make([]model.PlayerAggregate, 0, len(byName))
	for name, agg := range byName {
		agg.Seasons = len(seasonsByName[name])
		out = append(out, *agg)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AtBats != out[j].AtBats {
			return out[i].AtBats > out[j].AtBats
		}
		ai := BattingAverage(out[i].Hits, out[i].AtBats)
		aj := BattingAverage(out[j].Hits, out[j].AtBats)
		if ai != aj {
			return ai > aj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TeamLedger folds the archive into all-time team totals and a
// season-by-season summary (newest first). Wins and losses come from the
// game result letter; facts contribute the batting totals.
func TeamLedger(games []model.ArchiveGame, rows []model.FactRow) (model.TeamTotals, []model.SeasonSummary) {
	var totals model.TeamTotals

	byYear := make(map[int]*model.SeasonSummary)
	playersByYear := make(map[int]map[string]struct{})
	allPlayers := make(map[string]struct{})
	allSeasons := make(map[int]struct{})

	for _, g := range games {
		allSeasons[g.SeasonYear] = struct{}{}
		s, ok := byYear[g.SeasonYear]
		if !ok {
			s = &model.SeasonSummary{Year: g.SeasonYear}
			byYear[g.SeasonYear] = s
			playersByYear[g.SeasonYear] = make(map[string]struct{})
		}
		s.Games++
		totals.Games++
		switch {
		case strings.HasPrefix(g.Result, "W"):
			s.Wins++
		case strings.HasPrefix(g.Result, "L"):
			s.Losses++
		}
	}

	for _, r := range rows {
		totals.PlayerGames++
		totals.AtBats += r.AtBats
		totals.Runs += r.Runs
		totals.Hits += r.Hits
		totals.HomeRuns += r.HomeRuns
		totals.RBIs += r.RBIs
		allPlayers[r.PlayerName] = struct{}{}

		if s, ok := byYear[r.SeasonYear]; ok {
			s.AtBats += r.AtBats
			s.Hits += r.Hits
			s.HomeRuns += r.HomeRuns
			playersByYear[r.SeasonYear][r.PlayerName] = struct{}{}
		}
	}

	totals.Seasons = len(allSeasons)
	totals.Players = len(allPlayers)

	out := make([]model.SeasonSummary, 0, len(byYear))
	for year, s := range byYear {
		s.Players = len(playersByYear[year])
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })

	return totals, out
}
