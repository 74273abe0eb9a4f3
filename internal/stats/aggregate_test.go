package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhj/teamstats/internal/model"
)

func factRow(name string, year, game, ab, hits int) model.FactRow {
	return model.FactRow{
		PlayerName: name,
		SeasonYear: year,
		GameNumber: game,
		BattingLine: model.BattingLine{
			AtBats: ab,
			Hits:   hits,
		},
	}
}

func TestAggregatePlayers(t *testing.T) {
	rows := []model.FactRow{
		factRow("Jane Doe", 2021, 1, 4, 3),
		factRow("Jane Doe", 2021, 2, 3, 1),
		factRow("Jane Doe", 2022, 1, 5, 2),
		factRow("Sam Poe", 2021, 1, 2, 2),
	}

	aggs := AggregatePlayers(rows)
	require.Len(t, aggs, 2)

	jane := aggs[0]
	assert.Equal(t, "Jane Doe", jane.Name, "more at-bats sorts first")
	assert.Equal(t, 3, jane.Games)
	assert.Equal(t, 2, jane.Seasons)
	assert.Equal(t, 2021, jane.FirstYear)
	assert.Equal(t, 2022, jane.LastYear)
	assert.Equal(t, 12, jane.AtBats)
	assert.Equal(t, 6, jane.Hits)

	sam := aggs[1]
	assert.Equal(t, "Sam Poe", sam.Name)
	assert.Equal(t, 1, sam.Seasons)
}

func TestAggregatePlayersOrder(t *testing.T) {
	rows := []model.FactRow{
		factRow("B Player", 2021, 1, 4, 2),
		factRow("A Player", 2021, 1, 4, 2),
		factRow("C Player", 2021, 1, 4, 3),
	}

	aggs := AggregatePlayers(rows)
	require.Len(t, aggs, 3)
	assert.Equal(t, "C Player", aggs[0].Name, "higher average breaks the at-bat tie")
	assert.Equal(t, "A Player", aggs[1].Name, "name breaks the full tie")
	assert.Equal(t, "B Player", aggs[2].Name)
}

func TestAggregatePlayersEmpty(t *testing.T) {
	assert.Empty(t, AggregatePlayers(nil))
}

func TestTeamLedger(t *testing.T) {
	runsFor := func(n int) *int { return &n }
	games := []model.ArchiveGame{
		{ID: 1, SeasonYear: 2021, GameNumber: 1, Result: "W", RunsFor: runsFor(5)},
		{ID: 2, SeasonYear: 2021, GameNumber: 2, Result: "L"},
		{ID: 3, SeasonYear: 2022, GameNumber: 1, Result: "W 10-2"},
		{ID: 4, SeasonYear: 2022, GameNumber: 2, Result: "T"},
	}
	rows := []model.FactRow{
		factRow("Jane Doe", 2021, 1, 4, 3),
		factRow("Sam Poe", 2021, 1, 3, 1),
		factRow("Jane Doe", 2022, 1, 5, 2),
	}

	totals, seasons := TeamLedger(games, rows)

	assert.Equal(t, 2, totals.Seasons)
	assert.Equal(t, 4, totals.Games)
	assert.Equal(t, 2, totals.Players)
	assert.Equal(t, 3, totals.PlayerGames)
	assert.Equal(t, 12, totals.AtBats)
	assert.Equal(t, 6, totals.Hits)

	require.Len(t, seasons, 2)
	assert.Equal(t, 2022, seasons[0].Year, "newest season first")
	assert.Equal(t, 1, seasons[0].Wins, "result prefix counts the win")
	assert.Equal(t, 0, seasons[0].Losses, "tie counts for neither side")
	assert.Equal(t, 1, seasons[0].Players)

	assert.Equal(t, 2021, seasons[1].Year)
	assert.Equal(t, 1, seasons[1].Wins)
	assert.Equal(t, 1, seasons[1].Losses)
	assert.Equal(t, 2, seasons[1].Players)
	assert.Equal(t, 7, seasons[1].AtBats)
}
