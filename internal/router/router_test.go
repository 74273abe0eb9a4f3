package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhj/teamstats/internal/model"
	"github.com/uhj/teamstats/internal/storage"
)

func openTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestResolveSeasonLiveFirst(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	liveID, err := db.CreateLiveSeason("2026 Season", 2026, true)
	require.NoError(t, err)
	require.NoError(t, db.UpsertArchiveSeason(2021))

	h, err := r.ResolveSeason(liveID)
	require.NoError(t, err)
	assert.Equal(t, model.StoreLive, h.Store)
	assert.Equal(t, liveID, h.ID)
	assert.Equal(t, 2026, h.Year)
	assert.Equal(t, "2026 Season", h.Name)
}

func TestResolveSeasonArchiveFallback(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	require.NoError(t, db.UpsertArchiveSeason(2021))
	arch, err := db.GetArchiveSeasonByYear(2021)
	require.NoError(t, err)

	h, err := r.ResolveSeason(arch.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StoreArchive, h.Store)
	assert.Equal(t, 2021, h.Year)
	assert.Equal(t, "2021 Season", h.Name)
}

func TestResolveSeasonNotFound(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	_, err := r.ResolveSeason(404)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveGameNotFound(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	_, err := r.ResolveGame(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateGameLive(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	seasonID, err := db.CreateLiveSeason("2026 Season", 2026, true)
	require.NoError(t, err)

	h, err := r.CreateGame(seasonID, GameParams{
		GameDate: "2026-05-02",
		Opponent: "Otters",
		HomeAway: "home",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StoreLive, h.Store)
	assert.Equal(t, seasonID, h.SeasonID)

	g, err := db.GetLiveGame(h.ID)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, model.GameScheduled, g.Status)
	assert.Nil(t, g.OurScore)
}

func TestCreateGameArchiveAssignsNextNumber(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	require.NoError(t, db.UpsertArchiveSeason(2021))
	require.NoError(t, db.UpsertArchiveGame(model.ArchiveGame{SeasonYear: 2021, GameNumber: 4, Result: "W"}))
	arch, err := db.GetArchiveSeasonByYear(2021)
	require.NoError(t, err)

	h, err := r.CreateGame(arch.ID, GameParams{GameDate: "2021-07-01", Opponent: "Ghosts"})
	require.NoError(t, err)
	assert.Equal(t, model.StoreArchive, h.Store)
	assert.Equal(t, 5, h.Number, "next free number after game 4")

	g, err := db.GetArchiveGame(2021, 5)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "TBD", g.Result)
	assert.Equal(t, "Ghosts", g.Opponent)
}

func TestSaveGameStatsLive(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	seasonID, err := db.CreateLiveSeason("2026 Season", 2026, true)
	require.NoError(t, err)
	playerID, err := db.CreateLivePlayer("Jane", "Doe")
	require.NoError(t, err)
	gameID, err := db.CreateLiveGame(model.LiveGame{SeasonID: seasonID, Opponent: "Otters"})
	require.NoError(t, err)

	entries := []model.StatEntry{{
		PlayerID:    playerID,
		BattingLine: model.BattingLine{AtBats: 4, Hits: 3, Singles: 3},
	}}
	res, err := r.SaveGameStats(gameID, entries, &model.GameScore{Ours: 7, Theirs: 4})
	require.NoError(t, err)
	assert.Equal(t, model.StoreLive, res.Store)
	assert.Equal(t, 1, res.PlayersSaved)

	g, err := db.GetLiveGame(gameID)
	require.NoError(t, err)
	assert.Equal(t, model.GameCompleted, g.Status)
	require.NotNil(t, g.OurScore)
	assert.Equal(t, 7, *g.OurScore)

	rows, err := db.LiveGameFacts(gameID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Hits)
}

func TestSaveGameStatsArchive(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	require.NoError(t, db.UpsertArchiveSeason(2021))
	require.NoError(t, db.UpsertArchiveGame(model.ArchiveGame{SeasonYear: 2021, GameNumber: 1, Opponent: "Otters", Result: "TBD"}))
	g, err := db.GetArchiveGame(2021, 1)
	require.NoError(t, err)

	entries := []model.StatEntry{{
		PlayerName:  "New Player",
		BattingLine: model.BattingLine{AtBats: 3, Hits: 2, Singles: 2},
	}}
	res, err := r.SaveGameStats(g.ID, entries, &model.GameScore{Ours: 2, Theirs: 5})
	require.NoError(t, err)
	assert.Equal(t, model.StoreArchive, res.Store)

	// The player was upserted by name with the game's season as its year span.
	p, err := db.GetArchivePlayerByName("New Player")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 2021, p.FirstYear)
	assert.Equal(t, 2021, p.LastYear)

	updated, err := db.GetArchiveGameByID(g.ID)
	require.NoError(t, err)
	assert.Equal(t, "L", updated.Result, "result letter derived from the score")
	require.NotNil(t, updated.RunsAgainst)
	assert.Equal(t, 5, *updated.RunsAgainst)

	rows, err := db.GameFacts(g.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Hits)
}

func TestSaveGameStatsArchiveRequiresName(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	require.NoError(t, db.UpsertArchiveSeason(2021))
	require.NoError(t, db.UpsertArchiveGame(model.ArchiveGame{SeasonYear: 2021, GameNumber: 1}))
	g, err := db.GetArchiveGame(2021, 1)
	require.NoError(t, err)

	_, err = r.SaveGameStats(g.ID, []model.StatEntry{{PlayerID: 7}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a player name")
}

func TestResultLetter(t *testing.T) {
	assert.Equal(t, "W", resultLetter(5, 3))
	assert.Equal(t, "L", resultLetter(2, 9))
	assert.Equal(t, "T", resultLetter(4, 4))
}
