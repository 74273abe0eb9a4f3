package storage

import (
	"database/sql"
	"fmt"

	"github.com/uhj/teamstats/internal/model"
)

// Archival upserts. Each statement is its own unit of work: a failure on one
// key never aborts the batch, and re-running an identical import is a no-op
// with respect to final state.

// UpsertArchiveSeason inserts a season year if absent. Existing rows are
// never updated.
func (db *DB) UpsertArchiveSeason(year int) error {
	_, err := db.conn.Exec(`
		INSERT INTO history_seasons(year) VALUES (?)
		ON CONFLICT(year) DO NOTHING`, year)
	if err != nil {
		return fmt.Errorf("upsert season %d: %w", year, err)
	}
	return nil
}

// UpsertArchivePlayer inserts a player by name or widens the stored
// active-year range. The min/max merge is applied again here so imports
// across separate batches still converge, not just rows within one batch.
// Gender is set on first insert only; the batch-level last-write-wins rule
// already ran in the dictionary builder.
func (db *DB) UpsertArchivePlayer(name, gender string, firstYear, lastYear int) error {
	_, err := db.conn.Exec(`
		INSERT INTO history_players(name, gender, first_year, last_year)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			first_year = MIN(history_players.first_year, excluded.first_year),
			last_year  = MAX(history_players.last_year, excluded.last_year)`,
		name, gender, firstYear, lastYear)
	if err != nil {
		return fmt.Errorf("upsert player %q: %w", name, err)
	}
	return nil
}

// UpsertArchiveGame inserts a game by (season year, game number) or
// overwrites its descriptive fields with the new batch's values
// (last-import-wins, unlike the monotonic player year range).
func (db *DB) UpsertArchiveGame(g model.ArchiveGame) error {
	_, err := db.conn.Exec(`
		INSERT INTO history_games(season_year, game_number, game_date, opponent, result, runs_for, runs_against)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(season_year, game_number) DO UPDATE SET
			game_date    = excluded.game_date,
			opponent     = excluded.opponent,
			result       = excluded.result,
			runs_for     = excluded.runs_for,
			runs_against = excluded.runs_against`,
		g.SeasonYear, g.GameNumber, g.GameDate, g.Opponent, g.Result,
		nullableInt(g.RunsFor), nullableInt(g.RunsAgainst))
	if err != nil {
		return fmt.Errorf("upsert game %d game %d: %w", g.SeasonYear, g.GameNumber, err)
	}
	return nil
}

// UpsertArchiveFact resolves the fact's natural keys to row ids and inserts
// or fully replaces the (game, player) row. Every stat column is overwritten
// so a corrected re-import can shrink a previously inflated value.
func (db *DB) UpsertArchiveFact(year, gameNumber int, playerName string, f model.ArchiveFact) error {
	var playerID int64
	err := db.conn.QueryRow(`SELECT id FROM history_players WHERE name = ?`, playerName).Scan(&playerID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("player not found: %s", playerName)
	}
	if err != nil {
		return fmt.Errorf("look up player %q: %w", playerName, err)
	}

	var gameID int64
	err = db.conn.QueryRow(`
		SELECT id FROM history_games WHERE season_year = ? AND game_number = ?`,
		year, gameNumber).Scan(&gameID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("game not found: %d game %d", year, gameNumber)
	}
	if err != nil {
		return fmt.Errorf("look up game %d/%d: %w", year, gameNumber, err)
	}

	_, err = db.conn.Exec(`
		INSERT INTO history_player_games(
			game_id, player_id,
			at_bats, runs, hits, singles, doubles, triples, home_runs,
			xbh, total_bases, rbis, sacrifice, walks, strikeouts,
			on_base_numerator, on_base_denominator,
			src_avg, src_slg, src_obp, src_ops, src_eqa
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(game_id, player_id) DO UPDATE SET
			at_bats             = excluded.at_bats,
			runs                = excluded.runs,
			hits                = excluded.hits,
			singles             = excluded.singles,
			doubles             = excluded.doubles,
			triples             = excluded.triples,
			home_runs           = excluded.home_runs,
			xbh                 = excluded.xbh,
			total_bases         = excluded.total_bases,
			rbis                = excluded.rbis,
			sacrifice           = excluded.sacrifice,
			walks               = excluded.walks,
			strikeouts          = excluded.strikeouts,
			on_base_numerator   = excluded.on_base_numerator,
			on_base_denominator = excluded.on_base_denominator,
			src_avg             = excluded.src_avg,
			src_slg             = excluded.src_slg,
			src_obp             = excluded.src_obp,
			src_ops             = excluded.src_ops,
			src_eqa             = excluded.src_eqa`,
		gameID, playerID,
		f.AtBats, f.Runs, f.Hits, f.Singles, f.Doubles, f.Triples, f.HomeRuns,
		f.ExtraBase, f.TotalBases, f.RBIs, f.Sacrifice, f.Walks, f.Strikeouts,
		f.OnBaseNumerator, f.OnBaseDenominator,
		f.SourceAvg, f.SourceSlg, f.SourceObp, f.SourceOps, f.SourceEqa)
	if err != nil {
		return fmt.Errorf("upsert fact %s %d game %d: %w", playerName, year, gameNumber, err)
	}
	return nil
}

// UpdateArchiveGameScore records a final score and result letter on an
// archival game.
func (db *DB) UpdateArchiveGameScore(gameID int64, ours, theirs int, result string) error {
	_, err := db.conn.Exec(`
		UPDATE history_games SET runs_for = ?, runs_against = ?, result = ?
		WHERE id = ?`, ours, theirs, result, gameID)
	return err
}

// ---- Lookups ----

// GetArchiveSeasonByID returns nil when no season has the given row id.
func (db *DB) GetArchiveSeasonByID(id int64) (*model.ArchiveSeason, error) {
	var s model.ArchiveSeason
	err := db.conn.QueryRow(`SELECT id, year FROM history_seasons WHERE id = ?`, id).
		Scan(&s.ID, &s.Year)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetArchiveSeasonByYear returns nil when the year is not in the archive.
func (db *DB) GetArchiveSeasonByYear(year int) (*model.ArchiveSeason, error) {
	var s model.ArchiveSeason
	err := db.conn.QueryRow(`SELECT id, year FROM history_seasons WHERE year = ?`, year).
		Scan(&s.ID, &s.Year)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetArchiveGameByID returns nil when no game has the given row id.
func (db *DB) GetArchiveGameByID(id int64) (*model.ArchiveGame, error) {
	return db.scanArchiveGame(db.conn.QueryRow(`
		SELECT id, season_year, game_number, game_date, opponent, result, runs_for, runs_against
		FROM history_games WHERE id = ?`, id))
}

// GetArchiveGame returns nil when (year, number) is not in the archive.
func (db *DB) GetArchiveGame(year, gameNumber int) (*model.ArchiveGame, error) {
	return db.scanArchiveGame(db.conn.QueryRow(`
		SELECT id, season_year, game_number, game_date, opponent, result, runs_for, runs_against
		FROM history_games WHERE season_year = ? AND game_number = ?`, year, gameNumber))
}

func (db *DB) scanArchiveGame(row *sql.Row) (*model.ArchiveGame, error) {
	var g model.ArchiveGame
	var date, opponent, result sql.NullString
	var runsFor, runsAgainst sql.NullInt64
	err := row.Scan(&g.ID, &g.SeasonYear, &g.GameNumber, &date, &opponent, &result, &runsFor, &runsAgainst)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g.GameDate = date.String
	g.Opponent = opponent.String
	g.Result = result.String
	if runsFor.Valid {
		v := int(runsFor.Int64)
		g.RunsFor = &v
	}
	if runsAgainst.Valid {
		v := int(runsAgainst.Int64)
		g.RunsAgainst = &v
	}
	return &g, nil
}

// GetArchivePlayerByName returns nil when the name is not in the archive.
func (db *DB) GetArchivePlayerByName(name string) (*model.ArchivePlayer, error) {
	var p model.ArchivePlayer
	var gender sql.NullString
	err := db.conn.QueryRow(`
		SELECT id, name, gender, first_year, last_year FROM history_players WHERE name = ?`, name).
		Scan(&p.ID, &p.Name, &gender, &p.FirstYear, &p.LastYear)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Gender = gender.String
	return &p, nil
}

// NextArchiveGameNumber returns one past the highest game number stored for
// the season (1 for an empty season).
func (db *DB) NextArchiveGameNumber(year int) (int, error) {
	var maxNum sql.NullInt64
	err := db.conn.QueryRow(`
		SELECT MAX(game_number) FROM history_games WHERE season_year = ?`, year).Scan(&maxNum)
	if err != nil {
		return 0, err
	}
	return int(maxNum.Int64) + 1, nil
}

// ListArchiveSeasons returns all archival seasons, newest first.
func (db *DB) ListArchiveSeasons() ([]model.ArchiveSeason, error) {
	rows, err := db.conn.Query(`SELECT id, year FROM history_seasons ORDER BY year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ArchiveSeason
	for rows.Next() {
		var s model.ArchiveSeason
		if err := rows.Scan(&s.ID, &s.Year); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListArchiveGames returns every archival game, ordered by season and game
// number. The report layer derives the season-by-season win/loss ledger from
// these rows.
func (db *DB) ListArchiveGames() ([]model.ArchiveGame, error) {
	rows, err := db.conn.Query(`
		SELECT id, season_year, game_number, game_date, opponent, result, runs_for, runs_against
		FROM history_games ORDER BY season_year, game_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ArchiveGame
	for rows.Next() {
		var g model.ArchiveGame
		var date, opponent, result sql.NullString
		var runsFor, runsAgainst sql.NullInt64
		if err := rows.Scan(&g.ID, &g.SeasonYear, &g.GameNumber, &date, &opponent, &result, &runsFor, &runsAgainst); err != nil {
			return nil, err
		}
		g.GameDate = date.String
		g.Opponent = opponent.String
		g.Result = result.String
		if runsFor.Valid {
			v := int(runsFor.Int64)
			g.RunsFor = &v
		}
		if runsAgainst.Valid {
			v := int(runsAgainst.Int64)
			g.RunsAgainst = &v
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

const factRowSelect = `
	SELECT hp.name, COALESCE(hp.gender, ''), hg.season_year, hg.game_number, hg.id,
	       f.at_bats, f.runs, f.hits, f.singles, f.doubles, f.triples, f.home_runs,
	       f.xbh, f.total_bases, f.rbis, f.sacrifice, f.walks, f.strikeouts,
	       f.on_base_numerator, f.on_base_denominator
	FROM history_player_games f
	JOIN history_players hp ON hp.id = f.player_id
	JOIN history_games hg ON hg.id = f.game_id`

// SeasonFacts returns every stored fact for one season, joined with player
// and game keys. Aggregation happens in the statistics engine, not in SQL,
// so the sum-then-divide rule lives in exactly one place.
func (db *DB) SeasonFacts(year int) ([]model.FactRow, error) {
	return db.queryFactRows(factRowSelect+` WHERE hg.season_year = ? ORDER BY hg.game_number, hp.name`, year)
}

// CareerFacts returns every stored fact in the archive.
func (db *DB) CareerFacts() ([]model.FactRow, error) {
	return db.queryFactRows(factRowSelect + ` ORDER BY hg.season_year, hg.game_number, hp.name`)
}

// GameFacts returns the facts for one archival game.
func (db *DB) GameFacts(gameID int64) ([]model.FactRow, error) {
	return db.queryFactRows(factRowSelect+` WHERE hg.id = ? ORDER BY hp.name`, gameID)
}

func (db *DB) queryFactRows(query string, args ...any) ([]model.FactRow, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.FactRow
	for rows.Next() {
		var r model.FactRow
		if err := rows.Scan(
			&r.PlayerName, &r.Gender, &r.SeasonYear, &r.GameNumber, &r.GameID,
			&r.AtBats, &r.Runs, &r.Hits, &r.Singles, &r.Doubles, &r.Triples, &r.HomeRuns,
			&r.ExtraBase, &r.TotalBases, &r.RBIs, &r.Sacrifice, &r.Walks, &r.Strikeouts,
			&r.OnBaseNumerator, &r.OnBaseDenominator,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountArchiveRows reports row counts for the four archival tables, used by
// the import summary and idempotency checks.
func (db *DB) CountArchiveRows() (seasons, players, games, facts int, err error) {
	counts := []struct {
		table string
		dst   *int
	}{
		{"history_seasons", &seasons},
		{"history_players", &players},
		{"history_games", &games},
		{"history_player_games", &facts},
	}
	for _, c := range counts {
		if err = db.conn.QueryRow(`SELECT COUNT(1) FROM ` + c.table).Scan(c.dst); err != nil {
			return
		}
	}
	return
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
