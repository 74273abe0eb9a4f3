package storage

import (
	"database/sql"
	"fmt"

	"github.com/uhj/teamstats/internal/model"
)

// Live-schema operations: surrogate integer keys, richer game status enum,
// full-replace stats submission.

// CreateLiveSeason inserts a season and returns its surrogate id.
func (db *DB) CreateLiveSeason(name string, year int, active bool) (int64, error) {
	res, err := db.conn.Exec(`
		INSERT INTO seasons(name, year, is_active) VALUES (?, ?, ?)`,
		name, year, boolInt(active))
	if err != nil {
		return 0, fmt.Errorf("create season %q: %w", name, err)
	}
	return res.LastInsertId()
}

// GetLiveSeason returns nil when no season has the given id.
func (db *DB) GetLiveSeason(id int64) (*model.LiveSeason, error) {
	var s model.LiveSeason
	var active int
	err := db.conn.QueryRow(`
		SELECT id, name, year, is_active FROM seasons WHERE id = ?`, id).
		Scan(&s.ID, &s.Name, &s.Year, &active)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.IsActive = active != 0
	return &s, nil
}

// ListLiveSeasons returns all live seasons, newest first.
func (db *DB) ListLiveSeasons() ([]model.LiveSeason, error) {
	rows, err := db.conn.Query(`SELECT id, name, year, is_active FROM seasons ORDER BY year DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.LiveSeason
	for rows.Next() {
		var s model.LiveSeason
		var active int
		if err := rows.Scan(&s.ID, &s.Name, &s.Year, &active); err != nil {
			return nil, err
		}
		s.IsActive = active != 0
		out = append(out, s)
	}
	return out, rows.Err()
}

// CreateLivePlayer inserts a roster player and returns its id.
func (db *DB) CreateLivePlayer(firstName, lastName string) (int64, error) {
	res, err := db.conn.Exec(`
		INSERT INTO players(first_name, last_name, is_active) VALUES (?, ?, 1)`,
		firstName, lastName)
	if err != nil {
		return 0, fmt.Errorf("create player %s %s: %w", firstName, lastName, err)
	}
	return res.LastInsertId()
}

// GetLivePlayer returns nil when no player has the given id.
func (db *DB) GetLivePlayer(id int64) (*model.LivePlayer, error) {
	var p model.LivePlayer
	var active int
	err := db.conn.QueryRow(`
		SELECT id, first_name, last_name, is_active FROM players WHERE id = ?`, id).
		Scan(&p.ID, &p.FirstName, &p.LastName, &active)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.IsActive = active != 0
	return &p, nil
}

// CreateLiveGame inserts a scheduled game and returns its id.
func (db *DB) CreateLiveGame(g model.LiveGame) (int64, error) {
	status := g.Status
	if status == "" {
		status = model.GameScheduled
	}
	res, err := db.conn.Exec(`
		INSERT INTO games(season_id, game_date, opponent, home_away, location, status, our_score, their_score, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.SeasonID, g.GameDate, g.Opponent, g.HomeAway, g.Location, status,
		nullableInt(g.OurScore), nullableInt(g.TheirScore), g.Notes)
	if err != nil {
		return 0, fmt.Errorf("create game vs %q: %w", g.Opponent, err)
	}
	return res.LastInsertId()
}

// GetLiveGame returns nil when no game has the given id.
func (db *DB) GetLiveGame(id int64) (*model.LiveGame, error) {
	var g model.LiveGame
	var date, homeAway, location, notes sql.NullString
	var ourScore, theirScore sql.NullInt64
	err := db.conn.QueryRow(`
		SELECT id, season_id, game_date, opponent, home_away, location, status, our_score, their_score, notes
		FROM games WHERE id = ?`, id).
		Scan(&g.ID, &g.SeasonID, &date, &g.Opponent, &homeAway, &location, &g.Status, &ourScore, &theirScore, &notes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g.GameDate = date.String
	g.HomeAway = homeAway.String
	g.Location = location.String
	g.Notes = notes.String
	if ourScore.Valid {
		v := int(ourScore.Int64)
		g.OurScore = &v
	}
	if theirScore.Valid {
		v := int(theirScore.Int64)
		g.TheirScore = &v
	}
	return &g, nil
}

// ReplaceLiveGameFacts deletes every stored stat row for the game and
// inserts the submitted set. Full overwrite, so a corrected resubmission can
// shrink a stat; run in one transaction since a live submission is a single
// coherent unit.
func (db *DB) ReplaceLiveGameFacts(gameID int64, entries []model.StatEntry) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM player_game_stats WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("clear stats for game %d: %w", gameID, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO player_game_stats(
			player_id, game_id, batting_order,
			at_bats, runs, hits, singles, doubles, triples, home_runs,
			rbis, sacrifice, walks, strikeouts
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.Exec(
			e.PlayerID, gameID, nullableInt(e.BattingOrder),
			e.AtBats, e.Runs, e.Hits, e.Singles, e.Doubles, e.Triples, e.HomeRuns,
			e.RBIs, e.Sacrifice, e.Walks, e.Strikeouts)
		if err != nil {
			return fmt.Errorf("insert stats for player %d: %w", e.PlayerID, err)
		}
	}
	return tx.Commit()
}

// SetLiveGameScore records the final score and marks the game completed.
func (db *DB) SetLiveGameScore(gameID int64, ours, theirs int) error {
	_, err := db.conn.Exec(`
		UPDATE games SET our_score = ?, their_score = ?, status = ? WHERE id = ?`,
		ours, theirs, model.GameCompleted, gameID)
	return err
}

// LiveGameFacts returns the stored stat lines for one live game joined with
// player names.
func (db *DB) LiveGameFacts(gameID int64) ([]model.FactRow, error) {
	rows, err := db.conn.Query(`
		SELECT p.first_name || ' ' || p.last_name, g.season_id, g.id,
		       s.at_bats, s.runs, s.hits, s.singles, s.doubles, s.triples, s.home_runs,
		       s.rbis, s.sacrifice, s.walks, s.strikeouts
		FROM player_game_stats s
		JOIN players p ON p.id = s.player_id
		JOIN games g ON g.id = s.game_id
		WHERE s.game_id = ?
		ORDER BY s.batting_order, p.last_name`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.FactRow
	for rows.Next() {
		var r model.FactRow
		var seasonID int64
		if err := rows.Scan(
			&r.PlayerName, &seasonID, &r.GameID,
			&r.AtBats, &r.Runs, &r.Hits, &r.Singles, &r.Doubles, &r.Triples, &r.HomeRuns,
			&r.RBIs, &r.Sacrifice, &r.Walks, &r.Strikeouts,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
