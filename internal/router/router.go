// Package router resolves identifiers of ambiguous provenance to either the
// live store or the archival store, and dispatches writes to the
// schema-appropriate path. It is the only package that knows both schemas;
// everything else operates against exactly one.
package router

import (
	"errors"
	"fmt"

	"github.com/uhj/teamstats/internal/model"
	"github.com/uhj/teamstats/internal/storage"
)

// ErrNotFound is returned when an identifier matches neither store. Fatal to
// the enclosing request, unlike the per-row errors of a bulk import.
var ErrNotFound = errors.New("not found in live or archive store")

// Router probes the live store first, then the archive. Resolution is a
// single up-front decision; the resulting handle carries everything the
// write path needs, so no later step probes again.
type Router struct {
	db *storage.DB
}

// New returns a Router over the given store.
func New(db *storage.DB) *Router {
	return &Router{db: db}
}

// SeasonHandle is a resolved season reference.
type SeasonHandle struct {
	Store model.Store
	ID    int64
	Name  string
	Year  int
}

// GameHandle is a resolved game reference. Year and Number are only
// meaningful for archival games; SeasonID only for live ones.
type GameHandle struct {
	Store    model.Store
	ID       int64
	SeasonID int64
	Year     int
	Number   int
	Opponent string
}

// ResolveSeason probes live seasons by surrogate id, then archival seasons
// by row id.
func (r *Router) ResolveSeason(id int64) (SeasonHandle, error) {
	live, err := r.db.GetLiveSeason(id)
	if err != nil {
		return SeasonHandle{}, fmt.Errorf("probe live season %d: %w", id, err)
	}
	if live != nil {
		return SeasonHandle{Store: model.StoreLive, ID: live.ID, Name: live.Name, Year: live.Year}, nil
	}

	arch, err := r.db.GetArchiveSeasonByID(id)
	if err != nil {
		return SeasonHandle{}, fmt.Errorf("probe archive season %d: %w", id, err)
	}
	if arch != nil {
		name := fmt.Sprintf("%d Season", arch.Year)
		return SeasonHandle{Store: model.StoreArchive, ID: arch.ID, Name: name, Year: arch.Year}, nil
	}

	return SeasonHandle{}, fmt.Errorf("season %d: %w", id, ErrNotFound)
}

// ResolveGame probes live games by surrogate id, then archival games by row
// id.
func (r *Router) ResolveGame(id int64) (GameHandle, error) {
	live, err := r.db.GetLiveGame(id)
	if err != nil {
		return GameHandle{}, fmt.Errorf("probe live game %d: %w", id, err)
	}
	if live != nil {
		return GameHandle{
			Store:    model.StoreLive,
			ID:       live.ID,
			SeasonID: live.SeasonID,
			Opponent: live.Opponent,
		}, nil
	}

	arch, err := r.db.GetArchiveGameByID(id)
	if err != nil {
		return GameHandle{}, fmt.Errorf("probe archive game %d: %w", id, err)
	}
	if arch != nil {
		return GameHandle{
			Store:    model.StoreArchive,
			ID:       arch.ID,
			Year:     arch.SeasonYear,
			Number:   arch.GameNumber,
			Opponent: arch.Opponent,
		}, nil
	}

	return GameHandle{}, fmt.Errorf("game %d: %w", id, ErrNotFound)
}

// GameParams describes a game to create; fields beyond date and opponent
// only apply to the live schema.
type GameParams struct {
	GameDate string
	Opponent string
	HomeAway string
	Location string
	Notes    string
}

// CreateGame creates a game under the season the identifier resolves to. A
// live game starts scheduled with no score; an archival game gets the next
// free game number in its season and a TBD result.
func (r *Router) CreateGame(seasonID int64, p GameParams) (GameHandle, error) {
	season, err := r.ResolveSeason(seasonID)
	if err != nil {
		return GameHandle{}, err
	}

	switch season.Store {
	case model.StoreLive:
		id, err := r.db.CreateLiveGame(model.LiveGame{
			SeasonID: season.ID,
			GameDate: p.GameDate,
			Opponent: p.Opponent,
			HomeAway: p.HomeAway,
			Location: p.Location,
			Status:   model.GameScheduled,
			Notes:    p.Notes,
		})
		if err != nil {
			return GameHandle{}, err
		}
		return GameHandle{Store: model.StoreLive, ID: id, SeasonID: season.ID, Opponent: p.Opponent}, nil

	default:
		number, err := r.db.NextArchiveGameNumber(season.Year)
		if err != nil {
			return GameHandle{}, fmt.Errorf("next game number for %d: %w", season.Year, err)
		}
		g := model.ArchiveGame{
			SeasonYear: season.Year,
			GameNumber: number,
			GameDate:   p.GameDate,
			Opponent:   p.Opponent,
			Result:     "TBD",
		}
		if err := r.db.UpsertArchiveGame(g); err != nil {
			return GameHandle{}, err
		}
		created, err := r.db.GetArchiveGame(season.Year, number)
		if err != nil {
			return GameHandle{}, err
		}
		return GameHandle{
			Store:    model.StoreArchive,
			ID:       created.ID,
			Year:     season.Year,
			Number:   number,
			Opponent: p.Opponent,
		}, nil
	}
}

// SaveResult reports where a submission landed.
type SaveResult struct {
	Store        model.Store
	GameID       int64
	PlayersSaved int
	Message      string
}

// SaveGameStats persists a single-game stats submission to whichever store
// the game id resolves to. Unlike a bulk import this is fail-fast: the first
// error aborts the submission.
//
// Live path: full replace of the game's stat rows, then score and completed
// status. Archive path: player and fact upserts by name (the same
// reconciler upserts the bulk import uses), then score and a W/L/T result
// letter.
func (r *Router) SaveGameStats(gameID int64, entries []model.StatEntry, score *model.GameScore) (SaveResult, error) {
	game, err := r.ResolveGame(gameID)
	if err != nil {
		return SaveResult{}, err
	}

	switch game.Store {
	case model.StoreLive:
		if err := r.db.ReplaceLiveGameFacts(game.ID, entries); err != nil {
			return SaveResult{}, err
		}
		if score != nil {
			if err := r.db.SetLiveGameScore(game.ID, score.Ours, score.Theirs); err != nil {
				return SaveResult{}, err
			}
		}
		return SaveResult{
			Store:        model.StoreLive,
			GameID:       game.ID,
			PlayersSaved: len(entries),
			Message:      fmt.Sprintf("stats saved to live store for game vs %s", game.Opponent),
		}, nil

	default:
		for _, e := range entries {
			if e.PlayerName == "" {
				return SaveResult{}, fmt.Errorf("archive submission requires a player name (player id %d)", e.PlayerID)
			}
			if err := r.db.UpsertArchivePlayer(e.PlayerName, "", game.Year, game.Year); err != nil {
				return SaveResult{}, err
			}
			fact := model.ArchiveFact{BattingLine: e.BattingLine}
			if err := r.db.UpsertArchiveFact(game.Year, game.Number, e.PlayerName, fact); err != nil {
				return SaveResult{}, err
			}
		}
		if score != nil {
			if err := r.db.UpdateArchiveGameScore(game.ID, score.Ours, score.Theirs, resultLetter(score.Ours, score.Theirs)); err != nil {
				return SaveResult{}, err
			}
		}
		return SaveResult{
			Store:        model.StoreArchive,
			GameID:       game.ID,
			PlayersSaved: len(entries),
			Message:      fmt.Sprintf("stats saved to archive for %d game %d", game.Year, game.Number),
		}, nil
	}
}

func resultLetter(ours, theirs int) string {
	switch {
	case ours > theirs:
		return "W"
	case ours < theirs:
		return "L"
	default:
		return "T"
	}
}
