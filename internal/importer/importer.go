// Package importer implements the bulk-import pipeline for historical
// delimited-text exports: row parsing, in-batch deduplication, and
// natural-key upserts against the archival store. Row-level failures are
// isolated: a bad line or a rejected write never aborts the batch, and the
// summary reports both channels separately.
package importer

import (
	"bufio"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/uhj/teamstats/internal/model"
	"github.com/uhj/teamstats/internal/storage"
)

// Options tunes one import run.
type Options struct {
	Delimiter    string
	MinYear      int
	ErrorSamples int // bound on how many errors of each kind the summary keeps
}

// Summary is the bulk-import response shape: counts plus bounded samples of
// both error channels. "Succeeded with N errors" is a normal outcome.
type Summary struct {
	BatchID          string
	LinesProcessed   int
	SuccessfulParses int
	FailedParses     int
	SeasonsFound     int
	PlayersFound     int
	GamesFound       int
	FactsUpserted    int
	InsertErrors     int

	ParseErrorSamples  []RowError
	InsertErrorSamples []string
}

// Run reads delimited rows from r (first line is a header and is skipped),
// parses and deduplicates them, and persists the result through the archival
// upserts in dependency order: seasons, players, games, facts. Re-running
// with identical input is a no-op with respect to final state.
//
// Only a failure to read the input itself is returned as an error; per-row
// parse and persistence failures are collected in the Summary.
func Run(db *storage.DB, r io.Reader, opts Options) (*Summary, error) {
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}
	if opts.ErrorSamples <= 0 {
		opts.ErrorSamples = 10
	}

	sum := &Summary{BatchID: uuid.NewString()}
	parser := NewRowParser(opts.Delimiter, opts.MinYear)

	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if lineNumber == 1 {
			continue // header row
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		sum.LinesProcessed++
		res := parser.Parse(line, lineNumber)
		if res.Reject != nil {
			sum.FailedParses++
			if len(sum.ParseErrorSamples) < opts.ErrorSamples {
				sum.ParseErrorSamples = append(sum.ParseErrorSamples, *res.Reject)
			}
			continue
		}
		sum.SuccessfulParses++
		records = append(records, *res.Record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	dicts := BuildDictionaries(records)
	sum.SeasonsFound = len(dicts.Seasons)
	sum.PlayersFound = len(dicts.Players)
	sum.GamesFound = len(dicts.Games)

	recordInsertErr := func(err error) {
		sum.InsertErrors++
		if len(sum.InsertErrorSamples) < opts.ErrorSamples {
			sum.InsertErrorSamples = append(sum.InsertErrorSamples, err.Error())
		}
	}

	for year := range dicts.Seasons {
		if err := db.UpsertArchiveSeason(year); err != nil {
			recordInsertErr(err)
		}
	}

	for name, p := range dicts.Players {
		if err := db.UpsertArchivePlayer(name, p.Gender, p.FirstYear, p.LastYear); err != nil {
			recordInsertErr(err)
		}
	}

	for key, rec := range dicts.Games {
		g := model.ArchiveGame{
			SeasonYear:  key.Year,
			GameNumber:  key.Number,
			GameDate:    rec.Date,
			Opponent:    rec.Opponent,
			Result:      rec.Result,
			RunsFor:     rec.RunsFor,
			RunsAgainst: rec.RunsAgainst,
		}
		if err := db.UpsertArchiveGame(g); err != nil {
			recordInsertErr(err)
		}
	}

	for i := range dicts.Facts {
		rec := &dicts.Facts[i]
		fact := model.ArchiveFact{
			BattingLine: rec.BattingLine,
			SourceAvg:   rec.SourceAvg,
			SourceSlg:   rec.SourceSlg,
			SourceObp:   rec.SourceObp,
			SourceOps:   rec.SourceOps,
			SourceEqa:   rec.SourceEqa,
		}
		if err := db.UpsertArchiveFact(rec.Year, rec.GameNumber, rec.Name, fact); err != nil {
			recordInsertErr(err)
			continue
		}
		sum.FactsUpserted++
	}

	return sum, nil
}
