package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uhj/teamstats/internal/model"
)

// expectedColumns is the fixed width of a historical export row:
// Year, Game, Date, Opponent, Result, RunsFor, RunsAgainst, Name, Gender,
// Avg, AB, R, H, 1B, 2B, 3B, HR, XBH, TB, RBI, Sac, BB, K, SLG, OBP, OPS,
// EqA, OnBaseNumerator, OnBaseDenominator.
const expectedColumns = 29

// Record is one validated row of the export, typed field by field.
type Record struct {
	Year        int
	GameNumber  int
	Date        string
	Opponent    string
	Result      string
	RunsFor     *int
	RunsAgainst *int
	Name        string
	Gender      string

	model.BattingLine

	// Rate columns carried verbatim from the export; used as a cross-check
	// against derived values, never as ground truth.
	SourceAvg float64
	SourceSlg float64
	SourceObp float64
	SourceOps float64
	SourceEqa float64
}

// RowError describes why a row was rejected, with enough context to find it
// in the source file.
type RowError struct {
	Line   int
	Reason string
	Raw    string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// RowResult is a tagged parse outcome: exactly one of Record or Reject is
// set.
type RowResult struct {
	Record *Record
	Reject *RowError
}

// RowParser turns delimited export lines into Records. It is pure: all
// diagnostics come back in the RowResult, nothing is logged.
type RowParser struct {
	Delimiter string
	MinYear   int
}

// NewRowParser returns a parser with the given delimiter and minimum
// plausible season year.
func NewRowParser(delimiter string, minYear int) *RowParser {
	return &RowParser{Delimiter: delimiter, MinYear: minYear}
}

// Parse splits one line and coerces each field. Counting stats coerce
// empty/unparseable to zero; the two score fields coerce to nil since an
// unplayed game legitimately has no score. Quoted fields containing the
// delimiter are not handled.
func (p *RowParser) Parse(line string, lineNumber int) RowResult {
	reject := func(reason string) RowResult {
		return RowResult{Reject: &RowError{Line: lineNumber, Reason: reason, Raw: line}}
	}

	fields := strings.Split(line, p.Delimiter)
	if len(fields) < expectedColumns {
		return reject(fmt.Sprintf("insufficient columns: got %d, need %d", len(fields), expectedColumns))
	}

	rec := &Record{
		Year:        intOrZero(fields[0]),
		GameNumber:  intOrZero(fields[1]),
		Date:        strings.TrimSpace(fields[2]),
		Opponent:    strings.TrimSpace(fields[3]),
		Result:      strings.TrimSpace(fields[4]),
		RunsFor:     intOrNull(fields[5]),
		RunsAgainst: intOrNull(fields[6]),
		Name:        strings.TrimSpace(fields[7]),
		Gender:      strings.TrimSpace(fields[8]),
		SourceAvg:   floatOrZero(fields[9]),
		BattingLine: model.BattingLine{
			AtBats:            intOrZero(fields[10]),
			Runs:              intOrZero(fields[11]),
			Hits:              intOrZero(fields[12]),
			Singles:           intOrZero(fields[13]),
			Doubles:           intOrZero(fields[14]),
			Triples:           intOrZero(fields[15]),
			HomeRuns:          intOrZero(fields[16]),
			ExtraBase:         intOrZero(fields[17]),
			TotalBases:        intOrZero(fields[18]),
			RBIs:              intOrZero(fields[19]),
			Sacrifice:         intOrZero(fields[20]),
			Walks:             intOrZero(fields[21]),
			Strikeouts:        intOrZero(fields[22]),
			OnBaseNumerator:   intOrZero(fields[27]),
			OnBaseDenominator: intOrZero(fields[28]),
		},
		SourceSlg: floatOrZero(fields[23]),
		SourceObp: floatOrZero(fields[24]),
		SourceOps: floatOrZero(fields[25]),
		SourceEqa: floatOrZero(fields[26]),
	}

	if rec.Name == "" {
		return reject("missing player name")
	}
	if rec.Year < p.MinYear {
		return reject(fmt.Sprintf("invalid year: %d", rec.Year))
	}
	if rec.GameNumber < 1 {
		return reject(fmt.Sprintf("invalid game number: %d", rec.GameNumber))
	}

	return RowResult{Record: rec}
}

// intOrZero coerces a required numeric field: empty or unparseable → 0.
func intOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// intOrNull coerces an optional numeric field: empty or unparseable → nil.
func intOrNull(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// floatOrZero coerces a carried-through rate field: empty or unparseable → 0.
func floatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
