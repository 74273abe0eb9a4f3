package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// janeDoeRow is a full 29-column export row: 2021 game 3, a 3-for-4 day with
// a double and a homer.
const janeDoeRow = "2021,3,2021-06-12,River Rats,W,8,5,Jane Doe,F," +
	"0.750,4,2,3,1,1,0,1,2,7,3,0,1,0,1.750,0.750,2.500,0.412,3,4"

func TestParseCompleteRow(t *testing.T) {
	p := NewRowParser(",", 2000)
	res := p.Parse(janeDoeRow, 2)
	require.Nil(t, res.Reject)
	require.NotNil(t, res.Record)

	rec := res.Record
	assert.Equal(t, 2021, rec.Year)
	assert.Equal(t, 3, rec.GameNumber)
	assert.Equal(t, "2021-06-12", rec.Date)
	assert.Equal(t, "River Rats", rec.Opponent)
	assert.Equal(t, "W", rec.Result)
	require.NotNil(t, rec.RunsFor)
	assert.Equal(t, 8, *rec.RunsFor)
	require.NotNil(t, rec.RunsAgainst)
	assert.Equal(t, 5, *rec.RunsAgainst)
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "F", rec.Gender)

	assert.Equal(t, 4, rec.AtBats)
	assert.Equal(t, 2, rec.Runs)
	assert.Equal(t, 3, rec.Hits)
	assert.Equal(t, 1, rec.Singles)
	assert.Equal(t, 1, rec.Doubles)
	assert.Equal(t, 0, rec.Triples)
	assert.Equal(t, 1, rec.HomeRuns)
	assert.Equal(t, 2, rec.ExtraBase)
	assert.Equal(t, 7, rec.TotalBases)
	assert.Equal(t, 3, rec.RBIs)
	assert.Equal(t, 0, rec.Sacrifice)
	assert.Equal(t, 1, rec.Walks)
	assert.Equal(t, 0, rec.Strikeouts)
	assert.Equal(t, 3, rec.OnBaseNumerator)
	assert.Equal(t, 4, rec.OnBaseDenominator)

	assert.Equal(t, 0.750, rec.SourceAvg)
	assert.Equal(t, 1.750, rec.SourceSlg)
	assert.Equal(t, 0.750, rec.SourceObp)
	assert.Equal(t, 2.500, rec.SourceOps)
	assert.Equal(t, 0.412, rec.SourceEqa)
}

func TestParseRejections(t *testing.T) {
	p := NewRowParser(",", 2000)

	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{
			name:   "too few columns",
			line:   "2021,3,2021-06-12",
			reason: "insufficient columns: got 3, need 29",
		},
		{
			name:   "missing player name",
			line:   strings.Replace(janeDoeRow, "Jane Doe", "  ", 1),
			reason: "missing player name",
		},
		{
			name:   "year below minimum",
			line:   strings.Replace(janeDoeRow, "2021,3", "1997,3", 1),
			reason: "invalid year: 1997",
		},
		{
			name:   "unparseable year coerces to zero and fails the floor",
			line:   strings.Replace(janeDoeRow, "2021,3", "20xx,3", 1),
			reason: "invalid year: 0",
		},
		{
			name:   "game number below one",
			line:   strings.Replace(janeDoeRow, "2021,3", "2021,0", 1),
			reason: "invalid game number: 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Parse(tt.line, 7)
			require.NotNil(t, res.Reject)
			assert.Nil(t, res.Record)
			assert.Equal(t, tt.reason, res.Reject.Reason)
			assert.Equal(t, 7, res.Reject.Line)
			assert.Equal(t, tt.line, res.Reject.Raw)
		})
	}
}

func TestParseCoercions(t *testing.T) {
	p := NewRowParser(",", 2000)

	// Scores and every stat column blank: stats coerce to zero, scores to nil.
	line := "2021,1,2021-05-01,Otters,,,,Sam Poe,M," +
		",,,,,,,,,,,,,,,,,,,"
	res := p.Parse(line, 2)
	require.Nil(t, res.Reject)

	rec := res.Record
	assert.Nil(t, rec.RunsFor)
	assert.Nil(t, rec.RunsAgainst)
	assert.Equal(t, 0, rec.AtBats)
	assert.Equal(t, 0, rec.OnBaseDenominator)
	assert.Equal(t, 0.0, rec.SourceAvg)
}

func TestParseCustomDelimiter(t *testing.T) {
	p := NewRowParser(";", 2000)
	line := strings.ReplaceAll(janeDoeRow, ",", ";")
	// The rate columns contain no delimiter after the swap, so the row still
	// splits into 29 fields — but their decimal points survive.
	res := p.Parse(line, 2)
	require.Nil(t, res.Reject)
	assert.Equal(t, "Jane Doe", res.Record.Name)
	assert.Equal(t, 4, res.Record.AtBats)
}

func TestRowErrorMessage(t *testing.T) {
	e := &RowError{Line: 12, Reason: "missing player name", Raw: "..."}
	assert.Equal(t, "line 12: missing player name", e.Error())
}
