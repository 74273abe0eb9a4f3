package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name, gender string, year, game int) Record {
	return Record{Year: year, GameNumber: game, Name: name, Gender: gender, Opponent: "Otters"}
}

func TestBuildDictionariesDedup(t *testing.T) {
	recs := []Record{
		record("Jane Doe", "F", 2021, 1),
		record("Jane Doe", "F", 2021, 2),
		record("Sam Poe", "M", 2021, 1),
		record("Jane Doe", "F", 2022, 1),
	}

	d := BuildDictionaries(recs)

	assert.Len(t, d.Seasons, 2)
	assert.Contains(t, d.Seasons, 2021)
	assert.Contains(t, d.Seasons, 2022)

	assert.Len(t, d.Players, 2)
	assert.Len(t, d.Games, 3, "game 1 of 2021 and game 1 of 2022 are distinct keys")
	assert.Len(t, d.Facts, 4, "every row contributes a fact")
}

func TestBuildDictionariesPlayerYearRange(t *testing.T) {
	// Min/max must come out the same whichever order the years arrive in.
	forward := BuildDictionaries([]Record{
		record("Jane Doe", "F", 2019, 1),
		record("Jane Doe", "F", 2023, 1),
	})
	backward := BuildDictionaries([]Record{
		record("Jane Doe", "F", 2023, 1),
		record("Jane Doe", "F", 2019, 1),
	})

	for _, d := range []*Dictionaries{forward, backward} {
		p := d.Players["Jane Doe"]
		require.NotNil(t, p)
		assert.Equal(t, 2019, p.FirstYear)
		assert.Equal(t, 2023, p.LastYear)
	}
}

func TestBuildDictionariesGenderLastWriteWins(t *testing.T) {
	d := BuildDictionaries([]Record{
		record("Jane Doe", "F", 2021, 1),
		record("Jane Doe", "X", 2021, 2),
	})
	assert.Equal(t, "X", d.Players["Jane Doe"].Gender)
}

func TestBuildDictionariesGameFirstWins(t *testing.T) {
	first := record("Jane Doe", "F", 2021, 1)
	first.Opponent = "River Rats"
	first.Result = "W"
	second := record("Sam Poe", "M", 2021, 1)
	second.Opponent = "Someone Else"
	second.Result = "L"

	d := BuildDictionaries([]Record{first, second})

	g := d.Games[GameKey{Year: 2021, Number: 1}]
	require.NotNil(t, g)
	assert.Equal(t, "River Rats", g.Opponent, "descriptive fields come from the first row seen")
	assert.Equal(t, "W", g.Result)
}

func TestBuildDictionariesEmpty(t *testing.T) {
	d := BuildDictionaries(nil)
	assert.Empty(t, d.Seasons)
	assert.Empty(t, d.Players)
	assert.Empty(t, d.Games)
	assert.Empty(t, d.Facts)
}
