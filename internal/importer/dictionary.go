package importer

// GameKey is the natural identity of an archival game.
type GameKey struct {
	Year   int
	Number int
}

// PlayerEntry is the deduplicated view of one player across a batch.
type PlayerEntry struct {
	Gender    string
	FirstYear int
	LastYear  int
}

// Dictionaries is the deduplicated output of one import batch, built
// entirely in memory and discarded when the batch finishes. Persisting from
// these (one upsert per unique season/player/game) instead of per raw row is
// what keeps repeated imports idempotent and cheap.
type Dictionaries struct {
	Seasons map[int]struct{}
	Players map[string]*PlayerEntry
	Games   map[GameKey]*Record

	// Facts preserves every parsed row in input order; duplicates of a game
	// key still contribute their fact even though their descriptive fields
	// are ignored.
	Facts []Record
}

// BuildDictionaries folds a batch of parsed records into the three
// deduplicated collections in one pass.
//
// Merge rules: seasons are a set by year. Players merge by exact name with
// firstYear=min, lastYear=max and last-write-wins gender. Games keep the
// first record seen per (year, number) for descriptive fields.
func BuildDictionaries(records []Record) *Dictionaries {
	d := &Dictionaries{
		Seasons: make(map[int]struct{}),
		Players: make(map[string]*PlayerEntry),
		Games:   make(map[GameKey]*Record),
		Facts:   records,
	}

	for i := range records {
		rec := &records[i]

		d.Seasons[rec.Year] = struct{}{}

		if p, ok := d.Players[rec.Name]; ok {
			if rec.Year < p.FirstYear {
				p.FirstYear = rec.Year
			}
			if rec.Year > p.LastYear {
				p.LastYear = rec.Year
			}
			p.Gender = rec.Gender
		} else {
			d.Players[rec.Name] = &PlayerEntry{
				Gender:    rec.Gender,
				FirstYear: rec.Year,
				LastYear:  rec.Year,
			}
		}

		key := GameKey{Year: rec.Year, Number: rec.GameNumber}
		if _, ok := d.Games[key]; !ok {
			d.Games[key] = rec
		}
	}

	return d
}
