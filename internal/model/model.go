package model

// Store identifies which of the two record-keeping systems a row lives in.
type Store int

const (
	StoreUnknown Store = 0
	StoreLive    Store = 1
	StoreArchive Store = 2
)

func (s Store) String() string {
	switch s {
	case StoreLive:
		return "live"
	case StoreArchive:
		return "archive"
	default:
		return "?"
	}
}

// BattingLine holds the raw counting stats for one player in one game.
// Rate stats (AVG, OBP, SLG, OPS) are always derived from these, never
// treated as ground truth.
type BattingLine struct {
	AtBats     int `json:"atBats"`
	Runs       int `json:"runs"`
	Hits       int `json:"hits"`
	Singles    int `json:"singles"`
	Doubles    int `json:"doubles"`
	Triples    int `json:"triples"`
	HomeRuns   int `json:"homeRuns"`
	ExtraBase  int `json:"xbh"` // XBH as carried in the export
	TotalBases int `json:"totalBases"`
	RBIs       int `json:"rbis"`
	Sacrifice  int `json:"sacrifice"`
	Walks      int `json:"walks"`
	Strikeouts int `json:"strikeouts"`

	// On-base numerator/denominator carried through from the source export.
	// Zero denominator means "not supplied"; OBP then falls back to the
	// derived (H+BB)/(AB+BB) form.
	OnBaseNumerator   int `json:"onBaseNumerator"`
	OnBaseDenominator int `json:"onBaseDenominator"`
}

// Add accumulates another line into this one, field by field.
func (b *BattingLine) Add(o BattingLine) {
	b.AtBats += o.AtBats
	b.Runs += o.Runs
	b.Hits += o.Hits
	b.Singles += o.Singles
	b.Doubles += o.Doubles
	b.Triples += o.Triples
	b.HomeRuns += o.HomeRuns
	b.ExtraBase += o.ExtraBase
	b.TotalBases += o.TotalBases
	b.RBIs += o.RBIs
	b.Sacrifice += o.Sacrifice
	b.Walks += o.Walks
	b.Strikeouts += o.Strikeouts
	b.OnBaseNumerator += o.OnBaseNumerator
	b.OnBaseDenominator += o.OnBaseDenominator
}

// ---- Archival store (natural keys) ----

// ArchiveSeason is one historical season, identified by calendar year.
type ArchiveSeason struct {
	ID   int64
	Year int
}

// ArchivePlayer is identified by the literal name string; the active-year
// range is widened on every import that mentions the player.
type ArchivePlayer struct {
	ID        int64
	Name      string
	Gender    string
	FirstYear int
	LastYear  int
}

// ArchiveGame is identified by (season year, externally supplied game number).
type ArchiveGame struct {
	ID          int64
	SeasonYear  int
	GameNumber  int
	GameDate    string
	Opponent    string
	Result      string // free text, typically W/L/T
	RunsFor     *int   // nil when the game was never scored
	RunsAgainst *int
}

// ArchiveFact is the atomic unit of archival data: one player's line in one
// game, unique per (game, player). The source export's own rate columns are
// carried alongside for cross-checking but never summed.
type ArchiveFact struct {
	ID       int64
	GameID   int64
	PlayerID int64
	BattingLine

	SourceAvg float64
	SourceSlg float64
	SourceObp float64
	SourceOps float64
	SourceEqa float64
}

// ---- Live store (surrogate keys) ----

type LiveSeason struct {
	ID       int64
	Name     string
	Year     int
	IsActive bool
}

type LivePlayer struct {
	ID        int64
	FirstName string
	LastName  string
	IsActive  bool
}

func (p LivePlayer) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Live game statuses.
const (
	GameScheduled  = "scheduled"
	GameInProgress = "in_progress"
	GameCompleted  = "completed"
	GameCancelled  = "cancelled"
)

type LiveGame struct {
	ID         int64
	SeasonID   int64
	GameDate   string
	Opponent   string
	HomeAway   string
	Location   string
	Status     string
	OurScore   *int
	TheirScore *int
	Notes      string
}

// LiveFact mirrors ArchiveFact for the live schema. Re-submission replaces
// the whole set of facts for a game.
type LiveFact struct {
	ID           int64
	PlayerID     int64
	GameID       int64
	BattingOrder *int
	BattingLine
}

// ---- Submission and aggregate shapes ----

// StatEntry is one player's counting stats in a single-game submission.
// PlayerID addresses the live roster; PlayerName addresses the archival
// store (whichever the router resolves the game to).
type StatEntry struct {
	PlayerID     int64  `json:"playerId,omitempty"`
	PlayerName   string `json:"playerName,omitempty"`
	BattingOrder *int   `json:"battingOrder,omitempty"`
	BattingLine
}

// GameScore is the optional final score attached to a submission.
type GameScore struct {
	Ours   int `json:"ourScore"`
	Theirs int `json:"theirScore"`
}

// PlayerAggregate holds one player's counting stats summed across a season
// or a whole career. Rate stats are computed from the summed line.
type PlayerAggregate struct {
	Name      string
	Gender    string
	FirstYear int
	LastYear  int
	Games     int
	Seasons   int
	BattingLine
}

// SeasonSummary is one row of the season-by-season team ledger.
type SeasonSummary struct {
	Year     int
	Games    int
	Wins     int
	Losses   int
	Players  int
	AtBats   int
	Hits     int
	HomeRuns int
}

// TeamTotals aggregates the whole archive for the all-time view.
type TeamTotals struct {
	Seasons     int
	Games       int
	Players     int
	PlayerGames int
	AtBats      int
	Runs        int
	Hits        int
	HomeRuns    int
	RBIs        int
}

// SeasonRef is a combined-listing row; live and archival seasons for the
// same year are distinct entries.
type SeasonRef struct {
	Store Store
	ID    int64
	Name  string
	Year  int
}

// FactRow is one stored fact joined with its player and game keys, the shape
// the aggregation queries hand to the statistics engine.
type FactRow struct {
	PlayerName string
	Gender     string
	SeasonYear int
	GameNumber int
	GameID     int64
	BattingLine
}
