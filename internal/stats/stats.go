// Package stats derives rate statistics from raw counting stats. Every
// function is pure: aggregation at season or career level sums the counting
// stats first and applies a formula exactly once to the sums. Averaging
// per-game rates is never correct and is not offered.
package stats

import (
	"math"

	"github.com/uhj/teamstats/internal/model"
)

// Round3 rounds to three decimal places, half up. Batting rates
// are conventionally printed with three digits, so rounding happens in the
// engine rather than at display time.
func Round3(x float64) float64 {
	return math.Floor(x*1000+0.5) / 1000
}

// BattingAverage is hits per at-bat, 0.000 when there are no at-bats.
func BattingAverage(hits, atBats int) float64 {
	if atBats <= 0 {
		return 0
	}
	return Round3(float64(hits) / float64(atBats))
}

// OnBasePercentage reconciles the two OBP definitions found in the source
// data into one canonical rule: when the carried-through numerator/denominator
// pair is present (denominator > 0) it wins; otherwise OBP is derived as
// (H+BB)/(AB+BB). The same rule applies at game, season, and career level.
func OnBasePercentage(onBaseNum, onBaseDenom, hits, walks, atBats int) float64 {
	if onBaseDenom > 0 {
		return Round3(float64(onBaseNum) / float64(onBaseDenom))
	}
	pa := atBats + walks
	if pa <= 0 {
		return 0
	}
	return Round3(float64(hits+walks) / float64(pa))
}

// SluggingPercentage is total bases per at-bat, 0.000 when there are no
// at-bats.
func SluggingPercentage(singles, doubles, triples, homeRuns, atBats int) float64 {
	if atBats <= 0 {
		return 0
	}
	tb := singles + 2*doubles + 3*triples + 4*homeRuns
	return Round3(float64(tb) / float64(atBats))
}

// OnBasePlusSlugging is the simple sum of OBP and SLG, not recomputed from
// combined totals.
func OnBasePlusSlugging(obp, slg float64) float64 {
	return Round3(obp + slg)
}

// RateLine is a derived set of rate stats for one counting-stat aggregate.
type RateLine struct {
	AVG float64
	OBP float64
	SLG float64
	OPS float64
}

// Rates applies the four formulas to one counting-stat line. The line may be
// a single game's facts or the sum over a season or career; callers sum
// first via BattingLine.Add, then derive once.
func Rates(line model.BattingLine) RateLine {
	avg := BattingAverage(line.Hits, line.AtBats)
	obp := OnBasePercentage(line.OnBaseNumerator, line.OnBaseDenominator, line.Hits, line.Walks, line.AtBats)
	slg := SluggingPercentage(line.Singles, line.Doubles, line.Triples, line.HomeRuns, line.AtBats)
	return RateLine{
		AVG: avg,
		OBP: obp,
		SLG: slg,
		OPS: OnBasePlusSlugging(obp, slg),
	}
}

// Sum folds a sequence of per-game lines into one aggregate line.
func Sum(lines []model.BattingLine) model.BattingLine {
	var total model.BattingLine
	for _, l := range lines {
		total.Add(l)
	}
	return total
}
