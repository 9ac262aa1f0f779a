package engine

import "math"

const (
	// BaseBandXP is the XP needed to clear level 1.
	BaseBandXP = 100.0

	// BandGrowth makes each band ~25% wider than the previous one.
	BandGrowth = 1.25
)

// BandSize returns the XP required to go from the given level to the
// next one. Each band is rounded independently, so rounding error never
// compounds across levels.
func BandSize(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Round(BaseBandXP * math.Pow(BandGrowth, float64(level-1))))
}

// Breakdown describes where a total XP amount lands on the curve.
type Breakdown struct {
	Level          int
	XPIntoLevel    int
	XPForThisLevel int
	// Progress through the current band, in [0, 1).
	Progress float64
}

// BreakdownXP walks the curve from level 1, subtracting whole bands
// until the remainder no longer covers one. Bands are strictly positive
// and increasing, so the loop terminates after O(level) steps.
func BreakdownXP(totalXP int) Breakdown {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	remaining := totalXP
	for remaining >= BandSize(level) {
		remaining -= BandSize(level)
		level++
	}

	band := BandSize(level)
	progress := 0.0
	if band > 0 {
		progress = float64(remaining) / float64(band)
	}
	return Breakdown{
		Level:          level,
		XPIntoLevel:    remaining,
		XPForThisLevel: band,
		Progress:       progress,
	}
}
