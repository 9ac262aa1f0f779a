package engine

import "testing"

func TestBandSizes(t *testing.T) {
	if got := BandSize(1); got != 100 {
		t.Fatalf("BandSize(1)=%d, want 100", got)
	}
	if got := BandSize(2); got != 125 {
		t.Fatalf("BandSize(2)=%d, want 125", got)
	}

	prev := 0
	for lvl := 1; lvl <= 30; lvl++ {
		band := BandSize(lvl)
		if band <= prev {
			t.Fatalf("BandSize(%d)=%d not greater than BandSize(%d)=%d", lvl, band, lvl-1, prev)
		}
		prev = band
	}
}

func TestBreakdownZero(t *testing.T) {
	b := BreakdownXP(0)
	if b.Level != 1 || b.XPIntoLevel != 0 || b.Progress != 0 {
		t.Fatalf("BreakdownXP(0)=%+v, want level 1, 0 into level, progress 0", b)
	}
	if b.XPForThisLevel != 100 {
		t.Fatalf("BreakdownXP(0).XPForThisLevel=%d, want 100", b.XPForThisLevel)
	}
}

func TestBreakdownReconstructsTotal(t *testing.T) {
	totals := []int{0, 1, 99, 100, 101, 224, 225, 226, 500, 1000, 4321, 99999}
	for _, total := range totals {
		b := BreakdownXP(total)
		sum := b.XPIntoLevel
		for lvl := 1; lvl < b.Level; lvl++ {
			sum += BandSize(lvl)
		}
		if sum != total {
			t.Fatalf("totalXP=%d: bands below level %d + %d into level = %d", total, b.Level, b.XPIntoLevel, sum)
		}
		if b.Progress < 0 || b.Progress >= 1 {
			t.Fatalf("totalXP=%d: progress %f out of [0,1)", total, b.Progress)
		}
	}
}

func TestBreakdownCrossesFirstBand(t *testing.T) {
	b := BreakdownXP(100)
	if b.Level != 2 || b.XPIntoLevel != 0 {
		t.Fatalf("BreakdownXP(100)=%+v, want level 2 with 0 into level", b)
	}
	b = BreakdownXP(224)
	if b.Level != 2 || b.XPIntoLevel != 124 {
		t.Fatalf("BreakdownXP(224)=%+v, want level 2 with 124 into level", b)
	}
	b = BreakdownXP(225)
	if b.Level != 3 || b.XPIntoLevel != 0 {
		t.Fatalf("BreakdownXP(225)=%+v, want level 3 with 0 into level", b)
	}
}
