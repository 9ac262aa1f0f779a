package engine

import (
	"errors"
	"testing"
)

func TestAddJournalEntryRequiresMood(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.AddJournalEntry(AddJournalInput{Note: "no mood"}); !errors.Is(err, ErrMoodRequired) {
		t.Fatalf("expected ErrMoodRequired, got %v", err)
	}
	if len(svc.State().Journal) != 0 {
		t.Fatalf("invalid entry was stored")
	}
}

func TestAddJournalEntryDefaultsIntensity(t *testing.T) {
	svc, _ := newTestService(t)

	entry, err := svc.AddJournalEntry(AddJournalInput{Mood: MoodCalm, Intensity: 9, Note: "  trimmed  "})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if entry.Intensity != DefaultIntensity {
		t.Fatalf("out-of-range intensity stored as %d, want %d", entry.Intensity, DefaultIntensity)
	}
	if entry.Note != "trimmed" {
		t.Fatalf("note=%q, want trimmed", entry.Note)
	}

	strong, err := svc.AddJournalEntry(AddJournalInput{Mood: MoodExcited, Intensity: 5})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if strong.Intensity != 5 {
		t.Fatalf("valid intensity rewritten to %d", strong.Intensity)
	}

	// Newest first.
	if svc.State().Journal[0].ID != strong.ID {
		t.Fatalf("entries not prepended")
	}
}

func TestRemoveJournalEntry(t *testing.T) {
	svc, _ := newTestService(t)
	entry, err := svc.AddJournalEntry(AddJournalInput{Mood: MoodSad})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if !svc.RemoveJournalEntry(entry.ID) {
		t.Fatalf("remove failed for existing entry")
	}
	if svc.RemoveJournalEntry(entry.ID) {
		t.Fatalf("removing a missing entry should be a no-op")
	}
}

func TestJournalStats(t *testing.T) {
	svc, clk := newTestService(t)

	add := func(m Mood) {
		if _, err := svc.AddJournalEntry(AddJournalInput{Mood: m}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	add(MoodHappy)
	add(MoodHappy)
	clk.advanceDays(1)
	add(MoodStressed)
	clk.advanceDays(1)
	add(MoodCalm)

	stats := svc.JournalStatsAt(clk.now)
	if stats.Total != 4 {
		t.Fatalf("total=%d, want 4", stats.Total)
	}
	if stats.ByMood[MoodHappy] != 2 || stats.ByMood[MoodStressed] != 1 {
		t.Fatalf("mood counts=%v", stats.ByMood)
	}
	if stats.DayStreak != 3 {
		t.Fatalf("day streak=%d, want 3", stats.DayStreak)
	}

	// No entry today: yesterday anchors the streak.
	clk.advanceDays(1)
	if got := svc.JournalStatsAt(clk.now).DayStreak; got != 3 {
		t.Fatalf("streak with empty today=%d, want 3", got)
	}

	// A full missed day breaks it.
	clk.advanceDays(1)
	if got := svc.JournalStatsAt(clk.now).DayStreak; got != 0 {
		t.Fatalf("streak after gap=%d, want 0", got)
	}
}
