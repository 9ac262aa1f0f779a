package engine

import (
	"testing"
	"time"
)

func dueAtClock(hour, minute int) *time.Time {
	// An arbitrary date; the notifier only reads hour and minute.
	ts := time.Date(2000, 1, 1, hour, minute, 0, 0, time.Local)
	return &ts
}

func TestDueNotifierWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.Local)
	tasks := []Task{
		{ID: "soon", Title: "due soon", DueAt: dueAtClock(14, 3)},
		{ID: "later", Title: "due later", DueAt: dueAtClock(15, 0)},
		{ID: "past", Title: "already due", DueAt: dueAtClock(13, 0)},
		{ID: "done", Title: "completed", IsCompleted: true, DueAt: dueAtClock(14, 2)},
		{ID: "nodue", Title: "no due time"},
	}

	n := NewDueNotifier(DefaultDueWindow)
	due := n.Due(tasks, now)
	if len(due) != 1 || due[0].ID != "soon" {
		t.Fatalf("due=%v, want just the quest due within 5 minutes", due)
	}
}

func TestDueNotifierDedupsPerDay(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.Local)
	tasks := []Task{{ID: "q1", Title: "standup", DueAt: dueAtClock(14, 4)}}

	n := NewDueNotifier(DefaultDueWindow)
	if due := n.Due(tasks, now); len(due) != 1 {
		t.Fatalf("first poll: due=%v", due)
	}
	// The 30-second poll fires again inside the window.
	if due := n.Due(tasks, now.Add(30*time.Second)); len(due) != 0 {
		t.Fatalf("second poll re-reported the same quest")
	}

	// Next day the memory clears and the quest fires again.
	nextDay := now.AddDate(0, 0, 1)
	if due := n.Due(tasks, nextDay); len(due) != 1 {
		t.Fatalf("next-day poll: due=%v, want the quest again", due)
	}
}

func TestDueNotifierEmptyAndReset(t *testing.T) {
	n := NewDueNotifier(0) // zero window falls back to the default
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)

	if due := n.Due(nil, now); len(due) != 0 {
		t.Fatalf("empty collection produced due quests: %v", due)
	}
	// A fresh slice after a full state reset must not trip the notifier.
	if due := n.Due([]Task{}, now); due != nil {
		t.Fatalf("reset collection produced due quests: %v", due)
	}
}
