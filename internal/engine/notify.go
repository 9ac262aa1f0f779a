package engine

import "time"

// DefaultDueWindow is how far ahead the due check looks.
const DefaultDueWindow = 5 * time.Minute

// DueNotifier classifies which quests are about to come due. It only
// classifies; delivering the alert is the caller's job. Each quest
// fires at most once per local day, and the dedup memory clears itself
// when the day rolls over, so the notifier survives full state resets
// between polls.
type DueNotifier struct {
	window   time.Duration
	notified map[string]bool
	lastDay  time.Time
}

func NewDueNotifier(window time.Duration) *DueNotifier {
	if window <= 0 {
		window = DefaultDueWindow
	}
	return &DueNotifier{
		window:   window,
		notified: map[string]bool{},
	}
}

// Due returns the incomplete quests whose due time of day falls within
// [now, now+window] today and which have not been reported yet today.
// The date component of DueAt is ignored; only hour:minute matter.
func (n *DueNotifier) Due(tasks []Task, now time.Time) []Task {
	today := StartOfDay(now)
	if !today.Equal(n.lastDay) {
		n.notified = map[string]bool{}
		n.lastDay = today
	}

	deadline := now.Add(n.window)
	var due []Task
	for i := range tasks {
		t := &tasks[i]
		if t.IsCompleted || t.DueAt == nil {
			continue
		}
		dueAt := time.Date(today.Year(), today.Month(), today.Day(),
			t.DueAt.Hour(), t.DueAt.Minute(), 0, 0, now.Location())
		if dueAt.Before(now) || dueAt.After(deadline) {
			continue
		}
		if n.notified[t.ID] {
			continue
		}
		n.notified[t.ID] = true
		due = append(due, *t)
	}
	return due
}
