package engine

import "time"

// DailyTick reconciles recurring quests against the current day. It is
// idempotent per local day: the first call after midnight resets daily
// quests unconditionally and weekly quests whose last reset lies in a
// previous week bucket; repeated calls on the same day do nothing.
// Runs at process start and from the recurring timer.
func (s *Service) DailyTick(now time.Time) bool {
	today := StartOfDay(now)
	if today.Equal(StartOfDay(s.state.LastDayCheck)) {
		return false
	}

	for i := range s.state.Tasks {
		t := &s.state.Tasks[i]
		switch t.Repeat {
		case RepeatDaily:
			resetTask(t, today)
		case RepeatWeekly:
			// A zero LastResetOn (older exports) never matches the
			// current bucket, so the quest resets.
			if !IsSameWeek(t.LastResetOn, now, s.weekStart) {
				resetTask(t, today)
			}
		}
	}

	s.state.LastDayCheck = today
	s.changed()
	return true
}

func resetTask(t *Task, today time.Time) {
	t.IsCompleted = false
	t.CompletedAt = nil
	t.LastResetOn = today
}
