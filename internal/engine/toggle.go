package engine

// Streak bonuses fire on exact equality, so each one is granted once
// per streak run.
const (
	BonusXPStreak3 = 25
	BonusXPStreak7 = 80

	bonusStreak3At = 3
	bonusStreak7At = 7
)

type ToggleResult struct {
	Task        Task
	Completed   bool
	XPDelta     int
	BonusXP     int
	TotalXP     int
	StreakAfter int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	// Unlocked lists achievements earned by this toggle.
	Unlocked []Achievement
}

// ToggleTask flips completion on a quest and settles the ledger in the
// same update: XP delta, streak, streak bonuses and achievements.
// Unknown ids are a silent no-op (stale UI references are expected).
//
// Un-completing refunds the quest XP but never rolls back streak or
// achievements.
func (s *Service) ToggleTask(id string) *ToggleResult {
	t := s.state.FindTask(id)
	if t == nil {
		return nil
	}

	now := s.now()
	levelBefore := BreakdownXP(s.state.TotalXP).Level

	completed := !t.IsCompleted
	t.IsCompleted = completed
	if completed {
		ts := now
		t.CompletedAt = &ts
	} else {
		t.CompletedAt = nil
	}

	delta := t.XP
	if !completed {
		delta = -t.XP
	}
	total := s.state.TotalXP + delta
	if total < 0 {
		total = 0
	}

	bonus := 0
	if completed {
		last := s.state.LastCompletionDate
		switch {
		case last == nil:
			s.state.DailyStreak = 1
		case IsSameDay(*last, now):
			// Same calendar day, streak unchanged.
		case IsNextDay(*last, now):
			s.state.DailyStreak++
		default:
			s.state.DailyStreak = 1
		}
		ts := now
		s.state.LastCompletionDate = &ts

		if s.state.DailyStreak == bonusStreak3At {
			bonus += BonusXPStreak3
		}
		if s.state.DailyStreak == bonusStreak7At {
			bonus += BonusXPStreak7
		}
		total += bonus
	}
	s.state.TotalXP = total

	unlocked := unlockAchievements(s.state)

	levelAfter := BreakdownXP(s.state.TotalXP).Level
	res := &ToggleResult{
		Task:        *t,
		Completed:   completed,
		XPDelta:     delta,
		BonusXP:     bonus,
		TotalXP:     s.state.TotalXP,
		StreakAfter: s.state.DailyStreak,
		LevelBefore: levelBefore,
		LevelAfter:  levelAfter,
		LevelUp:     levelAfter > levelBefore,
		Unlocked:    unlocked,
	}

	s.changed()
	return res
}

// RemoveTask deletes a quest outright. XP already granted stays on the
// ledger; only un-completing retracts it.
func (s *Service) RemoveTask(id string) bool {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			s.state.Tasks = append(s.state.Tasks[:i], s.state.Tasks[i+1:]...)
			s.changed()
			return true
		}
	}
	return false
}
