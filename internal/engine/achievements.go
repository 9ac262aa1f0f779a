package engine

// Achievement is a badge definition from the fixed catalog.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

const (
	AchXP500   = "xp_500"
	AchXP1000  = "xp_1000"
	AchStreak7 = "streak_7"
	AchMain10  = "main_10"
	AchSide10  = "side_10"
	AchHard10  = "hard_10"
	AchDaily15 = "daily_15"
)

// Catalog lists every achievement in display order.
var Catalog = []Achievement{
	{AchXP500, "Rising Star", "Earn 500 total XP", "⭐"},
	{AchXP1000, "Seasoned Adventurer", "Earn 1000 total XP", "🌟"},
	{AchStreak7, "Week of Fire", "Keep a 7-day completion streak", "🔥"},
	{AchMain10, "Main Character", "Complete 10 main quests", "🗺️"},
	{AchSide10, "Side Hustler", "Complete 10 side quests", "🧭"},
	{AchHard10, "Giant Slayer", "Complete 10 hard quests", "⚔️"},
	{AchDaily15, "Creature of Habit", "Complete 15 daily quests", "🔁"},
}

// AchievementByID looks up a catalog entry; ok is false for unknown ids
// (e.g. imported from a newer export).
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// unlockAchievements evaluates every threshold against the current
// state and appends the newly crossed ones. The set only ever grows;
// nothing is revoked when counts or XP later drop.
func unlockAchievements(s *State) []Achievement {
	mainDone, sideDone, hardDone, dailyDone := 0, 0, 0, 0
	for i := range s.Tasks {
		t := &s.Tasks[i]
		if !t.IsCompleted {
			continue
		}
		if t.Type == TaskTypeMain {
			mainDone++
		}
		if t.Type == TaskTypeSide {
			sideDone++
		}
		if t.Difficulty == DifficultyHard {
			hardDone++
		}
		if t.Repeat == RepeatDaily {
			dailyDone++
		}
	}

	earned := map[string]bool{
		AchXP500:   s.TotalXP >= 500,
		AchXP1000:  s.TotalXP >= 1000,
		AchStreak7: s.DailyStreak >= 7,
		AchMain10:  mainDone >= 10,
		AchSide10:  sideDone >= 10,
		AchHard10:  hardDone >= 10,
		AchDaily15: dailyDone >= 15,
	}

	var unlocked []Achievement
	for _, a := range Catalog {
		if earned[a.ID] && !s.HasAchievement(a.ID) {
			s.Achievements = append(s.Achievements, a.ID)
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}
