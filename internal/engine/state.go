package engine

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single quest. CompletedAt is set iff IsCompleted is true,
// and XP is never negative.
type Task struct {
	ID          string     `json:"id"`
	Type        TaskType   `json:"type"`
	Origin      Origin     `json:"origin"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	XP          int        `json:"xp"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Repeat      Repeat     `json:"repeat"`
	// DueAt carries a time of day; only hour:minute matter for the
	// due-soon check, anchored to "today".
	DueAt       *time.Time `json:"dueAt,omitempty"`
	LastResetOn time.Time  `json:"lastResetOn"`
}

type JournalEntry struct {
	ID        string    `json:"id"`
	Mood      Mood      `json:"mood"`
	Intensity int       `json:"intensity"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Profile struct {
	Name string `json:"name"`
}

const DefaultProfileName = "Adventurer"

// State is the whole persisted world: quest collection, progression
// ledger and journal. It is owned by a single Service and mutated only
// through its operations.
type State struct {
	Profile              Profile        `json:"user"`
	NotificationsEnabled bool           `json:"notificationsEnabled"`
	Tasks                []Task         `json:"tasks"`
	TotalXP              int            `json:"totalXP"`
	LastLevelSeen        int            `json:"lastLevelSeen"`
	DailyStreak          int            `json:"dailyStreak"`
	LastCompletionDate   *time.Time     `json:"lastCompletionDate,omitempty"`
	Achievements         []string       `json:"achievements"`
	LastDayCheck         time.Time      `json:"lastDayCheck"`
	Journal              []JournalEntry `json:"journal"`
}

// NewState returns first-run defaults.
func NewState(now time.Time) *State {
	return &State{
		Profile:       Profile{Name: DefaultProfileName},
		Tasks:         []Task{},
		LastLevelSeen: 1,
		Achievements:  []string{},
		LastDayCheck:  StartOfDay(now),
		Journal:       []JournalEntry{},
	}
}

func (s *State) FindTask(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

func (s *State) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

type seedSpec struct {
	title      string
	category   string
	difficulty Difficulty
	taskType   TaskType
	repeat     Repeat
}

var starterQuests = []seedSpec{
	{"Morning tidy-up", "Home", DifficultyEasy, TaskTypeMain, RepeatDaily},
	{"10 min of stretching", "Health", DifficultyEasy, TaskTypeMain, RepeatDaily},
	{"Work out 3x", "Health", DifficultyHard, TaskTypeMain, RepeatWeekly},
	{"Sort the desktop files", "Organization", DifficultyMedium, TaskTypeMain, RepeatNone},
	{"Take a 15 min walk", "Habits", DifficultyEasy, TaskTypeSide, RepeatDaily},
	{"Call a friend", "Social", DifficultyMedium, TaskTypeSide, RepeatWeekly},
	{"Make a vision board", "Goals", DifficultyMedium, TaskTypeSide, RepeatNone},
}

// Seed fills an untouched state with the starter quest set. A state
// counts as untouched only while it has no quests and no earned XP.
func (s *State) Seed(now time.Time) {
	if len(s.Tasks) > 0 || s.TotalXP > 0 {
		return
	}
	day := StartOfDay(now)
	for _, q := range starterQuests {
		s.Tasks = append(s.Tasks, Task{
			ID:          uuid.NewString(),
			Type:        q.taskType,
			Origin:      OriginSystem,
			Title:       q.title,
			Category:    q.category,
			Difficulty:  q.difficulty,
			XP:          q.difficulty.XP(),
			CreatedAt:   now,
			Repeat:      q.repeat,
			LastResetOn: day,
		})
	}
}
