package engine

import "strings"

type TaskType string

const (
	TaskTypeMain TaskType = "main"
	TaskTypeSide TaskType = "side"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeMain, TaskTypeSide:
		return true
	default:
		return false
	}
}

// ParseTaskType parses user input to a TaskType.
// Empty or unrecognized input falls back to the main track.
func ParseTaskType(input string) TaskType {
	s := strings.TrimSpace(strings.ToLower(input))
	t := TaskType(s)
	if t.IsValid() {
		return t
	}
	return TaskTypeMain
}

// Origin marks who created a quest. Informational only; the
// progression rules treat system and user quests identically.
type Origin string

const (
	OriginSystem Origin = "system"
	OriginUser   Origin = "user"
)

func (o Origin) IsValid() bool {
	switch o {
	case OriginSystem, OriginUser:
		return true
	default:
		return false
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// XP returns the default experience value for the difficulty.
func (d Difficulty) XP() int {
	switch d {
	case DifficultyMedium:
		return 25
	case DifficultyHard:
		return 50
	default:
		return 10
	}
}

func ParseDifficulty(input string) Difficulty {
	s := strings.TrimSpace(strings.ToLower(input))
	d := Difficulty(s)
	if d.IsValid() {
		return d
	}
	return DifficultyEasy
}

type Repeat string

const (
	RepeatNone   Repeat = "none"
	RepeatDaily  Repeat = "daily"
	RepeatWeekly Repeat = "weekly"
)

func (r Repeat) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly:
		return true
	default:
		return false
	}
}

func ParseRepeat(input string) Repeat {
	s := strings.TrimSpace(strings.ToLower(input))
	r := Repeat(s)
	if r.IsValid() {
		return r
	}
	return RepeatNone
}

type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodCalm     Mood = "calm"
	MoodExcited  Mood = "excited"
	MoodStressed Mood = "stressed"
	MoodSad      Mood = "sad"
)

// Moods lists every mood in display order.
var Moods = []Mood{MoodHappy, MoodCalm, MoodExcited, MoodStressed, MoodSad}

func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodCalm, MoodExcited, MoodStressed, MoodSad:
		return true
	default:
		return false
	}
}

func ParseMood(input string) (Mood, bool) {
	s := strings.TrimSpace(strings.ToLower(input))
	m := Mood(s)
	if m.IsValid() {
		return m, true
	}
	return "", false
}
