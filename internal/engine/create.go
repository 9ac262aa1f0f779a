package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is used when a quest is created with a blank title.
const DefaultTitle = "Untitled"

func trimTitle(title string) string {
	return strings.TrimSpace(title)
}

// DefaultCategory returns the fallback category per quest track.
func DefaultCategory(t TaskType) string {
	if t == TaskTypeSide {
		return "Lifestyle"
	}
	return "General"
}

type CreateTaskInput struct {
	Title      string
	Category   string
	Type       TaskType
	Origin     Origin
	Difficulty Difficulty
	// XP overrides the difficulty default when set; negative values
	// are floored at 0.
	XP     *int
	Repeat Repeat
	DueAt  *time.Time
}

// CreateTask validates and defaults the input, then prepends the new
// quest so the freshest one lists first.
func (s *Service) CreateTask(in CreateTaskInput) *Task {
	title := trimTitle(in.Title)
	if title == "" {
		title = DefaultTitle
	}

	taskType := in.Type
	if !taskType.IsValid() {
		taskType = TaskTypeMain
	}
	origin := in.Origin
	if !origin.IsValid() {
		origin = OriginUser
	}
	difficulty := in.Difficulty
	if !difficulty.IsValid() {
		difficulty = DifficultyEasy
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultCategory(taskType)
	}
	repeat := in.Repeat
	if !repeat.IsValid() {
		repeat = RepeatNone
	}

	xp := difficulty.XP()
	if in.XP != nil {
		xp = *in.XP
		if xp < 0 {
			xp = 0
		}
	}

	now := s.now()
	task := Task{
		ID:          uuid.NewString(),
		Type:        taskType,
		Origin:      origin,
		Title:       title,
		Category:    category,
		Difficulty:  difficulty,
		XP:          xp,
		CreatedAt:   now,
		Repeat:      repeat,
		DueAt:       in.DueAt,
		LastResetOn: StartOfDay(now),
	}

	s.state.Tasks = append([]Task{task}, s.state.Tasks...)
	s.changed()
	return &s.state.Tasks[0]
}
