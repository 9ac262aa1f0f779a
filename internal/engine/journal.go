package engine

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrMoodRequired is returned when a journal entry is added without a
// valid mood.
var ErrMoodRequired = errors.New("a mood is required")

const (
	MinIntensity     = 1
	MaxIntensity     = 5
	DefaultIntensity = 3
)

type AddJournalInput struct {
	Mood      Mood
	Intensity int
	Note      string
}

// AddJournalEntry records how the day felt. Intensity outside 1-5
// falls back to the default; the note may be empty.
func (s *Service) AddJournalEntry(in AddJournalInput) (*JournalEntry, error) {
	if !in.Mood.IsValid() {
		return nil, ErrMoodRequired
	}
	intensity := in.Intensity
	if intensity < MinIntensity || intensity > MaxIntensity {
		intensity = DefaultIntensity
	}

	entry := JournalEntry{
		ID:        uuid.NewString(),
		Mood:      in.Mood,
		Intensity: intensity,
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: s.now(),
	}
	s.state.Journal = append([]JournalEntry{entry}, s.state.Journal...)
	s.changed()
	return &s.state.Journal[0], nil
}

func (s *Service) RemoveJournalEntry(id string) bool {
	for i := range s.state.Journal {
		if s.state.Journal[i].ID == id {
			s.state.Journal = append(s.state.Journal[:i], s.state.Journal[i+1:]...)
			s.changed()
			return true
		}
	}
	return false
}

type JournalStats struct {
	Total  int
	ByMood map[Mood]int
	// DayStreak counts consecutive calendar days with at least one
	// entry, ending today (or yesterday if today has none yet).
	DayStreak int
}

// JournalStatsAt derives mood counts and the journal-day streak by
// scanning the entries; no derived state is stored.
func (s *Service) JournalStatsAt(now time.Time) JournalStats {
	stats := JournalStats{
		Total:  len(s.state.Journal),
		ByMood: map[Mood]int{},
	}

	days := map[time.Time]bool{}
	for i := range s.state.Journal {
		e := &s.state.Journal[i]
		stats.ByMood[e.Mood]++
		days[StartOfDay(e.CreatedAt)] = true
	}

	anchor := StartOfDay(now)
	if !days[anchor] {
		anchor = anchor.AddDate(0, 0, -1)
	}
	for days[anchor] {
		stats.DayStreak++
		anchor = anchor.AddDate(0, 0, -1)
	}
	return stats
}
