package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// SnapshotApp identifies exports produced by this tracker.
	SnapshotApp = "lifequest"

	// SnapshotVersion is the export schema version.
	SnapshotVersion = 1
)

// ErrNoData is returned when an import payload parses but lacks a
// recognizable data section.
var ErrNoData = errors.New("import payload has no data section")

type Meta struct {
	App        string    `json:"app"`
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`
}

// Envelope is the versioned export shape: metadata plus the full state.
type Envelope struct {
	Meta Meta   `json:"meta"`
	Data *State `json:"data"`
}

// Export serializes the whole state into the versioned envelope.
func (s *Service) Export() ([]byte, error) {
	env := Envelope{
		Meta: Meta{
			App:        SnapshotApp,
			Version:    SnapshotVersion,
			ExportedAt: s.now(),
		},
		Data: s.state,
	}
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export marshal: %w", err)
	}
	return out, nil
}

// Import replaces the state wholesale with an externally supplied
// envelope. Missing fields default instead of failing; an unparseable
// payload or a missing data section is an error and leaves the current
// state untouched.
func (s *Service) Import(payload []byte) error {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("import parse: %w", err)
	}
	if env.Data == nil {
		return ErrNoData
	}

	next := env.Data
	normalizeState(next, s.now())
	*s.state = *next
	s.changed()
	return nil
}

// EncodeState serializes the state for the persistence boundary. The
// blob uses the same shape as the export data section.
func EncodeState(st *State) ([]byte, error) {
	out, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("state marshal: %w", err)
	}
	return out, nil
}

// DecodeState parses a persisted blob, defaulting whatever is missing.
// Callers fall back to NewState when the blob is absent or corrupt.
func DecodeState(blob []byte, now time.Time) (*State, error) {
	var st State
	if err := json.Unmarshal(blob, &st); err != nil {
		return nil, fmt.Errorf("state parse: %w", err)
	}
	normalizeState(&st, now)
	return &st, nil
}

// normalizeState repairs a loaded or imported state so the engine's
// invariants hold regardless of where the payload came from.
func normalizeState(st *State, now time.Time) {
	if st.Profile.Name == "" {
		st.Profile.Name = DefaultProfileName
	}
	if st.Tasks == nil {
		st.Tasks = []Task{}
	}
	if st.Achievements == nil {
		st.Achievements = []string{}
	}
	if st.Journal == nil {
		st.Journal = []JournalEntry{}
	}
	if st.TotalXP < 0 {
		st.TotalXP = 0
	}
	if st.LastLevelSeen < 1 {
		st.LastLevelSeen = 1
	}
	if st.DailyStreak < 0 {
		st.DailyStreak = 0
	}
	if st.LastDayCheck.IsZero() {
		st.LastDayCheck = StartOfDay(now)
	}

	for i := range st.Tasks {
		t := &st.Tasks[i]
		if !t.Type.IsValid() {
			t.Type = TaskTypeMain
		}
		if !t.Origin.IsValid() {
			t.Origin = OriginUser
		}
		if !t.Difficulty.IsValid() {
			t.Difficulty = DifficultyEasy
		}
		if !t.Repeat.IsValid() {
			t.Repeat = RepeatNone
		}
		if t.Title == "" {
			t.Title = DefaultTitle
		}
		if t.Category == "" {
			t.Category = DefaultCategory(t.Type)
		}
		if t.XP < 0 {
			t.XP = 0
		}
		// CompletedAt is defined iff the quest is completed.
		if !t.IsCompleted {
			t.CompletedAt = nil
		} else if t.CompletedAt == nil {
			ts := now
			t.CompletedAt = &ts
		}
	}

	for i := range st.Journal {
		e := &st.Journal[i]
		if e.Intensity < MinIntensity || e.Intensity > MaxIntensity {
			e.Intensity = DefaultIntensity
		}
	}
}
