package engine

import "time"

// Service owns the State and is the only mutation path. All operations
// run synchronously to completion, so no locking is needed as long as a
// single goroutine drives them.
type Service struct {
	state     *State
	weekStart time.Weekday
	nowFn     func() time.Time
	subs      []func(*State)
}

type Option func(*Service)

// WithClock injects the time source. Tests use this to walk across day
// boundaries deterministically.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.nowFn = fn }
}

// WithWeekStart sets the first day of the week used for weekly
// recurrence buckets. Defaults to Monday.
func WithWeekStart(d time.Weekday) Option {
	return func(s *Service) { s.weekStart = d }
}

func NewService(state *State, opts ...Option) *Service {
	s := &Service{
		state:     state,
		weekStart: time.Monday,
		nowFn:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) State() *State { return s.state }

func (s *Service) WeekStart() time.Weekday { return s.weekStart }

// Subscribe registers a callback invoked after every successful
// mutation. The CLI attaches the autosave here so persistence stays out
// of the rules themselves.
func (s *Service) Subscribe(fn func(*State)) {
	s.subs = append(s.subs, fn)
}

func (s *Service) changed() {
	for _, fn := range s.subs {
		fn(s.state)
	}
}

func (s *Service) now() time.Time {
	return s.nowFn()
}

// SetProfileName renames the adventurer. Blank input keeps the current
// name.
func (s *Service) SetProfileName(name string) {
	trimmed := trimTitle(name)
	if trimmed == "" {
		return
	}
	s.state.Profile.Name = trimmed
	s.changed()
}

// SetNotificationsEnabled flips the persisted notification opt-in.
func (s *Service) SetNotificationsEnabled(v bool) {
	s.state.NotificationsEnabled = v
	s.changed()
}

// MarkLevelSeen records that the user has been shown the celebration
// for the given level, so it fires once per level.
func (s *Service) MarkLevelSeen(level int) {
	if level <= s.state.LastLevelSeen {
		return
	}
	s.state.LastLevelSeen = level
	s.changed()
}

// ResetAll wipes the whole state back to first-run defaults.
func (s *Service) ResetAll() {
	*s.state = *NewState(s.now())
	s.changed()
}
