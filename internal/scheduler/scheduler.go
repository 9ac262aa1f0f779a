// Package scheduler provides cancellable recurring jobs with an
// explicit start/stop lifecycle.
package scheduler

import (
	"sync"
	"time"
)

// Runner invokes fn immediately on Start and then once per interval
// until Stop. Start and Stop are idempotent; Stop is safe to call even
// if the runner was never started.
type Runner struct {
	interval time.Duration
	fn       func(now time.Time)

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
}

func New(interval time.Duration, fn func(now time.Time)) *Runner {
	return &Runner{interval: interval, fn: fn}
}

func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.stop = make(chan struct{})
	r.done = make(chan struct{})

	go func(stop, done chan struct{}) {
		defer close(done)
		r.fn(time.Now())

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				r.fn(now)
			case <-stop:
				return
			}
		}
	}(r.stop, r.done)
}

// Stop cancels the runner and waits for the in-flight invocation to
// finish, so callers can tear down shared state afterwards.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stop)
	done := r.done
	r.mu.Unlock()

	<-done
}
