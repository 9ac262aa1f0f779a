package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/R1S-dev/LifeQuest/internal/config"
	"github.com/R1S-dev/LifeQuest/internal/engine"
	"github.com/R1S-dev/LifeQuest/internal/storage"
)

type app struct {
	cfg   *config.Config
	svc   *engine.Service
	store *storage.SnapshotStore
}

// openApp wires config, storage and the engine together. The snapshot
// loads once; every successful mutation saves it back through the
// subscriber, and the recurrence tick runs before the command does.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = db.Close() }

	store := storage.NewSnapshotStore(db)
	now := time.Now()

	blob, err := store.Load(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	state := engine.NewState(now)
	firstRun := blob == nil
	if blob != nil {
		if loaded, err := engine.DecodeState(blob, now); err == nil {
			state = loaded
		}
		// A corrupt snapshot falls back to defaults rather than failing.
	}
	if firstRun {
		state.Seed(now)
	}

	weekStart, err := cfg.WeekStartDay()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	svc := engine.NewService(state, engine.WithWeekStart(weekStart))
	svc.Subscribe(func(st *engine.State) {
		if encoded, err := engine.EncodeState(st); err == nil {
			_ = store.Save(ctx, encoded)
		}
	})

	if firstRun {
		if encoded, err := engine.EncodeState(state); err == nil {
			_ = store.Save(ctx, encoded)
		}
	}
	svc.DailyTick(now)

	return &app{cfg: cfg, svc: svc, store: store}, cleanup, nil
}

// resolveTaskID matches a quest by id prefix. Ambiguity is an error;
// no match returns empty (callers decide whether that is a failure).
func resolveTaskID(svc *engine.Service, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("quest id is required")
	}
	var match string
	for _, t := range svc.State().Tasks {
		if strings.HasPrefix(t.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("id %q matches more than one quest", prefix)
			}
			match = t.ID
		}
	}
	return match, nil
}

func resolveJournalID(svc *engine.Service, prefix string) string {
	for _, e := range svc.State().Journal {
		if strings.HasPrefix(e.ID, prefix) {
			return e.ID
		}
	}
	return ""
}
