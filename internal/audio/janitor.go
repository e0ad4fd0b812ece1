package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"somni-voice-assistant/pkg/log"
)

const defaultCleanupSchedule = "*/10 * * * *"

// Janitor periodically deletes served replies older than the retention and
// transient uploads orphaned by a crash.
type Janitor struct {
	store     *Store
	l         log.Logger
	retention time.Duration
	cron      *cron.Cron
}

// NewJanitor schedules Sweep on the configured cron expression (standard 5-field cron).
func NewJanitor(store *Store, l log.Logger) (*Janitor, error) {
	schedule := store.cfg.CleanupCron
	if schedule == "" {
		schedule = defaultCleanupSchedule
	}
	retention := store.cfg.Retention
	if retention <= 0 {
		retention = time.Hour
	}

	j := &Janitor{
		store:     store,
		l:         l,
		retention: retention,
		cron:      cron.New(),
	}

	if _, err := j.cron.AddFunc(schedule, func() { j.Sweep(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid audio cleanup schedule %q: %w", schedule, err)
	}
	return j, nil
}

// Start runs the schedule in the background.
func (j *Janitor) Start() { j.cron.Start() }

// Stop halts the schedule and waits for a running sweep, or for ctx.
func (j *Janitor) Stop(ctx context.Context) {
	done := j.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// Sweep removes expired files once and reports how many were deleted.
func (j *Janitor) Sweep(ctx context.Context) int {
	cutoff := j.store.now().Add(-j.retention)

	removed := j.sweepDir(ctx, j.store.cfg.OutputDir, responsePrefix, cutoff)
	removed += j.sweepDir(ctx, j.store.cfg.TempDir, tempPrefix, cutoff)

	if removed > 0 {
		j.l.Infof(ctx, "audio janitor removed %d file(s)", removed)
	}
	return removed
}

func (j *Janitor) sweepDir(ctx context.Context, dir, prefix string, cutoff time.Time) int {
	if dir == "" {
		return 0
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		j.l.Warnf(ctx, "audio janitor read %s: %v", dir, err)
		return 0
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			j.l.Warnf(ctx, "audio janitor remove %s: %v", e.Name(), err)
			continue
		}
		removed++
	}
	return removed
}
