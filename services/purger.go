package services

import (
	"context"
	"sort"
	"time"

	"instituteapi/utils"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Purgeable hard-deletes documents soft-deleted before a cutoff
type Purgeable interface {
	Purge(ctx context.Context, before time.Time) (int64, error)
}

// Purger reaps soft-deleted documents on a cron schedule
type Purger struct {
	Targets   map[string]Purgeable
	Retention time.Duration
	Timeout   time.Duration
	Now       func() time.Time

	cron *cron.Cron
}

func NewPurger(targets map[string]Purgeable, retention time.Duration) *Purger {
	return &Purger{
		Targets:   targets,
		Retention: retention,
		Timeout:   4 * time.Minute,
		Now:       time.Now,
	}
}

// RunOnce purges every target and returns the removed count per collection.
// A failing collection is logged and skipped.
func (p *Purger) RunOnce(ctx context.Context) map[string]int64 {
	cutoff := p.Now().Add(-p.Retention)
	removed := make(map[string]int64, len(p.Targets))

	names := make([]string, 0, len(p.Targets))
	for name := range p.Targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n, err := p.Targets[name].Purge(ctx, cutoff)
		if err != nil {
			utils.Log().Error().Err(err).Str("collection", name).Msg("purge failed")
			continue
		}
		removed[name] = n
		if n > 0 {
			utils.TrackContentOperation(name, "purge")
			utils.Log().Info().
				Str("collection", name).
				Int64("removed", n).
				Time("cutoff", cutoff).
				Msg("hard-deleted soft-deleted documents")
		}
	}
	return removed
}

// Start schedules RunOnce using a standard five-field cron expression
func (p *Purger) Start(schedule string) error {
	logger := cronLogger{log: utils.Log()}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.Timeout)
		defer cancel()
		p.RunOnce(ctx)
	})
	if err != nil {
		return err
	}
	p.cron = c
	c.Start()
	utils.Log().Info().
		Str("schedule", schedule).
		Dur("retention", p.Retention).
		Msg("purger started")
	return nil
}

// Stop waits for a running purge to finish
func (p *Purger) Stop() {
	if p.cron == nil {
		return
	}
	<-p.cron.Stop().Done()
}

// cronLogger routes the scheduler's own messages through zerolog.
// Routine scheduling noise stays at debug; skipped runs are warnings.
type cronLogger struct {
	log *zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	ev := l.log.Debug()
	if msg == "skip" {
		ev = l.log.Warn()
		msg = "purge still running, skipping scheduled run"
	}
	ev.Str("component", "cron").Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Str("component", "cron").Fields(keysAndValues).Msg(msg)
}
