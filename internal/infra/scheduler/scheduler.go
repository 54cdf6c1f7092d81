package scheduler

import (
	"context"
	"log/slog"
	"time"

	"campus-reservation/internal/pkg/config"
	"campus-reservation/internal/pkg/errs"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler runs the status sweep and the outbox relay on fixed intervals.
// Each run gets its own timeout so a stuck database cannot pile up jobs.
type Scheduler struct {
	sched gocron.Scheduler
}

type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

func New(jobs ...Job) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, errs.Wrap(err, "failed to create scheduler")
	}
	for _, job := range jobs {
		if job.Interval <= 0 {
			continue
		}
		if _, err := sched.NewJob(
			gocron.DurationJob(job.Interval),
			gocron.NewTask(runJob, job),
			gocron.WithName(job.Name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		); err != nil {
			_ = sched.Shutdown()
			return nil, errs.Wrapf(err, "failed to register job %s", job.Name)
		}
	}
	return &Scheduler{sched: sched}, nil
}

func NewFromConfig(cfg config.SchedulerConfig, sweep, relay func(ctx context.Context) error) (*Scheduler, error) {
	return New(
		Job{Name: "status-sweep", Interval: cfg.SweepInterval, Run: sweep},
		Job{Name: "event-relay", Interval: cfg.RelayInterval, Run: relay},
	)
}

func runJob(job Job) {
	timeout := job.Interval
	if timeout < 5*time.Second {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := job.Run(ctx); err != nil {
		slog.Error("scheduled job failed", "job", job.Name, "error", err.Error())
	}
}

func (s *Scheduler) Start() {
	slog.Info("scheduler started", "jobs", len(s.sched.Jobs()))
	s.sched.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}
