package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one unit of scheduled work. Run reports how many records it changed.
type Job interface {
	Name() string
	Run(ctx context.Context) (int, error)
}

// Schedule binds a job to a six-field cron expression (seconds first).
type Schedule struct {
	Spec string
	Job  Job
}

// JobManager runs all scheduled jobs on one cron instance. Runs of the same job never
// overlap; a run still going when its next tick fires is skipped.
type JobManager struct {
	cron       *cron.Cron
	schedules  []Schedule
	runTimeout time.Duration
	logger     *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewJobManager creates a manager. runTimeout bounds each run; zero means no bound.
func NewJobManager(schedules []Schedule, runTimeout time.Duration, logger *zap.Logger) *JobManager {
	logger = logger.With(zap.String("component", "job_manager"))
	cronLogger := cronLogger{logger: logger.Sugar()}

	return &JobManager{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		schedules:  schedules,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

// StartAll registers every schedule and starts the scheduler. Nothing runs when a
// schedule is rejected.
func (jm *JobManager) StartAll(ctx context.Context) error {
	jm.ctx, jm.cancel = context.WithCancel(ctx)

	for _, s := range jm.schedules {
		if _, err := jm.cron.AddFunc(s.Spec, jm.runner(s.Job)); err != nil {
			jm.cancel()
			return fmt.Errorf("schedule job %s with %q: %w", s.Job.Name(), s.Spec, err)
		}
	}

	jm.cron.Start()
	jm.logger.Info("jobs started", zap.Int("count", len(jm.schedules)))
	return nil
}

// StopAll stops scheduling, cancels running jobs and waits for them to return or for
// ctx to end.
func (jm *JobManager) StopAll(ctx context.Context) {
	if jm.cancel != nil {
		jm.cancel()
	}

	select {
	case <-jm.cron.Stop().Done():
		jm.logger.Info("jobs stopped")
	case <-ctx.Done():
		jm.logger.Warn("jobs did not stop in time", zap.Error(ctx.Err()))
	}
}

func (jm *JobManager) runner(job Job) func() {
	return func() {
		jm.RunOnce(jm.ctx, job)
	}
}

// RunOnce executes job immediately, logging its outcome.
func (jm *JobManager) RunOnce(ctx context.Context, job Job) {
	if jm.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, jm.runTimeout)
		defer cancel()
	}

	started := time.Now()
	changed, err := job.Run(ctx)
	if err != nil {
		jm.logger.Error("job failed",
			zap.String("job", job.Name()),
			zap.Int("changed", changed),
			zap.Error(err),
		)
		return
	}
	jm.logger.Debug("job finished",
		zap.String("job", job.Name()),
		zap.Int("changed", changed),
		zap.Duration("took", time.Since(started)),
	)
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
