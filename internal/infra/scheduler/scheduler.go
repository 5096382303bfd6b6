package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is a single unit of periodic work, e.g. one status poll.
type Job interface {
	Poll(ctx context.Context)
}

// PollScheduler runs a Job right away and then at a fixed interval.
// Runs never overlap: a tick that fires while a poll is in progress is skipped.
type PollScheduler struct {
	cronEngine *cron.Cron
	chain      cron.Chain
	job        Job
	interval   time.Duration
	logger     *logrus.Entry
	entryID    cron.EntryID
}

func NewPollScheduler(job Job, interval time.Duration, logger *logrus.Entry) *PollScheduler {
	cronLogger := cron.PrintfLogger(logger)
	return &PollScheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.Local), // Use server's local time for cron
			cron.WithLogger(cronLogger),
		),
		// One wrapped job serves both the first run and the ticks, so they share the skip guard.
		chain:    cron.NewChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		job:      job,
		interval: interval,
		logger:   logger,
	}
}

// Start performs the first poll synchronously and then hands the job over to cron.
// ctx is passed to every poll; cancel it before Stop to abort an in-flight request.
func (s *PollScheduler) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval.String()).Info("Starting poll scheduler...")

	poll := s.chain.Then(cron.FuncJob(func() {
		s.job.Poll(ctx)
	}))
	poll.Run()

	s.entryID = s.cronEngine.Schedule(cron.Every(s.interval), cron.FuncJob(func() {
		s.logger.Debug("Cron job triggered for status poll.")
		poll.Run()
	}))

	s.cronEngine.Start()
	s.logger.Info("Poll scheduler started.")
}

// NextRun reports when the next poll is due. It is zero before Start.
func (s *PollScheduler) NextRun() time.Time {
	return s.cronEngine.Entry(s.entryID).Next
}

func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Poll scheduler gracefully stopped.")
}
