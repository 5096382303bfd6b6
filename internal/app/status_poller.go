// internal/app/status_poller.go
package app

import (
	"context"
	"errors"
	"maps"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=status_poller.go -destination=../mocks/app/status_poller_mock.go -package=mocks

const errorMessagePrefix = "Сбой в работе программы: "

// StatusFetcher returns the raw API response for statuses changed since the given epoch seconds.
type StatusFetcher interface {
	FetchStatus(ctx context.Context, since int64) (any, error)
}

// StatusNotifier delivers a text message to the user.
type StatusNotifier interface {
	Notify(message string) error
}

// PollState is everything the poller remembers between iterations.
type PollState struct {
	LastTimestamp    int64
	CurrentReport    map[string]homework.Status
	PreviousReport   map[string]homework.Status
	LastErrorMessage string
}

// StatusPoller runs the check-and-notify iteration. It is not safe for concurrent
// use; the scheduler guarantees Poll calls never overlap.
type StatusPoller struct {
	fetcher  StatusFetcher
	notifier StatusNotifier
	logger   *logrus.Entry
	now      func() time.Time
	state    PollState
}

type Option func(*StatusPoller)

// WithClock replaces time.Now, which is used for the first query window.
func WithClock(now func() time.Time) Option {
	return func(p *StatusPoller) {
		p.now = now
	}
}

func NewStatusPoller(fetcher StatusFetcher, notifier StatusNotifier, logger *logrus.Entry, opts ...Option) *StatusPoller {
	p := &StatusPoller{
		fetcher:  fetcher,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.state = PollState{
		LastTimestamp:  p.now().Unix(),
		CurrentReport:  map[string]homework.Status{},
		PreviousReport: map[string]homework.Status{},
	}
	return p
}

// State returns a copy of the current poll state.
func (p *StatusPoller) State() PollState {
	return PollState{
		LastTimestamp:    p.state.LastTimestamp,
		CurrentReport:    maps.Clone(p.state.CurrentReport),
		PreviousReport:   maps.Clone(p.state.PreviousReport),
		LastErrorMessage: p.state.LastErrorMessage,
	}
}

// Poll performs one iteration. It never returns an error: every failure is logged
// and, unless the same text was already sent, reported to the chat.
func (p *StatusPoller) Poll(ctx context.Context) {
	log := p.logger.WithField("poll_id", uuid.NewString())
	log.WithField("from_date", p.state.LastTimestamp).Info("Checking homework statuses")

	hw, err := p.check(ctx, log)
	if err != nil {
		p.reportError(ctx, log, err)
		return
	}
	if hw == nil {
		log.Debug("No new homework statuses")
		return
	}
	p.notifyIfChanged(log, *hw)
}

// check fetches and validates the latest status. A nil homework means nothing new.
func (p *StatusPoller) check(ctx context.Context, log *logrus.Entry) (*homework.Homework, error) {
	raw, err := p.fetcher.FetchStatus(ctx, p.state.LastTimestamp)
	if err != nil {
		return nil, err
	}

	// Without current_date the old window is kept so no update can be missed.
	if ts, ok := CurrentDate(raw); ok {
		p.state.LastTimestamp = ts
	} else {
		log.Debug("Response has no current_date, keeping previous from_date")
	}

	works, err := ExtractHomeworks(raw)
	if err != nil {
		return nil, err
	}
	if len(works) == 0 {
		return nil, nil
	}

	// The API lists the most recent homework first; only that one is reported.
	hw, err := ParseHomework(works[0])
	if err != nil {
		return nil, err
	}
	p.state.CurrentReport[hw.Name] = hw.Status
	return &hw, nil
}

func (p *StatusPoller) notifyIfChanged(log *logrus.Entry, hw homework.Homework) {
	log = log.WithFields(logrus.Fields{
		"homework": hw.Name,
		"status":   hw.Status,
	})

	if maps.Equal(p.state.CurrentReport, p.state.PreviousReport) {
		log.Debug("Status already reported, notification suppressed")
		return
	}

	if err := p.notifier.Notify(hw.Message()); err != nil {
		log.WithError(err).Error("Failed to send status notification, will retry on next poll")
		return
	}
	p.state.PreviousReport = maps.Clone(p.state.CurrentReport)
	log.Info("Status change reported")
}

func (p *StatusPoller) reportError(ctx context.Context, log *logrus.Entry, err error) {
	if ctx.Err() != nil {
		log.WithError(err).Info("Poll interrupted by shutdown")
		return
	}

	var (
		transportErr *homework.TransportError
		apiErr       *homework.RemoteAPIError
		schemaErr    *homework.SchemaError
		statusErr    *homework.UnknownStatusError
	)
	switch {
	case errors.As(err, &transportErr):
		log.WithError(err).Warn("Practicum API is unreachable")
	case errors.As(err, &apiErr):
		log.WithError(err).WithField("status_code", apiErr.StatusCode).Error("Practicum API returned an error status")
	case errors.As(err, &schemaErr):
		log.WithError(err).Error("Practicum API response has unexpected shape")
	case errors.As(err, &statusErr):
		log.WithError(err).WithField("status", statusErr.Status).Error("Homework has an unknown status")
	default:
		log.WithError(err).Error("Unexpected error while polling")
	}

	message := errorMessagePrefix + err.Error()
	if message == p.state.LastErrorMessage {
		log.Debug("Error already reported, notification suppressed")
		return
	}
	if err := p.notifier.Notify(message); err != nil {
		log.WithError(err).Error("Failed to send error notification")
		return
	}
	p.state.LastErrorMessage = message
}
