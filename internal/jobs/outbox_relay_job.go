package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRelaySchedule runs the relay every second.
const DefaultRelaySchedule = "@every 1s"

type (
	RelayHandler interface {
		Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayOutboxResult, error)
	}

	RelayRecorder interface {
		ObserveRelay(published, failed int)
	}
)

// OutboxRelayJob drains the outbox on a schedule.
type OutboxRelayJob struct {
	handler   RelayHandler
	recorder  RelayRecorder
	batchSize int
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job. recorder may be nil.
func NewOutboxRelayJob(
	handler RelayHandler,
	recorder RelayRecorder,
	batchSize int,
	schedule string,
	logger *slog.Logger,
) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}
	return &OutboxRelayJob{
		handler:   handler,
		recorder:  recorder,
		batchSize: batchSize,
		schedule:  schedule,
		timeout:   30 * time.Second,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// RunOnce relays one batch.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) (commands.RelayOutboxResult, error) {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		return commands.RelayOutboxResult{}, err
	}

	res, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return res, err
	}

	if j.recorder != nil {
		j.recorder.ObserveRelay(res.Published, res.Failed)
	}
	if res.Failed > 0 {
		j.logger.WarnContext(ctx, "some outbox messages were not published",
			"published", res.Published, "failed", res.Failed)
	}
	return res, nil
}

func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", "schedule", j.schedule, "batchSize", j.batchSize)
	return nil
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
