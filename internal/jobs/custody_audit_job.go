package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const DefaultAuditSchedule = "@every 30s"

type (
	CustodyHandler interface {
		Handle(ctx context.Context, query queries.GetCustodySummaryQuery) (queries.GetCustodySummaryQueryResponse, error)
	}

	CustodyRecorder interface {
		SetCustody(locked, released, escrowed, deposited float64)
	}
)

// CustodyAuditJob checks that released value never exceeds locked value and
// exports the totals.
type CustodyAuditJob struct {
	handler  CustodyHandler
	recorder CustodyRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCustodyAuditJob creates the audit job. recorder may be nil.
func NewCustodyAuditJob(handler CustodyHandler, recorder CustodyRecorder, schedule string, logger *slog.Logger) *CustodyAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &CustodyAuditJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "custody_audit_job"),
	}
}

// RunOnce reads the ledger totals. A violated custody invariant is returned
// as the handler's error.
func (j *CustodyAuditJob) RunOnce(ctx context.Context) (queries.GetCustodySummaryQueryResponse, error) {
	summary, err := j.handler.Handle(ctx, queries.NewGetCustodySummaryQuery())
	if err != nil {
		return summary, err
	}

	if j.recorder != nil {
		j.recorder.SetCustody(
			summary.Locked.Decimal().InexactFloat64(),
			summary.Released.Decimal().InexactFloat64(),
			summary.Escrowed.Decimal().InexactFloat64(),
			summary.Deposited.Decimal().InexactFloat64(),
		)
	}
	j.logger.DebugContext(ctx, "custody audited",
		"locked", summary.Locked.String(),
		"released", summary.Released.String(),
		"escrowed", summary.Escrowed.String(),
	)
	return summary, nil
}

func (j *CustodyAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Custody audit failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Custody audit job started", "schedule", j.schedule)
	return nil
}

func (j *CustodyAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Custody audit job stopped")
}
