package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application. A nil job is
// skipped.
type JobManager struct {
	outboxRelayJob  *OutboxRelayJob
	custodyAuditJob *CustodyAuditJob
}

func NewJobManager(outboxRelayJob *OutboxRelayJob, custodyAuditJob *CustodyAuditJob) *JobManager {
	return &JobManager{
		outboxRelayJob:  outboxRelayJob,
		custodyAuditJob: custodyAuditJob,
	}
}

// StartAll starts all scheduled jobs. If one fails to start, the jobs
// already started are stopped.
func (jm *JobManager) StartAll() error {
	if jm.outboxRelayJob != nil {
		if err := jm.outboxRelayJob.Start(); err != nil {
			return fmt.Errorf("failed to start outbox relay job: %w", err)
		}
	}

	if jm.custodyAuditJob != nil {
		if err := jm.custodyAuditJob.Start(); err != nil {
			if jm.outboxRelayJob != nil {
				jm.outboxRelayJob.Stop()
			}
			return fmt.Errorf("failed to start custody audit job: %w", err)
		}
	}

	return nil
}

// StopAll stops all jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	if jm.custodyAuditJob != nil {
		jm.custodyAuditJob.Stop()
	}
	if jm.outboxRelayJob != nil {
		jm.outboxRelayJob.Stop()
	}
}
