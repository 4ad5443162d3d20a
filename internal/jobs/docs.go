// Package jobs provides scheduled background tasks of the escrow service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds enabled) and
// managed through JobManager:
//
//   - OutboxRelayJob publishes pending outbox messages to the broker and
//     marks them processed.
//   - CustodyAuditJob reads the ledger totals, exports them as gauges and
//     logs an error when more value was released than locked.
//
// Usage:
//
//	manager := jobs.NewJobManager(relayJob, auditJob)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// Schedules accept six-field cron expressions or descriptors such as
// "@every 5s". A failing run is logged and retried on the next tick.
package jobs
