// Package jobs provides scheduled background tasks for the fuel delivery system.
//
// Jobs are scheduled with github.com/robfig/cron/v3 using six-field expressions
// (seconds first).
//
// # Available Jobs
//
//  1. PaymentExpiryJob - fails payments left Pending longer than the configured TTL
//  2. LicenseExpiryJob - moves Available operators with an expired license to OffDuty
//     and notifies every administrator
//
// # Usage
//
//	manager := jobs.NewJobManager([]jobs.Schedule{
//		{Spec: "0 */5 * * * *", Job: jobs.NewPaymentExpiryJob(expirePayments, 30*time.Minute, 100, logger)},
//		{Spec: "0 0 * * * *", Job: jobs.NewLicenseExpiryJob(expireLicenses, logger)},
//	}, time.Minute, logger)
//
//	if err := manager.StartAll(ctx); err != nil {
//		return err
//	}
//	defer manager.StopAll(shutdownCtx)
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Panics are recovered by the
// cron chain, and a run still in progress causes the next tick to be skipped.
package jobs
