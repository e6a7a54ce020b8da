// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(expiryJob)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Order expiry
//
// OrderExpiryJob cancels orders that were never paid. It goes through the
// regular cancel use case, so an order paid while the scan runs fails the
// status precondition and is left alone. Those outcomes are expected and
// logged at debug level only.
package jobs
