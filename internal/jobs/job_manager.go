package jobs

import "fmt"

// JobManager starts and stops the scheduled jobs. A nil job is disabled.
type JobManager struct {
	orderExpiryJob *OrderExpiryJob
}

func NewJobManager(orderExpiryJob *OrderExpiryJob) *JobManager {
	return &JobManager{orderExpiryJob: orderExpiryJob}
}

func (jm *JobManager) StartAll() error {
	if jm.orderExpiryJob == nil {
		return nil
	}
	if err := jm.orderExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start order expiry job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	if jm.orderExpiryJob != nil {
		jm.orderExpiryJob.Stop()
	}
}
