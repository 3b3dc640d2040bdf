package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fulfillmentJob *FulfillmentJob
	restockJob     *RestockJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	getUnfulfilledOrdersHandler queries.GetUnfulfilledOrdersQueryHandler,
	fulfillOrderHandler commands.FulfillOrderCommandHandler,
	createRestockOrderHandler commands.CreateRestockOrderCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		fulfillmentJob: NewFulfillmentJob(getUnfulfilledOrdersHandler, fulfillOrderHandler, logger),
		restockJob:     NewRestockJob(createRestockOrderHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fulfillmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start fulfillment job: %w", err)
	}

	if err := jm.restockJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.fulfillmentJob.Stop()
		return fmt.Errorf("failed to start restock job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fulfillmentJob.Stop()
	jm.restockJob.Stop()
}
