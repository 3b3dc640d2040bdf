// Package jobs provides scheduled background tasks for the warehouse system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the warehouse service.
//
// # Available Jobs
//
// 1. FulfillmentJob - Runs every ten seconds to fill pending customer orders the current stock can cover
// 2. RestockJob - Runs hourly to order replenishment stock for every out-of-stock catalog part
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getUnfulfilledOrdersHandler, fulfillOrderHandler, createRestockOrderHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Fulfillment job ignores short-stock errors, those orders wait for the next delivery
// - Restock job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
