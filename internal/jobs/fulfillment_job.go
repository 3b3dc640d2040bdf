package jobs

import (
	"context"
	"errors"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// FulfillmentJob manages the scheduled fulfillment of pending customer orders.
// Runs every ten seconds, walks the unfulfilled orders and fills every one the
// current stock can cover.
type FulfillmentJob struct {
	queryHandler   queries.GetUnfulfilledOrdersQueryHandler
	commandHandler commands.FulfillOrderCommandHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewFulfillmentJob creates a new job for fulfilling pending orders.
func NewFulfillmentJob(
	queryHandler queries.GetUnfulfilledOrdersQueryHandler,
	commandHandler commands.FulfillOrderCommandHandler,
	logger *slog.Logger,
) *FulfillmentJob {
	return &FulfillmentJob{
		queryHandler:   queryHandler,
		commandHandler: commandHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "fulfillment_job"),
	}
}

// Start begins the fulfillment job to run every ten seconds.
func (j *FulfillmentJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		j.run(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment job started (running every ten seconds)")
	return nil
}

// Stop stops the fulfillment job.
func (j *FulfillmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fulfillment job stopped")
}

func (j *FulfillmentJob) run(ctx context.Context) {
	pending, err := j.queryHandler.Handle(ctx, queries.NewGetUnfulfilledOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fulfillment job failed to list pending orders", "error", err)
		return
	}

	for _, pendingOrder := range pending {
		cmd, cmdErr := commands.NewFulfillOrderCommand(pendingOrder.OrderNumber)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Fulfillment job built invalid command",
				"orderNumber", pendingOrder.OrderNumber, "error", cmdErr)
			continue
		}

		pickList, handleErr := j.commandHandler.Handle(ctx, cmd)
		if handleErr != nil {
			// Short stock is an expected business scenario, the order simply
			// waits for the next delivery.
			if !errors.Is(handleErr, commands.ErrOrderCannotBeFilled) {
				j.logger.ErrorContext(ctx, "Fulfillment job failed",
					"orderNumber", pendingOrder.OrderNumber, "error", handleErr)
			}
			continue
		}

		j.logger.InfoContext(ctx, "Order fulfilled",
			"orderNumber", pendingOrder.OrderNumber, "pickListItems", len(pickList))
	}
}
