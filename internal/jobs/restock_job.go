package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RestockJob manages the scheduled restocking of the catalog.
// Runs hourly to order a fixed replenishment quantity of every part that is
// out of stock.
type RestockJob struct {
	handler commands.CreateRestockOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRestockJob creates a new job for restock planning.
func NewRestockJob(handler commands.CreateRestockOrderCommandHandler, logger *slog.Logger) *RestockJob {
	return &RestockJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "restock_job"),
	}
}

// Start begins the restock job to run at the top of every hour.
func (j *RestockJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCreateRestockOrderCommand()

		purchaseOrder, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Restock job failed", "error", handleErr)
			return
		}

		if purchaseOrder == nil {
			// Nothing out of stock this round.
			return
		}

		j.logger.InfoContext(ctx, "Restock order placed",
			"orderNumber", purchaseOrder.OrderNumber(),
			"lines", purchaseOrder.Lines().Len())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Restock job started (running hourly)")
	return nil
}

// Stop stops the restock job.
func (j *RestockJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Restock job stopped")
}
