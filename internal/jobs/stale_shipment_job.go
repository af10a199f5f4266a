package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleShipmentJob watches for orders that have been sitting in SHIPPING
// longer than the configured threshold. It only observes and logs: status
// changes always come from explicit operator or carrier requests, never
// from the scheduler.
type StaleShipmentJob struct {
	orderRepository ports.OrderRepository
	clock           ports.Clock
	threshold       time.Duration
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewStaleShipmentJob creates a job that reports stale shipments.
// Shipments older than threshold are logged once per sweep.
func NewStaleShipmentJob(
	orderRepository ports.OrderRepository,
	clock ports.Clock,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleShipmentJob {
	return &StaleShipmentJob{
		orderRepository: orderRepository,
		clock:           clock,
		threshold:       threshold,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "stale_shipment_job"),
	}
}

// Start begins the stale shipment sweep, running at the top of every minute.
func (j *StaleShipmentJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cutoff := j.clock.Now().Add(-j.threshold)

		stale, err := j.orderRepository.GetAllInShippingSince(ctx, cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale shipment sweep failed", "error", err)
			return
		}

		for _, o := range stale {
			j.logger.WarnContext(ctx, "Order stuck in shipping",
				"orderId", o.ID().String(),
				"code", o.Code(),
				"shippingSince", o.UpdatedAt(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale shipment job started (running every minute)",
		"threshold", j.threshold)
	return nil
}

// Stop stops the stale shipment job.
func (j *StaleShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale shipment job stopped")
}
