package commands

import (
	"context"
	"errors"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
	"github.com/vudinhquy04/NovaTechApp/internal/core/ports"
)

// maxUpdateAttempts bounds how many times a handler reloads and replays a
// status change after losing a version race to another writer.
const maxUpdateAttempts = 3

// AdvanceOrderStatusCommandHandler handles forward status transitions.
// Loads the order, asks the aggregate to advance, and persists the mutation
// with a version check so concurrent writers cannot silently clobber each
// other.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advancement.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the status advancement command and returns the updated
// order. A same-status request is an idempotent no-op that returns the
// order unchanged. A lost version race is retried with a fresh load up to
// maxUpdateAttempts, then surfaced as ports.ErrConcurrentModification.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (bool, error) {
		return o.Advance(cmd.Target(), cmd.Label(), cmd.Description(), h.clock.Now())
	})
}

// mutateOrder runs mutate against a freshly loaded order inside a
// transaction. When mutate reports no change the transaction is rolled back
// and the loaded order returned as is. A version conflict on Update restarts
// the whole load-mutate-update cycle, up to maxUpdateAttempts.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(*order.Order) (bool, error),
) (*order.Order, error) {
	var lastErr error

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		updated, err := mutateOrderOnce(ctx, uowFactory, orderID, mutate)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, ports.ErrConcurrentModification) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func mutateOrderOnce(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(*order.Order) (bool, error),
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	loaded, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	changed, err := mutate(loaded)
	if err != nil {
		return nil, err
	}
	if !changed {
		return loaded, nil
	}

	if err = repo.Update(ctx, loaded); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return loaded, nil
}
