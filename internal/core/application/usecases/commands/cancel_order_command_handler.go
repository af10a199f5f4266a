package commands

import (
	"context"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
	"github.com/vudinhquy04/NovaTechApp/internal/core/ports"
)

// CancelOrderCommandHandler handles guarded order cancellation.
// Cancellation is only possible while the order is in a non-terminal status;
// the aggregate enforces that and this handler persists the outcome.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the cancellation command and returns the cancelled order.
// Orders already delivered or cancelled fail with
// order.ErrOrderAlreadyTerminal. Version races are retried the same way as
// status advancement.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (bool, error) {
		if err := o.Cancel(cmd.Reason(), cmd.Notes(), h.clock.Now()); err != nil {
			return false, err
		}
		return true, nil
	})
}
