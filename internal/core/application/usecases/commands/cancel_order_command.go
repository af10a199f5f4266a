package commands

import (
	"errors"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a buyer's request to cancel an order.
// Carries the mandatory reason from the fixed vocabulary and optional
// free-text notes.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  order.CancellationReason
	notes   *string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// The reason must belong to the cancellation vocabulary; notes are optional.
func NewCancelOrderCommand(
	orderID kernel.UUID,
	reason order.CancellationReason,
	notes *string,
) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	cancelCommand.notes = notes
	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the buyer's stated cancellation reason.
func (c CancelOrderCommand) Reason() order.CancellationReason {
	return c.reason
}

// Notes returns the optional free-text notes, nil when absent.
func (c CancelOrderCommand) Notes() *string {
	return c.notes
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setReason(reason order.CancellationReason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	c.reason = reason
	return nil
}
