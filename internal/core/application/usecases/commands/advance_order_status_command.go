package commands

import (
	"errors"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents a request to move an order to the
// given target status. The label and optional description are recorded on
// the audit history entry.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	target      order.Status
	label       string
	description string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order's status.
// The target must belong to the status vocabulary and the label must not be
// empty. Whether the move is allowed from the order's current status is
// decided by the aggregate, not here.
func NewAdvanceOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	label string,
	description string,
) (AdvanceOrderStatusCommand, error) {
	statusCommand := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTarget(target),
		statusCommand.setLabel(label),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	statusCommand.description = description
	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderStatusCommandIsNotConstructed if validation fails.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c AdvanceOrderStatusCommand) Target() order.Status {
	return c.target
}

// Label returns the short history label, e.g. "handed to carrier".
func (c AdvanceOrderStatusCommand) Label() string {
	return c.label
}

// Description returns the optional free-text history description.
func (c AdvanceOrderStatusCommand) Description() string {
	return c.description
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *AdvanceOrderStatusCommand) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("label")
	}

	c.label = label
	return nil
}
