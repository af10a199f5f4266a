package commands

import (
	"errors"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// CreateOrderCommand represents a request to place a new order.
// Encapsulates everything the buyer submitted: receiver, items, shipping fee,
// discount, and payment details. The order ID and order code are assigned by
// the handler, not the caller.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(ownerID, receiver, items, fee, discount, payment)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("order %s placed", placed.Code())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID     kernel.UUID
	receiver    order.Receiver
	items       []order.Item
	shippingFee kernel.Money
	discount    kernel.Money
	payment     order.PaymentInfo

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The receiver, items, and payment must already be valid value objects;
// monetary amounts must be non-negative. Returns an error if any
// validation fails.
func NewCreateOrderCommand(
	ownerID kernel.UUID,
	receiver order.Receiver,
	items []order.Item,
	shippingFee kernel.Money,
	discount kernel.Money,
	payment order.PaymentInfo,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOwnerID(ownerID),
		orderCommand.setReceiver(receiver),
		orderCommand.setItems(items),
		orderCommand.setShippingFee(shippingFee),
		orderCommand.setDiscount(discount),
		orderCommand.setPayment(payment),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OwnerID returns the buyer account the order belongs to.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Receiver returns the delivery contact details.
func (c CreateOrderCommand) Receiver() order.Receiver {
	return c.receiver
}

// Items returns the ordered line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// ShippingFee returns the shipping fee to settle.
func (c CreateOrderCommand) ShippingFee() kernel.Money {
	return c.shippingFee
}

// Discount returns the discount to settle.
func (c CreateOrderCommand) Discount() kernel.Money {
	return c.discount
}

// Payment returns the submitted payment details.
func (c CreateOrderCommand) Payment() order.PaymentInfo {
	return c.payment
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setReceiver(receiver order.Receiver) error {
	if err := receiver.Validate(); err != nil {
		return err
	}

	c.receiver = receiver
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setShippingFee(shippingFee kernel.Money) error {
	if shippingFee.IsNegative() {
		return errors.New("shipping fee must not be negative")
	}

	c.shippingFee = shippingFee
	return nil
}

func (c *CreateOrderCommand) setDiscount(discount kernel.Money) error {
	if discount.IsNegative() {
		return errors.New("discount must not be negative")
	}

	c.discount = discount
	return nil
}

func (c *CreateOrderCommand) setPayment(payment order.PaymentInfo) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	c.payment = payment
	return nil
}
