package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/services"
	"github.com/vudinhquy04/NovaTechApp/internal/core/ports"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"
)

// maxCodeAllocationAttempts bounds how many fresh codes the handler tries
// when the unique constraint rejects a candidate.
const maxCodeAllocationAttempts = 3

// ErrCodeAllocationExhausted is returned when every allocation attempt hit
// a code collision. With high-entropy codes this effectively never happens
// outside operational anomalies.
var ErrCodeAllocationExhausted = errors.New("order code allocation attempts exhausted")

// CreateOrderCommandHandler handles the business logic for placing orders.
// Verifies the owner exists, allocates a unique order code, and persists the
// new order in PLACED status.
type CreateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	userDirectory ports.UserDirectory
	allocator     services.OrderCodeAllocator
	clock         ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	userDirectory ports.UserDirectory,
	allocator services.OrderCodeAllocator,
	clock ports.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		userDirectory: userDirectory,
		allocator:     allocator,
		clock:         clock,
	}
}

// Handle processes the order placement command and returns the placed order.
//
// Code uniqueness is enforced by the database constraint, not by
// read-then-write: each attempt allocates a fresh candidate code and inserts
// in its own transaction. A duplicate-code rejection triggers a retry with a
// new code, up to maxCodeAllocationAttempts, after which
// ErrCodeAllocationExhausted is returned.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	exists, err := h.userDirectory.Exists(ctx, cmd.OwnerID())
	if err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("ownerId", cmd.OwnerID())
	}

	for attempt := 0; attempt < maxCodeAllocationAttempts; attempt++ {
		now := h.clock.Now()
		code := h.allocator.Generate(now)

		newOrder, err := order.NewOrder(
			kernel.NewUUID(),
			cmd.OwnerID(),
			code,
			cmd.Receiver(),
			cmd.Items(),
			cmd.ShippingFee(),
			cmd.Discount(),
			cmd.Payment(),
			now,
		)
		if err != nil {
			return nil, err
		}

		added, err := h.addOrder(ctx, newOrder)
		if err != nil {
			return nil, err
		}
		if added {
			return newOrder, nil
		}
	}

	return nil, ErrCodeAllocationExhausted
}

// addOrder inserts the order in its own transaction. Returns (false, nil)
// on a code collision so the caller can retry with a fresh code.
func (h *CreateOrderCommandHandler) addOrder(ctx context.Context, newOrder *order.Order) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		if errors.Is(err, ports.ErrDuplicateOrderCode) {
			return false, nil
		}
		return false, err
	}

	if err := uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
