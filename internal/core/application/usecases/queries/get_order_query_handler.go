package queries

import (
	"context"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
	"github.com/vudinhquy04/NovaTechApp/internal/core/ports"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order aggregate through the repository.
// The aggregate already carries everything the detail view needs, so this
// handler adds nothing beyond the ownership check.
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(orderRepository ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepository: orderRepository}
}

// Handle loads the order and verifies it belongs to the requester.
// A missing order and a foreign order both fail with ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loaded, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if !loaded.OwnerID().IsEqual(query.RequesterID()) {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return loaded, nil
}
