package queries

import (
	"errors"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/guard"
)

var ErrGetOrdersByOwnerQueryIsNotConstructed = errors.New(
	"GetOrdersByOwnerQuery must be created via NewGetOrdersByOwnerQuery constructor",
)

// GetOrdersByOwnerQuery retrieves an owner's order history as summary rows,
// newest first. A status filter narrows the listing, e.g. only CANCELLED
// orders.
//
// Example:
//
//	shipping := order.Shipping
//	query, _ := NewGetOrdersByOwnerQuery(ownerID, &shipping)
//	rows, err := handler.Handle(ctx, query)
type GetOrdersByOwnerQuery struct {
	ownerID kernel.UUID
	status  *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByOwnerQuery creates a query for the owner's order listing.
// A nil status means no filtering.
func NewGetOrdersByOwnerQuery(ownerID kernel.UUID, status *order.Status) (GetOrdersByOwnerQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOrdersByOwnerQuery{}, err
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersByOwnerQuery{}, err
		}
	}

	return GetOrdersByOwnerQuery{
		ownerID: ownerID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByOwnerQueryIsNotConstructed if validation fails.
func (q GetOrdersByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByOwnerQueryIsNotConstructed)
}

// OwnerID returns the account whose orders are listed.
func (q GetOrdersByOwnerQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Status returns the optional status filter, nil when absent.
func (q GetOrdersByOwnerQuery) Status() *order.Status {
	return q.status
}

// GetOrdersByOwnerQueryResponse is one row of the owner's order listing.
// Carries just enough for a list view; the detail view loads the full order.
type GetOrdersByOwnerQueryResponse struct {
	ID        kernel.UUID
	Code      string
	Status    order.Status
	Total     kernel.Money
	ItemCount int
	CreatedAt time.Time
}
