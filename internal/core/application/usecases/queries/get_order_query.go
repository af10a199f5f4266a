// Package queries contains read-only operations in the CQRS architecture.
// Single-aggregate reads go through the repository port; listing reads run
// raw SQL against the read model and return lightweight response rows.
package queries

import (
	"errors"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its full detail: items,
// settlement amounts, and the complete status history. The requester must
// be the order's owner; other requesters get a not-found, not a forbidden,
// so order IDs leak nothing.
type GetOrderQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to read one order on behalf of requesterID.
func NewGetOrderQuery(orderID, requesterID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:     orderID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to read.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequesterID returns the account the read is performed for.
func (q GetOrderQuery) RequesterID() kernel.UUID {
	return q.requesterID
}
