package ports

import (
	"context"
	"errors"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
)

var (
	// ErrDuplicateOrderCode is returned by Add when the order code is
	// already taken. The create handler reacts by allocating a fresh code
	// and retrying.
	ErrDuplicateOrderCode = errors.New("order code already exists")

	// ErrConcurrentModification is returned by Update when the stored
	// version no longer matches the aggregate's version, i.e. another
	// writer committed first. The caller reloads and retries.
	ErrConcurrentModification = errors.New("order was modified concurrently")
)

// OrderRepository defines the persistence contract for order aggregates.
// Listing reads go through the query handlers, not this port.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns ErrDuplicateOrderCode when the code collides with an
	// existing order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using a
	// compare-and-swap on the aggregate version. Returns
	// ErrConcurrentModification when the version check fails.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInShippingSince retrieves orders that entered SHIPPING before
	// the cutoff and are still there. Used by the stale shipment job.
	GetAllInShippingSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
