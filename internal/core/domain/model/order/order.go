package order

import (
	"errors"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// PlacedLabel is the label of the seeded first history entry.
const PlacedLabel = "order placed"

// CancelledLabel is the label recorded when an order is cancelled.
const CancelledLabel = "order cancelled"

// Order is the aggregate root for a retail order. It owns the settlement
// amounts, the status state machine, and the append-only status history.
//
// Order maintains these invariants at every observable point:
//   - items is non-empty; every item has quantity > 0 and price >= 0
//   - subTotal = Σ(item.price × item.quantity)
//   - total = subTotal + shippingFee − discount, and total >= 0
//   - statusHistory is non-empty, starts at PLACED, and its timestamps
//     are non-decreasing
//   - status equals the status of the last history entry
//   - DELIVERED and CANCELLED are terminal; no entry is appended after them
//
// An Order is created exactly once via NewOrder; afterwards only Advance and
// Cancel mutate it. Private fields plus the constructor guard keep invalid
// instances out of circulation.
type Order struct {
	// id is the storage identity, distinct from the human-readable code
	id kernel.UUID

	// code is the globally unique human-readable identifier ("NT-...").
	// Immutable once assigned.
	code string

	// ownerID references the placing user; resolved externally
	ownerID kernel.UUID

	status  Status
	history []HistoryEntry

	receiver   Receiver
	items      []Item
	settlement Settlement

	payment PaymentInfo
	paidAt  *time.Time

	// cancellation is non-nil exactly when status is Cancelled
	cancellation *Cancellation

	createdAt time.Time
	updatedAt time.Time

	// version supports optimistic concurrency at the repository
	version int

	isConstructed bool
}

// NewOrder creates a new order in PLACED status with validation.
//
// It computes the settlement from the items, fee, and discount, seeds the
// status history with a single PLACED entry stamped at now, and records
// paidAt iff the payment info says the order is already paid.
//
// The code must come from the code allocator; NewOrder only checks that one
// was supplied.
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	code string,
	receiver Receiver,
	items []Item,
	shippingFee kernel.Money,
	discount kernel.Money,
	payment PaymentInfo,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setCode(code),
		o.setReceiver(receiver),
		o.setItems(items),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	settlement, err := NewSettlement(o.items, shippingFee, discount)
	if err != nil {
		return nil, err
	}
	o.settlement = settlement

	if payment.IsPaid() {
		paidAt := now
		o.paidAt = &paidAt
	}

	placed, err := NewHistoryEntry(Placed, PlacedLabel, "", now)
	if err != nil {
		return nil, err
	}
	o.history = []HistoryEntry{placed}

	o.createdAt = now
	o.updatedAt = now
	o.version = 1

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation side effects. All aggregate invariants are re-checked so a
// corrupted row cannot yield an order that violates them.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	code string,
	receiver Receiver,
	items []Item,
	settlement Settlement,
	payment PaymentInfo,
	paidAt *time.Time,
	status Status,
	history []HistoryEntry,
	cancellation *Cancellation,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setCode(code),
		o.setReceiver(receiver),
		o.setItems(items),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if err := validateHistory(history, status); err != nil {
		return nil, err
	}
	o.history = append([]HistoryEntry(nil), history...)

	if payment.IsPaid() != (paidAt != nil) {
		return nil, errs.NewValueIsInvalidError("paidAt must be set exactly when the order is paid")
	}
	o.paidAt = paidAt

	if (cancellation != nil) != (status == Cancelled) {
		return nil, errs.NewValueIsInvalidError("cancellation must be recorded exactly for cancelled orders")
	}
	o.cancellation = cancellation

	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order version")
	}
	o.version = version

	o.settlement = settlement
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. Call it when an order crosses a trust boundary,
// e.g. before persisting.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the storage identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-readable unique order code.
func (o *Order) Code() string {
	return o.code
}

// OwnerID returns the placing user's identity.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the append-only status history in
// chronological order.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// Receiver returns the delivery contact snapshot.
func (o *Order) Receiver() Receiver {
	return o.receiver
}

// Items returns a copy of the purchased lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Settlement returns the monetary breakdown.
func (o *Order) Settlement() Settlement {
	return o.settlement
}

// Payment returns the recorded payment details.
func (o *Order) Payment() PaymentInfo {
	return o.payment
}

// PaidAt returns when payment was captured, nil for unpaid orders.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// Cancellation returns the cancellation record, nil unless the order is
// CANCELLED.
func (o *Order) Cancellation() *Cancellation {
	return o.cancellation
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency version. The repository
// compares it on update and rejects writes that lost a race.
func (o *Order) Version() int {
	return o.version
}

// Advance moves the order to target and appends an audit entry stamped at
// now. It returns whether the order changed:
//
//   - target equal to the current status is an idempotent no-op: the order
//     is unchanged, nothing is appended, and (false, nil) is returned
//   - a terminal current status fails with ErrOrderAlreadyTerminal
//   - a move the transition table rejects fails with InvalidTransitionError
//
// The caller persists the mutation; Advance itself touches no storage.
func (o *Order) Advance(target Status, label, description string, now time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if o.status.IsTerminal() {
		return false, ErrOrderAlreadyTerminal
	}

	if target == o.status {
		return false, nil
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return false, err
	}

	entry, err := NewHistoryEntry(target, label, description, now)
	if err != nil {
		return false, err
	}

	o.history = append(o.history, entry)
	o.status = newStatus
	o.updatedAt = now
	return true, nil
}

// Cancel moves the order to CANCELLED and records the mandatory reason,
// the optional verbatim notes, and the cancellation time. The status change
// goes through Advance, so terminal orders (already delivered or already
// cancelled) fail with ErrOrderAlreadyTerminal and the history gains exactly
// one CANCELLED entry.
func (o *Order) Cancel(reason CancellationReason, notes *string, now time.Time) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	cancellation, err := NewCancellation(reason, notes, now)
	if err != nil {
		return err
	}

	if _, err = o.Advance(Cancelled, CancelledLabel, reason.String(), now); err != nil {
		return err
	}

	o.cancellation = &cancellation
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("order code")
	}
	o.code = code
	return nil
}

func (o *Order) setReceiver(receiver Receiver) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	o.receiver = receiver
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if item.Name() == "" {
			return errs.NewValueIsRequiredError("items must be created via NewItem")
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setPayment(payment PaymentInfo) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}
